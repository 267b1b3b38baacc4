package query

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
	"lukechampine.com/blake3"
)

// Digest is a BLAKE3-256 content hash.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Fingerprint hashes a canonical dump of g: every element with its kind,
// name, owner, membership visibility and properties, then every relationship
// with its endpoints and properties, both in insertion order. Equal graphs
// built in the same order give equal digests.
func Fingerprint(g modelgraph.Reader) Digest {
	h := blake3.New(32, nil)
	for _, id := range g.Elements() {
		e, _ := g.Get(id)
		name := "-"
		if n, ok := e.Name(); ok {
			name = strconv.Quote(n)
		}
		owner := "-"
		if o, ok := e.Owner(); ok {
			owner = o.String()
		}
		fmt.Fprintf(h, "E %s %s %s %s %s\n", id, e.Kind(), name, owner, e.Visibility())
		writeBag(h, &e.Bag)
	}
	for _, id := range g.Relationships() {
		r, _ := g.Relationship(id)
		fmt.Fprintf(h, "R %s %s %s %s\n", id, r.Kind(), r.Source(), r.Target())
		writeBag(h, &r.Bag)
	}

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func writeBag(w io.Writer, b *element.Bag) {
	for _, key := range b.PropertyKeys() {
		v, _ := b.Property(key)
		fmt.Fprintf(w, "  %q = %s\n", key, v.GoString())
	}
}
