package qname

// Separator joins segments in the string form of a Name.
const Separator = "::"

// Name is the structured form of a qualified name. The zero value is the
// empty name.
type Name struct {
	segments []string
}

// New builds a Name from already-unescaped segments.
func New(segments ...string) Name {
	return Name{segments: append([]string(nil), segments...)}
}
