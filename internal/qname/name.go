package qname

import (
	"slices"
	"strings"
)

// String returns the escaped form of n, the inverse of Parse.
func (n Name) String() string {
	escaped := make([]string, len(n.segments))
	for i, s := range n.segments {
		escaped[i] = escapeSegment(s)
	}
	return strings.Join(escaped, Separator)
}

// Segments returns a copy of the unescaped segments.
func (n Name) Segments() []string {
	return append([]string(nil), n.segments...)
}

// Len returns the number of segments.
func (n Name) Len() int {
	return len(n.segments)
}

// IsEmpty reports whether n has no segments.
func (n Name) IsEmpty() bool {
	return len(n.segments) == 0
}

// SimpleName returns the last segment.
func (n Name) SimpleName() (string, bool) {
	if len(n.segments) == 0 {
		return "", false
	}
	return n.segments[len(n.segments)-1], true
}

// Parent returns n without its last segment.
func (n Name) Parent() (Name, bool) {
	if len(n.segments) == 0 {
		return Name{}, false
	}
	return New(n.segments[:len(n.segments)-1]...), true
}

// Child returns n extended by one segment.
func (n Name) Child(segment string) Name {
	out := make([]string, len(n.segments), len(n.segments)+1)
	copy(out, n.segments)
	return Name{segments: append(out, segment)}
}

// HasPrefix reports whether the leading segments of n equal prefix.
func (n Name) HasPrefix(prefix Name) bool {
	if len(prefix.segments) > len(n.segments) {
		return false
	}
	return slices.Equal(n.segments[:len(prefix.segments)], prefix.segments)
}

// Equal reports whether n and other have the same segments.
func (n Name) Equal(other Name) bool {
	return slices.Equal(n.segments, other.segments)
}
