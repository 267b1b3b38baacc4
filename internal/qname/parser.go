package qname

import (
	"fmt"
	"strings"
)

// Parse reads the escaped string form of a qualified name. The empty string
// is the empty name. Empty segments ("A::::B"), a leading separator, and a
// trailing separator are errors.
func Parse(raw string) (Name, error) {
	if raw == "" {
		return Name{}, nil
	}

	var (
		segments []string
		current  strings.Builder
		started  bool
	)
	flush := func() error {
		if !started {
			return fmt.Errorf("qualified name %q contains an empty segment", raw)
		}
		segments = append(segments, current.String())
		current.Reset()
		started = false
		return nil
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '\\' && i+1 < len(raw) && (raw[i+1] == '\\' || raw[i+1] == ':'):
			current.WriteByte(raw[i+1])
			started = true
			i++
		case c == ':' && i+1 < len(raw) && raw[i+1] == ':':
			if err := flush(); err != nil {
				return Name{}, err
			}
			i++
		default:
			current.WriteByte(c)
			started = true
		}
	}
	if !started {
		return Name{}, fmt.Errorf("qualified name %q ends with a separator", raw)
	}
	if err := flush(); err != nil {
		return Name{}, err
	}
	return Name{segments: segments}, nil
}

// escapeSegment backslash-escapes ':' and '\' in a single segment.
func escapeSegment(s string) string {
	if !strings.ContainsAny(s, `:\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == ':' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
