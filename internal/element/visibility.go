package element

import "fmt"

// Visibility annotates an ownership membership. It controls whether the
// owned element resolves by name from outside its owner.
type Visibility uint8

const (
	Public Visibility = iota
	Private
	Protected
)

var visibilityNames = [...]string{
	Public:    "public",
	Private:   "private",
	Protected: "protected",
}

// ParseVisibility maps "public", "private", or "protected" to a Visibility.
func ParseVisibility(s string) (Visibility, error) {
	for v, name := range visibilityNames {
		if name == s {
			return Visibility(v), nil
		}
	}
	return Public, fmt.Errorf("invalid visibility %q: must be one of 'public', 'private', 'protected'", s)
}

func (v Visibility) String() string {
	if int(v) < len(visibilityNames) {
		return visibilityNames[v]
	}
	return fmt.Sprintf("Visibility(%d)", uint8(v))
}

// MarshalText implements encoding.TextMarshaler.
func (v Visibility) MarshalText() ([]byte, error) {
	if int(v) >= len(visibilityNames) {
		return nil, fmt.Errorf("cannot marshal invalid visibility %d", uint8(v))
	}
	return []byte(visibilityNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visibility) UnmarshalText(text []byte) error {
	parsed, err := ParseVisibility(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
