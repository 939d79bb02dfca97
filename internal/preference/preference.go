package preference

import (
	"fmt"
	"strings"
)

// #region type
// Type states whether larger (Gain), smaller (Cost) or neither (None) is preferred.
type Type uint8

const (
	None Type = iota
	Gain
	Cost
)

// #endregion type

// #region parse
// Parse reads "gain", "cost" or "none", ignoring case.
func Parse(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gain":
		return Gain, nil
	case "cost":
		return Cost, nil
	case "none", "":
		return None, nil
	}
	return None, fmt.Errorf("unknown preference type %q", s)
}

// #endregion parse

// #region text
func (t Type) String() string {
	switch t {
	case Gain:
		return "gain"
	case Cost:
		return "cost"
	case None:
		return "none"
	default:
		return fmt.Sprintf("preference(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the three declared types.
func (t Type) Valid() bool {
	return t <= Cost
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid preference type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// #endregion text
