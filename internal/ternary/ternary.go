package ternary

import "fmt"

// #region value
// Value is a three-valued logic result. Uncomparable is an outcome, not an error.
type Value uint8

const (
	False Value = iota
	True
	Uncomparable
)

// #endregion value

// #region constructors
// Of lifts a boolean into a Value.
func Of(b bool) Value {
	if b {
		return True
	}
	return False
}

// Not flips True and False; Uncomparable stays Uncomparable.
func Not(v Value) Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Uncomparable
	}
}

// And is the Kleene conjunction: False wins, then Uncomparable.
func And(a, b Value) Value {
	if a == False || b == False {
		return False
	}
	if a == Uncomparable || b == Uncomparable {
		return Uncomparable
	}
	return True
}

// #endregion constructors

// #region string
// Parse is the inverse of String.
func Parse(s string) (Value, error) {
	switch s {
	case "TRUE":
		return True, nil
	case "FALSE":
		return False, nil
	case "UNCOMPARABLE":
		return Uncomparable, nil
	}
	return Uncomparable, fmt.Errorf("unknown ternary value %q", s)
}

func (v Value) String() string {
	switch v {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	case Uncomparable:
		return "UNCOMPARABLE"
	default:
		return "INVALID"
	}
}

// #endregion string
