package factory

import (
	"fmt"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
)

// #region parse-error
// ParseError reports a cell text that is not a valid literal for its attribute.
type ParseError struct {
	Text      string
	Attribute string
	Kind      attribute.ValueKind
	Err       error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s value %q for attribute %q: %v", e.Kind, e.Text, e.Attribute, e.Err)
	}
	return fmt.Sprintf("parse %s value %q for attribute %q", e.Kind, e.Text, e.Attribute)
}

func (e *ParseError) Unwrap() error { return e.Err }

// #endregion parse-error

// #region type-mismatch
// TypeMismatchError reports a factory asked to build values for an attribute
// whose declared kind it does not handle.
type TypeMismatchError struct {
	Attribute string
	Want      attribute.ValueKind
	Got       attribute.ValueKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("attribute %q holds %s values, factory builds %s", e.Attribute, e.Got, e.Want)
}

// #endregion type-mismatch

// #region tier
// Tier selects which cache store a Session lookup goes through.
type Tier uint8

const (
	// Volatile entries live until ClearVolatile, typically one bulk load.
	Volatile Tier = iota
	// Persistent entries are never evicted.
	Persistent
)

func (t Tier) String() string {
	if t == Persistent {
		return "persistent"
	}
	return "volatile"
}

// #endregion tier
