package attribute

import (
	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/danielpatrickdp/evalfield/internal/field"
	"github.com/danielpatrickdp/evalfield/internal/preference"
)

// #region value-kind
// ValueKind is the declared kind of an attribute's evaluations.
type ValueKind string

const (
	Integer         ValueKind = "integer"
	Real            ValueKind = "real"
	Enumeration     ValueKind = "enumeration"
	IntegerPair     ValueKind = "integer-pair"
	RealPair        ValueKind = "real-pair"
	EnumerationPair ValueKind = "enumeration-pair"
)

// IsPair reports whether evaluations are [first, second] pairs.
func (k ValueKind) IsPair() bool {
	return k == IntegerPair || k == RealPair || k == EnumerationPair
}

// Member returns the simple kind of a pair kind, or k itself.
func (k ValueKind) Member() ValueKind {
	switch k {
	case IntegerPair:
		return Integer
	case RealPair:
		return Real
	case EnumerationPair:
		return Enumeration
	}
	return k
}

// #endregion value-kind

// #region missing-semantics
// MissingSemantics selects how missing evaluations of an attribute compare.
type MissingSemantics string

const (
	MV15 MissingSemantics = "mv1.5"
	MV2  MissingSemantics = "mv2"
)

// Value returns the shared missing evaluation for m. Anything other than mv1.5 is mv2.
func (m MissingSemantics) Value() field.Missing {
	if m == MV15 {
		return field.MV15
	}
	return field.MV2
}

// #endregion missing-semantics

// #region attribute
// Attribute describes one column of a decision table: what kind of value its
// cells hold, which direction is preferred and how missing cells compare.
type Attribute struct {
	Name       string
	ValueKind  ValueKind
	Preference preference.Type
	Missing    MissingSemantics
	// Catalog is set for enumeration and enumeration-pair attributes.
	Catalog *catalog.ElementList
}

// #endregion attribute
