package field

import (
	"errors"

	"github.com/danielpatrickdp/evalfield/internal/preference"
	"github.com/danielpatrickdp/evalfield/internal/ternary"
)

// #region errors
var (
	// ErrUncomparable is returned by CompareToEx exactly when the ternary
	// protocol would answer Uncomparable (and, for mv1.5, by the reverse strict comparison).
	ErrUncomparable     = errors.New("fields are uncomparable")
	ErrNilField         = errors.New("nil field")
	ErrNilCatalog       = errors.New("nil catalog")
	ErrIndexOutOfRange  = errors.New("enumeration index out of range")
	ErrPairKindMismatch = errors.New("pair members differ in kind")
	ErrInvalidPref      = errors.New("invalid preference type")
	ErrNotANumber       = errors.New("real evaluation is NaN")
)

// #endregion errors

// #region kind
// Kind is the primitive kind an evaluation carries.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindReal
	KindEnumeration
	KindPair
	KindMissing
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindEnumeration:
		return "enumeration"
	case KindPair:
		return "pair"
	case KindMissing:
		return "missing"
	default:
		return "invalid"
	}
}

// #endregion kind

// #region field
// Field is a single evaluation in a decision table cell. The set of
// implementations is closed: IntegerField, RealField, EnumerationField,
// PairField, MissingMV15 and MissingMV2.
//
// Comparison methods panic when other is nil; a nil partner is a caller bug.
type Field interface {
	IsAtLeastAsGoodAs(other Field) ternary.Value
	IsAtMostAsGoodAs(other Field) ternary.Value
	IsEqualTo(other Field) ternary.Value
	// CompareToEx orders the receiver against other, positive meaning "better".
	// It fails with ErrUncomparable exactly when the ternary methods answer Uncomparable.
	CompareToEx(other Field) (int, error)
	Kind() Kind
	String() string

	sealed()
}

// Known is a field carrying a value and a preference type.
type Known interface {
	Field
	PreferenceType() preference.Type
	known()
}

// Simple is a known field of a primitive kind; pairs are built from two of them.
type Simple interface {
	Known
	simple()
}

// Missing is an unknown evaluation. Known fields compared against a missing one
// hand over to its reverse methods, passing themselves as the typed argument.
type Missing interface {
	Field
	reverseIsAtLeastAsGoodAs(k Known) ternary.Value
	reverseIsAtMostAsGoodAs(k Known) ternary.Value
	reverseIsEqualTo(k Known) ternary.Value
	reverseCompareToEx(k Known) (int, error)
	missing()
}

// #endregion field

// #region assertions
var (
	_ Simple  = (*IntegerField)(nil)
	_ Simple  = (*RealField)(nil)
	_ Simple  = (*EnumerationField)(nil)
	_ Known   = (*PairField)(nil)
	_ Missing = (*MissingMV15)(nil)
	_ Missing = (*MissingMV2)(nil)
)

// #endregion assertions
