package codec

import (
	"errors"

	"github.com/danielpatrickdp/evalfield/internal/field"
	"github.com/danielpatrickdp/evalfield/internal/ternary"
)

// #region comparison
// Comparison is the full protocol answer for an ordered pair of fields.
type Comparison struct {
	AtLeast   ternary.Value
	AtMost    ternary.Value
	Equal     ternary.Value
	Different ternary.Value
	// Order is CompareToEx's result; meaningless when Uncomparable is set.
	Order        int
	Uncomparable bool
}

// Compare runs every protocol method of a against b.
func Compare(a, b field.Field) (Comparison, error) {
	c := Comparison{
		AtLeast:   a.IsAtLeastAsGoodAs(b),
		AtMost:    a.IsAtMostAsGoodAs(b),
		Equal:     a.IsEqualTo(b),
		Different: field.IsDifferentThan(a, b),
	}
	order, err := a.CompareToEx(b)
	switch {
	case errors.Is(err, field.ErrUncomparable):
		c.Uncomparable = true
	case err != nil:
		return Comparison{}, err
	default:
		c.Order = order
	}
	return c, nil
}

// #endregion comparison

// #region wire-keys
const (
	keyKind       = "kind"
	keyPreference = "preference"
	keyValue      = "value"
	keyLabels     = "labels"
	keyAlgorithm  = "digest_algorithm"
	keyDigest     = "digest"
	keySemantics  = "semantics"
	keyFirst      = "first"
	keySecond     = "second"

	keyA            = "a"
	keyB            = "b"
	keyAtLeast      = "at_least"
	keyAtMost       = "at_most"
	keyEqual        = "equal"
	keyDifferent    = "different"
	keyOrder        = "order"
	keyUncomparable = "uncomparable"
)

// #endregion wire-keys
