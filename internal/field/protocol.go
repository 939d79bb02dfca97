package field

import (
	"fmt"
	"slices"

	"github.com/danielpatrickdp/evalfield/internal/preference"
	"github.com/danielpatrickdp/evalfield/internal/ternary"
)

// #region simple-protocol
// rawComparer is implemented by the simple known fields. rawCompare returns
// the natural order of the two values and false when other is not of a
// comparable kind.
type rawComparer interface {
	Simple
	rawCompare(other Field) (int, bool)
}

// Without a preference both dominance questions are equality, missing partners included.
func simpleAtLeast(self rawComparer, other Field) ternary.Value {
	if self.PreferenceType() == preference.None {
		return simpleEqual(self, other)
	}
	mustHavePartner(other)
	if m, ok := other.(Missing); ok {
		return m.reverseIsAtLeastAsGoodAs(self)
	}
	c, ok := self.rawCompare(other)
	if !ok {
		return ternary.Uncomparable
	}
	return ternary.Of(directionOf(self.PreferenceType()).atLeast(c))
}

func simpleAtMost(self rawComparer, other Field) ternary.Value {
	if self.PreferenceType() == preference.None {
		return simpleEqual(self, other)
	}
	mustHavePartner(other)
	if m, ok := other.(Missing); ok {
		return m.reverseIsAtMostAsGoodAs(self)
	}
	c, ok := self.rawCompare(other)
	if !ok {
		return ternary.Uncomparable
	}
	return ternary.Of(directionOf(self.PreferenceType()).atMost(c))
}

func simpleEqual(self rawComparer, other Field) ternary.Value {
	mustHavePartner(other)
	if m, ok := other.(Missing); ok {
		return m.reverseIsEqualTo(self)
	}
	c, ok := self.rawCompare(other)
	if !ok {
		return ternary.Uncomparable
	}
	return ternary.Of(c == 0)
}

func simpleCompare(self rawComparer, other Field) (int, error) {
	if isNil(other) {
		return 0, ErrNilField
	}
	if m, ok := other.(Missing); ok {
		return m.reverseCompareToEx(self)
	}
	c, ok := self.rawCompare(other)
	if !ok {
		return 0, uncomparable(self, other)
	}
	return directionOf(self.PreferenceType()).strict(c), nil
}

// #endregion simple-protocol

// #region derived
// IsDifferentThan is the negation of IsEqualTo; Uncomparable stays Uncomparable.
func IsDifferentThan(a, b Field) ternary.Value {
	return ternary.Not(a.IsEqualTo(b))
}

// Sort orders fields of one attribute from worst to best using CompareToEx.
// It stops at, and returns, the first comparison error.
func Sort(fields []Field) error {
	var firstErr error
	slices.SortStableFunc(fields, func(a, b Field) int {
		if firstErr != nil {
			return 0
		}
		c, err := a.CompareToEx(b)
		if err != nil {
			firstErr = err
			return 0
		}
		return c
	})
	return firstErr
}

// #endregion derived

// #region helpers
func mustHavePartner(other Field) {
	if isNil(other) {
		panic(ErrNilField)
	}
}

func isNil(f Field) bool {
	switch v := f.(type) {
	case nil:
		return true
	case *IntegerField:
		return v == nil
	case *RealField:
		return v == nil
	case *EnumerationField:
		return v == nil
	case *PairField:
		return v == nil
	case *MissingMV15:
		return v == nil
	case *MissingMV2:
		return v == nil
	}
	return false
}

func uncomparable(a, b Field) error {
	return fmt.Errorf("%w: %s %s vs %s %s", ErrUncomparable, a.Kind(), a, b.Kind(), b)
}

// #endregion helpers
