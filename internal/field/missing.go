package field

import (
	"fmt"

	"github.com/danielpatrickdp/evalfield/internal/ternary"
)

// MissingLiteral is the textual form of a missing evaluation.
const MissingLiteral = "?"

// #region mv2
// MissingMV2 is the symmetric treatment: a missing value is at least as good,
// at most as good and equal to anything it can be compared with, from either side.
type MissingMV2 struct{}

// MV2 is the shared mv2 value.
var MV2 = &MissingMV2{}

func (*MissingMV2) Kind() Kind     { return KindMissing }
func (*MissingMV2) String() string { return MissingLiteral }

func (*MissingMV2) IsAtLeastAsGoodAs(other Field) ternary.Value {
	mustHavePartner(other)
	return ternary.True
}

func (*MissingMV2) IsAtMostAsGoodAs(other Field) ternary.Value {
	mustHavePartner(other)
	return ternary.True
}

func (*MissingMV2) IsEqualTo(other Field) ternary.Value {
	mustHavePartner(other)
	return ternary.True
}

func (*MissingMV2) CompareToEx(other Field) (int, error) {
	if isNil(other) {
		return 0, ErrNilField
	}
	return 0, nil
}

func (*MissingMV2) reverseIsAtLeastAsGoodAs(Known) ternary.Value { return ternary.True }
func (*MissingMV2) reverseIsAtMostAsGoodAs(Known) ternary.Value  { return ternary.True }
func (*MissingMV2) reverseIsEqualTo(Known) ternary.Value         { return ternary.True }
func (*MissingMV2) reverseCompareToEx(Known) (int, error)        { return 0, nil }

func (*MissingMV2) sealed()  {}
func (*MissingMV2) missing() {}

// #endregion mv2

// #region mv15
// MissingMV15 is the asymmetric treatment: a missing value dominates every
// known value and is never dominated by one. Against another missing value it
// behaves as equal.
//
// The reverse strict comparison (a known field ordered against mv1.5) has no
// definite answer and fails with ErrUncomparable even though the reverse
// ternary questions are answered. The two protocols deliberately differ here.
type MissingMV15 struct{}

// MV15 is the shared mv1.5 value.
var MV15 = &MissingMV15{}

func (*MissingMV15) Kind() Kind     { return KindMissing }
func (*MissingMV15) String() string { return MissingLiteral }

func (*MissingMV15) IsAtLeastAsGoodAs(other Field) ternary.Value {
	mustHavePartner(other)
	return ternary.True
}

func (*MissingMV15) IsAtMostAsGoodAs(other Field) ternary.Value {
	mustHavePartner(other)
	_, isMissing := other.(Missing)
	return ternary.Of(isMissing)
}

func (*MissingMV15) IsEqualTo(other Field) ternary.Value {
	mustHavePartner(other)
	_, isMissing := other.(Missing)
	return ternary.Of(isMissing)
}

func (*MissingMV15) CompareToEx(other Field) (int, error) {
	if isNil(other) {
		return 0, ErrNilField
	}
	if _, isMissing := other.(Missing); isMissing {
		return 0, nil
	}
	return 1, nil
}

func (*MissingMV15) reverseIsAtLeastAsGoodAs(Known) ternary.Value { return ternary.False }
func (*MissingMV15) reverseIsAtMostAsGoodAs(Known) ternary.Value  { return ternary.True }
func (*MissingMV15) reverseIsEqualTo(Known) ternary.Value         { return ternary.False }

func (m *MissingMV15) reverseCompareToEx(k Known) (int, error) {
	return 0, fmt.Errorf("%w: %s %s vs mv1.5 missing value", ErrUncomparable, k.Kind(), k)
}

func (*MissingMV15) sealed()  {}
func (*MissingMV15) missing() {}

// #endregion mv15
