package field

import (
	"cmp"
	"math"
	"strconv"

	"github.com/danielpatrickdp/evalfield/internal/preference"
	"github.com/danielpatrickdp/evalfield/internal/ternary"
)

// #region real-field
// RealField is a known real-valued evaluation. Comparison is exact; there is no tolerance.
type RealField struct {
	value float64
	pref  preference.Type
}

// NewReal creates a real evaluation with the given preference type. NaN is
// rejected and negative zero is stored as zero.
func NewReal(value float64, pref preference.Type) (*RealField, error) {
	if err := checkPreference(pref); err != nil {
		return nil, err
	}
	if math.IsNaN(value) {
		return nil, ErrNotANumber
	}
	if value == 0 {
		value = 0 // -0 becomes +0
	}
	return &RealField{value: value, pref: pref}, nil
}

func (f *RealField) Value() float64                  { return f.value }
func (f *RealField) PreferenceType() preference.Type { return f.pref }
func (f *RealField) Kind() Kind                      { return KindReal }
func (f *RealField) String() string                  { return strconv.FormatFloat(f.value, 'g', -1, 64) }

func (f *RealField) rawCompare(other Field) (int, bool) {
	o, ok := other.(*RealField)
	if !ok {
		return 0, false
	}
	return cmp.Compare(f.value, o.value), true
}

func (f *RealField) IsAtLeastAsGoodAs(other Field) ternary.Value { return simpleAtLeast(f, other) }
func (f *RealField) IsAtMostAsGoodAs(other Field) ternary.Value  { return simpleAtMost(f, other) }
func (f *RealField) IsEqualTo(other Field) ternary.Value         { return simpleEqual(f, other) }
func (f *RealField) CompareToEx(other Field) (int, error)        { return simpleCompare(f, other) }

func (*RealField) sealed() {}
func (*RealField) known()  {}
func (*RealField) simple() {}

// #endregion real-field
