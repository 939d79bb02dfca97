package field

import (
	"cmp"
	"strconv"

	"github.com/danielpatrickdp/evalfield/internal/preference"
	"github.com/danielpatrickdp/evalfield/internal/ternary"
)

// #region integer-field
// IntegerField is a known integer evaluation.
type IntegerField struct {
	value int64
	pref  preference.Type
}

// NewInteger creates an integer evaluation with the given preference type.
func NewInteger(value int64, pref preference.Type) (*IntegerField, error) {
	if err := checkPreference(pref); err != nil {
		return nil, err
	}
	return &IntegerField{value: value, pref: pref}, nil
}

func (f *IntegerField) Value() int64                    { return f.value }
func (f *IntegerField) PreferenceType() preference.Type { return f.pref }
func (f *IntegerField) Kind() Kind                      { return KindInteger }
func (f *IntegerField) String() string                  { return strconv.FormatInt(f.value, 10) }

func (f *IntegerField) rawCompare(other Field) (int, bool) {
	o, ok := other.(*IntegerField)
	if !ok {
		return 0, false
	}
	return cmp.Compare(f.value, o.value), true
}

func (f *IntegerField) IsAtLeastAsGoodAs(other Field) ternary.Value { return simpleAtLeast(f, other) }
func (f *IntegerField) IsAtMostAsGoodAs(other Field) ternary.Value  { return simpleAtMost(f, other) }
func (f *IntegerField) IsEqualTo(other Field) ternary.Value         { return simpleEqual(f, other) }
func (f *IntegerField) CompareToEx(other Field) (int, error)        { return simpleCompare(f, other) }

func (*IntegerField) sealed() {}
func (*IntegerField) known()  {}
func (*IntegerField) simple() {}

// #endregion integer-field
