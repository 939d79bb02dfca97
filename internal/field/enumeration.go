package field

import (
	"cmp"
	"fmt"

	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/danielpatrickdp/evalfield/internal/preference"
	"github.com/danielpatrickdp/evalfield/internal/ternary"
)

// #region enumeration-field
// EnumerationField is a known evaluation holding an index into a catalog.
// Two enumerations compare by index only when their catalogs are content-equal.
type EnumerationField struct {
	list  *catalog.ElementList
	index int
	pref  preference.Type
}

// NewEnumeration validates index against list and creates the evaluation.
func NewEnumeration(list *catalog.ElementList, index int, pref preference.Type) (*EnumerationField, error) {
	if list == nil {
		return nil, ErrNilCatalog
	}
	if index < 0 || index >= list.Size() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, list.Size())
	}
	if err := checkPreference(pref); err != nil {
		return nil, err
	}
	return &EnumerationField{list: list, index: index, pref: pref}, nil
}

func (f *EnumerationField) Index() int                      { return f.index }
func (f *EnumerationField) Catalog() *catalog.ElementList   { return f.list }
func (f *EnumerationField) PreferenceType() preference.Type { return f.pref }
func (f *EnumerationField) Kind() Kind                      { return KindEnumeration }

// Value returns the label the index points at.
func (f *EnumerationField) Value() string {
	label, _ := f.list.Element(f.index)
	return label
}

func (f *EnumerationField) String() string { return f.Value() }

func (f *EnumerationField) rawCompare(other Field) (int, bool) {
	o, ok := other.(*EnumerationField)
	if !ok || !f.list.IsEqualTo(o.list) {
		return 0, false
	}
	return cmp.Compare(f.index, o.index), true
}

func (f *EnumerationField) IsAtLeastAsGoodAs(other Field) ternary.Value {
	return simpleAtLeast(f, other)
}

func (f *EnumerationField) IsAtMostAsGoodAs(other Field) ternary.Value {
	return simpleAtMost(f, other)
}

func (f *EnumerationField) IsEqualTo(other Field) ternary.Value  { return simpleEqual(f, other) }
func (f *EnumerationField) CompareToEx(other Field) (int, error) { return simpleCompare(f, other) }

func (*EnumerationField) sealed() {}
func (*EnumerationField) known()  {}
func (*EnumerationField) simple() {}

// #endregion enumeration-field
