package field

import (
	"fmt"

	"github.com/danielpatrickdp/evalfield/internal/preference"
	"github.com/danielpatrickdp/evalfield/internal/ternary"
)

// #region pair-field
// PairField is the interval [first, second] built from two simple fields of
// the same kind and preference type. Pair A is at least as good as pair B when
// A.first is at least as good as B.first and A.second is at most as good as B.second.
type PairField struct {
	first  Simple
	second Simple
}

// NewPair fails fast when the members differ in kind, preference type or catalog.
func NewPair(first, second Simple) (*PairField, error) {
	if isNil(first) || isNil(second) {
		return nil, ErrNilField
	}
	if first.Kind() != second.Kind() {
		return nil, fmt.Errorf("%w: %s and %s", ErrPairKindMismatch, first.Kind(), second.Kind())
	}
	if first.PreferenceType() != second.PreferenceType() {
		return nil, fmt.Errorf("%w: preference %s and %s", ErrPairKindMismatch, first.PreferenceType(), second.PreferenceType())
	}
	if a, ok := first.(*EnumerationField); ok {
		if b := second.(*EnumerationField); !a.list.IsEqualTo(b.list) {
			return nil, fmt.Errorf("%w: enumeration members use different catalogs", ErrPairKindMismatch)
		}
	}
	return &PairField{first: first, second: second}, nil
}

func (p *PairField) First() Simple                   { return p.first }
func (p *PairField) Second() Simple                  { return p.second }
func (p *PairField) PreferenceType() preference.Type { return p.first.PreferenceType() }
func (p *PairField) Kind() Kind                      { return KindPair }

// MemberKind is the kind shared by both members.
func (p *PairField) MemberKind() Kind { return p.first.Kind() }

func (p *PairField) String() string {
	return fmt.Sprintf("[%s, %s]", p.first, p.second)
}

// #endregion pair-field

// #region pair-protocol
func (p *PairField) IsAtLeastAsGoodAs(other Field) ternary.Value {
	if p.PreferenceType() == preference.None {
		return p.IsEqualTo(other)
	}
	mustHavePartner(other)
	if m, ok := other.(Missing); ok {
		return m.reverseIsAtLeastAsGoodAs(p)
	}
	c, err := p.compare(other)
	if err != nil {
		return ternary.Uncomparable
	}
	return ternary.Of(c >= 0)
}

func (p *PairField) IsAtMostAsGoodAs(other Field) ternary.Value {
	if p.PreferenceType() == preference.None {
		return p.IsEqualTo(other)
	}
	mustHavePartner(other)
	if m, ok := other.(Missing); ok {
		return m.reverseIsAtMostAsGoodAs(p)
	}
	c, err := p.compare(other)
	if err != nil {
		return ternary.Uncomparable
	}
	return ternary.Of(c <= 0)
}

func (p *PairField) IsEqualTo(other Field) ternary.Value {
	mustHavePartner(other)
	if m, ok := other.(Missing); ok {
		return m.reverseIsEqualTo(p)
	}
	o, ok := other.(*PairField)
	if !ok || o.MemberKind() != p.MemberKind() {
		return ternary.Uncomparable
	}
	return ternary.And(p.first.IsEqualTo(o.first), p.second.IsEqualTo(o.second))
}

// CompareToEx combines the member comparisons. Equal members give 0; a first
// member no worse together with a second member no better gives a definite
// order; any other combination is uncomparable. Pairs without a preference
// order lexicographically, which is only used for sorting.
func (p *PairField) CompareToEx(other Field) (int, error) {
	if isNil(other) {
		return 0, ErrNilField
	}
	if m, ok := other.(Missing); ok {
		return m.reverseCompareToEx(p)
	}
	if p.PreferenceType() == preference.None {
		return p.lexicographic(other)
	}
	return p.compare(other)
}

func (p *PairField) compare(other Field) (int, error) {
	o, ok := other.(*PairField)
	if !ok || o.MemberKind() != p.MemberKind() {
		return 0, uncomparable(p, other)
	}
	c1, err := p.first.CompareToEx(o.first)
	if err != nil {
		return 0, err
	}
	c2, err := p.second.CompareToEx(o.second)
	if err != nil {
		return 0, err
	}
	switch {
	case c1 == 0 && c2 == 0:
		return 0, nil
	case c1 >= 0 && c2 <= 0:
		return 1, nil
	case c1 <= 0 && c2 >= 0:
		return -1, nil
	}
	return 0, uncomparable(p, other)
}

func (p *PairField) lexicographic(other Field) (int, error) {
	o, ok := other.(*PairField)
	if !ok || o.MemberKind() != p.MemberKind() {
		return 0, uncomparable(p, other)
	}
	c, err := p.first.CompareToEx(o.first)
	if err != nil || c != 0 {
		return c, err
	}
	return p.second.CompareToEx(o.second)
}

func (*PairField) sealed() {}
func (*PairField) known()  {}

// #endregion pair-protocol
