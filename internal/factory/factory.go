package factory

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/danielpatrickdp/evalfield/internal/field"
	"github.com/danielpatrickdp/evalfield/internal/preference"
)

var (
	errNotPair         = errors.New("expected [first, second]")
	errMissingMember   = errors.New("pair members cannot be missing")
	errUnknownLabel    = errors.New("label not in catalog")
	errNotFinite       = errors.New("value is not a finite number")
	errUnsupportedKind = errors.New("unsupported value kind")
)

// #region builder
// builder creates simple fields; the plain factories build fresh values and a
// Session hands out cached ones.
type builder interface {
	integer(v int64, pref preference.Type) (*field.IntegerField, error)
	real(v float64, pref preference.Type) (*field.RealField, error)
	enumeration(list *catalog.ElementList, index int, pref preference.Type) (*field.EnumerationField, error)
}

type plain struct{}

func (plain) integer(v int64, pref preference.Type) (*field.IntegerField, error) {
	return field.NewInteger(v, pref)
}

func (plain) real(v float64, pref preference.Type) (*field.RealField, error) {
	return field.NewReal(v, pref)
}

func (plain) enumeration(list *catalog.ElementList, index int, pref preference.Type) (*field.EnumerationField, error) {
	return field.NewEnumeration(list, index, pref)
}

// #endregion builder

// #region plain-factories
// IntegerFactory builds integer evaluations.
type IntegerFactory struct{}

func (IntegerFactory) Create(value int64, pref preference.Type) (*field.IntegerField, error) {
	return field.NewInteger(value, pref)
}

// CreateFromText parses text for an integer attribute; "?" yields the attribute's missing value.
func (IntegerFactory) CreateFromText(text string, attr attribute.Attribute) (field.Field, error) {
	if err := expectKind(attr, attribute.Integer); err != nil {
		return nil, err
	}
	return parseWith(plain{}, text, attr)
}

// RealFactory builds real evaluations.
type RealFactory struct{}

func (RealFactory) Create(value float64, pref preference.Type) (*field.RealField, error) {
	return field.NewReal(value, pref)
}

func (RealFactory) CreateFromText(text string, attr attribute.Attribute) (field.Field, error) {
	if err := expectKind(attr, attribute.Real); err != nil {
		return nil, err
	}
	return parseWith(plain{}, text, attr)
}

// EnumerationFactory builds enumeration evaluations over a catalog.
type EnumerationFactory struct{}

func (EnumerationFactory) Create(list *catalog.ElementList, index int, pref preference.Type) (*field.EnumerationField, error) {
	return field.NewEnumeration(list, index, pref)
}

// CreateFromText looks the label up in the attribute's catalog.
func (EnumerationFactory) CreateFromText(text string, attr attribute.Attribute) (field.Field, error) {
	if err := expectKind(attr, attribute.Enumeration); err != nil {
		return nil, err
	}
	return parseWith(plain{}, text, attr)
}

// PairFactory builds [first, second] evaluations.
type PairFactory struct{}

func (PairFactory) Create(first, second field.Simple) (*field.PairField, error) {
	return field.NewPair(first, second)
}

func (PairFactory) CreateFromText(text string, attr attribute.Attribute) (field.Field, error) {
	if !attr.ValueKind.IsPair() {
		return nil, &TypeMismatchError{Attribute: attr.Name, Want: "pair", Got: attr.ValueKind}
	}
	return parseWith(plain{}, text, attr)
}

// Parse builds a fresh evaluation for any attribute kind.
func Parse(text string, attr attribute.Attribute) (field.Field, error) {
	return parseWith(plain{}, text, attr)
}

func expectKind(attr attribute.Attribute, want attribute.ValueKind) error {
	if attr.ValueKind != want {
		return &TypeMismatchError{Attribute: attr.Name, Want: want, Got: attr.ValueKind}
	}
	return nil
}

// #endregion plain-factories

// #region parsing
func parseWith(b builder, text string, attr attribute.Attribute) (field.Field, error) {
	text = strings.TrimSpace(text)
	if text == field.MissingLiteral {
		return attr.Missing.Value(), nil
	}
	if attr.ValueKind.IsPair() {
		return parsePair(b, text, attr)
	}
	s, err := parseSimple(b, text, attr.ValueKind, attr)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func parsePair(b builder, text string, attr attribute.Attribute) (field.Field, error) {
	fail := func(err error) error {
		return &ParseError{Text: text, Attribute: attr.Name, Kind: attr.ValueKind, Err: err}
	}
	inner, ok := strings.CutPrefix(text, "[")
	if !ok {
		return nil, fail(errNotPair)
	}
	if inner, ok = strings.CutSuffix(inner, "]"); !ok {
		return nil, fail(errNotPair)
	}
	a, c, ok := strings.Cut(inner, ",")
	if !ok {
		return nil, fail(errNotPair)
	}
	a, c = strings.TrimSpace(a), strings.TrimSpace(c)
	if a == field.MissingLiteral || c == field.MissingLiteral {
		return nil, fail(errMissingMember)
	}
	member := attr.ValueKind.Member()
	first, err := parseSimple(b, a, member, attr)
	if err != nil {
		return nil, err
	}
	second, err := parseSimple(b, c, member, attr)
	if err != nil {
		return nil, err
	}
	return field.NewPair(first, second)
}

func parseSimple(b builder, text string, kind attribute.ValueKind, attr attribute.Attribute) (field.Simple, error) {
	fail := func(err error) error {
		return &ParseError{Text: text, Attribute: attr.Name, Kind: kind, Err: err}
	}
	switch kind {
	case attribute.Integer:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fail(err)
		}
		return b.integer(v, attr.Preference)
	case attribute.Real:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fail(err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fail(errNotFinite)
		}
		return b.real(v, attr.Preference)
	case attribute.Enumeration:
		if attr.Catalog == nil {
			return nil, field.ErrNilCatalog
		}
		i := attr.Catalog.Index(text)
		if i < 0 {
			return nil, fail(errUnknownLabel)
		}
		return b.enumeration(attr.Catalog, i, attr.Preference)
	}
	return nil, fail(errUnsupportedKind)
}

// #endregion parsing
