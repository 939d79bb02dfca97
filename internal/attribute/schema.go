package attribute

import (
	"errors"
	"fmt"
	"io"

	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/danielpatrickdp/evalfield/internal/preference"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// #region schema-types
// Schema is the YAML form of a list of attributes:
//
//	attributes:
//	  - name: price
//	    kind: real
//	    preference: cost
//	    missing: mv2
//	  - name: quality
//	    kind: enumeration
//	    preference: gain
//	    labels: [bad, medium, good]
//	    digest: SHA-256
type Schema struct {
	Attributes []AttributeSpec `yaml:"attributes" validate:"required,min=1,dive"`
}

// AttributeSpec is one attribute entry of a Schema.
type AttributeSpec struct {
	Name       string   `yaml:"name" json:"name" validate:"required"`
	Kind       string   `yaml:"kind" json:"kind" validate:"required,oneof=integer real enumeration integer-pair real-pair enumeration-pair"`
	Preference string   `yaml:"preference" json:"preference,omitempty" validate:"omitempty,oneof=gain cost none"`
	Missing    string   `yaml:"missing" json:"missing,omitempty" validate:"omitempty,oneof=mv1.5 mv2"`
	Labels     []string `yaml:"labels" json:"labels,omitempty" validate:"omitempty,dive,required"`
	Digest     string   `yaml:"digest" json:"digest,omitempty"`
}

var schemaValidate = validator.New()

var ErrMissingLabels = errors.New("enumeration attribute has no labels")

// #endregion schema-types

// #region load-schema
// LoadSchema decodes and validates a YAML schema and builds its attributes.
// Missing semantics default to mv2, preference to none.
func LoadSchema(r io.Reader) ([]Attribute, error) {
	var s Schema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	return s.Build()
}

// Build validates the schema and converts every spec to an Attribute.
func (s Schema) Build() ([]Attribute, error) {
	if err := schemaValidate.Struct(s); err != nil {
		return nil, fmt.Errorf("validate schema: %w", err)
	}
	seen := make(map[string]bool, len(s.Attributes))
	attrs := make([]Attribute, 0, len(s.Attributes))
	for _, spec := range s.Attributes {
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate attribute %q", spec.Name)
		}
		seen[spec.Name] = true
		a, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", spec.Name, err)
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// Build converts one spec to an Attribute.
func (spec AttributeSpec) Build() (Attribute, error) {
	pref, err := preference.Parse(spec.Preference)
	if err != nil {
		return Attribute{}, err
	}
	a := Attribute{
		Name:       spec.Name,
		ValueKind:  ValueKind(spec.Kind),
		Preference: pref,
		Missing:    MV2,
	}
	if spec.Missing != "" {
		a.Missing = MissingSemantics(spec.Missing)
	}
	if a.ValueKind.Member() != Enumeration {
		return a, nil
	}
	if len(spec.Labels) == 0 {
		return Attribute{}, ErrMissingLabels
	}
	alg, err := catalog.ParseAlgorithm(spec.Digest)
	if err != nil {
		return Attribute{}, err
	}
	if a.Catalog, err = catalog.NewWithAlgorithm(spec.Labels, alg); err != nil {
		return Attribute{}, err
	}
	return a, nil
}

// #endregion load-schema

// #region lookup
// ByName indexes attributes by name.
func ByName(attrs []Attribute) map[string]Attribute {
	m := make(map[string]Attribute, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a
	}
	return m
}

// #endregion lookup
