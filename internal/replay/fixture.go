package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a comparison fixture.
type Fixture struct {
	Description string                    `json:"description"`
	Attributes  []attribute.AttributeSpec `json:"attributes"`
	Cases       []FixtureCase             `json:"cases"`
}

// FixtureCase is one recorded comparison: two cell texts of one attribute and
// the results expected of A against B.
type FixtureCase struct {
	ID        string          `json:"id"`
	Attribute string          `json:"attribute"`
	A         string          `json:"a"`
	B         string          `json:"b"`
	Expected  FixtureExpected `json:"expected"`
}

// FixtureExpected holds ternary results as TRUE/FALSE/UNCOMPARABLE and the
// strict order as "-1", "0", "+1" or "uncomparable". Empty fields are not checked.
type FixtureExpected struct {
	AtLeast string `json:"at_least"`
	AtMost  string `json:"at_most"`
	Equal   string `json:"equal"`
	Order   string `json:"order"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// BuildAttributes validates the fixture's attribute specs.
func (f *Fixture) BuildAttributes() ([]attribute.Attribute, error) {
	return attribute.Schema{Attributes: f.Attributes}.Build()
}

// #endregion fixture-loader
