package replay

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
	"github.com/danielpatrickdp/evalfield/internal/codec"
	"github.com/danielpatrickdp/evalfield/internal/factory"
)

// #region types

// Result captures the outcome of replaying one fixture case.
type Result struct {
	ID         string
	Comparison codec.Comparison
	// Mismatches lists "name: got X, want Y" for every checked result that differed.
	Mismatches []string
	// Err is set when a cell could not be parsed or compared.
	Err error
}

// Passed reports whether the case ran and matched every expectation.
func (r Result) Passed() bool {
	return r.Err == nil && len(r.Mismatches) == 0
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total  int
	Passed int
	Failed int
	Errors int
}

// #endregion types

// #region replay

// Replay runs every case through one Session, building cells in the
// persistent tier so repeated texts share an evaluation.
func Replay(f *Fixture) ([]Result, error) {
	attrs, err := f.BuildAttributes()
	if err != nil {
		return nil, err
	}
	byName := attribute.ByName(attrs)
	session := factory.NewSession()

	results := make([]Result, 0, len(f.Cases))
	for _, c := range f.Cases {
		r := Result{ID: c.ID}
		attr, ok := byName[c.Attribute]
		if !ok {
			r.Err = fmt.Errorf("case %s: unknown attribute %q", c.ID, c.Attribute)
			results = append(results, r)
			continue
		}
		r.Comparison, r.Err = compareTexts(session, attr, c.A, c.B)
		if r.Err == nil {
			r.Mismatches = check(r.Comparison, c.Expected)
		}
		results = append(results, r)
	}
	return results, nil
}

func compareTexts(s *factory.Session, attr attribute.Attribute, textA, textB string) (codec.Comparison, error) {
	a, err := s.Parse(textA, attr, factory.Persistent)
	if err != nil {
		return codec.Comparison{}, err
	}
	b, err := s.Parse(textB, attr, factory.Persistent)
	if err != nil {
		return codec.Comparison{}, err
	}
	return codec.Compare(a, b)
}

func check(c codec.Comparison, want FixtureExpected) []string {
	var out []string
	expect := func(name, got, want string) {
		if want != "" && !strings.EqualFold(got, want) {
			out = append(out, fmt.Sprintf("%s: got %s, want %s", name, got, want))
		}
	}
	expect("at_least", c.AtLeast.String(), want.AtLeast)
	expect("at_most", c.AtMost.String(), want.AtMost)
	expect("equal", c.Equal.String(), want.Equal)
	expect("order", orderText(c), want.Order)
	return out
}

func orderText(c codec.Comparison) string {
	switch {
	case c.Uncomparable:
		return "uncomparable"
	case c.Order == 0:
		return "0"
	}
	return fmt.Sprintf("%+d", c.Order)
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Errors++
		case r.Passed():
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

// #endregion replay
