package replay

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
	"github.com/google/go-cmp/cmp"
)

// #region fixture-tests

// TestFixture_Dominance replays the baseline fixture and requires every case
// to match. A protocol change that alters any expected result shows up here.
func TestFixture_Dominance(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "dominance.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	results, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(results) != len(f.Cases) {
		t.Fatalf("expected %d results, got %d", len(f.Cases), len(results))
	}
	for i, r := range results {
		if r.ID != f.Cases[i].ID {
			t.Errorf("case %d: id %s, want %s", i, r.ID, f.Cases[i].ID)
		}
		if r.Err != nil {
			t.Errorf("case %s: %v", r.ID, r.Err)
		}
		for _, m := range r.Mismatches {
			t.Errorf("case %s: %s", r.ID, m)
		}
	}

	want := Summary{Total: len(f.Cases), Passed: len(f.Cases)}
	if diff := cmp.Diff(want, Summarize(results)); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

// #endregion fixture-tests

// #region harness-tests
func inlineFixture() *Fixture {
	return &Fixture{
		Attributes: []attribute.AttributeSpec{
			{Name: "rooms", Kind: "integer", Preference: "gain"},
		},
	}
}

func TestReplay_ReportsMismatch(t *testing.T) {
	f := inlineFixture()
	f.Cases = []FixtureCase{
		{ID: "wrong", Attribute: "rooms", A: "1", B: "2", Expected: FixtureExpected{AtLeast: "TRUE", Order: "-1"}},
	}
	results, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if got := results[0].Mismatches; len(got) != 1 || !strings.HasPrefix(got[0], "at_least: got FALSE") {
		t.Fatalf("mismatches = %v", got)
	}
	if s := Summarize(results); s.Failed != 1 {
		t.Errorf("summary = %+v, want one failure", s)
	}
}

func TestReplay_CaseErrors(t *testing.T) {
	f := inlineFixture()
	f.Cases = []FixtureCase{
		{ID: "no-attr", Attribute: "floors", A: "1", B: "2"},
		{ID: "bad-cell", Attribute: "rooms", A: "one", B: "2"},
	}
	results, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	for _, r := range results {
		if r.Err == nil {
			t.Errorf("case %s: expected error", r.ID)
		}
	}
	if s := Summarize(results); s.Errors != 2 {
		t.Errorf("summary = %+v, want two errors", s)
	}
}

func TestReplay_InvalidAttributes(t *testing.T) {
	f := &Fixture{Attributes: []attribute.AttributeSpec{{Name: "x", Kind: "complex"}}}
	if _, err := Replay(f); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Fatal("expected read error")
	}
}

// #endregion harness-tests
