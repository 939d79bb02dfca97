package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// #region helpers
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("EVALFIELD_DB", filepath.Join(t.TempDir(), "evalfield.db"))
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// #endregion helpers

// #region compare-tests
func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", "--kind", "integer", "--pref", "cost", "3", "7")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, want := range []string{"at least as good TRUE", "at most as good  FALSE", "order            +1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompareCommand_MissingMV15(t *testing.T) {
	out, err := execute(t, "compare", "--kind", "real", "--pref", "gain", "--missing", "mv1.5", "2.5", "?")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "at least as good FALSE") || !strings.Contains(out, "order            uncomparable") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompareCommand_EnumerationNeedsLabels(t *testing.T) {
	_, err := execute(t, "compare", "--kind", "enumeration", "--labels", "", "a", "b")
	if err == nil || !strings.Contains(err.Error(), "--labels") {
		t.Fatalf("expected --labels error, got %v", err)
	}
}

// #endregion compare-tests

// #region check-tests
func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.yaml")
	data := filepath.Join(dir, "houses.csv")
	if err := os.WriteFile(schema, []byte("attributes:\n  - name: price\n    kind: integer\n    preference: cost\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(data, []byte("price\n100\n?\n100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "check", "--schema", schema, "--record=false", data)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "ok     "+data+" rows=3 cells=3 missing=1 distinct=1") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

// #endregion check-tests

// #region replay-tests
func TestReplayCommand(t *testing.T) {
	out, err := execute(t, "replay", "--fixture", filepath.Join("..", "..", "internal", "replay", "testdata", "dominance.json"))
	if err != nil {
		t.Fatalf("replay: %v\n%s", err, out)
	}
	if !strings.Contains(out, "14/14 passed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

// #endregion replay-tests
