package catalogstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/google/go-cmp/cmp"
)

// #region helpers
func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "catalogs.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustList(t *testing.T, alg catalog.Algorithm, labels ...string) *catalog.ElementList {
	t.Helper()
	l, err := catalog.NewWithAlgorithm(labels, alg)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return l
}

// #endregion helpers

// #region save-get-tests
func TestSaveAndGet_RoundTrip(t *testing.T) {
	s := tempStore(t)
	list := mustList(t, catalog.SHA256, "bad", "medium", "good")

	id, err := s.Save("quality", list)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	rec, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Name != "quality" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.List.DigestHex() != list.DigestHex() {
		t.Errorf("digest changed: %s vs %s", rec.List.DigestHex(), list.DigestHex())
	}
	if !rec.List.IsEqualTo(list) {
		t.Error("restored catalog not equal to the saved one")
	}
	if diff := cmp.Diff(list.Labels(), rec.List.Labels()); diff != "" {
		t.Errorf("labels mismatch:\n%s", diff)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestSave_Deduplicates(t *testing.T) {
	s := tempStore(t)
	a, err := s.Save("", mustList(t, catalog.MD5, "x", "y"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, _ := s.Save("again", mustList(t, catalog.MD5, "x", "y"))
	if a != b {
		t.Errorf("expected same id, got %s and %s", a, b)
	}
	c, _ := s.Save("", mustList(t, catalog.SHA1, "x", "y"))
	if c == a {
		t.Error("different algorithm should be stored separately")
	}
}

func TestGet_NotFound(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_TamperedDigest(t *testing.T) {
	s := tempStore(t)
	id, _ := s.Save("", mustList(t, catalog.MD5, "x", "y"))
	if _, err := s.DB().Exec(`UPDATE catalogs SET labels_json = '["x","z"]' WHERE catalog_id = ?`, id); err != nil {
		t.Fatalf("tamper: %v", err)
	}
	if _, err := s.Get(id); !errors.Is(err, catalog.ErrDigestMismatch) {
		t.Fatalf("expected ErrDigestMismatch, got %v", err)
	}
}

// #endregion save-get-tests

// #region query-tests
func TestFindByDigest(t *testing.T) {
	s := tempStore(t)
	list := mustList(t, catalog.MD5, "a", "b", "c")
	id, _ := s.Save("abc", list)
	s.Save("", mustList(t, catalog.MD5, "c", "b", "a"))

	found, err := s.FindByDigest(list.Algorithm(), list.Digest())
	if err != nil {
		t.Fatalf("FindByDigest: %v", err)
	}
	if len(found) != 1 || found[0].ID != id {
		t.Fatalf("FindByDigest = %+v", found)
	}
}

func TestList(t *testing.T) {
	s, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer s.Close()
	for _, labels := range [][]string{{"a"}, {"b"}, {"c"}} {
		if _, err := s.Save("", mustList(t, catalog.MD5, labels...)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	recs, err := s.List(2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if got := []string{recs[0].List.Labels()[0], recs[1].List.Labels()[0]}; !cmp.Equal(got, []string{"c", "b"}) {
		t.Errorf("List order = %v, want newest first", got)
	}
}

func TestList_NewestFirstDespiteTimestampText(t *testing.T) {
	s := tempStore(t)
	older, err := s.Save("older", mustList(t, catalog.MD5, "a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	newer, err := s.Save("newer", mustList(t, catalog.MD5, "b"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	// variable-width fractions sort wrongly as text: "05.1Z" > "05.12Z"
	for id, ts := range map[string]string{older: "2026-01-01T00:00:05.1Z", newer: "2026-01-01T00:00:05.12Z"} {
		if _, err := s.DB().Exec(`UPDATE catalogs SET created_at = ? WHERE catalog_id = ?`, ts, id); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	recs, err := s.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != newer || recs[1].ID != older {
		t.Fatalf("List = %+v, want newer before older", recs)
	}
}

func TestSave_FixedWidthTimestamp(t *testing.T) {
	s := tempStore(t)
	id, err := s.Save("", mustList(t, catalog.MD5, "a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	var created string
	if err := s.DB().QueryRow(`SELECT created_at FROM catalogs WHERE catalog_id = ?`, id).Scan(&created); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(created) != len("2006-01-02T15:04:05.000000000Z") {
		t.Errorf("created_at %q is not fixed width", created)
	}
}

// #endregion query-tests
