package logging

import (
	"bytes"
	"database/sql"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE load_log (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		load_id    TEXT NOT NULL,
		source     TEXT NOT NULL,
		rows       INTEGER NOT NULL,
		cells      INTEGER NOT NULL,
		missing    INTEGER NOT NULL,
		evicted    INTEGER NOT NULL,
		outcome    TEXT NOT NULL,
		reason     TEXT,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

// #endregion helpers

// #region log-load-tests
func TestLogLoad_Success(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := LoadEntry{
		LoadID:    "l1",
		Source:    "houses.csv",
		Rows:      10,
		Cells:     40,
		Missing:   2,
		Evicted:   17,
		Outcome:   "ok",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := LogLoad(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := RecentLoads(db, 5)
	if err != nil {
		t.Fatalf("RecentLoads: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if diff := cmp.Diff(entry, got[0]); diff != "" {
		t.Errorf("round trip mismatch:\n%s", diff)
	}
}

func TestLogLoad_ZeroCreatedAtAndEmptyReason(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	before := time.Now().UTC()
	if err := LogLoad(db, LoadEntry{LoadID: "l2", Source: "a.csv", Outcome: "failed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reason sql.NullString
	var createdStr string
	db.QueryRow("SELECT reason, created_at FROM load_log").Scan(&reason, &createdStr)
	if reason.Valid {
		t.Error("expected NULL reason for empty string")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogLoad_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	if err := LogLoad(db, LoadEntry{LoadID: "l3", Source: "a.csv", Outcome: "ok"}); err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-load-tests

// #region slog-tests
func TestNew_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "text", &buf)

	New("loadcheck").Info("hello")

	out := buf.String()
	if !strings.Contains(out, "component=loadcheck") {
		t.Errorf("expected component=loadcheck in output, got: %s", out)
	}
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, "json", &buf)

	New("json-test").Info("json check")

	if !strings.Contains(buf.String(), `"level":"INFO"`) {
		t.Errorf("expected JSON level in output, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

// #endregion slog-tests
