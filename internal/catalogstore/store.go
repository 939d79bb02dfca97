package catalogstore

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS catalogs (
	catalog_id   TEXT PRIMARY KEY,
	name         TEXT,
	algorithm    TEXT NOT NULL,
	digest       TEXT NOT NULL,
	labels_json  TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	UNIQUE (algorithm, digest, labels_json)
);

CREATE INDEX IF NOT EXISTS catalogs_digest ON catalogs (algorithm, digest);

CREATE TABLE IF NOT EXISTS load_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	load_id       TEXT NOT NULL,
	source        TEXT NOT NULL,
	rows          INTEGER NOT NULL,
	cells         INTEGER NOT NULL,
	missing       INTEGER NOT NULL,
	evicted       INTEGER NOT NULL,
	outcome       TEXT NOT NULL,
	reason        TEXT,
	created_at    TEXT NOT NULL
);
`

// timeLayout is fixed-width so stored timestamps also sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// #endregion schema

var ErrNotFound = errors.New("catalog not found")

// #region store-struct
// Store persists catalogs in SQLite so independently loaded tables can
// recognise a shared domain by its digest.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region save
// Save stores list under name and returns its id. Saving content already in
// the store returns the existing id.
func (s *Store) Save(name string, list *catalog.ElementList) (string, error) {
	labelsJSON, err := json.Marshal(list.Labels())
	if err != nil {
		return "", fmt.Errorf("marshal labels: %w", err)
	}

	var existing string
	err = s.db.QueryRow(
		`SELECT catalog_id FROM catalogs WHERE algorithm = ? AND digest = ? AND labels_json = ?`,
		string(list.Algorithm()), list.DigestHex(), string(labelsJSON),
	).Scan(&existing)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("lookup catalog: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(
		`INSERT INTO catalogs (catalog_id, name, algorithm, digest, labels_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, nullIfEmpty(name), string(list.Algorithm()), list.DigestHex(), string(labelsJSON),
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("insert catalog: %w", err)
	}
	return id, nil
}

// #endregion save

// #region get
// Get loads a catalog by id and verifies that its digest round-trips.
func (s *Store) Get(id string) (CatalogRecord, error) {
	row := s.db.QueryRow(
		`SELECT catalog_id, name, algorithm, digest, labels_json, created_at
		 FROM catalogs WHERE catalog_id = ?`, id,
	)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CatalogRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return CatalogRecord{}, fmt.Errorf("get catalog %s: %w", id, err)
	}
	return rec, nil
}

// FindByDigest returns every stored catalog with the given algorithm and digest.
// More than one result means a digest collision.
func (s *Store) FindByDigest(alg catalog.Algorithm, digest []byte) ([]CatalogRecord, error) {
	rows, err := s.db.Query(
		`SELECT catalog_id, name, algorithm, digest, labels_json, created_at
		 FROM catalogs WHERE algorithm = ? AND digest = ? ORDER BY rowid`,
		string(alg), hex.EncodeToString(digest),
	)
	if err != nil {
		return nil, fmt.Errorf("find catalogs: %w", err)
	}
	return collect(rows)
}

// #endregion get

// #region list
// List returns the most recently stored catalogs.
func (s *Store) List(limit int) ([]CatalogRecord, error) {
	rows, err := s.db.Query(
		`SELECT catalog_id, name, algorithm, digest, labels_json, created_at
		 FROM catalogs ORDER BY rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return collect(rows)
}

// #endregion list

// #region scanning
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (CatalogRecord, error) {
	var rec CatalogRecord
	var name sql.NullString
	var alg, digestHex, labelsJSON, createdStr string
	if err := row.Scan(&rec.ID, &name, &alg, &digestHex, &labelsJSON, &createdStr); err != nil {
		return CatalogRecord{}, err
	}
	if name.Valid {
		rec.Name = name.String
	}
	var labels []string
	if err := json.Unmarshal([]byte(labelsJSON), &labels); err != nil {
		return CatalogRecord{}, fmt.Errorf("unmarshal labels: %w", err)
	}
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return CatalogRecord{}, fmt.Errorf("decode digest: %w", err)
	}
	if rec.List, err = catalog.Restore(labels, catalog.Algorithm(alg), digest); err != nil {
		return CatalogRecord{}, fmt.Errorf("restore catalog %s: %w", rec.ID, err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

func collect(rows *sql.Rows) ([]CatalogRecord, error) {
	defer rows.Close()
	var records []CatalogRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// #endregion scanning
