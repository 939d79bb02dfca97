package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-load
// LogLoad writes a load entry to the load_log table.
func LogLoad(db *sql.DB, entry LoadEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO load_log (load_id, source, rows, cells, missing, evicted, outcome, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.LoadID,
		entry.Source,
		entry.Rows,
		entry.Cells,
		entry.Missing,
		entry.Evicted,
		entry.Outcome,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log load: %w", err)
	}
	return nil
}

// RecentLoads returns the latest load entries, newest first.
func RecentLoads(db *sql.DB, limit int) ([]LoadEntry, error) {
	rows, err := db.Query(
		`SELECT load_id, source, rows, cells, missing, evicted, outcome, reason, created_at
		 FROM load_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent loads: %w", err)
	}
	defer rows.Close()

	var entries []LoadEntry
	for rows.Next() {
		var e LoadEntry
		var reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.LoadID, &e.Source, &e.Rows, &e.Cells, &e.Missing, &e.Evicted, &e.Outcome, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.Reason = reason.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion log-load

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
