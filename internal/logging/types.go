package logging

import "time"

// #region load-entry
// LoadEntry is a single row in the load_log table: the outcome of one bulk
// load pass over a data file.
type LoadEntry struct {
	LoadID    string
	Source    string
	Rows      int
	Cells     int
	Missing   int
	Evicted   int    // volatile cache entries cleared after the pass
	Outcome   string // "ok" | "failed"
	Reason    string
	CreatedAt time.Time
}

// #endregion load-entry
