package loadcheck

import "fmt"

// #region report
// Report summarises one bulk-load pass over a data file.
type Report struct {
	Source string
	Rows   int
	Cells  int
	// Missing counts cells holding the missing literal.
	Missing int
	// Distinct is the number of volatile cache entries the pass created.
	Distinct int
	Evicted  int
	// Err is set by CheckFiles when this file's pass failed.
	Err error
}

// #endregion report

// #region cell-error
// CellError locates the cell that aborted a load.
type CellError struct {
	Source    string
	Row       int // 1-based, header excluded
	Attribute string
	Err       error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s row %d attribute %q: %v", e.Source, e.Row, e.Attribute, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// #endregion cell-error
