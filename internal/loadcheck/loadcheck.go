package loadcheck

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
	"github.com/danielpatrickdp/evalfield/internal/factory"
	"github.com/danielpatrickdp/evalfield/internal/field"
	"github.com/danielpatrickdp/evalfield/internal/logging"
	"golang.org/x/sync/errgroup"
)

// #region checker
// Checker parses data files against a fixed set of attributes.
type Checker struct {
	attrs map[string]attribute.Attribute
}

// NewChecker indexes attrs by name.
func NewChecker(attrs []attribute.Attribute) *Checker {
	return &Checker{attrs: attribute.ByName(attrs)}
}

// Check reads CSV from r. The header names the attributes of each column;
// every cell is built through one Session and the volatile caches are cleared
// when the pass ends. The first malformed cell aborts the pass.
func (c *Checker) Check(ctx context.Context, source string, r io.Reader) (rep Report, err error) {
	rep.Source = source
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return rep, fmt.Errorf("read header of %s: %w", source, err)
	}
	columns := make([]attribute.Attribute, len(header))
	for i, name := range header {
		a, ok := c.attrs[strings.TrimSpace(name)]
		if !ok {
			return rep, fmt.Errorf("%s: column %q has no attribute in the schema", source, name)
		}
		columns[i] = a
	}

	session := factory.NewSession()
	defer func() {
		rep.Distinct = session.VolatileSize()
		rep.Evicted = session.ClearVolatile()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rep, fmt.Errorf("read %s: %w", source, err)
		}
		rep.Rows++
		for i, text := range record {
			f, err := session.Parse(text, columns[i], factory.Volatile)
			if err != nil {
				return rep, &CellError{Source: source, Row: rep.Rows, Attribute: columns[i].Name, Err: err}
			}
			rep.Cells++
			if f.Kind() == field.KindMissing {
				rep.Missing++
			}
		}
	}
	return rep, nil
}

// CheckFile opens path and checks it.
func (c *Checker) CheckFile(ctx context.Context, path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{Source: path}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return c.Check(ctx, path, f)
}

// #endregion checker

// #region check-files
// CheckFiles checks paths concurrently, at most workers at a time. Each file
// gets its own Session. Reports are returned in path order; the first error
// cancels the remaining files.
func (c *Checker) CheckFiles(ctx context.Context, paths []string, workers int) ([]Report, error) {
	log := logging.New("loadcheck")
	reports := make([]Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, path := range paths {
		g.Go(func() error {
			rep, err := c.CheckFile(ctx, path)
			rep.Err = err
			reports[i] = rep
			if err != nil {
				log.Error("load failed", "source", path, "row", rep.Rows, "err", err)
				return err
			}
			log.Info("load checked", "source", path, "rows", rep.Rows, "cells", rep.Cells,
				"missing", rep.Missing, "evicted", rep.Evicted)
			return nil
		})
	}
	err := g.Wait()
	return reports, err
}

// #endregion check-files
