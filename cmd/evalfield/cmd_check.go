package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
	"github.com/danielpatrickdp/evalfield/internal/loadcheck"
	"github.com/danielpatrickdp/evalfield/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var checkFlags struct {
	schema string
	record bool
}

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate CSV data files against an attribute schema",
	Long: `Parses every cell of each CSV file as an evaluation of the column's attribute.
The first malformed cell of a file aborts the run. Each pass is recorded in the
load_log table of EVALFIELD_DB unless --record=false.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringVar(&checkFlags.schema, "schema", "", "Path to the YAML attribute schema (required)")
	f.BoolVar(&checkFlags.record, "record", true, "Record each pass in the load log")
	_ = checkCmd.MarkFlagRequired("schema")
}

func runCheck(cmd *cobra.Command, paths []string) error {
	sf, err := os.Open(checkFlags.schema)
	if err != nil {
		return fmt.Errorf("open schema: %w", err)
	}
	attrs, err := attribute.LoadSchema(sf)
	sf.Close()
	if err != nil {
		return err
	}

	reports, checkErr := loadcheck.NewChecker(attrs).CheckFiles(cmd.Context(), paths, cfg.Workers)

	out := cmd.OutOrStdout()
	for _, rep := range reports {
		if rep.Source == "" {
			continue
		}
		status := "ok"
		if rep.Err != nil {
			status = "FAILED"
		}
		fmt.Fprintf(out, "%-6s %s rows=%d cells=%d missing=%d distinct=%d evicted=%d\n",
			status, rep.Source, rep.Rows, rep.Cells, rep.Missing, rep.Distinct, rep.Evicted)
	}

	if checkFlags.record {
		if err := recordLoads(reports); err != nil {
			return errors.Join(checkErr, err)
		}
	}
	return checkErr
}

func recordLoads(reports []loadcheck.Report) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	log := logging.New("check")
	for _, rep := range reports {
		if rep.Source == "" {
			continue
		}
		entry := logging.LoadEntry{
			LoadID:  uuid.New().String(),
			Source:  rep.Source,
			Rows:    rep.Rows,
			Cells:   rep.Cells,
			Missing: rep.Missing,
			Evicted: rep.Evicted,
			Outcome: "ok",
		}
		if rep.Err != nil {
			entry.Outcome = "failed"
			entry.Reason = rep.Err.Error()
		}
		if err := logging.LogLoad(store.DB(), entry); err != nil {
			return err
		}
		log.Debug("load recorded", "load_id", entry.LoadID, "source", entry.Source, "outcome", entry.Outcome)
	}
	return nil
}
