package main

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/evalfield/internal/replay"
	"github.com/spf13/cobra"
)

var replayFlags struct {
	fixture string
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a comparison fixture and report mismatches",
	Long: `Loads a JSON fixture of attributes and recorded comparisons, replays every
case and prints a match table. Exits non-zero when any case fails.`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayFlags.fixture, "fixture", "", "Path to fixture JSON (required)")
	_ = replayCmd.MarkFlagRequired("fixture")
}

func runReplay(cmd *cobra.Command, _ []string) error {
	f, err := replay.LoadFixture(replayFlags.fixture)
	if err != nil {
		return err
	}
	results, err := replay.Replay(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-24s| %-6s| %s\n", "Case", "Match", "Detail")
	fmt.Fprintf(out, "%s+%s+%s\n", strings.Repeat("-", 24), strings.Repeat("-", 7), strings.Repeat("-", 30))
	for _, r := range results {
		detail := ""
		switch {
		case r.Err != nil:
			detail = r.Err.Error()
		case len(r.Mismatches) > 0:
			detail = strings.Join(r.Mismatches, "; ")
		}
		match := "yes"
		if !r.Passed() {
			match = "NO"
		}
		fmt.Fprintf(out, "%-24s| %-6s| %s\n", r.ID, match, detail)
	}

	s := replay.Summarize(results)
	fmt.Fprintf(out, "\n%d/%d passed, %d failed, %d errors\n", s.Passed, s.Total, s.Failed, s.Errors)
	if s.Passed != s.Total {
		return fmt.Errorf("replay %s: %d of %d cases did not match", replayFlags.fixture, s.Total-s.Passed, s.Total)
	}
	return nil
}
