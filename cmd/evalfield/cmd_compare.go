package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
	"github.com/danielpatrickdp/evalfield/internal/codec"
	"github.com/danielpatrickdp/evalfield/internal/factory"
	"github.com/spf13/cobra"
)

var compareFlags struct {
	kind       string
	preference string
	missing    string
	labels     string
	digest     string
	remote     bool
}

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two evaluations of one attribute",
	Long: `Parses A and B as evaluations of an attribute described by the flags and
prints every dominance result of A against B. Use ? for a missing value and
[a, b] for pairs. With --remote the comparison runs on the server at EVALFIELD_ADDR.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&compareFlags.kind, "kind", "integer", "Value kind (integer, real, enumeration, integer-pair, real-pair, enumeration-pair)")
	f.StringVar(&compareFlags.preference, "pref", "gain", "Preference type (gain, cost, none)")
	f.StringVar(&compareFlags.missing, "missing", "mv2", "Missing value semantics (mv1.5, mv2)")
	f.StringVar(&compareFlags.labels, "labels", "", "Comma-separated enumeration labels, worst first")
	f.StringVar(&compareFlags.digest, "digest", "", "Catalog digest algorithm (default EVALFIELD_DIGEST)")
	f.BoolVar(&compareFlags.remote, "remote", false, "Compare on the gRPC server instead of locally")
}

func runCompare(cmd *cobra.Command, args []string) error {
	attr, err := flagAttribute()
	if err != nil {
		return err
	}
	a, err := factory.Parse(args[0], attr)
	if err != nil {
		return fmt.Errorf("parse A: %w", err)
	}
	b, err := factory.Parse(args[1], attr)
	if err != nil {
		return fmt.Errorf("parse B: %w", err)
	}

	var c codec.Comparison
	if compareFlags.remote {
		client, err := codec.NewClient(cfg.Addr)
		if err != nil {
			return err
		}
		defer client.Close()
		c, err = client.Compare(cmd.Context(), a, b)
		if err != nil {
			return err
		}
	} else if c, err = codec.Compare(a, b); err != nil {
		return err
	}
	printComparison(cmd.OutOrStdout(), a.String(), b.String(), c)
	return nil
}

func flagAttribute() (attribute.Attribute, error) {
	spec := attribute.AttributeSpec{
		Name:       "cli",
		Kind:       compareFlags.kind,
		Preference: strings.ToLower(compareFlags.preference),
		Missing:    compareFlags.missing,
		Digest:     compareFlags.digest,
	}
	if spec.Digest == "" {
		spec.Digest = cfg.Digest
	}
	if compareFlags.labels != "" {
		spec.Labels = splitLabels(compareFlags.labels)
	}
	attrs, err := attribute.Schema{Attributes: []attribute.AttributeSpec{spec}}.Build()
	if errors.Is(err, attribute.ErrMissingLabels) {
		return attribute.Attribute{}, fmt.Errorf("--labels is required for %s: %w", spec.Kind, err)
	}
	if err != nil {
		return attribute.Attribute{}, err
	}
	return attrs[0], nil
}

func splitLabels(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func printComparison(out io.Writer, a, b string, c codec.Comparison) {
	fmt.Fprintf(out, "A:               %s\n", a)
	fmt.Fprintf(out, "B:               %s\n", b)
	fmt.Fprintf(out, "at least as good %s\n", c.AtLeast)
	fmt.Fprintf(out, "at most as good  %s\n", c.AtMost)
	fmt.Fprintf(out, "equal            %s\n", c.Equal)
	fmt.Fprintf(out, "different        %s\n", c.Different)
	if c.Uncomparable {
		fmt.Fprintf(out, "order            uncomparable\n")
		return
	}
	fmt.Fprintf(out, "order            %+d\n", c.Order)
}
