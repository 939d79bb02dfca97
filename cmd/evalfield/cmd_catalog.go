package main

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/danielpatrickdp/evalfield/internal/catalogstore"
	"github.com/spf13/cobra"
)

var catalogFlags struct {
	name   string
	labels string
	digest string
	limit  int
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage persisted enumeration catalogs",
}

var catalogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a catalog; an identical catalog is reused",
	Args:  cobra.NoArgs,
	RunE:  runCatalogAdd,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored catalogs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one stored catalog and verify its digest",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func init() {
	f := catalogAddCmd.Flags()
	f.StringVar(&catalogFlags.name, "name", "", "Catalog name")
	f.StringVar(&catalogFlags.labels, "labels", "", "Comma-separated labels, worst first (required)")
	f.StringVar(&catalogFlags.digest, "digest", "", "Digest algorithm (default EVALFIELD_DIGEST)")
	_ = catalogAddCmd.MarkFlagRequired("labels")

	catalogListCmd.Flags().IntVar(&catalogFlags.limit, "last", 20, "Show N most recent catalogs")

	catalogCmd.AddCommand(catalogAddCmd, catalogListCmd, catalogShowCmd)
}

func openStore() (*catalogstore.Store, error) {
	store, err := catalogstore.NewStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return store, nil
}

func runCatalogAdd(cmd *cobra.Command, _ []string) error {
	digest := catalogFlags.digest
	if digest == "" {
		digest = cfg.Digest
	}
	alg, err := catalog.ParseAlgorithm(digest)
	if err != nil {
		return err
	}
	list, err := catalog.NewWithAlgorithm(splitLabels(catalogFlags.labels), alg)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(catalogFlags.name, list)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", id, list.Key())
	return nil
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(catalogFlags.limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No catalogs stored.")
		return nil
	}
	fmt.Fprintf(out, "%-36s  %-12s  %-7s  %5s  %s\n", "ID", "NAME", "DIGEST", "SIZE", "CREATED")
	for _, r := range records {
		fmt.Fprintf(out, "%-36s  %-12s  %-7s  %5d  %s\n",
			r.ID, r.Name, r.List.Algorithm(), r.List.Size(), r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.Get(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:      %s\n", r.ID)
	fmt.Fprintf(out, "Name:    %s\n", r.Name)
	fmt.Fprintf(out, "Digest:  %s %s\n", r.List.Algorithm(), r.List.DigestHex())
	fmt.Fprintf(out, "Created: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Labels:  %s\n", strings.Join(r.List.Labels(), ", "))
	return nil
}
