package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmcdole/esedb/catalog"
	"github.com/mmcdole/esedb/page"
	"github.com/mmcdole/esedb/pagetree"
)

func init() {
	rootCmd.AddCommand(newCatalogCmd())
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog <database> <catalog-root-page>",
		Short: "Walk the catalog page tree and list table/column/index definitions",
		Long: `The catalog command walks the page tree rooted at
catalog-root-page in BuildCatalog mode and prints every TableDefinition it
assembles, along with its columns, indexes, and long-value definition.

Example:
  esectl catalog catalog.edb 4
  esectl catalog catalog.edb 4 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("catalog-root-page: %w", err)
			}
			return runCatalog(args[0], uint32(root))
		},
	}
}

func runCatalog(path string, rootPage uint32) error {
	src, err := page.Open(path, page.Options{})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	pt, err := pagetree.Initialise(src, catalog.DefaultDecoder{}, pagetree.Options{})
	if err != nil {
		return fmt.Errorf("initialise page tree: %w", err)
	}
	defer pt.Release()

	out.Verbose("walking catalog root page %d\n", rootPage)
	if err := pt.Read(context.Background(), rootPage, pagetree.BuildCatalog, nil); err != nil {
		return fmt.Errorf("walk catalog: %w", err)
	}

	tables := pt.Tables()
	if out.json {
		return out.JSON(tables)
	}

	out.Info("\nCatalog: %d table(s)\n", len(tables))
	for _, td := range tables {
		out.Info("  table %q (fdp=%d): %d column(s), %d index(es)",
			td.Table.Identifier, td.Table.FDPObjectID, len(td.Columns), len(td.Indexes))
		if td.LongValue != nil {
			out.Info(", long-value %q", td.LongValue.Identifier)
		}
		out.Info("\n")
		for _, c := range td.Columns {
			out.Info("    column %q\n", c.Identifier)
		}
		for _, ix := range td.Indexes {
			out.Info("    index %q\n", ix.Identifier)
		}
	}
	return nil
}
