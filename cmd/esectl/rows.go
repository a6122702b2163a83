package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmcdole/esedb/catalog"
	"github.com/mmcdole/esedb/errs"
	"github.com/mmcdole/esedb/page"
	"github.com/mmcdole/esedb/pagetree"
)

func init() {
	rootCmd.AddCommand(newRowsCmd())
}

func newRowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rows <database> <catalog-root-page> <table-root-page> <table-fdp-object-id>",
		Short: "Build the catalog, then dump decoded rows for one table",
		Long: `The rows command first walks catalog-root-page in BuildCatalog
mode to assemble the table's TableDefinition, then walks table-root-page in
ReadRows mode against that bound schema. table-fdp-object-id selects which
assembled TableDefinition to bind, since this engine treats the catalog
record's own payload (which would otherwise name the table's data root
page) as opaque.

Example:
  esectl rows catalog.edb 4 12 2`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogRoot, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("catalog-root-page: %w", err)
			}
			tableRoot, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("table-root-page: %w", err)
			}
			fdpObjectID, err := strconv.ParseUint(args[3], 10, 32)
			if err != nil {
				return fmt.Errorf("table-fdp-object-id: %w", err)
			}
			return runRows(args[0], uint32(catalogRoot), uint32(tableRoot), uint32(fdpObjectID))
		},
	}
}

func runRows(path string, catalogRoot, tableRoot, fdpObjectID uint32) error {
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

	ctx := context.Background()
	out.Verbose("building catalog from root page %d\n", catalogRoot)
	if err := pt.Read(ctx, catalogRoot, pagetree.BuildCatalog, nil); err != nil {
		return fmt.Errorf("walk catalog: %w", err)
	}

	schema, ok := pt.LookupTableByIdentifier(fdpObjectID)
	if !ok {
		return errs.New(errs.GetFailure, "no table with FDP object id %d in catalog", fdpObjectID)
	}

	out.Verbose("reading rows from table root page %d\n", tableRoot)
	if err := pt.Read(ctx, tableRoot, pagetree.ReadRows, schema); err != nil {
		return fmt.Errorf("walk rows: %w", err)
	}

	rows := pt.Rows()
	if out.json {
		return out.JSON(rows)
	}

	out.Info("\n%d row(s) for table %q\n", len(rows), schema.Table.Identifier)
	for i, r := range rows {
		out.Info("  [%d] %d byte(s)\n", i, len(r.Payload))
	}
	return nil
}
