package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmcdole/esedb/page"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <database>",
		Short: "Report basic metadata about an ESE database file",
		Long: `The info command opens an ESE database file and reports its
size and derived page count, without walking the page tree.

Example:
  esectl info catalog.edb
  esectl info catalog.edb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	out.Verbose("opening %s\n", path)

	src, err := page.Open(path, page.Options{})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	stat, statErr := os.Stat(path)

	if out.json {
		info := map[string]any{
			"path":       path,
			"page_count": src.PageCount(),
		}
		if statErr == nil {
			info["size_bytes"] = stat.Size()
		}
		return out.JSON(info)
	}

	out.Info("\nDatabase Information:\n")
	out.Info("  File: %s\n", path)
	if statErr == nil {
		out.Info("  Size: %d bytes\n", stat.Size())
	}
	out.Info("  Pages: %d\n", src.PageCount())
	return nil
}
