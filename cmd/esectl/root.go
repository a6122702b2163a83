// Command esectl is a small demo CLI over the esedb library: open an ESE
// database file, build its catalog, and dump rows for a table selected by
// its FDP object id. It
// exercises the library end to end and is not part of the page-tree
// engine itself, which stays usable as a plain library with no CLI
// dependency.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// report gates esectl's own output (not diag.Sink, which carries
// traversal-level observations) on the --verbose/--quiet/--json flags
// every subcommand shares.
type report struct {
	verbose bool
	quiet   bool
	json    bool
}

var out report

var rootCmd = &cobra.Command{
	Use:   "esectl",
	Short: "Inspect ESE (Extensible Storage Engine) database files",
	Long: `esectl is a read-only inspection tool for ESE database files
(the on-disk format used by Exchange, Active Directory, Windows Search,
and related jet-blue stores). It walks the page tree to build a table
catalog and to dump decoded rows, without ever writing to the file.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&out.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&out.quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&out.json, "json", false, "Output in JSON format")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Info writes a normal-priority line, suppressed by --quiet.
func (r report) Info(format string, args ...any) {
	if !r.quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// Verbose writes a line that only appears under --verbose, and never
// under --quiet even if both are set.
func (r report) Verbose(format string, args ...any) {
	if r.verbose && !r.quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// JSON encodes v as indented JSON to stdout, ignoring --quiet: an explicit
// --json request is itself the output, not incidental chatter.
func (r report) JSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
