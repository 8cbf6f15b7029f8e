package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablelab/sqltour/internal/dataset"
	"github.com/tablelab/sqltour/internal/relation"
)

// DescribeResult holds the inferred shape of a loaded dataset.
type DescribeResult struct {
	Table   string          `json:"table"`
	Rows    int             `json:"rows"`
	Columns relation.Schema `json:"columns"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "describe <data.csv>",
		Short: "Show the inferred schema of a dataset",
		Long: `Load a CSV dataset and print the column schema inferred from it.

Column types are inferred per column: integer if every non-empty cell
parses as an integer, real if every cell parses as a number, text
otherwise. Empty cells load as NULL.

Example:
  sqltour describe testdata/homes.csv
  sqltour describe --format json sales_2015.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args[0], table, cmd)
		},
	}

	cmd.Flags().StringVar(&table, "table", DefaultTable, "relation name for the loaded dataset")

	return cmd
}

func runDescribe(opts *RootOptions, path, table string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rel, err := dataset.Load(path, table)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}
	formatter.VerboseLog("loaded %d rows from %s", rel.NumRows(), path)

	result := DescribeResult{Table: rel.Name, Rows: rel.NumRows(), Columns: rel.Schema}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s (%d rows)\n", result.Table, result.Rows)
	for _, col := range result.Columns {
		fmt.Fprintf(&buf, "  %-16s %s\n", col.Name, col.Type)
	}
	fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return nil
}
