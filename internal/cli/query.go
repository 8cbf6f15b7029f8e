package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tablelab/sqltour/internal/render"
	"github.com/tablelab/sqltour/internal/runner"
)

// QueryResult is the JSON payload for an ad-hoc query.
type QueryResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "query <data.csv> <sql>",
		Short: "Run one query against a dataset",
		Long: `Load a CSV dataset and evaluate a single SQL query against it.

The dataset registers as the "sales" relation (override with --table).
When the dataset has an "id" column, the synthetic "agents" and
"offices" join tables are registered too.

Example:
  sqltour query testdata/homes.csv "SELECT COUNT(*) FROM sales"
  sqltour query testdata/homes.csv "SELECT s.id, a.agent FROM sales s INNER JOIN agents a ON a.home_id = s.id"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, args[0], args[1], table, cmd)
		},
	}

	cmd.Flags().StringVar(&table, "table", DefaultTable, "relation name for the loaded dataset")

	return cmd
}

func runQuery(opts *RootOptions, path, query, table string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	relations, err := loadRelations(path, table)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}
	formatter.VerboseLog("registered %d relation(s)", len(relations))

	result, err := runner.Execute(cmd.Context(), query, relations)
	if err != nil {
		var qe *runner.QueryError
		if errors.As(err, &qe) {
			// Query errors are the user's to inspect, not the CLI's to
			// explain: print the classified error and exit 1.
			if ferr := formatter.Error(string(qe.Code), qe.Message, nil); ferr != nil {
				return ferr
			}
			return NewExitError(ExitFailure, qe.Message)
		}
		return WrapExitError(ExitCommandError, "query failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(QueryResult{Columns: result.Schema.Names(), Rows: result.Rows})
	}
	return render.Table(cmd.OutOrStdout(), result)
}
