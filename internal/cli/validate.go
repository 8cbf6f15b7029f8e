package cli

import (
	"github.com/spf13/cobra"

	"github.com/tablelab/sqltour/internal/dataset"
	"github.com/tablelab/sqltour/internal/lesson"
	"github.com/tablelab/sqltour/internal/schema"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Lessons int      `json:"lessons"`
	Errors  []string `json:"errors,omitempty"`
}

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Data   string
	Table  string
	Schema string
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <lessons-dir>",
		Short: "Validate lesson files without running them",
		Long: `Validate the lesson files in a directory: YAML shape, unique names,
non-empty queries. With --data, the dataset is loaded too; with
--schema, the loaded dataset is checked against a CUE contract.

Example:
  sqltour validate lessons
  sqltour validate --data homes.csv --schema testdata/sales.cue lessons`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "also load and check this dataset CSV")
	cmd.Flags().StringVar(&opts.Table, "table", DefaultTable, "relation name for the loaded dataset")
	cmd.Flags().StringVar(&opts.Schema, "schema", "", "CUE contract to check the dataset against (requires --data)")

	return cmd
}

func runValidate(opts *ValidateOptions, lessonsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Schema != "" && opts.Data == "" {
		return NewExitError(ExitCommandError, "--schema requires --data")
	}

	result := ValidationResult{Valid: true}

	lessons, err := lesson.LoadDir(lessonsDir)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	} else {
		result.Lessons = len(lessons)
		formatter.VerboseLog("loaded %d lesson(s) from %s", len(lessons), lessonsDir)
	}

	if opts.Data != "" {
		rel, err := dataset.Load(opts.Data, opts.Table)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		} else if opts.Schema != "" {
			contract, err := schema.Compile(opts.Schema)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to compile schema contract", err)
			}
			for _, checkErr := range contract.Check(rel) {
				result.Valid = false
				result.Errors = append(result.Errors, checkErr.Error())
			}
		}
	}

	if !result.Valid {
		if opts.Format == "json" {
			if err := formatter.Error("E_VALIDATE", "validation failed", result.Errors); err != nil {
				return err
			}
		} else {
			for _, msg := range result.Errors {
				if err := formatter.Error("E_VALIDATE", msg, nil); err != nil {
					return err
				}
			}
		}
		return NewExitError(ExitFailure, "validation failed")
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success("✓ All lessons valid")
}
