package cli

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablelab/sqltour/internal/lesson"
	"github.com/tablelab/sqltour/internal/relation"
	"github.com/tablelab/sqltour/internal/render"
	"github.com/tablelab/sqltour/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Data  string
	Table string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <lessons-dir>",
		Short: "Run tutorial lessons against a dataset",
		Long: `Run every lesson in a directory, in file-name order, against the
loaded dataset and its synthetic join tables.

Each lesson prints its prose, its query, and the result table. Lessons
with unmet expectations are reported and make the command exit 1; a
lesson whose query fails outright stops the run.

Example:
  sqltour run --data testdata/homes.csv lessons
  sqltour run --data homes.csv --format json lessons`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLessons(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "path to the dataset CSV (required)")
	cmd.Flags().StringVar(&opts.Table, "table", DefaultTable, "relation name for the loaded dataset")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runLessons(opts *RunOptions, lessonsDir string, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	lessons, err := lesson.LoadDir(lessonsDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load lessons", err)
	}
	slog.Debug("lessons loaded", "count", len(lessons))

	relations, err := loadRelations(opts.Data, opts.Table)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}

	sess, err := store.Open()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open session", err)
	}
	defer sess.Close()

	for _, rel := range sortedRelations(relations) {
		if err := sess.Register(cmd.Context(), rel); err != nil {
			return WrapExitError(ExitCommandError, "failed to register relation", err)
		}
		slog.Debug("relation registered", "name", rel.Name, "rows", rel.NumRows())
	}

	runner := lesson.NewRunner(sess)
	reports, err := runner.RunAll(cmd.Context(), lessons)
	if err != nil {
		return WrapExitError(ExitCommandError, "lesson query failed", err)
	}

	failed := 0
	for _, report := range reports {
		if !report.OK() {
			failed++
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(reports); err != nil {
			return err
		}
	} else {
		if err := printLessons(formatter, lessons, reports); err != nil {
			return err
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d lessons failed", failed, len(reports)))
	}
	return nil
}

// printLessons writes the text rendition of a tutorial run.
func printLessons(f *OutputFormatter, lessons []*lesson.Lesson, reports []*lesson.Report) error {
	w := f.Writer
	for i, report := range reports {
		l := lessons[i]
		fmt.Fprintf(w, "## %s\n\n", l.Title)
		if l.Prose != "" {
			fmt.Fprintln(w, l.Prose)
		}
		fmt.Fprintf(w, "    %s\n\n", strings.TrimSpace(l.Query))

		result := &relation.Relation{
			Name:   "result",
			Schema: columnsToSchema(report.Columns),
			Rows:   report.Rows,
		}
		if err := render.Table(w, result); err != nil {
			return err
		}

		for _, failure := range report.Failures {
			fmt.Fprintf(w, "FAIL %s: %s\n", report.Lesson, failure)
		}
		fmt.Fprintln(w)
	}

	failed := 0
	for _, report := range reports {
		if !report.OK() {
			failed++
		}
	}
	if failed == 0 {
		fmt.Fprintf(w, "ok: %d lessons\n", len(reports))
	} else {
		fmt.Fprintf(w, "FAIL: %d of %d lessons\n", failed, len(reports))
	}
	return nil
}

// columnsToSchema rebuilds a display-only schema from column names.
// Cell rendering switches on value kinds, so the declared type here
// only matters for display defaults.
func columnsToSchema(names []string) relation.Schema {
	schema := make(relation.Schema, len(names))
	for i, name := range names {
		schema[i] = relation.Column{Name: name, Type: relation.Text}
	}
	return schema
}

// sortedRelations returns relations in deterministic name order.
func sortedRelations(relations map[string]*relation.Relation) []*relation.Relation {
	names := make([]string, 0, len(relations))
	for name := range relations {
		names = append(names, name)
	}
	// Registration order affects nothing but logs; sort keeps the logs
	// stable.
	sort.Strings(names)
	out := make([]*relation.Relation, len(names))
	for i, name := range names {
		out[i] = relations[name]
	}
	return out
}
