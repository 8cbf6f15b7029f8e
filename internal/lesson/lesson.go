package lesson

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// validLessonName matches lesson names: lowercase slug with hyphens.
var validLessonName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Lesson is one tutorial step: explanatory prose plus a single query.
type Lesson struct {
	// Name uniquely identifies this lesson (lowercase slug).
	Name string `yaml:"name"`

	// Title is the human heading shown above the lesson.
	Title string `yaml:"title"`

	// Prose explains the syntax the query demonstrates.
	Prose string `yaml:"prose,omitempty"`

	// Query is the SQL to execute against the session.
	Query string `yaml:"query"`

	// Expect optionally constrains the result. If nil, the lesson only
	// has to execute without error.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect constrains a lesson's result relation.
type Expect struct {
	// Columns, if set, must equal the result's column names in order.
	Columns []string `yaml:"columns,omitempty"`

	// RowCount, if set, must equal the result's row count.
	RowCount *int `yaml:"row_count,omitempty"`

	// Rows, if set, must match the leading result rows value for
	// value. Numeric values compare numerically (YAML's int vs the
	// engine's int64/float64 must not matter to lesson authors).
	Rows [][]any `yaml:"rows,omitempty"`
}

// Load reads and validates a single lesson file.
func Load(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson: %w", err)
	}

	var l Lesson
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse lesson %s: %w", path, err)
	}
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("lesson %s: %w", path, err)
	}
	return &l, nil
}

// LoadDir loads every .yaml lesson in a directory, ordered by file
// name. Lesson authors use numeric prefixes (01_select.yaml, ...) to
// fix the tutorial order.
func LoadDir(dir string) ([]*Lesson, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan lessons: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no lesson files found in %s", dir)
	}
	sort.Strings(paths)

	lessons := make([]*Lesson, 0, len(paths))
	seen := make(map[string]string)
	for _, path := range paths {
		l, err := Load(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[l.Name]; dup {
			return nil, fmt.Errorf("lesson %s: name %q already used by %s", path, l.Name, prev)
		}
		seen[l.Name] = path
		lessons = append(lessons, l)
	}
	return lessons, nil
}

// validate checks the structural rules for a lesson.
func (l *Lesson) validate() error {
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !validLessonName.MatchString(l.Name) {
		return fmt.Errorf("invalid name %q: must be a lowercase slug", l.Name)
	}
	if l.Title == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(l.Query) == "" {
		return fmt.Errorf("query is required")
	}
	if l.Expect != nil && l.Expect.RowCount != nil && *l.Expect.RowCount < 0 {
		return fmt.Errorf("row_count must not be negative")
	}
	return nil
}
