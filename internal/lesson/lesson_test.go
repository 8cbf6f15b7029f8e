package lesson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLesson(t *testing.T, dir, file, content string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validLesson = `
name: filtering-rows
title: Filtering rows with WHERE
prose: |
  WHERE keeps only matching rows.
query: |
  SELECT id FROM sales WHERE bathrooms = 2
expect:
  columns: [id]
  row_count: 1
  rows:
    - [1]
`

func TestLoad_ValidLesson(t *testing.T) {
	path := writeLesson(t, t.TempDir(), "lesson.yaml", validLesson)

	l, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "filtering-rows", l.Name)
	assert.Equal(t, "Filtering rows with WHERE", l.Title)
	assert.Contains(t, l.Query, "SELECT id FROM sales")
	require.NotNil(t, l.Expect)
	assert.Equal(t, []string{"id"}, l.Expect.Columns)
	require.NotNil(t, l.Expect.RowCount)
	assert.Equal(t, 1, *l.Expect.RowCount)
	assert.Equal(t, [][]any{{1}}, l.Expect.Rows)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing name", "title: T\nquery: SELECT 1\n", "name is required"},
		{"bad slug", "name: Bad_Name\ntitle: T\nquery: SELECT 1\n", "lowercase slug"},
		{"missing title", "name: a-lesson\nquery: SELECT 1\n", "title is required"},
		{"missing query", "name: a-lesson\ntitle: T\n", "query is required"},
		{"blank query", "name: a-lesson\ntitle: T\nquery: \"  \"\n", "query is required"},
		{"negative row count", "name: a-lesson\ntitle: T\nquery: SELECT 1\nexpect: {row_count: -1}\n", "row_count"},
		{"bad yaml", "name: [\n", "parse lesson"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeLesson(t, t.TempDir(), "lesson.yaml", tc.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadDir_OrdersByFileName(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "02_second.yaml", "name: second\ntitle: Second\nquery: SELECT 2\n")
	writeLesson(t, dir, "01_first.yaml", "name: first\ntitle: First\nquery: SELECT 1\n")

	lessons, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "first", lessons[0].Name)
	assert.Equal(t, "second", lessons[1].Name)
}

func TestLoadDir_DuplicateNames(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "01.yaml", "name: dup\ntitle: A\nquery: SELECT 1\n")
	writeLesson(t, dir, "02.yaml", "name: dup\ntitle: B\nquery: SELECT 2\n")

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used")
}

func TestLoadDir_Empty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no lesson files")
}

func TestLoadDir_ShippedLessons(t *testing.T) {
	lessons, err := LoadDir(filepath.Join("..", "..", "lessons"))
	require.NoError(t, err)
	require.Len(t, lessons, 8)

	assert.Equal(t, "selecting-columns", lessons[0].Name)
	assert.Equal(t, "case-expression", lessons[7].Name)
	for _, l := range lessons {
		assert.NotEmpty(t, l.Prose, "lesson %s has no prose", l.Name)
		assert.NotNil(t, l.Expect, "lesson %s has no expectations", l.Name)
	}
}
