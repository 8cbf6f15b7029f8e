package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var homesCSV = filepath.Join("..", "..", "testdata", "homes.csv")

func TestDescribe_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewDescribeCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{homesCSV})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "sales (20 rows)")
	assert.Contains(t, out, "bathrooms")
	assert.Contains(t, out, "real")
	assert.Contains(t, out, "date")
}

func TestDescribe_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewDescribeCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{homesCSV})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "sales", data["table"])
	assert.Equal(t, float64(20), data["rows"])
	assert.Len(t, data["columns"], 10)
}

func TestDescribe_TableOverride(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewDescribeCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--table", "homes", homesCSV})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "homes (20 rows)")
}

func TestDescribe_MissingDataset(t *testing.T) {
	cmd := NewDescribeCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"missing.csv"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
