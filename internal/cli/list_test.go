package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/collegelist/internal/cli"
	"github.com/rshade/collegelist/internal/cli/pagination"
	"github.com/rshade/collegelist/internal/college"
	"github.com/rshade/collegelist/internal/config"
	"github.com/rshade/collegelist/internal/listing"
)

type listJSON struct {
	Meta     pagination.RevealMeta `json:"meta"`
	Colleges []college.Record      `json:"colleges"`
}

// setupCLITest isolates the config directory and global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList_DefaultTable(t *testing.T) {
	setupCLITest(t)

	out, _, err := run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "CD RANK")
	assert.Contains(t, out, "IIT Madras - Indian Institute of Technology [Featured]")
	assert.Contains(t, out, "₹2,09,550")
	assert.Contains(t, out, "#10")
	assert.NotContains(t, out, "VIT Vellore", "rank 11 is not revealed yet")
	assert.Contains(t, out, "Showing 10 of 10 revealed (25 total) · more available")
}

func TestList_AllExhausts(t *testing.T) {
	setupCLITest(t)

	out, _, err := run(t, "list", "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "Manipal Institute of Technology")
	assert.Contains(t, out, "Showing 25 of 25 revealed (25 total) · No more data")
}

func TestList_SortJSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := run(t, "list", "--sort", "rank:desc", "--output", "json")
	require.NoError(t, err)

	var got listJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Colleges, 10)
	assert.Equal(t, 25, got.Colleges[0].Rank, "sort runs before the batch is sliced")
	assert.Equal(t, 16, got.Colleges[9].Rank)
	assert.Equal(t, "rank", got.Meta.SortField)
	assert.Equal(t, "desc", got.Meta.SortOrder)
	assert.True(t, got.Meta.HasMore())
}

func TestList_FilterYAML(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name      string
		args      []string
		wantNames []string
	}{
		{
			name:      "first batch only",
			args:      []string{"list", "--filter", "NIT", "--output", "yaml"},
			wantNames: []string{"NIT Tiruchirappalli - National Institute of Technology"},
		},
		{
			name: "whole dataset",
			args: []string{"list", "--filter", "nit", "--all", "--output", "yaml"},
			wantNames: []string{
				"NIT Tiruchirappalli - National Institute of Technology",
				"NIT Karnataka - National Institute of Technology",
				"NIT Rourkela - National Institute of Technology",
				"NIT Warangal - National Institute of Technology",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)

			var got struct {
				Meta     pagination.RevealMeta `yaml:"meta"`
				Colleges []college.Record      `yaml:"colleges"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))

			names := make([]string, 0, len(got.Colleges))
			for _, c := range got.Colleges {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, "nit", got.Meta.Filter)
		})
	}
}

func TestList_Errors(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown sort field", []string{"list", "--sort", "name"}, listing.ErrUnknownField},
		{"bad sort order", []string{"list", "--sort", "fees:up"}, pagination.ErrInvalidSortOrder},
		{"reveal with all", []string{"list", "--reveal", "1", "--all"}, pagination.ErrRevealWithAll},
		{"negative reveal", []string{"list", "--reveal", "-1"}, pagination.ErrInvalidReveal},
		{"zero batch size", []string{"list", "--batch-size", "0"}, config.ErrInvalidConfig},
		{"missing dataset", []string{"list", "--dataset", "/nonexistent/colleges.json"}, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, _, err := run(t, "list", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestList_DatasetShardsAndBatchSize(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()

	north := filepath.Join(dir, "north.json")
	require.NoError(t, os.WriteFile(north, []byte(`[
  {"id": "n1", "rank": 2, "collegeName": "North Campus", "fees": "₹9,000", "ranking": 4},
  {"id": "n2", "rank": 1, "collegeName": "Hill College", "fees": "₹10,000", "ranking": 12}
]`), 0o600))
	south := filepath.Join(dir, "south.yaml")
	require.NoError(t, os.WriteFile(south, []byte(`version: "1.2.0"
colleges:
  - id: s1
    rank: 3
    collegeName: South Institute
    fees: "₹8,500"
    ranking: "#7 in State"
`), 0o600))

	out, _, err := run(t, "list", "--dataset", north, "--dataset", south,
		"--batch-size", "2", "--output", "json")
	require.NoError(t, err)

	var got listJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Colleges, 2)
	assert.Equal(t, college.ID("n1"), got.Colleges[0].ID, "shards keep argument order")
	assert.Equal(t, 3, got.Meta.Total)
	assert.Equal(t, 2, got.Meta.BatchSize)
}

func TestList_OutputFromConfig(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("output:\n  default_format: json\n"), 0o600))

	out, _, err := run(t, "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "config default_format applies")

	out, _, err = run(t, "list", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "CD RANK", "flag beats config file")
}

func TestList_EnvBatchSize(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvBatchSize, "5")

	out, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 5 of 5 revealed (25 total)")

	out, _, err = run(t, "list", "--batch-size", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 7 of 7 revealed (25 total)")
}

func TestListCmd_DefaultsWithoutRoot(t *testing.T) {
	setupCLITest(t)
	config.ResetGlobalConfigForTest()

	var stdout bytes.Buffer
	cmd := cli.NewListCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Showing 10 of 10 revealed (25 total)")
}
