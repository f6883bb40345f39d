package college

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"id": 1, "rank": 1, "collegeName": "Alpha Institute", "fees": "₹9,000", "placement": "₹1,00,000", "userReviews": 8.1, "ranking": "#3", "featured": true},
  {"id": 2, "rank": 2, "collegeName": "Beta College", "fees": "₹10,000", "placement": "₹90,000", "userReviews": 7.2, "ranking": 4}
]`

const sampleYAML = `version: 1.2.0
colleges:
  - id: a
    rank: 1
    collegeName: Gamma University
    fees: "₹50,000"
    ranking: 2
  - id: b
    rank: 2
    collegeName: Delta Institute
    fees: "₹5,000"
    ranking: "#1"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	records, err := Default()
	require.NoError(t, err)
	assert.Len(t, records, 25)
	assert.Equal(t, ID("1"), records[0].ID)
	assert.NotEmpty(t, records[0].Fees.Digits)
}

func TestDecode_JSONArray(t *testing.T) {
	records, err := Decode([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Alpha Institute", records[0].Name)
	assert.Equal(t, "9000", records[0].Fees.Digits)
	assert.True(t, records[0].Featured)
	assert.True(t, records[1].Ranking.FromNumber)
}

func TestDecode_JSONEnvelope(t *testing.T) {
	doc := `{"version": "1.0.0", "colleges": [{"id": "x", "rank": 1, "collegeName": "X"}]}`
	records, err := Decode([]byte(doc), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDecode_YAMLEnvelope(t *testing.T) {
	records, err := Decode([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ID("a"), records[0].ID)
	assert.True(t, records[0].Ranking.FromNumber)
	assert.False(t, records[1].Ranking.FromNumber)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  Format
		wantErr error
	}{
		{"empty json", "   ", FormatJSON, ErrInvalidDataset},
		{"malformed json", "[{", FormatJSON, ErrInvalidDataset},
		{"missing id", `[{"rank": 1, "collegeName": "A"}]`, FormatJSON, ErrInvalidDataset},
		{"missing name", `[{"id": 1, "rank": 1}]`, FormatJSON, ErrInvalidDataset},
		{"missing rank", `[{"id": 1, "collegeName": "A"}]`, FormatJSON, ErrInvalidDataset},
		{"zero rank", `[{"id": 1, "rank": 0, "collegeName": "A"}]`, FormatJSON, ErrInvalidDataset},
		{"negative rank", `[{"id": 1, "rank": -3, "collegeName": "A"}]`, FormatJSON, ErrInvalidDataset},
		{
			"duplicate id",
			`[{"id": 1, "rank": 1, "collegeName": "A"}, {"id": "1", "rank": 2, "collegeName": "B"}]`,
			FormatJSON, ErrDuplicateID,
		},
		{"future version", `{"version": "2.0.0", "colleges": []}`, FormatJSON, ErrUnsupportedVersion},
		{"bad version", `{"version": "one", "colleges": []}`, FormatJSON, ErrUnsupportedVersion},
		{"yaml scalar root", "hello", FormatYAML, ErrInvalidDataset},
		{"empty yaml", "", FormatYAML, ErrInvalidDataset},
		{"unknown format", "[]", Format("csv"), ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/colleges.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("colleges.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFromPath("colleges.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("no paths uses bundled dataset", func(t *testing.T) {
		records, err := LoadFiles(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, records, 25)
	})

	t.Run("concatenates in argument order", func(t *testing.T) {
		jsonPath := writeFile(t, "a.json", sampleJSON)
		yamlPath := writeFile(t, "b.yaml", sampleYAML)

		records, err := LoadFiles(ctx, []string{yamlPath, jsonPath})
		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, ID("a"), records[0].ID)
		assert.Equal(t, ID("1"), records[2].ID)
	})

	t.Run("duplicate ids across files", func(t *testing.T) {
		p1 := writeFile(t, "a.json", sampleJSON)
		p2 := writeFile(t, "b.json", sampleJSON)

		_, err := LoadFiles(ctx, []string{p1, p2})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFiles(ctx, []string{filepath.Join(t.TempDir(), "nope.json")})
		assert.Error(t, err)
	})
}
