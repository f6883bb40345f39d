package pagination

import (
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/collegelist/internal/college"
	"github.com/rshade/collegelist/internal/listing"
)

func newTestPipeline(t *testing.T, n int) *listing.Pipeline {
	t.Helper()
	records := make([]college.Record, n)
	for i := range records {
		records[i] = college.Record{
			ID:   college.ID(fmt.Sprint(i + 1)),
			Rank: i + 1,
			Name: fmt.Sprintf("College %02d", i+1),
			Fees: college.NewNumericText(fmt.Sprintf("₹%d,000", 50+i)),
		}
	}
	p, err := listing.New(records, listing.DefaultOptions())
	require.NoError(t, err)
	return p
}

func TestListParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  ListParams
		wantErr error
	}{
		{name: "valid default", params: *NewListParams()},
		{name: "valid sort", params: ListParams{Sort: "fees:desc", Reveal: 2}},
		{name: "negative reveal", params: ListParams{Reveal: -1}, wantErr: ErrInvalidReveal},
		{name: "huge reveal", params: ListParams{Reveal: MaxReveal + 1}, wantErr: ErrInvalidReveal},
		{name: "reveal with all", params: ListParams{Reveal: 1, All: true}, wantErr: ErrRevealWithAll},
		{name: "bad sort field", params: ListParams{Sort: "name"}, wantErr: listing.ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		sortStr   string
		wantField listing.Field
		wantDir   listing.Direction
		wantErr   error
	}{
		{name: "field only", sortStr: "fees", wantField: listing.FieldFees, wantDir: listing.Ascending},
		{name: "field and asc", sortStr: "rank:asc", wantField: listing.FieldRank, wantDir: listing.Ascending},
		{name: "field and desc", sortStr: "userReviews:DESC", wantField: listing.FieldUserReviews, wantDir: listing.Descending},
		{name: "invalid format", sortStr: "fees:asc:extra", wantErr: ErrInvalidSortFormat},
		{name: "empty field", sortStr: ":asc", wantErr: ErrEmptySortField},
		{name: "invalid order", sortStr: "fees:up", wantErr: ErrInvalidSortOrder},
		{name: "unknown field", sortStr: "location", wantErr: listing.ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, dir, err := ParseSort(tt.sortStr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestListParams_AddFlags(t *testing.T) {
	params := NewListParams()
	cmd := &cobra.Command{Use: "list", RunE: func(*cobra.Command, []string) error { return nil }}
	params.AddFlags(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"--filter", "IIT", "--sort", "fees:desc", "--reveal", "2"}))
	assert.Equal(t, "IIT", params.Filter)
	assert.Equal(t, "fees:desc", params.Sort)
	assert.Equal(t, 2, params.Reveal)
	assert.False(t, params.All)
}

func TestApply(t *testing.T) {
	t.Run("reveal batches", func(t *testing.T) {
		p := newTestPipeline(t, 25)
		n, err := Apply(p, ListParams{Reveal: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 20, p.Revealed())
	})

	t.Run("reveal stops at exhaustion", func(t *testing.T) {
		p := newTestPipeline(t, 25)
		n, err := Apply(p, ListParams{Reveal: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.True(t, p.Exhausted())
	})

	t.Run("all", func(t *testing.T) {
		p := newTestPipeline(t, 33)
		n, err := Apply(p, ListParams{All: true})
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, 33, p.Revealed())
	})

	t.Run("sort then filter", func(t *testing.T) {
		p := newTestPipeline(t, 25)
		_, err := Apply(p, ListParams{Sort: "rank:desc", Filter: "College 2"})
		require.NoError(t, err)

		visible := p.Visible()
		require.Len(t, visible, 6)
		assert.Equal(t, "College 25", visible[0].Name)
		assert.Equal(t, "college 2", p.FilterText())
	})

	t.Run("invalid params leave pipeline untouched", func(t *testing.T) {
		p := newTestPipeline(t, 25)
		_, err := Apply(p, ListParams{Sort: "fees:sideways", Reveal: 1})
		require.Error(t, err)
		assert.Equal(t, 10, p.Revealed())
		assert.False(t, p.Sort().Active())
	})
}

func TestNewRevealMeta(t *testing.T) {
	p := newTestPipeline(t, 25)
	_, err := Apply(p, ListParams{Sort: "fees:desc", Reveal: 1, Filter: "college 1"})
	require.NoError(t, err)

	meta := NewRevealMeta(p, len(p.Visible()))
	assert.Equal(t, RevealMeta{
		Visible:   len(p.Visible()),
		Revealed:  20,
		Total:     25,
		BatchSize: 10,
		Exhausted: false,
		Filter:    "college 1",
		SortField: "fees",
		SortOrder: "desc",
	}, meta)
	assert.True(t, meta.HasMore())

	unsorted := NewRevealMeta(newTestPipeline(t, 5), 5)
	assert.Empty(t, unsorted.SortField)
	assert.False(t, unsorted.HasMore())
}
