package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/collegelist/internal/college"
)

func TestCompareNumericText(t *testing.T) {
	text := college.NewNumericText
	num := college.NewNumericValue

	tests := []struct {
		name string
		a, b college.NumericText
		mode NumericTextMode
		want int
	}{
		{"lexical shorter digits sort after", text("₹9,000"), text("₹10,000"), NumericTextLexical, 1},
		{"numeric by magnitude", text("₹9,000"), text("₹10,000"), NumericTextNumeric, -1},
		{"equal digits different formatting", text("₹1,00,000"), text("100000"), NumericTextLexical, 0},
		{"numeric leading zeros", text("0009"), text("9"), NumericTextNumeric, 0},
		{"numeric empty is zero", text("n/a"), text("1"), NumericTextNumeric, -1},
		{"numbers alone compare by digits", num(9), num(10), NumericTextLexical, 1},
		{"mixed compares by digits", num(9), text("#10"), NumericTextLexical, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareNumericText(tt.a, tt.b, tt.mode))
		})
	}
}

func TestComparator_NumericColumn(t *testing.T) {
	records := []college.Record{
		{ID: "a", Ranking: college.NewNumericValue(9)},
		{ID: "b", Ranking: college.NewNumericValue(10)},
	}

	byRanking := Comparator(records, FieldRanking, NumericTextLexical)
	assert.Equal(t, -1, byRanking(records[0], records[1]), "all-number column compares by value")
}

func TestComparator_MixedColumnIsTransitive(t *testing.T) {
	a := college.Record{ID: "a", Ranking: college.NewNumericValue(5)}
	b := college.Record{ID: "b", Ranking: college.NewNumericText("#3 in NIRF")}
	c := college.Record{ID: "c", Ranking: college.NewNumericValue(10)}
	records := []college.Record{a, b, c}

	for _, mode := range []NumericTextMode{NumericTextLexical, NumericTextNumeric} {
		t.Run(string(mode), func(t *testing.T) {
			byRanking := Comparator(records, FieldRanking, mode)
			for _, x := range records {
				for _, y := range records {
					for _, z := range records {
						if byRanking(x, y) < 0 && byRanking(y, z) < 0 {
							assert.Negative(t, byRanking(x, z), "%s < %s < %s", x.ID, y.ID, z.ID)
						}
					}
				}
			}
		})
	}
}

func TestCompare_Fields(t *testing.T) {
	a := college.Record{Rank: 2, UserReviews: 7.5, Placement: college.NewNumericText("₹5,00,000")}
	b := college.Record{Rank: 10, UserReviews: 8.0, Placement: college.NewNumericText("₹6,00,000")}

	assert.Equal(t, -1, Compare(a, b, FieldRank, NumericTextLexical))
	assert.Equal(t, -1, Compare(a, b, FieldUserReviews, NumericTextLexical))
	assert.Equal(t, -1, Compare(a, b, FieldPlacement, NumericTextLexical))
	assert.Equal(t, 0, Compare(a, b, FieldNone, NumericTextLexical))
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"rank", FieldRank},
		{" Fees ", FieldFees},
		{"PLACEMENT", FieldPlacement},
		{"userReviews", FieldUserReviews},
		{"reviews", FieldUserReviews},
		{"ranking", FieldRanking},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseField(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseField("name")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFieldAndDirectionStrings(t *testing.T) {
	assert.Equal(t, "userReviews", FieldUserReviews.String())
	assert.Equal(t, "none", FieldNone.String())
	assert.Equal(t, "asc", Ascending.String())
	assert.Equal(t, "desc", Descending.String())
	assert.Equal(t, Ascending, Descending.Flip())
	assert.Equal(t, "exhausted", Exhausted.String())
}

func TestParseOptions(t *testing.T) {
	p, err := ParseSortPolicy("Standard")
	require.NoError(t, err)
	assert.Equal(t, PolicyStandard, p)

	_, err = ParseSortPolicy("")
	assert.ErrorIs(t, err, ErrInvalidSortPolicy)

	m, err := ParseNumericTextMode("numeric")
	require.NoError(t, err)
	assert.Equal(t, NumericTextNumeric, m)

	_, err = ParseNumericTextMode("x")
	assert.ErrorIs(t, err, ErrInvalidNumericMode)
}
