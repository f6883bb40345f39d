package listing

import (
	"errors"
	"fmt"
	"strings"
)

// Field identifies a sortable column.
type Field int

// Sortable fields.
const (
	FieldNone Field = iota
	FieldRank
	FieldFees
	FieldPlacement
	FieldUserReviews
	FieldRanking
)

// ErrUnknownField is returned for a field name that cannot be sorted on.
var ErrUnknownField = errors.New("unknown sort field")

//nolint:gochecknoglobals // Lookup tables.
var (
	fieldNames = map[Field]string{
		FieldRank:        "rank",
		FieldFees:        "fees",
		FieldPlacement:   "placement",
		FieldUserReviews: "userReviews",
		FieldRanking:     "ranking",
	}
	fieldsByName = map[string]Field{
		"rank":        FieldRank,
		"fees":        FieldFees,
		"placement":   FieldPlacement,
		"userreviews": FieldUserReviews,
		"reviews":     FieldUserReviews,
		"ranking":     FieldRanking,
	}
)

// SortableFields lists the sortable fields in column order.
func SortableFields() []Field {
	return []Field{FieldRank, FieldFees, FieldPlacement, FieldUserReviews, FieldRanking}
}

// String returns the canonical field name.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "none"
}

// ParseField resolves a field name case-insensitively.
func ParseField(name string) (Field, error) {
	if f, ok := fieldsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return FieldNone, fmt.Errorf("%w: %q (valid: rank, fees, placement, userReviews, ranking)", ErrUnknownField, name)
}

// Direction is a sort direction.
type Direction int

// Sort directions.
const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortPolicy decides the direction applied when a column is activated.
type SortPolicy string

// Sort policies.
const (
	// PolicyReference flips the stored direction on every activation, even when
	// switching to a new column. The first activation of any column therefore
	// sorts descending.
	PolicyReference SortPolicy = "reference"
	// PolicyStandard flips when the active column is activated again and
	// starts a newly activated column ascending.
	PolicyStandard SortPolicy = "standard"
)

// NumericTextMode decides how digit strings of text-valued numeric fields are
// compared.
type NumericTextMode string

// Numeric text modes.
const (
	// NumericTextLexical compares the stripped digit strings as strings, so
	// "10000" sorts before "9000".
	NumericTextLexical NumericTextMode = "lexical"
	// NumericTextNumeric compares the stripped digit strings by magnitude.
	NumericTextNumeric NumericTextMode = "numeric"
)

// Errors for invalid option values.
var (
	ErrInvalidBatchSize   = errors.New("batch size must be >= 1")
	ErrInvalidSortPolicy  = errors.New("sort policy must be 'reference' or 'standard'")
	ErrInvalidNumericMode = errors.New("numeric text mode must be 'lexical' or 'numeric'")
)

// ParseSortPolicy validates a policy name.
func ParseSortPolicy(s string) (SortPolicy, error) {
	switch p := SortPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyReference, PolicyStandard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortPolicy, s)
	}
}

// ParseNumericTextMode validates a mode name.
func ParseNumericTextMode(s string) (NumericTextMode, error) {
	switch m := NumericTextMode(strings.ToLower(strings.TrimSpace(s))); m {
	case NumericTextLexical, NumericTextNumeric:
		return m, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidNumericMode, s)
	}
}
