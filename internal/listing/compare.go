package listing

import (
	"cmp"
	"strings"

	"github.com/rshade/collegelist/internal/college"
)

// Compare orders a and b by field and returns -1, 0 or +1.
//
// rank and userReviews compare numerically. fees, placement and ranking
// compare by their stripped digit strings using mode. Use Comparator to sort
// a whole column.
func Compare(a, b college.Record, field Field, mode NumericTextMode) int {
	switch field {
	case FieldRank:
		return cmp.Compare(a.Rank, b.Rank)
	case FieldUserReviews:
		return cmp.Compare(a.UserReviews, b.UserReviews)
	case FieldFees, FieldPlacement, FieldRanking:
		get := numericTextField(field)
		return CompareNumericText(get(a), get(b), mode)
	default:
		return 0
	}
}

// Comparator returns the ordering used to sort records by field. A
// numeric-as-text column compares by value only when every record holds a
// number in it; otherwise all pairs compare by digit strings, so the order is
// the same rule for the whole column.
func Comparator(records []college.Record, field Field, mode NumericTextMode) func(a, b college.Record) int {
	if get := numericTextField(field); get != nil && allNumbers(records, get) {
		return func(a, b college.Record) int {
			return cmp.Compare(get(a).Number, get(b).Number)
		}
	}
	return func(a, b college.Record) int {
		return Compare(a, b, field, mode)
	}
}

// CompareNumericText compares two numeric-as-text values by their digit
// strings.
func CompareNumericText(a, b college.NumericText, mode NumericTextMode) int {
	if mode == NumericTextNumeric {
		return compareMagnitude(a.Digits, b.Digits)
	}
	return strings.Compare(a.Digits, b.Digits)
}

// numericTextField returns the accessor for a numeric-as-text field, or nil.
func numericTextField(field Field) func(college.Record) college.NumericText {
	switch field {
	case FieldFees:
		return func(r college.Record) college.NumericText { return r.Fees }
	case FieldPlacement:
		return func(r college.Record) college.NumericText { return r.Placement }
	case FieldRanking:
		return func(r college.Record) college.NumericText { return r.Ranking }
	default:
		return nil
	}
}

func allNumbers(records []college.Record, get func(college.Record) college.NumericText) bool {
	if len(records) == 0 {
		return false
	}
	for _, r := range records {
		if !get(r).FromNumber {
			return false
		}
	}
	return true
}

// compareMagnitude compares unsigned decimal digit strings of any length.
// An empty string counts as zero.
func compareMagnitude(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
