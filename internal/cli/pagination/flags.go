package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/collegelist/internal/listing"
)

// Defaults and limits for list parameters.
const (
	DefaultReveal    = 0
	MaxReveal        = 10000
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidReveal     = errors.New("reveal must be between 0 and 10000")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'fees:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrRevealWithAll     = errors.New("--reveal and --all are mutually exclusive")
)

// ListParams holds the list command flags.
type ListParams struct {
	// Filter is the case-insensitive college name filter.
	Filter string

	// Sort is the raw sort expression, e.g. "fees:desc". Empty means load order.
	Sort string

	// Reveal is the number of additional batches to reveal after the first.
	Reveal int

	// All reveals every row.
	All bool
}

// NewListParams creates ListParams with default values.
func NewListParams() *ListParams {
	return &ListParams{Reveal: DefaultReveal}
}

// AddFlags registers the list flags on cmd.
func (p *ListParams) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.Filter, "filter", "", "case-insensitive substring filter on college name")
	cmd.Flags().StringVar(&p.Sort, "sort", "",
		"sort column and order: rank, fees, placement, userReviews, ranking (e.g. 'fees:desc')")
	cmd.Flags().IntVar(&p.Reveal, "reveal", DefaultReveal, "number of additional batches to reveal")
	cmd.Flags().BoolVar(&p.All, "all", false, "reveal every row")
}

// Validate checks the parameters (value receiver).
func (p ListParams) Validate() error {
	if p.Reveal < 0 || p.Reveal > MaxReveal {
		return fmt.Errorf("%w: got %d", ErrInvalidReveal, p.Reveal)
	}
	if p.All && p.Reveal > 0 {
		return ErrRevealWithAll
	}
	if p.Sort != "" {
		if _, _, err := ParseSort(p.Sort); err != nil {
			return err
		}
	}
	return nil
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses "field" or "field:order" into a sortable field and a
// direction. The order defaults to ascending.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field listing.Field, dir listing.Direction, err error) {
	parts := strings.Split(sortStr, ":")
	order := DefaultSortOrder
	switch len(parts) {
	case 1:
	case sortPartsMax:
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return listing.FieldNone, listing.Ascending, fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return listing.FieldNone, listing.Ascending, ErrEmptySortField
	}

	field, err = listing.ParseField(name)
	if err != nil {
		return listing.FieldNone, listing.Ascending, err
	}

	switch order {
	case SortOrderAsc:
		dir = listing.Ascending
	case SortOrderDesc:
		dir = listing.Descending
	default:
		return listing.FieldNone, listing.Ascending, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, dir, nil
}
