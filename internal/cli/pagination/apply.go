package pagination

import (
	"github.com/rshade/collegelist/internal/listing"
)

// Apply replays params on p in the order a user would produce them: sort
// first, then scroll, then type the filter. It returns the number of
// RequestMore calls that revealed rows.
func Apply(p *listing.Pipeline, params ListParams) (int, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}

	if params.Sort != "" {
		field, dir, err := ParseSort(params.Sort)
		if err != nil {
			return 0, err
		}
		if err = p.SortBy(field, dir); err != nil {
			return 0, err
		}
	}

	revealed := 0
	switch {
	case params.All:
		for p.RequestMore() {
			revealed++
		}
	default:
		for n := 0; n < params.Reveal; n++ {
			if !p.RequestMore() {
				break
			}
			revealed++
		}
	}

	p.SetFilterText(params.Filter)
	return revealed, nil
}
