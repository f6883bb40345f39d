package pagination

import (
	"github.com/rshade/collegelist/internal/listing"
)

// RevealMeta describes the pagination and sort state behind a set of rows.
type RevealMeta struct {
	Visible   int    `json:"visible"              yaml:"visible"`
	Revealed  int    `json:"revealed"             yaml:"revealed"`
	Total     int    `json:"total"                yaml:"total"`
	BatchSize int    `json:"batch_size"           yaml:"batch_size"`
	Exhausted bool   `json:"exhausted"            yaml:"exhausted"`
	Filter    string `json:"filter,omitempty"     yaml:"filter,omitempty"`
	SortField string `json:"sort_field,omitempty" yaml:"sort_field,omitempty"`
	SortOrder string `json:"sort_order,omitempty" yaml:"sort_order,omitempty"`
}

// NewRevealMeta captures the metadata of p given the rows it produced.
func NewRevealMeta(p *listing.Pipeline, visible int) RevealMeta {
	meta := RevealMeta{
		Visible:   visible,
		Revealed:  p.Revealed(),
		Total:     p.Total(),
		BatchSize: p.BatchSize(),
		Exhausted: p.Exhausted(),
		Filter:    p.FilterText(),
	}
	if s := p.Sort(); s.Active() {
		meta.SortField = s.Field.String()
		meta.SortOrder = s.Direction.String()
	}
	return meta
}

// HasMore reports whether further rows could be revealed.
func (m RevealMeta) HasMore() bool {
	return !m.Exhausted
}
