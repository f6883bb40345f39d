package listing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/collegelist/internal/college"
)

// DefaultBatchSize is the number of rows revealed per request.
const DefaultBatchSize = 10

// State is the pagination state.
type State int

// Pagination states. Exhausted is terminal.
const (
	LoadingMoreAvailable State = iota
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	if s == Exhausted {
		return "exhausted"
	}
	return "loading_more_available"
}

// Options configures a Pipeline.
type Options struct {
	BatchSize   int
	Policy      SortPolicy
	NumericText NumericTextMode
	// Logger receives debug events; nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the reference behaviour: batches of 10, the
// flip-on-every-click sort policy and lexical digit comparison.
func DefaultOptions() Options {
	return Options{
		BatchSize:   DefaultBatchSize,
		Policy:      PolicyReference,
		NumericText: NumericTextLexical,
	}
}

// Validate checks option values.
func (o Options) Validate() error {
	if o.BatchSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBatchSize, o.BatchSize)
	}
	if _, err := ParseSortPolicy(string(o.Policy)); err != nil {
		return err
	}
	if _, err := ParseNumericTextMode(string(o.NumericText)); err != nil {
		return err
	}
	return nil
}

// SortIndicator describes the active sort column for renderers.
type SortIndicator struct {
	Field     Field
	Direction Direction
}

// Active reports whether a column sort is in effect.
func (s SortIndicator) Active() bool {
	return s.Field != FieldNone
}

// Pipeline owns the listing state. It is not safe for concurrent use; the UI
// event loop is expected to be its only caller.
type Pipeline struct {
	records []college.Record // immutable, load order
	sorted  []college.Record // records under the current sort

	opts      Options
	filter    string
	sortField Field
	direction Direction
	revealed  int
	exhausted bool

	logger zerolog.Logger
}

// New creates a pipeline over records. The slice is copied; callers may not
// observe later mutation through it. Policy and NumericText are matched
// case-insensitively.
func New(records []college.Record, opts Options) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.Policy, _ = ParseSortPolicy(string(opts.Policy))
	opts.NumericText, _ = ParseNumericTextMode(string(opts.NumericText))

	base := zerolog.Nop()
	if opts.Logger != nil {
		base = *opts.Logger
	}

	owned := slices.Clone(records)
	p := &Pipeline{
		records:   owned,
		sorted:    owned,
		opts:      opts,
		direction: Ascending,
		revealed:  min(opts.BatchSize, len(owned)),
		logger:    base.With().Str("component", "listing").Logger(),
	}
	p.exhausted = p.revealed >= len(owned)
	return p, nil
}

// SetFilterText stores the lower-cased filter. Sort and the revealed count are
// left as they are.
func (p *Pipeline) SetFilterText(text string) {
	p.filter = strings.ToLower(text)
	p.logger.Debug().Str("filter", p.filter).Msg("filter changed")
}

// RequestMore reveals the next batch. Once every row is revealed the pipeline
// is exhausted and further calls change nothing. It reports whether new rows
// were revealed.
func (p *Pipeline) RequestMore() bool {
	if p.revealed >= len(p.records) {
		p.exhausted = true
		return false
	}

	p.revealed = min(p.revealed+p.opts.BatchSize, len(p.records))
	if p.revealed >= len(p.records) {
		p.exhausted = true
	}
	p.logger.Debug().
		Int("revealed", p.revealed).
		Int("total", len(p.records)).
		Bool("exhausted", p.exhausted).
		Msg("revealed more rows")
	return true
}

// SetSort activates a column as a header click would, choosing the direction
// according to the configured policy.
func (p *Pipeline) SetSort(field Field) error {
	if _, ok := fieldNames[field]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownField, field)
	}

	dir := p.direction.Flip()
	if p.opts.Policy == PolicyStandard && field != p.sortField {
		dir = Ascending
	}
	p.applySort(field, dir)
	return nil
}

// SortBy sets the column and direction explicitly.
func (p *Pipeline) SortBy(field Field, dir Direction) error {
	if _, ok := fieldNames[field]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownField, field)
	}
	p.applySort(field, dir)
	return nil
}

func (p *Pipeline) applySort(field Field, dir Direction) {
	p.sortField = field
	p.direction = dir

	sorted := slices.Clone(p.records)
	compare := Comparator(p.records, field, p.opts.NumericText)
	slices.SortStableFunc(sorted, func(a, b college.Record) int {
		c := compare(a, b)
		if dir == Descending {
			return -c
		}
		return c
	})
	p.sorted = sorted

	p.logger.Debug().
		Str("field", field.String()).
		Str("direction", dir.String()).
		Msg("sort applied")
}

// Visible returns the rows to render: the sorted dataset cut to the revealed
// count, then filtered by name. The result is a fresh slice.
func (p *Pipeline) Visible() []college.Record {
	window := p.sorted[:p.revealed]
	if p.filter == "" {
		return slices.Clone(window)
	}

	out := make([]college.Record, 0, len(window))
	for _, r := range window {
		if strings.Contains(strings.ToLower(r.Name), p.filter) {
			out = append(out, r)
		}
	}
	return out
}

// FilterText returns the current (lower-cased) filter.
func (p *Pipeline) FilterText() string { return p.filter }

// Revealed returns the number of rows exposed by pagination.
func (p *Pipeline) Revealed() int { return p.revealed }

// Total returns the size of the full dataset.
func (p *Pipeline) Total() int { return len(p.records) }

// BatchSize returns the reveal increment.
func (p *Pipeline) BatchSize() int { return p.opts.BatchSize }

// Exhausted reports whether every row has been revealed.
func (p *Pipeline) Exhausted() bool { return p.exhausted }

// State returns the pagination state.
func (p *Pipeline) State() State {
	if p.exhausted {
		return Exhausted
	}
	return LoadingMoreAvailable
}

// Sort returns the active sort column and direction.
func (p *Pipeline) Sort() SortIndicator {
	return SortIndicator{Field: p.sortField, Direction: p.direction}
}

// Policy returns the configured sort policy.
func (p *Pipeline) Policy() SortPolicy { return p.opts.Policy }
