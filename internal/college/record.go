package college

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Review widget constants. They are shown by the renderers only and never take
// part in sorting or filtering.
const ReviewCount = 289

// ReviewTags are the selectable review tags offered for every college.
//
//nolint:gochecknoglobals // Fixed display list.
var ReviewTags = []string{
	"Best in Social Life",
	"Best in Academics",
	"Best in Placements",
	"Best in Infrastructure",
}

// Record is one college entry.
type Record struct {
	ID          ID          `json:"id"          yaml:"id"`
	Rank        int         `json:"rank"        yaml:"rank"`
	Name        string      `json:"collegeName" yaml:"collegeName"`
	Location    string      `json:"location"    yaml:"location"`
	Course      string      `json:"course"      yaml:"course"`
	Fees        NumericText `json:"fees"        yaml:"fees"`
	Placement   NumericText `json:"placement"   yaml:"placement"`
	UserReviews float64     `json:"userReviews" yaml:"userReviews"`
	Ranking     NumericText `json:"ranking"     yaml:"ranking"`
	Featured    bool        `json:"featured"    yaml:"featured"`
}

// ID is an opaque record identifier. Sources may encode it as a number or a
// string; it is always held as text.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", node.Line)
	}
	*id = ID(node.Value)
	return nil
}

// NumericText is a value that is displayed as text but compared by its digits,
// such as "₹1,05,000". Digits holds the ASCII digits of Raw in order.
// FromNumber records whether the source encoded the value as a number rather
// than a string; a column made only of such values compares by Number.
type NumericText struct {
	Raw        string
	Digits     string
	FromNumber bool
	Number     float64
}

// NewNumericText builds a NumericText from display text.
func NewNumericText(raw string) NumericText {
	return NumericText{Raw: raw, Digits: StripNonDigits(raw)}
}

// NewNumericValue builds a NumericText from a number.
func NewNumericValue(v float64) NumericText {
	raw := strconv.FormatFloat(v, 'f', -1, 64)
	return NumericText{Raw: raw, Digits: StripNonDigits(raw), FromNumber: true, Number: v}
}

// StripNonDigits removes every rune that is not an ASCII digit.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// String returns the display text.
func (n NumericText) String() string {
	return n.Raw
}

// UnmarshalJSON accepts a JSON string or number.
func (n *NumericText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = NewNumericText(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(data))
	}
	*n = NewNumericValue(f)
	return nil
}

// MarshalJSON writes numbers back as numbers and text as strings.
func (n NumericText) MarshalJSON() ([]byte, error) {
	if n.FromNumber {
		return json.Marshal(n.Number)
	}
	return json.Marshal(n.Raw)
}

// UnmarshalYAML accepts an int, float or string scalar.
func (n *NumericText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*n = NewNumericValue(f)
	default:
		*n = NewNumericText(node.Value)
	}
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (n NumericText) MarshalYAML() (any, error) {
	if n.FromNumber {
		return n.Number, nil
	}
	return n.Raw, nil
}
