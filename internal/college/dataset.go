package college

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/collegelist/internal/logging"
)

// Dataset errors.
var (
	ErrInvalidDataset      = errors.New("invalid dataset")
	ErrDuplicateID         = errors.New("duplicate college id")
	ErrUnsupportedVersion  = errors.New("unsupported dataset version")
	ErrUnsupportedFormat   = errors.New("unsupported dataset format")
	errEmptyDatasetContent = errors.New("dataset is empty")
)

// Format is a dataset encoding.
type Format string

// Supported dataset formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// supportedVersions is the range of envelope versions this build reads.
const supportedVersions = ">= 1.0.0, < 2.0.0"

//go:embed data/colleges.json
var defaultDataset []byte

// envelope is the versioned dataset layout.
type envelope struct {
	Version  string   `json:"version"  yaml:"version"`
	Colleges []Record `json:"colleges" yaml:"colleges"`
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want .json, .yaml or .yml)", ErrUnsupportedFormat, path)
	}
}

// Default returns the dataset bundled with the binary.
func Default() ([]Record, error) {
	records, err := Decode(defaultDataset, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("bundled dataset: %w", err)
	}
	return records, nil
}

// Decode parses and validates a dataset document.
func Decode(data []byte, format Format) ([]Record, error) {
	var (
		records []Record
		err     error
	)
	switch format {
	case FormatJSON:
		records, err = decodeJSON(data)
	case FormatYAML:
		records, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err = Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeJSON(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, errEmptyDatasetContent)
	}

	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		return records, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	if err := checkVersion(env.Version); err != nil {
		return nil, err
	}
	return env.Colleges, nil
}

func decodeYAML(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, errEmptyDatasetContent)
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var records []Record
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		return records, nil
	case yaml.MappingNode:
		var env envelope
		if err := root.Decode(&env); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		if err := checkVersion(env.Version); err != nil {
			return nil, err
		}
		return env.Colleges, nil
	default:
		return nil, fmt.Errorf("%w: top level must be a list or a mapping", ErrInvalidDataset)
	}
}

// checkVersion accepts an absent version or any 1.x semver.
func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, version, err)
	}
	c, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, v, supportedVersions)
	}
	return nil
}

// Validate checks the load-time invariants: every record has an id and a
// name, ranks are positive and ids are unique across the dataset.
func Validate(records []Record) error {
	seen := make(map[ID]int, len(records))
	for i, r := range records {
		if strings.TrimSpace(string(r.ID)) == "" {
			return fmt.Errorf("%w: record %d: missing id", ErrInvalidDataset, i)
		}
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("%w: record %d (id %s): missing collegeName", ErrInvalidDataset, i, r.ID)
		}
		if r.Rank < 1 {
			return fmt.Errorf("%w: record %d (id %s): rank must be >= 1, got %d", ErrInvalidDataset, i, r.ID, r.Rank)
		}
		if first, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: %w: %q at records %d and %d", ErrInvalidDataset, ErrDuplicateID, r.ID, first, i)
		}
		seen[r.ID] = i
	}
	return nil
}

// LoadFile reads and decodes one dataset file.
func LoadFile(path string) ([]Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	records, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// LoadFiles reads the given dataset files concurrently and concatenates them
// in argument order. With no paths the bundled dataset is returned. IDs must
// be unique across all files.
func LoadFiles(ctx context.Context, paths []string) ([]Record, error) {
	logger := logging.FromContext(ctx)

	if len(paths) == 0 {
		records, err := Default()
		if err != nil {
			return nil, err
		}
		logger.Debug().Ctx(ctx).Str("component", "college").
			Int("records", len(records)).Msg("loaded bundled dataset")
		return records, nil
	}

	shards := make([][]Record, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records, err := LoadFile(path)
			if err != nil {
				return err
			}
			shards[i] = records
			logger.Debug().Ctx(ctx).Str("component", "college").
				Str("path", path).Int("records", len(records)).Msg("loaded dataset file")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, s := range shards {
		total += len(s)
	}
	merged := make([]Record, 0, total)
	for _, s := range shards {
		merged = append(merged, s...)
	}
	if err := Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}
