package cli

import (
	"context"
	"fmt"

	"github.com/rshade/collegelist/internal/college"
	"github.com/rshade/collegelist/internal/config"
	"github.com/rshade/collegelist/internal/listing"
	"github.com/rshade/collegelist/internal/logging"
)

// loadPipeline loads the configured datasets and builds a listing pipeline
// over them.
func loadPipeline(ctx context.Context, cfg *config.Config) (*listing.Pipeline, error) {
	log := logging.FromContext(ctx)

	records, err := college.LoadFiles(ctx, cfg.Listing.Datasets)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Strs("datasets", cfg.Listing.Datasets).Msg("failed to load dataset")
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	p, err := listing.New(records, cfg.PipelineOptions(log))
	if err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}
	log.Debug().Ctx(ctx).
		Int("records", p.Total()).
		Int("batch_size", p.BatchSize()).
		Str("sort_policy", string(p.Policy())).
		Msg("listing ready")

	return p, nil
}
