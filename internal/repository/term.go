package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
)

// ErrUpstreamFetch is returned when the glossary page could not be downloaded.
var ErrUpstreamFetch = errors.New("glossary fetch failed")

// PageFetcher downloads the raw glossary page.
type PageFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// TermRepository provides access to the glossary terms.
// Every call fetches the page again, nothing is cached.
type TermRepository struct {
	fetcher PageFetcher
	baseURL string
	logger  *zap.Logger
}

// NewTermRepository creates a TermRepository reading from fetcher.
func NewTermRepository(fetcher PageFetcher, baseURL string, logger *zap.Logger) *TermRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TermRepository{
		fetcher: fetcher,
		baseURL: baseURL,
		logger:  logger,
	}
}

// GetAll fetches the glossary page and extracts its terms.
func (r *TermRepository) GetAll(ctx context.Context) ([]entities.Term, error) {
	page, err := r.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}

	res, err := Extract(bytes.NewReader(page), r.baseURL)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("glossary extracted",
		zap.Int("terms", len(res.Terms)),
		zap.Int("skipped", res.Skipped),
		zap.Int("duplicates", res.Duplicates),
	)

	return res.Terms, nil
}
