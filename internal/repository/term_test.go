package repository

import (
	"context"
	"errors"
	"testing"
)

type fakeFetcher struct {
	page []byte
	err  error
}

func (f fakeFetcher) Fetch(context.Context) ([]byte, error) {
	return f.page, f.err
}

func TestTermRepositoryGetAll(t *testing.T) {
	repo := NewTermRepository(fakeFetcher{page: []byte(page(
		row("Jump", "A gap in notes."),
		row("Arc", "A curved connector."),
	))}, testBaseURL, nil)

	terms, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("expected 2 terms, got %d", len(terms))
	}
}

func TestTermRepositoryWrapsFetchFailure(t *testing.T) {
	cause := errors.New("connection refused")
	repo := NewTermRepository(fakeFetcher{err: cause}, testBaseURL, nil)

	terms, err := repo.GetAll(context.Background())
	if !errors.Is(err, ErrUpstreamFetch) {
		t.Fatalf("expected ErrUpstreamFetch, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
	if terms != nil {
		t.Fatalf("expected no terms on failure, got %+v", terms)
	}
}
