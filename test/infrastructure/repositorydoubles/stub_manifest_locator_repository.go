//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
)

// StubManifestLocatorRepository implements repositories.ManifestLocatorRepository. Locate returns
// the first candidate, or NotFound when there are none.
type StubManifestLocatorRepository struct {
	Candidates     []entities.ManifestSource
	Err            error
	LocateCalls    int
	DiscoverCalls  int
	RequestedPaths []string
}

var _ repositories.ManifestLocatorRepository = (*StubManifestLocatorRepository)(nil)

func (s *StubManifestLocatorRepository) Locate(
	_ context.Context,
	path string,
) (entities.ManifestSource, error) {
	s.LocateCalls++
	s.RequestedPaths = append(s.RequestedPaths, path)
	if s.Err != nil {
		return entities.ManifestSource{}, s.Err
	}
	if len(s.Candidates) == 0 {
		return entities.ManifestSource{}, &entities.NotFoundError{Path: path}
	}
	return s.Candidates[0], nil
}

func (s *StubManifestLocatorRepository) DiscoverAll(
	_ context.Context,
	path string,
) ([]entities.ManifestSource, error) {
	s.DiscoverCalls++
	s.RequestedPaths = append(s.RequestedPaths, path)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Candidates, nil
}
