//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
)

// SpyPackageIndexRepository implements repositories.PackageIndexRepository as a configurable spy.
type SpyPackageIndexRepository struct {
	// --- LatestVersion ---
	Versions    map[string]string // name -> latest; missing names fail
	HomePages   map[string]string
	Errors      map[string]error // overrides Versions
	LookedUp    []string
	CancelAfter int                // cancel is called after this many lookups when set
	Cancel      context.CancelFunc // see CancelAfter
}

var _ repositories.PackageIndexRepository = (*SpyPackageIndexRepository)(nil)

func (s *SpyPackageIndexRepository) Name() string { return "spy" }

func (s *SpyPackageIndexRepository) LatestVersion(
	_ context.Context,
	name string,
) (entities.ResolvedVersion, error) {
	s.LookedUp = append(s.LookedUp, name)
	if s.Cancel != nil && len(s.LookedUp) == s.CancelAfter {
		s.Cancel()
	}

	if err, ok := s.Errors[name]; ok {
		return entities.ResolvedVersion{}, err
	}
	latest, ok := s.Versions[name]
	if !ok {
		return entities.ResolvedVersion{}, &entities.LookupFailure{Name: name, StatusCode: 404}
	}
	return entities.ResolvedVersion{
		Name:     name,
		Latest:   latest,
		HomePage: s.HomePages[name],
		Found:    true,
	}, nil
}

// Factory returns a PackageIndexFactory that always yields this spy.
func (s *SpyPackageIndexRepository) Factory() repositories.PackageIndexFactory {
	return func(_ *entities.Settings) repositories.PackageIndexRepository {
		return s
	}
}
