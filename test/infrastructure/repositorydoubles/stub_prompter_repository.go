//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
)

// StubPrompterRepository implements repositories.PrompterRepository. SelectManifest returns the
// candidate at SelectIndex.
type StubPrompterRepository struct {
	Interactive bool
	SelectIndex int
	SelectErr   error
	Offered     [][]entities.ManifestSource
}

var _ repositories.PrompterRepository = (*StubPrompterRepository)(nil)

func (s *StubPrompterRepository) IsInteractive() bool { return s.Interactive }

func (s *StubPrompterRepository) SelectManifest(
	candidates []entities.ManifestSource,
) (entities.ManifestSource, error) {
	s.Offered = append(s.Offered, candidates)
	if s.SelectErr != nil {
		return entities.ManifestSource{}, s.SelectErr
	}
	return candidates[s.SelectIndex], nil
}
