package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	domainRepos "github.com/rios0rios0/oneup/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/oneup/internal/infrastructure/repositories/filesystem"
	pypiRepo "github.com/rios0rios0/oneup/internal/infrastructure/repositories/pypi"
	pyprojectRepo "github.com/rios0rios0/oneup/internal/infrastructure/repositories/pyproject"
	reqRepo "github.com/rios0rios0/oneup/internal/infrastructure/repositories/requirements"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register parser registry with all manifest formats
	if err := container.Provide(func() *ParserRegistry {
		reg := NewParserRegistry()
		reg.Register(reqRepo.NewRequirementsParserRepository())
		reg.Register(pyprojectRepo.NewPyprojectParserRepository())
		return reg
	}); err != nil {
		return err
	}

	// Package index: PyPI JSON API behind a per-run memo
	if err := container.Provide(func() domainRepos.PackageIndexFactory {
		return func(settings *entities.Settings) domainRepos.PackageIndexRepository {
			return pypiRepo.NewMemoizedIndexRepository(
				pypiRepo.NewPyPIIndexRepository(settings.IndexURL, settings.Timeout),
			)
		}
	}); err != nil {
		return err
	}

	if err := container.Provide(fsRepo.NewManifestLocatorRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *fsRepo.ManifestLocatorRepository) domainRepos.ManifestLocatorRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
