package repositories

import (
	"context"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

// PackageIndexRepository abstracts a remote package index.
type PackageIndexRepository interface {
	// Name returns the index identifier (e.g. "pypi").
	Name() string

	// LatestVersion returns the most recent release of the named package.
	// A missing package or an unreachable index yields an *entities.LookupFailure.
	LatestVersion(ctx context.Context, name string) (entities.ResolvedVersion, error)
}

// PackageIndexFactory builds a PackageIndexRepository for the given run settings.
type PackageIndexFactory func(settings *entities.Settings) PackageIndexRepository
