package repositories

import (
	"context"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

// ManifestLocatorRepository finds manifests on disk. It never modifies the files it probes.
type ManifestLocatorRepository interface {
	// Locate resolves an explicit file or directory path (or the working directory when path
	// is empty) into a single manifest. It returns an *entities.NotFoundError when nothing
	// supported exists there.
	Locate(ctx context.Context, path string) (entities.ManifestSource, error)

	// DiscoverAll lists every supported manifest at path: the file itself when path names a
	// file, otherwise every manifest directly inside the directory, in lexical order.
	DiscoverAll(ctx context.Context, path string) ([]entities.ManifestSource, error)
}
