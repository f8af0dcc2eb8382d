package repositories

import (
	"context"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

// ManifestParserRepository abstracts one manifest syntax (requirement files, pyproject.toml).
// Implementations read the manifest at the given source and return the declared dependencies
// in file order. Entries that cannot be understood are reported as warnings; only a file that
// cannot be decoded at all yields an *entities.ParseError.
type ManifestParserRepository interface {
	// Format returns the manifest format this parser handles.
	Format() entities.ManifestFormat

	// Parse reads and parses the manifest.
	Parse(ctx context.Context, source entities.ManifestSource) (entities.ParseResult, error)
}
