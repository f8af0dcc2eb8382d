package repositories

import (
	"slices"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	domainRepos "github.com/rios0rios0/oneup/internal/domain/repositories"
)

// ParserRegistry manages all registered manifest parser implementations.
type ParserRegistry struct {
	parsers map[entities.ManifestFormat]domainRepos.ManifestParserRepository
}

// NewParserRegistry creates an empty parser registry.
func NewParserRegistry() *ParserRegistry {
	return &ParserRegistry{
		parsers: make(map[entities.ManifestFormat]domainRepos.ManifestParserRepository),
	}
}

// Register adds a parser under its format.
func (r *ParserRegistry) Register(p domainRepos.ManifestParserRepository) {
	r.parsers[p.Format()] = p
}

// Get returns the parser for the given format, or nil if not registered.
func (r *ParserRegistry) Get(format entities.ManifestFormat) domainRepos.ManifestParserRepository {
	return r.parsers[format]
}

// Formats returns the registered formats, sorted.
func (r *ParserRegistry) Formats() []entities.ManifestFormat {
	formats := make([]entities.ManifestFormat, 0, len(r.parsers))
	for format := range r.parsers {
		formats = append(formats, format)
	}
	slices.Sort(formats)
	return formats
}
