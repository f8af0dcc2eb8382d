//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
)

// StubManifestParserRepository implements repositories.ManifestParserRepository with a canned result.
type StubManifestParserRepository struct {
	ParserFormat entities.ManifestFormat
	Result       entities.ParseResult
	ParseErr     error
	ParsedPaths  []string
}

var _ repositories.ManifestParserRepository = (*StubManifestParserRepository)(nil)

func (s *StubManifestParserRepository) Format() entities.ManifestFormat { return s.ParserFormat }

func (s *StubManifestParserRepository) Parse(
	_ context.Context,
	source entities.ManifestSource,
) (entities.ParseResult, error) {
	s.ParsedPaths = append(s.ParsedPaths, source.Path)
	return s.Result, s.ParseErr
}
