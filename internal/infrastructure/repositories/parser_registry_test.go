//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/infrastructure/repositories"
	"github.com/rios0rios0/oneup/test/infrastructure/repositorydoubles"
)

func TestParserRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return the parser registered for a format", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewParserRegistry()
		parser := &repositorydoubles.StubManifestParserRepository{ParserFormat: entities.FormatProjectConfig}
		registry.Register(parser)

		// when
		result := registry.Get(entities.FormatProjectConfig)

		// then
		assert.Same(t, parser, result)
	})

	t.Run("should return nil for an unregistered format", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewParserRegistry()

		// when
		result := registry.Get(entities.FormatRequirementsList)

		// then
		assert.Nil(t, result)
	})

	t.Run("should list registered formats sorted", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewParserRegistry()
		registry.Register(&repositorydoubles.StubManifestParserRepository{ParserFormat: entities.FormatRequirementsList})
		registry.Register(&repositorydoubles.StubManifestParserRepository{ParserFormat: entities.FormatProjectConfig})

		// when
		formats := registry.Formats()

		// then
		assert.Equal(t, []entities.ManifestFormat{
			entities.FormatProjectConfig,
			entities.FormatRequirementsList,
		}, formats)
	})
}
