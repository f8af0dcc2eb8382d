//go:build unit

package prompts_test

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/infrastructure/prompts"
)

var candidates = []entities.ManifestSource{ //nolint:gochecknoglobals // shared fixture
	{Path: "pyproject.toml", Format: entities.FormatProjectConfig},
	{Path: "requirements.txt", Format: entities.FormatRequirementsList},
}

func TestPrompterRepository_SelectManifest(t *testing.T) {
	t.Parallel()

	t.Run("should return the candidate the user picked", func(t *testing.T) {
		t.Parallel()

		// given
		var offered []huh.Option[string]
		prompter := prompts.NewPrompterRepositoryWith(true,
			func(_, _ string, options []huh.Option[string]) (string, error) {
				offered = options
				return "requirements.txt", nil
			})

		// when
		selected, err := prompter.SelectManifest(candidates)

		// then
		require.NoError(t, err)
		assert.Equal(t, candidates[1], selected)
		require.Len(t, offered, 2)
		assert.Equal(t, "pyproject.toml", offered[0].Value)
		assert.Equal(t, "pyproject.toml (pyproject)", offered[0].Key)
	})

	t.Run("should return the prompt error", func(t *testing.T) {
		t.Parallel()

		// given
		prompter := prompts.NewPrompterRepositoryWith(true,
			func(_, _ string, _ []huh.Option[string]) (string, error) {
				return "", huh.ErrUserAborted
			})

		// when
		_, err := prompter.SelectManifest(candidates)

		// then
		assert.True(t, errors.Is(err, huh.ErrUserAborted))
	})

	t.Run("should fail without candidates", func(t *testing.T) {
		t.Parallel()

		// given
		prompter := prompts.NewPrompterRepositoryWith(true, nil)

		// when
		_, err := prompter.SelectManifest(nil)

		// then
		assert.Error(t, err)
	})

	t.Run("should fail for a value that was not offered", func(t *testing.T) {
		t.Parallel()

		// given
		prompter := prompts.NewPrompterRepositoryWith(true,
			func(_, _ string, _ []huh.Option[string]) (string, error) {
				return "setup.py", nil
			})

		// when
		_, err := prompter.SelectManifest(candidates)

		// then
		assert.Error(t, err)
	})
}

func TestPrompterRepository_IsInteractive(t *testing.T) {
	t.Parallel()

	t.Run("should report the configured interactivity", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.True(t, prompts.NewPrompterRepositoryWith(true, nil).IsInteractive())
		assert.False(t, prompts.NewPrompterRepositoryWith(false, nil).IsInteractive())
	})
}

//nolint:paralleltest // uses t.Setenv
func TestIsInteractive(t *testing.T) {
	t.Run("should be false in CI", func(t *testing.T) {
		// given
		t.Setenv("CI", "true")

		// when / then
		assert.False(t, prompts.IsInteractive())
	})
}
