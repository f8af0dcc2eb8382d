package prompts

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
)

// ciEnvironment lists variables set by common CI systems.
var ciEnvironment = []string{ //nolint:gochecknoglobals // read-only list
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"BITBUCKET_BUILD_NUMBER",
	"DRONE",
	"TF_BUILD",
}

// selectFunc shows a single-select prompt and returns the chosen value.
type selectFunc func(title, description string, options []huh.Option[string]) (string, error)

// PrompterRepository implements repositories.PrompterRepository with huh forms.
type PrompterRepository struct {
	interactive func() bool
	choose      selectFunc
}

// NewPrompterRepository creates a prompter bound to the current terminal.
func NewPrompterRepository() repositories.PrompterRepository {
	return &PrompterRepository{
		interactive: IsInteractive,
		choose:      runSelect,
	}
}

func (p *PrompterRepository) IsInteractive() bool {
	return p.interactive()
}

// SelectManifest asks which of the discovered manifests to check.
func (p *PrompterRepository) SelectManifest(
	candidates []entities.ManifestSource,
) (entities.ManifestSource, error) {
	if len(candidates) == 0 {
		return entities.ManifestSource{}, errors.New("no manifests to choose from")
	}

	options := make([]huh.Option[string], len(candidates))
	for i, candidate := range candidates {
		label := fmt.Sprintf("%s (%s)", candidate.Path, candidate.Format)
		options[i] = huh.NewOption(label, candidate.Path)
	}

	selected, err := p.choose(
		"Select the manifest to check:",
		fmt.Sprintf("%d manifests were found.", len(candidates)),
		options,
	)
	if err != nil {
		return entities.ManifestSource{}, err
	}

	for _, candidate := range candidates {
		if candidate.Path == selected {
			return candidate, nil
		}
	}
	return entities.ManifestSource{}, fmt.Errorf("unknown selection %q", selected)
}

// IsInteractive returns false when stdout is not a terminal or a CI system is detected.
func IsInteractive() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // G115: fd is a small value
		return false
	}
	for _, env := range ciEnvironment {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return true
}

func runSelect(title, description string, options []huh.Option[string]) (string, error) {
	var selected string
	field := huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(options...).
		Value(&selected)

	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return selected, nil
}
