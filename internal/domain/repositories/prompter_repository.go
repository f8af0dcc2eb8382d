package repositories

import "github.com/rios0rios0/oneup/internal/domain/entities"

// PrompterRepository asks the user to pick one manifest when several are available.
type PrompterRepository interface {
	// IsInteractive reports whether prompts can be shown.
	IsInteractive() bool

	// SelectManifest returns the manifest the user picked.
	SelectManifest(candidates []entities.ManifestSource) (entities.ManifestSource, error)
}
