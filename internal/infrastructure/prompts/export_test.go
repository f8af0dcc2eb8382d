package prompts

import "github.com/charmbracelet/huh"

// NewPrompterRepositoryWith builds a prompter with a fixed interactivity and a scripted answer.
func NewPrompterRepositoryWith(
	interactive bool,
	choose func(title, description string, options []huh.Option[string]) (string, error),
) *PrompterRepository {
	return &PrompterRepository{
		interactive: func() bool { return interactive },
		choose:      choose,
	}
}
