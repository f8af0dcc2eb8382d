package prompts

import "go.uber.org/dig"

// RegisterProviders registers the prompter with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewPrompterRepository)
}
