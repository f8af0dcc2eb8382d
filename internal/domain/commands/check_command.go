package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/oneup/internal/infrastructure/repositories"
)

// pythonPackage is the interpreter requirement Poetry lists among dependencies.
const pythonPackage = "python"

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) (*entities.Report, error)
}

// CheckOptions holds runtime options for a single check.
type CheckOptions struct {
	Path        string // manifest file or directory, empty for the working directory
	Interactive bool   // allow prompting when a directory holds several manifests
}

// CheckCommand runs the pipeline: locate the manifest, parse it, resolve the latest version of
// every dependency one at a time, then classify each against its declared constraint.
type CheckCommand struct {
	locator        repositories.ManifestLocatorRepository
	parserRegistry *infraRepos.ParserRegistry
	indexFactory   repositories.PackageIndexFactory
	prompter       repositories.PrompterRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	locator repositories.ManifestLocatorRepository,
	parserRegistry *infraRepos.ParserRegistry,
	indexFactory repositories.PackageIndexFactory,
	prompter repositories.PrompterRepository,
) *CheckCommand {
	return &CheckCommand{
		locator:        locator,
		parserRegistry: parserRegistry,
		indexFactory:   indexFactory,
		prompter:       prompter,
	}
}

// Execute is the entry point for a check run. Only a missing or undecodable manifest is
// returned as an error; lookup failures and malformed entries end up in the report.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) (*entities.Report, error) {
	source, err := it.locate(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Infof("Using manifest %s (%s)", source.Path, source.Format)

	parser := it.parserRegistry.Get(source.Format)
	if parser == nil {
		return nil, fmt.Errorf(
			"no parser registered for format %q (known: %v)", source.Format, it.parserRegistry.Formats(),
		)
	}

	result, err := parser.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	for _, warning := range result.Warnings {
		logger.Warnf("Skipped entry %q (line %d): %s", warning.Entry, warning.Line, warning.Reason)
	}

	deps := it.filter(result.Dependencies, settings)
	logDuplicates(deps)

	index := it.indexFactory(settings)
	resolved, err := resolveAll(ctx, index, deps)
	if err != nil {
		return nil, err
	}

	report := &entities.Report{
		Source:   source,
		Lines:    make([]entities.ReportLine, 0, len(deps)),
		Warnings: result.Warnings,
	}
	for i, dep := range deps {
		report.Lines = append(report.Lines, entities.Classify(dep, resolved[i]))
	}

	logger.Debugf(
		"Checked %d dependencies: %d outdated, %d unknown",
		len(report.Lines), report.Outdated(), report.Unknown(),
	)
	return report, nil
}

// locate picks the manifest to check, prompting only when allowed and needed.
func (it *CheckCommand) locate(ctx context.Context, opts CheckOptions) (entities.ManifestSource, error) {
	if !opts.Interactive || it.prompter == nil || !it.prompter.IsInteractive() {
		return it.locator.Locate(ctx, opts.Path)
	}

	candidates, err := it.locator.DiscoverAll(ctx, opts.Path)
	if err != nil {
		return entities.ManifestSource{}, err
	}

	switch len(candidates) {
	case 0:
		return entities.ManifestSource{}, &entities.NotFoundError{
			Path:   opts.Path,
			Reason: "no requirements file or pyproject.toml present",
		}
	case 1:
		return candidates[0], nil
	default:
		selected, selectErr := it.prompter.SelectManifest(candidates)
		if selectErr != nil {
			return entities.ManifestSource{}, fmt.Errorf("failed to select a manifest: %w", selectErr)
		}
		return selected, nil
	}
}

// filter drops the interpreter pseudo-dependency and anything the settings ignore.
func (it *CheckCommand) filter(deps []entities.Dependency, settings *entities.Settings) []entities.Dependency {
	kept := make([]entities.Dependency, 0, len(deps))
	for _, dep := range deps {
		if dep.Name == pythonPackage {
			logger.Debugf("Skipping %q: not a package", dep.Name)
			continue
		}
		if settings.IsIgnored(dep.Name) {
			logger.Debugf("Skipping %q: ignored by configuration", dep.Name)
			continue
		}
		kept = append(kept, dep)
	}
	return kept
}

// resolveAll fetches the latest version of each dependency sequentially. A failed lookup
// never aborts the run; it produces a ResolvedVersion with Found=false.
func resolveAll(
	ctx context.Context,
	index repositories.PackageIndexRepository,
	deps []entities.Dependency,
) ([]entities.ResolvedVersion, error) {
	resolved := make([]entities.ResolvedVersion, 0, len(deps))
	for _, dep := range deps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		version, err := index.LatestVersion(ctx, dep.Name)
		if err != nil {
			logger.Warnf("Could not get %s's latest version: %v", dep.Name, err)
			version = entities.ResolvedVersion{Name: dep.Name}
		}
		resolved = append(resolved, version)
	}
	return resolved, nil
}

func logDuplicates(deps []entities.Dependency) {
	seen := make(map[string]int, len(deps))
	for _, dep := range deps {
		if line, ok := seen[dep.Name]; ok {
			logger.Warnf("Dependency %q is declared more than once (lines %d and %d)", dep.Name, line, dep.Line)
			continue
		}
		seen[dep.Name] = dep.Line
	}
}
