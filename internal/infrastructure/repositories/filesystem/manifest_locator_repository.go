package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

const (
	pyprojectFile  = "pyproject.toml"
	workingDirPath = "."
)

// requirementsFilePattern matches requirements.txt, requirements-dev.txt, dev-requirements.in, ...
var requirementsFilePattern = regexp.MustCompile(`^(?:[\w-]+[-_.])?requirements(?:[-_.][\w-]+)?\.(?:txt|in)$`)

// ManifestLocatorRepository finds manifests on the local file system.
type ManifestLocatorRepository struct{}

// NewManifestLocatorRepository creates a new locator.
func NewManifestLocatorRepository() *ManifestLocatorRepository {
	return &ManifestLocatorRepository{}
}

// Locate returns the manifest at path. For a directory, the first manifest in lexical order wins.
func (r *ManifestLocatorRepository) Locate(ctx context.Context, path string) (entities.ManifestSource, error) {
	candidates, err := r.DiscoverAll(ctx, path)
	if err != nil {
		return entities.ManifestSource{}, err
	}
	if len(candidates) == 0 {
		return entities.ManifestSource{}, &entities.NotFoundError{
			Path:   displayPath(path),
			Reason: "no requirements file or pyproject.toml present",
		}
	}
	if len(candidates) > 1 {
		logger.Debugf("Found %d manifests in %s, using %s", len(candidates), displayPath(path), candidates[0].Path)
	}
	return candidates[0], nil
}

// DiscoverAll lists the manifests at path: the file itself, or the manifests directly inside a
// directory in lexical order.
func (r *ManifestLocatorRepository) DiscoverAll(ctx context.Context, path string) ([]entities.ManifestSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		path = workingDirPath
	}

	info, err := os.Stat(path)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, os.ErrNotExist) {
			reason = "path does not exist"
		}
		return nil, &entities.NotFoundError{Path: path, Reason: reason}
	}

	if !info.IsDir() {
		return []entities.ManifestSource{{Path: path, Format: FormatFor(path)}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &entities.NotFoundError{Path: path, Reason: err.Error()}
	}

	var sources []entities.ManifestSource
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsManifestName(entry.Name()) {
			continue
		}
		sources = append(sources, entities.ManifestSource{
			Path:   filepath.Join(path, entry.Name()),
			Format: FormatFor(entry.Name()),
		})
	}
	return sources, nil
}

// IsManifestName reports whether a file name is one the locator picks up when scanning a directory.
func IsManifestName(name string) bool {
	return name == pyprojectFile || requirementsFilePattern.MatchString(name)
}

// FormatFor tags a file by its name: any TOML file is a project config, everything else is read
// as a requirement list.
func FormatFor(path string) entities.ManifestFormat {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return entities.FormatProjectConfig
	}
	return entities.FormatRequirementsList
}

func displayPath(path string) string {
	if path == "" {
		return workingDirPath
	}
	return path
}
