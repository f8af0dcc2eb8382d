package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
)

const indexName = "pypi"

// projectMetadata is the subset of the PyPI JSON API response that is used.
type projectMetadata struct {
	Info struct {
		Name       string `json:"name"`
		Version    string `json:"version"`
		HomePage   string `json:"home_page"`
		ProjectURL string `json:"project_url"`
	} `json:"info"`
}

// PyPIIndexRepository implements repositories.PackageIndexRepository against the PyPI JSON API.
type PyPIIndexRepository struct {
	baseURL string
	client  *http.Client
}

// NewPyPIIndexRepository creates a client for the index at baseURL (e.g. "https://pypi.org").
func NewPyPIIndexRepository(baseURL string, timeout time.Duration) repositories.PackageIndexRepository {
	return &PyPIIndexRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *PyPIIndexRepository) Name() string { return indexName }

// LatestVersion fetches {baseURL}/pypi/{name}/json and returns info.version.
func (r *PyPIIndexRepository) LatestVersion(ctx context.Context, name string) (entities.ResolvedVersion, error) {
	endpoint := fmt.Sprintf("%s/pypi/%s/json", r.baseURL, url.PathEscape(name))
	logger.Debugf("[pypi] GET %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.ResolvedVersion{}, &entities.LookupFailure{
			Name: name,
			Err:  fmt.Errorf("failed to create request: %w", err),
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return entities.ResolvedVersion{}, &entities.LookupFailure{
			Name: name,
			Err:  fmt.Errorf("failed to fetch package metadata: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.ResolvedVersion{}, &entities.LookupFailure{
			Name:       name,
			StatusCode: resp.StatusCode,
		}
	}

	var metadata projectMetadata
	if decodeErr := json.NewDecoder(resp.Body).Decode(&metadata); decodeErr != nil {
		return entities.ResolvedVersion{}, &entities.LookupFailure{
			Name: name,
			Err:  fmt.Errorf("failed to parse package metadata: %w", decodeErr),
		}
	}

	latest := strings.TrimSpace(metadata.Info.Version)
	if latest == "" {
		return entities.ResolvedVersion{}, &entities.LookupFailure{
			Name: name,
			Err:  errors.New("package metadata has no version"),
		}
	}

	homePage := metadata.Info.HomePage
	if homePage == "" {
		homePage = metadata.Info.ProjectURL
	}
	return entities.ResolvedVersion{
		Name:     name,
		Latest:   latest,
		HomePage: homePage,
		Found:    true,
	}, nil
}
