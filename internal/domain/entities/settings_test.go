//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".oneup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should read every field", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
index_url: https://mirror.example.com
timeout: 3s
format: json
only_outdated: true
ignore:
  - Flask_SQLAlchemy
  - pip
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example.com", settings.IndexURL)
		assert.Equal(t, 3*time.Second, settings.Timeout)
		assert.Equal(t, "json", settings.Format)
		assert.True(t, settings.OnlyOutdated)
		assert.Equal(t, []string{"flask-sqlalchemy", "pip"}, settings.Ignore)
	})

	t.Run("should keep defaults for missing fields", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "only_outdated: true\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultIndexURL, settings.IndexURL)
		assert.Equal(t, entities.DefaultTimeout, settings.Timeout)
		assert.Equal(t, entities.DefaultFormat, settings.Format)
	})

	t.Run("should expand environment variables in index_url", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_ONEUP_MIRROR", "mirror.internal")
		path := writeConfig(t, "index_url: https://${TEST_ONEUP_MIRROR}/\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://mirror.internal/", settings.IndexURL)
	})

	t.Run("should reject an unsupported format", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "format: xml\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "xml")
	})

	t.Run("should reject invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "ignore: [unclosed\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		assert.Error(t, err)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		assert.Error(t, err)
	})
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(s *entities.Settings)
		valid  bool
	}{
		{name: "defaults", mutate: func(_ *entities.Settings) {}, valid: true},
		{name: "plain http index", mutate: func(s *entities.Settings) { s.IndexURL = "http://localhost:8080" }, valid: true},
		{name: "relative index", mutate: func(s *entities.Settings) { s.IndexURL = "pypi.org" }, valid: false},
		{name: "ftp index", mutate: func(s *entities.Settings) { s.IndexURL = "ftp://pypi.org" }, valid: false},
		{name: "zero timeout", mutate: func(s *entities.Settings) { s.Timeout = 0 }, valid: false},
		{name: "unknown format", mutate: func(s *entities.Settings) { s.Format = "csv" }, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			settings := entities.DefaultSettings()
			tt.mutate(settings)

			// when
			err := settings.Validate()

			// then
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

//nolint:paralleltest // uses t.Setenv
func TestSettingsApplyEnvironment(t *testing.T) {
	t.Run("should override index URL and timeout", func(t *testing.T) {
		// given
		t.Setenv("ONEUP_INDEX_URL", "https://test.pypi.org")
		t.Setenv("ONEUP_TIMEOUT", "2s")
		settings := entities.DefaultSettings()

		// when
		err := settings.ApplyEnvironment()

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://test.pypi.org", settings.IndexURL)
		assert.Equal(t, 2*time.Second, settings.Timeout)
	})

	t.Run("should reject an unparsable timeout", func(t *testing.T) {
		// given
		t.Setenv("ONEUP_TIMEOUT", "soon")
		settings := entities.DefaultSettings()

		// when
		err := settings.ApplyEnvironment()

		// then
		assert.Error(t, err)
	})
}

func TestSettingsIsIgnored(t *testing.T) {
	t.Parallel()

	t.Run("should match ignored names after normalization", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Ignore = []string{"flask-sqlalchemy"}

		// when / then
		assert.True(t, settings.IsIgnored("Flask_SQLAlchemy"))
		assert.False(t, settings.IsIgnored("flask"))
	})
}
