//go:build unit

package pyproject_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/infrastructure/repositories/pyproject"
)

func names(deps []entities.Dependency) []string {
	out := make([]string, 0, len(deps))
	for _, dep := range deps {
		out = append(out, dep.Name)
	}
	return out
}

func TestPyprojectParserRepository_Parse(t *testing.T) {
	t.Parallel()

	t.Run("should read a Poetry manifest in file order", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "pyproject.toml")
		content := `[tool.poetry]
name = "demo"
version = "0.1.0"

[tool.poetry.dependencies]
python = "^3.11"
requests = "^2.31"
Django = { version = ">=4.2,<5.0", extras = ["bcrypt"] }
click = "*"

[tool.poetry.group.dev.dependencies]
pytest = "8.3.2"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		parser := pyproject.NewPyprojectParserRepository()

		// when
		result, err := parser.Parse(context.Background(), entities.ManifestSource{
			Path:   path,
			Format: entities.FormatProjectConfig,
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
		assert.Equal(t, []string{"requests", "django", "click", "pytest"}, names(result.Dependencies))
		assert.Equal(t, "^2.31", result.Dependencies[0].Constraint)
		assert.Equal(t, 7, result.Dependencies[0].Line)
		assert.Equal(t, ">=4.2,<5.0", result.Dependencies[1].Constraint)
		assert.Equal(t, []string{"bcrypt"}, result.Dependencies[1].Extras)
		assert.Empty(t, result.Dependencies[2].Constraint)
		assert.Equal(t, "8.3.2", result.Dependencies[3].Constraint)
	})

	t.Run("should fail with ParseError for invalid TOML", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "pyproject.toml")
		require.NoError(t, os.WriteFile(path, []byte("[project\ndependencies = ["), 0o600))
		parser := pyproject.NewPyprojectParserRepository()

		// when
		_, err := parser.Parse(context.Background(), entities.ManifestSource{
			Path:   path,
			Format: entities.FormatProjectConfig,
		})

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, path, parseErr.Path)
	})

	t.Run("should fail with NotFoundError for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "pyproject.toml")
		parser := pyproject.NewPyprojectParserRepository()

		// when
		_, err := parser.Parse(context.Background(), entities.ManifestSource{
			Path:   path,
			Format: entities.FormatProjectConfig,
		})

		// then
		var notFound *entities.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestParseContent(t *testing.T) {
	t.Parallel()

	t.Run("should read PEP 621 dependencies and optional dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`[project]
name = "demo"
dependencies = [
    "requests>=2.20.0",
    "httpx[http2]==0.27.0; python_version >= '3.9'",
    "mypkg @ https://example.com/mypkg.whl",
]

[project.optional-dependencies]
test = ["pytest>=8"]
docs = ["sphinx"]
`)

		// when
		result, err := pyproject.ParseContent(content)

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
		assert.Equal(t, []string{"requests", "httpx", "sphinx", "pytest"}, names(result.Dependencies))
		assert.Equal(t, "==0.27.0", result.Dependencies[1].Constraint)
		assert.Equal(t, []string{"http2"}, result.Dependencies[1].Extras)
	})

	t.Run("should warn about malformed entries and keep the rest", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`[project]
dependencies = ["requests", "!!bad", 42]

[tool.poetry.dependencies]
flask = ">=not a version"
numpy = 3
pandas = "2.2.2"
`)

		// when
		result, err := pyproject.ParseContent(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"requests", "pandas"}, names(result.Dependencies))
		require.Len(t, result.Warnings, 4)
		assert.Equal(t, "flask", result.Warnings[2].Entry)
		assert.Equal(t, 5, result.Warnings[2].Line)
	})

	t.Run("should skip git and path sources", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`[tool.poetry.dependencies]
mylib = { git = "https://github.com/org/mylib.git" }
local = { path = "../local" }
requests = "2.31.0"
`)

		// when
		result, err := pyproject.ParseContent(content)

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
		assert.Equal(t, []string{"requests"}, names(result.Dependencies))
	})

	t.Run("should accept space-separated Poetry clauses", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`[tool.poetry.dependencies]
django = ">=4.2 <5.0"
`)

		// when
		result, err := pyproject.ParseContent(content)

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
		require.Len(t, result.Dependencies, 1)
		assert.Equal(t, ">=4.2 <5.0", result.Dependencies[0].Constraint)
	})

	t.Run("should read Poetry dev-dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`[tool.poetry.dev-dependencies]
black = "^24.0"
`)

		// when
		result, err := pyproject.ParseContent(content)

		// then
		require.NoError(t, err)
		require.Len(t, result.Dependencies, 1)
		assert.Equal(t, "^24.0", result.Dependencies[0].Constraint)
	})

	t.Run("should ignore non-dependency sections", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`[build-system]
requires = ["poetry-core>=1.0.0"]

[tool.black]
line-length = 100
`)

		// when
		result, err := pyproject.ParseContent(content)

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Dependencies)
		assert.Empty(t, result.Warnings)
	})
}
