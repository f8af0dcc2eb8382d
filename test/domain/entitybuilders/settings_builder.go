//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create run settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	indexURL     string
	timeout      time.Duration
	format       string
	onlyOutdated bool
	ignore       []string
}

// NewSettingsBuilder creates a new settings builder starting from the defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		indexURL:    entities.DefaultIndexURL,
		timeout:     entities.DefaultTimeout,
		format:      entities.DefaultFormat,
	}
}

// WithIndexURL sets the package index base URL.
func (b *SettingsBuilder) WithIndexURL(indexURL string) *SettingsBuilder {
	b.indexURL = indexURL
	return b
}

// WithTimeout sets the per-request timeout.
func (b *SettingsBuilder) WithTimeout(timeout time.Duration) *SettingsBuilder {
	b.timeout = timeout
	return b
}

// WithFormat sets the output format.
func (b *SettingsBuilder) WithFormat(format string) *SettingsBuilder {
	b.format = format
	return b
}

// WithOnlyOutdated restricts output to outdated dependencies.
func (b *SettingsBuilder) WithOnlyOutdated(onlyOutdated bool) *SettingsBuilder {
	b.onlyOutdated = onlyOutdated
	return b
}

// WithIgnore sets the names that are never reported.
func (b *SettingsBuilder) WithIgnore(names ...string) *SettingsBuilder {
	b.ignore = names
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	ignore := make([]string, 0, len(b.ignore))
	for _, name := range b.ignore {
		ignore = append(ignore, entities.NormalizeName(name))
	}
	return &entities.Settings{
		IndexURL:     b.indexURL,
		Timeout:      b.timeout,
		Format:       b.format,
		OnlyOutdated: b.onlyOutdated,
		Ignore:       ignore,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.indexURL = entities.DefaultIndexURL
	b.timeout = entities.DefaultTimeout
	b.format = entities.DefaultFormat
	b.onlyOutdated = false
	b.ignore = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		indexURL:     b.indexURL,
		timeout:      b.timeout,
		format:       b.format,
		onlyOutdated: b.onlyOutdated,
		ignore:       append([]string(nil), b.ignore...),
	}
}
