//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/oneup/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name       string
	constraint string
	extras     []string
	marker     string
	line       int
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "requests",
		constraint:  "==2.31.0",
		line:        1,
	}
}

// WithName sets the dependency name. The name is normalized on build.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithConstraint sets the declared constraint.
func (b *DependencyBuilder) WithConstraint(constraint string) *DependencyBuilder {
	b.constraint = constraint
	return b
}

// WithoutConstraint declares the dependency unpinned.
func (b *DependencyBuilder) WithoutConstraint() *DependencyBuilder {
	b.constraint = ""
	return b
}

// WithExtras sets the requested extras.
func (b *DependencyBuilder) WithExtras(extras ...string) *DependencyBuilder {
	b.extras = extras
	return b
}

// WithMarker sets the environment marker.
func (b *DependencyBuilder) WithMarker(marker string) *DependencyBuilder {
	b.marker = marker
	return b
}

// WithLine sets the line number.
func (b *DependencyBuilder) WithLine(line int) *DependencyBuilder {
	b.line = line
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	dep := entities.NewDependency(b.name, b.constraint, b.line)
	dep.Extras = b.extras
	dep.Marker = b.marker
	return dep
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "requests"
	b.constraint = "==2.31.0"
	b.extras = nil
	b.marker = ""
	b.line = 1
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		constraint:  b.constraint,
		extras:      append([]string(nil), b.extras...),
		marker:      b.marker,
		line:        b.line,
	}
}
