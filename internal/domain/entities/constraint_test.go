//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/oneup/internal/domain/entities"
)

func TestParseConstraint(t *testing.T) {
	t.Parallel()

	t.Run("should split comma separated clauses into one group", func(t *testing.T) {
		t.Parallel()

		// when
		constraint, err := entities.ParseConstraint(">=1.0, <2.0")

		// then
		require.NoError(t, err)
		require.Len(t, constraint.Groups, 1)
		assert.Equal(t, []entities.Clause{
			{Op: ">=", Version: "1.0"},
			{Op: "<", Version: "2.0"},
		}, constraint.Groups[0])
	})

	t.Run("should split space separated clauses into one group", func(t *testing.T) {
		t.Parallel()

		// when
		constraint, err := entities.ParseConstraint(">= 1.2 <2.0")

		// then
		require.NoError(t, err)
		require.Len(t, constraint.Groups, 1)
		assert.Equal(t, []entities.Clause{
			{Op: ">=", Version: "1.2"},
			{Op: "<", Version: "2.0"},
		}, constraint.Groups[0])
	})

	t.Run("should split alternatives into groups", func(t *testing.T) {
		t.Parallel()

		// when
		constraint, err := entities.ParseConstraint("^1.0 || ^2.0")

		// then
		require.NoError(t, err)
		assert.Len(t, constraint.Groups, 2)
	})

	t.Run("should read a single equals sign as equality", func(t *testing.T) {
		t.Parallel()

		// when
		constraint, err := entities.ParseConstraint("=1.2.3")

		// then
		require.NoError(t, err)
		assert.Equal(t, "==", constraint.Groups[0][0].Op)
	})

	t.Run("should reject an operator without a version", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseConstraint(">=")

		// then
		assert.Error(t, err)
	})

	t.Run("should reject an empty clause", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseConstraint(">=1.0,")

		// then
		assert.Error(t, err)
	})
}

func TestConstraintExactVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     string
		expected string
		ok       bool
	}{
		{name: "double equals", expr: "==1.2.3", expected: "1.2.3", ok: true},
		{name: "arbitrary equality", expr: "===1.2.3", expected: "1.2.3", ok: true},
		{name: "bare version", expr: "1.2.3", expected: "1.2.3", ok: true},
		{name: "wildcard is a range", expr: "==1.2.*", ok: false},
		{name: "lower bound is a range", expr: ">=1.2.3", ok: false},
		{name: "two clauses are a range", expr: "==1.2.3,!=1.2.4", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			constraint, err := entities.ParseConstraint(tt.expr)
			require.NoError(t, err)

			// when
			version, ok := constraint.ExactVersion()

			// then
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, version)
		})
	}
}

func TestConstraintSatisfies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     string
		version  string
		expected bool
	}{
		{name: "inside a bounded range", expr: ">=1.0,<2.0", version: "1.9.9", expected: true},
		{name: "at the exclusive upper bound", expr: ">=1.0,<2.0", version: "2.0.0", expected: false},
		{name: "lower bound satisfied", expr: ">=2.20.0", version: "2.32.3", expected: true},
		{name: "upper inclusive bound", expr: "<=1.5", version: "1.5.0", expected: true},
		{name: "strictly greater", expr: ">1.5", version: "1.5.0", expected: false},
		{name: "exclusion", expr: "!=1.5.0", version: "1.5.0", expected: false},
		{name: "wildcard match", expr: "==1.*", version: "1.9", expected: true},
		{name: "wildcard mismatch", expr: "==1.*", version: "2.0", expected: false},
		{name: "compatible release three segments", expr: "~=1.4.2", version: "1.4.9", expected: true},
		{name: "compatible release three segments upper", expr: "~=1.4.2", version: "1.5.0", expected: false},
		{name: "compatible release two segments", expr: "~=1.4", version: "1.9.0", expected: true},
		{name: "compatible release two segments upper", expr: "~=1.4", version: "2.0.0", expected: false},
		{name: "caret major", expr: "^1.2.3", version: "1.9.0", expected: true},
		{name: "caret major upper", expr: "^1.2.3", version: "2.0.0", expected: false},
		{name: "caret zero major", expr: "^0.3", version: "0.4.0", expected: false},
		{name: "caret zero major inside", expr: "^0.3", version: "0.3.7", expected: true},
		{name: "tilde minor", expr: "~1.2", version: "1.2.9", expected: true},
		{name: "tilde minor upper", expr: "~1.2", version: "1.3.0", expected: false},
		{name: "alternatives", expr: "^1.0 || ^2.0", version: "2.1.0", expected: true},
		{name: "pre-release below its release bound", expr: "<2.0.0", version: "2.0.0rc1", expected: true},
		{name: "arbitrary equality is textual", expr: "===1.0", version: "1.0", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			constraint, err := entities.ParseConstraint(tt.expr)
			require.NoError(t, err)

			// when
			satisfied, lexicographic := constraint.Satisfies(tt.version)

			// then
			assert.Equal(t, tt.expected, satisfied)
			assert.False(t, lexicographic)
		})
	}

	t.Run("should flag lexicographic comparisons", func(t *testing.T) {
		t.Parallel()

		// given
		constraint, err := entities.ParseConstraint(">=1.0.post1")
		require.NoError(t, err)

		// when
		satisfied, lexicographic := constraint.Satisfies("1.0.post2")

		// then
		assert.True(t, satisfied)
		assert.True(t, lexicographic)
	})
}
