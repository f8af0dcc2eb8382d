package commands

// ResolveAll exports resolveAll for testing.
var ResolveAll = resolveAll //nolint:gochecknoglobals // test export
