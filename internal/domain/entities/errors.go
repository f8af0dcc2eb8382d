package entities

import "fmt"

// NotFoundError is returned when no supported manifest can be located.
type NotFoundError struct {
	Path   string
	Reason string
}

func (e *NotFoundError) Error() string {
	path := e.Path
	if path == "" {
		path = "."
	}
	if e.Reason != "" {
		return fmt.Sprintf("no manifest found at %q: %s", path, e.Reason)
	}
	return fmt.Sprintf("no manifest found at %q", path)
}

// ParseError is returned when a manifest exists but cannot be decoded at all.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LookupFailure is returned by a package index when the latest version cannot be fetched.
// StatusCode is zero for transport failures.
type LookupFailure struct {
	Name       string
	StatusCode int
	Err        error
}

func (e *LookupFailure) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lookup of %q failed: unexpected status code %d", e.Name, e.StatusCode)
	}
	return fmt.Sprintf("lookup of %q failed: %v", e.Name, e.Err)
}

func (e *LookupFailure) Unwrap() error {
	return e.Err
}
