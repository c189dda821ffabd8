// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package libfinder

import "errors"

var (
	// ErrLibraryNotFound is returned if no resolution strategy found a
	// matching shared library. This is the expected outcome for a
	// library that is not installed, not a system failure.
	ErrLibraryNotFound = errors.New("shared library not found")

	// ErrNoSoname is returned if a file carries no SONAME tag in its
	// dynamic section, or if no inspection tool is available to read it.
	ErrNoSoname = errors.New("no SONAME tag found")

	// ErrEmptyLibraryName is returned if an empty library name is given.
	ErrEmptyLibraryName = errors.New("library name must not be empty")

	// ErrNotRegularFile is returned if a path given to [Soname] exists
	// but does not refer to a regular file.
	ErrNotRegularFile = errors.New("not a regular file")
)

// ToolExecError is returned if an external tool process could not be
// started at all. It indicates a broken environment, not a missing
// library, and so is surfaced to the caller instead of being treated
// as an inconclusive lookup.
type ToolExecError struct {
	Tool string
	Err  error
}

// Error implements the [error] interface.
func (e *ToolExecError) Error() string {
	return "exec " + e.Tool + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*ToolExecError) Is(other error) bool {
	_, ok := other.(*ToolExecError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ToolExecError) Unwrap() error {
	return e.Err
}
