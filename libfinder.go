// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package libfinder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// A strategy tries to resolve a library name to a path. It returns an
// empty path if it is inconclusive, which is not an error. Errors are
// reserved for broken environments, like a process that cannot be
// spawned.
type strategy struct {
	name    string
	resolve func(ctx context.Context, library string) (string, error)
}

// strategies are tried in this fixed order. First hit wins.
var strategies = []strategy{
	{"ldconfig", ldconfigSearch},
	{"linker trace", linkerSearch},
	{"working directory", localSearch},
}

// FindLibrary resolves a shared library name to the absolute,
// symlink-resolved path of its file.
//
// The library name is given bare, without the "lib" prefix and without
// the ".so" extension, e.g. "m" for libm.
//
// It returns [ErrLibraryNotFound] if no strategy found a match, which
// is the expected outcome for a library that is not present on the
// system. [ErrEmptyLibraryName] is returned for an empty name.
func FindLibrary(ctx context.Context, library string) (string, error) {
	if library == "" {
		return "", ErrEmptyLibraryName
	}

	for _, s := range strategies {
		path, err := s.resolve(ctx, library)
		if err != nil {
			return "", fmt.Errorf("%s: %w", s.name, err)
		}

		if path != "" {
			slog.Debug("Library resolved",
				slog.String("library", library),
				slog.String("strategy", s.name),
				slog.String("path", path),
			)

			return path, nil
		}

		slog.Debug("Strategy inconclusive",
			slog.String("library", library),
			slog.String("strategy", s.name),
		)
	}

	return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, library)
}

// FindLibraries resolves multiple library names concurrently. Each name
// runs its own full strategy cascade.
//
// The returned map contains an entry for each library that was found.
// Names that are not present on the system are left out, which is not
// an error. Any other failure cancels the remaining lookups and is
// returned.
func FindLibraries(
	ctx context.Context,
	libraries ...string,
) (map[string]string, error) {
	paths := make([]string, len(libraries))

	eg, ctx := errgroup.WithContext(ctx)

	for idx, library := range libraries {
		idx, library := idx, library

		eg.Go(func() error {
			path, err := FindLibrary(ctx, library)
			if err != nil {
				if errors.Is(err, ErrLibraryNotFound) {
					return nil
				}

				return err
			}

			paths[idx] = path

			return nil
		})
	}

	err := eg.Wait()
	if err != nil {
		return nil, err
	}

	found := make(map[string]string)

	for idx, library := range libraries {
		if paths[idx] != "" {
			found[library] = paths[idx]
		}
	}

	return found, nil
}
