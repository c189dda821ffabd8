// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package libfinder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// localSearch looks for lib<library>.so* in the current working
// directory. Matches are tried in lexicographical order so the result
// is deterministic; the first regular file wins. Broken symlinks and
// directories are skipped.
func localSearch(_ context.Context, library string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}

	pattern := filepath.Join(cwd, "lib"+library+".so*")

	matches, err := filepath.Glob(pattern)
	if err != nil {
		// Glob metacharacters in the library name. Malformed names
		// simply do not match anything.
		return "", nil
	}

	slices.Sort(matches)

	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		path, err := finalPath(match)
		if err != nil {
			continue
		}

		return path, nil
	}

	return "", nil
}
