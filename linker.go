// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package libfinder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"regexp"
)

// linkerSearch provokes the C linker into revealing the library path.
//
// It runs the linker with symbol tracing enabled against the requested
// library. The link fails since there is no program to link, but the
// trace output names the library file the linker picked up.
func linkerSearch(ctx context.Context, library string) (retPath string, retErr error) {
	linker, err := lookupLinker()
	if err != nil {
		return "", nil
	}

	tmp, err := os.CreateTemp("", "libfinder-*")
	if err != nil {
		return "", fmt.Errorf("create link target: %w", err)
	}

	defer func() {
		_ = tmp.Close()

		// The linker unlinks its unfinished output file itself on
		// failure, which is the normal outcome here.
		err := os.Remove(tmp.Name())
		if err != nil && !errors.Is(err, fs.ErrNotExist) && retErr == nil {
			retErr = fmt.Errorf("remove link target: %w", err)
		}
	}()

	output, err := runTool(ctx, linker, "-Wl,-t", "-o", tmp.Name(), "-l"+library)
	if err != nil {
		return "", err
	}

	candidate := parseLinkerTrace(output, library)
	if candidate == "" {
		return "", nil
	}

	path, err := finalPath(candidate)
	if err != nil {
		return "", nil
	}

	return path, nil
}

func lookupLinker() (string, error) {
	linker, err := exec.LookPath("cc")
	if err != nil {
		linker, err = exec.LookPath("gcc")
	}

	return linker, err
}

// parseLinkerTrace returns the first traced token naming a file of the
// requested library. Empty string if nothing matches.
func parseLinkerTrace(trace, library string) string {
	expr := regexp.MustCompile(
		`[^()\s]*lib` + regexp.QuoteMeta(library) + `\.[^()\s]*`,
	)

	return expr.FindString(trace)
}
