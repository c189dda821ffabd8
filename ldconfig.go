// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package libfinder

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
)

// ldconfigSearch queries the dynamic linker cache for the library.
//
// GLIBC's ldconfig -p prints one line per known library:
//
//	libm.so.6 (libc6,x86-64, OS ABI: Linux 2.6.24) => /lib/x86_64-linux-gnu/libm.so.6
//
// The ABI descriptor in parentheses disambiguates multi-arch entries.
func ldconfigSearch(ctx context.Context, library string) (string, error) {
	ldconfig, err := exec.LookPath("ldconfig")
	if err != nil {
		return "", nil
	}

	output, err := runTool(ctx, ldconfig, "-p")
	if err != nil {
		return "", err
	}

	candidate := parseLdconfigOutput(output, library, hostABITag())
	if candidate == "" {
		return "", nil
	}

	path, err := finalPath(candidate)
	if err != nil {
		// The cache may reference files that no longer exist.
		return "", nil
	}

	return path, nil
}

// parseLdconfigOutput returns the path of the first listed library
// whose file name matches lib<library>.* and whose ABI descriptor
// starts with abiTag. Empty string if nothing matches.
func parseLdconfigOutput(output, library, abiTag string) string {
	expr := regexp.MustCompile(
		`\s(lib` + regexp.QuoteMeta(library) + `\.\S+)\s+\(` +
			regexp.QuoteMeta(abiTag),
	)

	loc := expr.FindStringIndex(output)
	if loc == nil {
		return ""
	}

	line := output[loc[0]:]
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	// Keep whatever follows the path association marker.
	parts := strings.Split(line, "=>")

	return strings.TrimSpace(parts[len(parts)-1])
}
