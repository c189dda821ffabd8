// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package libfinder

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
)

var sonameExpr = regexp.MustCompile(`\sSONAME\s+(\S+)`)

// Soname returns the SONAME tag of the shared library at the given
// path, read from the dynamic section via objdump.
//
// The path must refer to an existing regular file, anything else is an
// error. A file without a SONAME tag, for example one that is not a
// shared library at all, returns [ErrNoSoname]. So does a system
// without objdump.
func Soname(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	objdump, err := exec.LookPath("objdump")
	if err != nil {
		return "", ErrNoSoname
	}

	dump, err := runTool(ctx, objdump, "-x", "-j", ".dynamic", path)
	if err != nil {
		return "", err
	}

	return parseSoname(dump)
}

func parseSoname(dump string) (string, error) {
	match := sonameExpr.FindStringSubmatch(dump)
	if match == nil {
		return "", ErrNoSoname
	}

	return match[1], nil
}
