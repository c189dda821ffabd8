// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package libfinder

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"
)

const toolTimeout = 5 * time.Second

// runTool executes an external tool and captures its stdout.
//
// The environment is pinned to the C locale since the output format of
// the tools parsed here varies by locale. Stderr is discarded and stdin
// is empty. A tool that starts but exits non-zero is not an error: its
// output is returned as is, since several tools used here are expected
// to fail while still printing what we are after. Only a process that
// cannot be started at all returns a [ToolExecError].
func runTool(ctx context.Context, tool string, args ...string) (string, error) {
	var stdout bytes.Buffer

	ctx, stop := context.WithTimeout(ctx, toolTimeout)
	defer stop()

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Env = []string{"LC_ALL=C", "LANG=C"}
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", &ToolExecError{
				Tool: tool,
				Err:  err,
			}
		}
	}

	return strings.ToValidUTF8(stdout.String(), "�"), nil
}
