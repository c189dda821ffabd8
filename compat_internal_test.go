// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package libfinder

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// testContext is the Go 1.21 equivalent of testing.T.Context (Go 1.24).
func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}

// testChdir is the Go 1.21 equivalent of testing.T.Chdir (Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()

	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	oldpwd, hadPwd := os.LookupEnv("PWD")
	if abs, err := filepath.Abs(dir); err == nil {
		os.Setenv("PWD", abs)
	}

	t.Cleanup(func() {
		if hadPwd {
			os.Setenv("PWD", oldpwd)
		} else {
			os.Unsetenv("PWD")
		}

		if err := os.Chdir(oldwd); err != nil {
			t.Fatal(err)
		}
	})
}
