// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

// Package cmd provides the CLI entry point for libfinder. It handles
// flag parsing, logging setup and output handling. The resolution
// logic itself lives in the root package.
package cmd
