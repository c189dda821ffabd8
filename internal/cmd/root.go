// SPDX-FileCopyrightText: 2026 Carlos Jenkins <carlos@jenkins.co.cr>
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cjenkins/libfinder"
)

func newRootCommand() *cobra.Command {
	var (
		printSoname bool
		debug       bool
	)

	rootCmd := &cobra.Command{
		Use:           "libfinder <library>...",
		Short:         "Find shared libraries by name and print their resolved paths",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, library := range args {
				path, err := libfinder.FindLibrary(cmd.Context(), library)
				if err != nil {
					return err
				}

				if printSoname {
					soname, err := libfinder.Soname(cmd.Context(), path)
					if err != nil {
						return err
					}

					fmt.Fprintln(cmd.OutOrStdout(), path, soname)

					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			return nil
		},
	}

	rootCmd.Flags().BoolVar(
		&printSoname, "soname", false,
		"print the SONAME tag next to each resolved path",
	)
	rootCmd.Flags().BoolVar(
		&debug, "debug", false,
		"enable debug output",
	)

	return rootCmd
}

// Execute runs the CLI command with the given arguments.
func Execute(ctx context.Context, args []string) error {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}
