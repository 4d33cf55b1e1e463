// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeditor/core/config"
)

func newRenderProfileCmd() *cobra.Command {
	var sampleOutput string

	cmd := &cobra.Command{
		Use:   "render-profile",
		Short: "Show the render-profiling configuration read from ZEDITOR_PROFILE / ZEDITOR_PROFILE_DIR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := config.LoadRenderProfile()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "enabled: %t\n", profile.Enabled)
			fmt.Fprintf(out, "dir: %q\n", profile.Dir)
			if sampleOutput != "" {
				fmt.Fprintf(out, "profile path for %q: %s\n", sampleOutput, profile.ProfilePath(sampleOutput))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sampleOutput, "for-output", "", "render output path to resolve a profile path for")
	return cmd
}
