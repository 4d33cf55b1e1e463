// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	zeditor "github.com/zeditor/core"
)

func newNewCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create an empty project and save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := zeditor.NewProject(args[0])
			if err := saveProject(p, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %q at %s\n", p.Name, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "path to write the project to (required)")
	cmd.MarkFlagRequired("out")
	return cmd
}
