// SPDX-License-Identifier: Apache-2.0

// zeditorctl is a small scriptable front end over the zeditor core: create
// projects, inspect them, and apply individual edit operations from the
// command line. It is not the GUI shell spec.md §1 calls out of scope —
// it is a headless driver useful for scripting and for the render
// pipeline's profiling toggle.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zeditorctl",
		Short: "Inspect and script zeditor projects from the command line",
	}
	root.AddCommand(
		newNewCmd(),
		newInfoCmd(),
		newCutCmd(),
		newMoveCmd(),
		newResizeCmd(),
		newRenderProfileCmd(),
	)
	return root
}
