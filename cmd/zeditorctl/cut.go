// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	zeditor "github.com/zeditor/core"
	"github.com/zeditor/core/algorithms"
	"github.com/zeditor/core/timecode"
)

func newCutCmd() *cobra.Command {
	var (
		out        string
		trackIndex int
		atSeconds  float64
		grouped    bool
	)

	cmd := &cobra.Command{
		Use:   "cut <project>",
		Short: "Cut the clip covering a position on a track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args[0])
			if err != nil {
				return err
			}

			position := timecode.FromSeconds(atSeconds)
			desc := fmt.Sprintf("cut track %d at %s", trackIndex, position)

			err = p.History.Execute(&p.Timeline, desc, func(tl *zeditor.Timeline) error {
				if grouped {
					return algorithms.CutAtGrouped(tl, trackIndex, position)
				}
				track, err := tl.Track(trackIndex)
				if err != nil {
					return err
				}
				_, _, err = algorithms.CutAt(track, position)
				return err
			})
			if err != nil {
				return err
			}

			if err := saveProject(p, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cut applied, saved to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "path to write the edited project to (required)")
	cmd.Flags().IntVar(&trackIndex, "track", 0, "track index")
	cmd.Flags().Float64Var(&atSeconds, "at", 0, "cut position, in seconds")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "cut every clip sharing this clip's link id")
	cmd.MarkFlagRequired("out")
	return cmd
}
