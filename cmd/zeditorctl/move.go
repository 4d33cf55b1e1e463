// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	zeditor "github.com/zeditor/core"
	"github.com/zeditor/core/algorithms"
	"github.com/zeditor/core/timecode"
)

func newMoveCmd() *cobra.Command {
	var (
		out       string
		clipIDStr string
		toSeconds float64
		grouped   bool
	)

	cmd := &cobra.Command{
		Use:   "move <project>",
		Short: "Move a clip to a new start position, trimming overlaps on its track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clipID, err := uuid.Parse(clipIDStr)
			if err != nil {
				return fmt.Errorf("invalid --clip: %w", err)
			}

			p, err := loadProject(args[0])
			if err != nil {
				return err
			}

			newPos := timecode.FromSeconds(toSeconds)
			desc := fmt.Sprintf("move clip %s to %s", clipID, newPos)

			err = p.History.Execute(&p.Timeline, desc, func(tl *zeditor.Timeline) error {
				if grouped {
					return algorithms.MoveClipGrouped(tl, clipID, newPos)
				}
				trackIndex, _, ok := tl.FindClip(clipID)
				if !ok {
					return &zeditor.ClipNotFoundError{ID: clipID}
				}
				track, err := tl.Track(trackIndex)
				if err != nil {
					return err
				}
				return algorithms.MoveClip(track, clipID, track, newPos)
			})
			if err != nil {
				return err
			}

			if err := saveProject(p, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "move applied, saved to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "path to write the edited project to (required)")
	cmd.Flags().StringVar(&clipIDStr, "clip", "", "clip id to move (required)")
	cmd.Flags().Float64Var(&toSeconds, "to", 0, "new start position, in seconds")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "move every clip sharing this clip's link id by the same delta")
	cmd.MarkFlagRequired("out")
	cmd.MarkFlagRequired("clip")
	return cmd
}
