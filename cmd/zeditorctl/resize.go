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

func newResizeCmd() *cobra.Command {
	var (
		out         string
		clipIDStr   string
		endSeconds  float64
		grouped     bool
		warnOnBound bool
	)

	cmd := &cobra.Command{
		Use:   "resize <project>",
		Short: "Resize a clip's out point, failing if it would overlap another clip",
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

			newEnd := timecode.FromSeconds(endSeconds)
			desc := fmt.Sprintf("resize clip %s to end %s", clipID, newEnd)

			err = p.History.Execute(&p.Timeline, desc, func(tl *zeditor.Timeline) error {
				if grouped {
					return algorithms.ResizeClipGrouped(tl, clipID, newEnd)
				}
				trackIndex, _, ok := tl.FindClip(clipID)
				if !ok {
					return &zeditor.ClipNotFoundError{ID: clipID}
				}
				track, err := tl.Track(trackIndex)
				if err != nil {
					return err
				}
				if err := algorithms.ResizeClip(track, clipID, newEnd); err != nil {
					return err
				}
				if warnOnBound {
					if clip, err := track.Get(clipID); err == nil {
						if asset, err := p.Library.Get(clip.AssetID); err == nil &&
							algorithms.ExceedsAssetBounds(clip, asset.Duration) {
							fmt.Fprintf(cmd.ErrOrStderr(), "warning: resize exceeds asset bounds for clip %s\n", clipID)
						}
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			if err := saveProject(p, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "resize applied, saved to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "path to write the edited project to (required)")
	cmd.Flags().StringVar(&clipIDStr, "clip", "", "clip id to resize (required)")
	cmd.Flags().Float64Var(&endSeconds, "end", 0, "new out point, in seconds")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "resize every clip sharing this clip's link id")
	cmd.Flags().BoolVar(&warnOnBound, "warn-asset-bounds", false, "warn when the new range exceeds the source asset's duration")
	cmd.MarkFlagRequired("out")
	cmd.MarkFlagRequired("clip")
	return cmd
}
