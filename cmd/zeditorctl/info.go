// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <project>",
		Short: "Print a project's tracks, clips, and duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "project %q: %d asset(s), %d track(s), duration %s\n",
				p.Name, p.Library.Len(), p.Timeline.TrackCount(), p.Timeline.Duration())

			for i := 0; i < p.Timeline.TrackCount(); i++ {
				track, err := p.Timeline.Track(i)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  track %d %q (%s): %d clip(s)\n", i, track.Name, track.Type, track.Len())
				for _, c := range track.Clips() {
					fmt.Fprintf(out, "    clip %s  [%s, %s)\n", c.ID, c.TimelineRange.Start(), c.TimelineRange.End())
				}
			}
			return nil
		},
	}
}
