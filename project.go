// SPDX-License-Identifier: Apache-2.0

package zeditor

import (
	"github.com/google/uuid"

	"github.com/zeditor/core/history"
)

// Project is the top-level aggregate: a Timeline, its SourceLibrary, and
// the CommandHistory recording edits made to the timeline. History is not
// part of the serialized unit (spec.md §3).
type Project struct {
	Name     string
	Timeline *Timeline
	Library  *SourceLibrary
	History  *history.History[*Timeline]
}

// NewProject returns an empty, named project.
func NewProject(name string) *Project {
	return &Project{
		Name:     name,
		Timeline: NewTimeline(),
		Library:  NewSourceLibrary(),
		History:  history.New[*Timeline](),
	}
}

// RemoveAsset removes the asset with the given id from the library.
//
// If cascade is false and any clip on the timeline still references the
// asset, the removal is refused with AssetInUseError{Count}. If cascade is
// true, every referencing clip is removed first, then the asset itself, as
// a single history entry — the "recommended default, with confirmation
// surfaced by the GUI" policy from spec.md §7.
func (p *Project) RemoveAsset(id uuid.UUID, cascade bool) error {
	if _, err := p.Library.Get(id); err != nil {
		return err
	}

	count := p.Timeline.CountAssetReferences(id)
	if count > 0 && !cascade {
		return &AssetInUseError{ID: id, Count: count}
	}

	desc := "remove asset"
	if count > 0 {
		desc = "remove asset and dependent clips"
	}

	err := p.History.Execute(&p.Timeline, desc, func(tl *Timeline) error {
		tl.RemoveAssetReferences(id)
		return nil
	})
	if err != nil {
		return err
	}

	return p.Library.Remove(id)
}
