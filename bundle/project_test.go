// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"testing"

	"github.com/absfs/memfs"

	zeditor "github.com/zeditor/core"
	"github.com/zeditor/core/timecode"
)

func newTestProject() *zeditor.Project {
	p := zeditor.NewProject("demo")
	asset := zeditor.NewMediaAsset("clip.mov", "/media/clip.mov", timecode.FromSeconds(60), 1920, 1080, 24, true, zeditor.Rotation0)
	p.Library.Add(asset)

	track := zeditor.NewTrack("V1", zeditor.TrackVideo)
	clip := zeditor.NewClip(asset.ID, timecode.MustNew(timecode.Zero, timecode.FromSeconds(10)), timecode.MustNew(timecode.Zero, timecode.FromSeconds(10)))
	if err := track.AddClip(clip); err != nil {
		panic(err)
	}
	p.Timeline.AddTrack(track)
	return p
}

func TestSaveLoadProjectBundleRoundTrip(t *testing.T) {
	mfs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS: %v", err)
	}
	fsys := NewMemFSAdapter(mfs)

	original := newTestProject()
	if err := SaveProject(fsys, original, "/project.zproj"); err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	loaded, err := LoadProject(fsys, "/project.zproj")
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}

	if loaded.Name != original.Name {
		t.Errorf("Name = %q, want %q", loaded.Name, original.Name)
	}
	if loaded.Library.Len() != 1 {
		t.Fatalf("Library.Len() = %d, want 1", loaded.Library.Len())
	}
	if loaded.Timeline.TrackCount() != 1 {
		t.Fatalf("TrackCount() = %d, want 1", loaded.Timeline.TrackCount())
	}
	if loaded.History == nil || loaded.History.CanUndo() {
		t.Errorf("loaded project must start with empty history")
	}

	track, err := loaded.Timeline.Track(0)
	if err != nil {
		t.Fatalf("Track(0): %v", err)
	}
	if track.Len() != 1 {
		t.Fatalf("track.Len() = %d, want 1", track.Len())
	}
}

func TestSaveLoadProjectJSONRoundTrip(t *testing.T) {
	mfs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS: %v", err)
	}
	fsys := NewMemFSAdapter(mfs)

	original := newTestProject()
	if err := SaveProjectJSON(fsys, original, "/project.zproj.json"); err != nil {
		t.Fatalf("SaveProjectJSON: %v", err)
	}

	loaded, err := LoadProjectJSON(fsys, "/project.zproj.json")
	if err != nil {
		t.Fatalf("LoadProjectJSON: %v", err)
	}

	origAssets := original.Library.Assets()
	loadedAssets := loaded.Library.Assets()
	if len(loadedAssets) != 1 || loadedAssets[0].ID != origAssets[0].ID {
		t.Fatalf("asset id mismatch after round trip")
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	mfs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS: %v", err)
	}
	fsys := NewMemFSAdapter(mfs)

	if _, err := LoadProject(fsys, "/nope.zproj"); err == nil {
		t.Fatal("expected error loading missing bundle")
	}
}

func TestDecodeProjectRejectsGarbage(t *testing.T) {
	if _, err := decodeProject([]byte("not json"), "/x"); err == nil {
		t.Fatal("expected error decoding garbage")
	}
}
