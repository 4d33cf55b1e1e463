// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/bytedance/sonic"

	zeditor "github.com/zeditor/core"
)

// jsonProject is the wire shape for a saved Project: {name, timeline,
// source_library} per spec.md §4.8/§6. CommandHistory is never part of it.
type jsonProject struct {
	Name          string              `json:"name"`
	Timeline      *zeditor.Timeline   `json:"timeline"`
	SourceLibrary *zeditor.SourceLibrary `json:"source_library"`
}

// contentEntryName is the file inside a project bundle holding the
// serialized project.
const contentEntryName = "content.json"

// SaveProject serializes project as a zip bundle at path on fsys, using
// sonic for the JSON payload. CommandHistory is excluded from the
// serialized unit (spec.md §4.8).
func SaveProject(fsys FileSystem, project *zeditor.Project, path string) error {
	data, err := sonic.Marshal(jsonProject{
		Name:          project.Name,
		Timeline:      project.Timeline,
		SourceLibrary: project.Library,
	})
	if err != nil {
		return &BundleError{Operation: "save", Path: path, Message: "failed to serialize project", Cause: err}
	}

	f, err := fsys.Create(path)
	if err != nil {
		return &BundleError{Operation: "save", Path: path, Message: "failed to create file", Cause: err}
	}
	defer f.Close()

	w := zip.NewWriter(f)
	entry, err := w.Create(contentEntryName)
	if err != nil {
		return &BundleError{Operation: "save", Path: path, Message: "failed to open zip entry", Cause: err}
	}
	if _, err := entry.Write(data); err != nil {
		return &BundleError{Operation: "save", Path: path, Message: "failed to write zip entry", Cause: err}
	}
	return w.Close()
}

// LoadProject reads a bundle written by SaveProject. The returned Project's
// History is always a fresh, empty one (spec.md §4.8: history is not
// persisted and is reset on load).
func LoadProject(fsys FileSystem, path string) (*zeditor.Project, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &BundleError{Operation: "load", Path: path, Message: "failed to open file", Cause: err}
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, &BundleError{Operation: "load", Path: path, Message: "failed to read file", Cause: err}
	}

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, &BundleError{Operation: "load", Path: path, Message: "failed to open zip", Cause: err}
	}

	entry, err := zr.Open(contentEntryName)
	if err != nil {
		return nil, &BundleError{Operation: "load", Path: path, Message: "bundle has no " + contentEntryName, Cause: err}
	}
	defer entry.Close()

	data, err := io.ReadAll(entry)
	if err != nil {
		return nil, &BundleError{Operation: "load", Path: path, Message: "failed to read content entry", Cause: err}
	}

	return decodeProject(data, path)
}

// SaveProjectJSON writes project as a flat, uncompressed JSON document —
// for callers who want a plain `.zproj.json` file instead of a zip bundle.
func SaveProjectJSON(fsys FileSystem, project *zeditor.Project, path string) error {
	data, err := sonic.Marshal(jsonProject{
		Name:          project.Name,
		Timeline:      project.Timeline,
		SourceLibrary: project.Library,
	})
	if err != nil {
		return &BundleError{Operation: "save", Path: path, Message: "failed to serialize project", Cause: err}
	}
	if err := fsys.WriteFile(path, data, 0o644); err != nil {
		return &BundleError{Operation: "save", Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}

// LoadProjectJSON is the flat-file counterpart to SaveProjectJSON.
func LoadProjectJSON(fsys FileSystem, path string) (*zeditor.Project, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, &BundleError{Operation: "load", Path: path, Message: "failed to read file", Cause: err}
	}
	return decodeProject(data, path)
}

func decodeProject(data []byte, path string) (*zeditor.Project, error) {
	var j jsonProject
	if err := sonic.Unmarshal(data, &j); err != nil {
		return nil, &BundleError{Operation: "load", Path: path, Message: "failed to parse project", Cause: err}
	}

	p := zeditor.NewProject(j.Name)
	if j.Timeline != nil {
		p.Timeline = j.Timeline
	}
	if j.SourceLibrary != nil {
		p.Library = j.SourceLibrary
	}
	return p, nil
}
