// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"

	zeditor "github.com/zeditor/core"
	"github.com/zeditor/core/bundle"
)

// loadProject opens a project bundle or flat JSON document, dispatching on
// the path's extension: a trailing ".json" is treated as the flat format
// SaveProjectJSON writes, anything else as the zip bundle SaveProject
// writes.
func loadProject(path string) (*zeditor.Project, error) {
	if strings.HasSuffix(path, ".json") {
		return bundle.LoadProjectJSON(bundle.DefaultFS, path)
	}
	return bundle.LoadProject(bundle.DefaultFS, path)
}

// saveProject is loadProject's write-side counterpart.
func saveProject(p *zeditor.Project, path string) error {
	if strings.HasSuffix(path, ".json") {
		return bundle.SaveProjectJSON(bundle.DefaultFS, p, path)
	}
	return bundle.SaveProject(bundle.DefaultFS, p, path)
}
