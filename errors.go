// SPDX-License-Identifier: Apache-2.0

// Package zeditor is the timeline data model for a non-linear video editor:
// MediaAsset, Clip, Track, Timeline, SourceLibrary, and the Project
// aggregate that owns them. Edit algorithms live in the sibling algorithms
// package; this package only owns the data and the invariants it enforces
// on direct mutation (Track.AddClip, Track.RemoveClip).
package zeditor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zeditor/core/history"
)

// ClipNotFoundError reports that a referenced clip does not exist.
type ClipNotFoundError struct {
	ID uuid.UUID
}

func (e *ClipNotFoundError) Error() string {
	return fmt.Sprintf("clip not found: %s", e.ID)
}

// TrackNotFoundError reports an out-of-range track index.
type TrackNotFoundError struct {
	Index int
}

func (e *TrackNotFoundError) Error() string {
	return fmt.Sprintf("track not found at index %d", e.Index)
}

// AssetNotFoundError reports that a referenced asset does not exist.
type AssetNotFoundError struct {
	ID uuid.UUID
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("asset not found: %s", e.ID)
}

// ClipOverlapError reports that an operation would have produced two
// overlapping clips on the same track.
type ClipOverlapError struct {
	Position string
}

func (e *ClipOverlapError) Error() string {
	return fmt.Sprintf("clip overlap at %s", e.Position)
}

// AssetInUseError reports that an asset removal was refused because clips
// still reference it.
type AssetInUseError struct {
	ID    uuid.UUID
	Count int
}

func (e *AssetInUseError) Error() string {
	return fmt.Sprintf("asset %s is referenced by %d clip(s)", e.ID, e.Count)
}

// SerializationError wraps a failure encoding or decoding a Project.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Cause)
}

// Unwrap returns the wrapped cause.
func (e *SerializationError) Unwrap() error {
	return e.Cause
}

// IOError wraps a failure reading or writing project storage.
type IOError struct {
	Op    string
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the wrapped cause.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Sentinel errors with no associated data.
var (
	// ErrNothingToUndo is returned when Undo is called on an empty undo stack.
	ErrNothingToUndo = history.ErrNothingToUndo
	// ErrNothingToRedo is returned when Redo is called on an empty redo stack.
	ErrNothingToRedo = history.ErrNothingToRedo
	// ErrMediaReferenceNotFound reports that a media reference does not
	// resolve. No function in this module currently returns it.
	ErrMediaReferenceNotFound = errors.New("media reference not found")
)
