// SPDX-License-Identifier: Apache-2.0

package zeditor

import (
	"encoding/json"

	"github.com/google/uuid"
)

// SourceLibrary is an append-only registry of MediaAssets looked up by ID.
// Add does not reject an asset whose ID is already present; Get and Remove
// act on the first asset with a matching ID. Lookup is O(n), acceptable at
// the scale a single edit project reaches (spec.md §4.6).
type SourceLibrary struct {
	assets []MediaAsset
}

// NewSourceLibrary returns an empty library.
func NewSourceLibrary() *SourceLibrary {
	return &SourceLibrary{}
}

// Add appends a new asset to the library.
func (l *SourceLibrary) Add(asset MediaAsset) {
	l.assets = append(l.assets, asset)
}

// Get returns the asset with the given id.
func (l *SourceLibrary) Get(id uuid.UUID) (MediaAsset, error) {
	for _, a := range l.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return MediaAsset{}, &AssetNotFoundError{ID: id}
}

// Remove deletes the asset with the given id.
func (l *SourceLibrary) Remove(id uuid.UUID) error {
	for i, a := range l.assets {
		if a.ID == id {
			l.assets = append(l.assets[:i], l.assets[i+1:]...)
			return nil
		}
	}
	return &AssetNotFoundError{ID: id}
}

// Assets returns the full asset list in library order. The returned slice
// is owned by the caller; mutating it does not affect the library.
func (l *SourceLibrary) Assets() []MediaAsset {
	out := make([]MediaAsset, len(l.assets))
	copy(out, l.assets)
	return out
}

// Len returns the number of assets in the library.
func (l *SourceLibrary) Len() int {
	return len(l.assets)
}

// jsonSourceLibrary is SourceLibrary's wire shape.
type jsonSourceLibrary struct {
	Assets []MediaAsset `json:"assets"`
}

// MarshalJSON implements json.Marshaler.
func (l *SourceLibrary) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSourceLibrary{Assets: l.Assets()})
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *SourceLibrary) UnmarshalJSON(data []byte) error {
	var j jsonSourceLibrary
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	l.assets = j.Assets
	return nil
}

// Clone returns a deep copy of the library.
func (l *SourceLibrary) Clone() *SourceLibrary {
	out := &SourceLibrary{assets: make([]MediaAsset, len(l.assets))}
	for i, a := range l.assets {
		out.assets[i] = a.Clone()
	}
	return out
}
