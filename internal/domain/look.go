package domain

import "fmt"

// LookBlobKey builds the blob-store key for a saved look image,
// e.g. "look_1712345678901_front".
func LookBlobKey(id int64, view string) string {
	return fmt.Sprintf("look_%d_%s", id, view)
}

// ImageRef points at one saved image: either a blob-store key (current
// format) or an inline data URL (legacy format, migrated on load).
type ImageRef struct {
	Key string `json:"key,omitempty"`
	Src string `json:"src,omitempty"`
}

// SavedLook is one persisted try-on result. IDs are save timestamps in
// milliseconds, so concurrent saves never collide on blob keys.
// Legacy records stored raw data URLs in Images instead of Front/Back refs.
type SavedLook struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Date   string   `json:"date"`
	Front  ImageRef `json:"front"`
	Back   ImageRef `json:"back"`
	Images []string `json:"images,omitempty"`
}

// FrontKey returns the blob key for the look's front image
func (l *SavedLook) FrontKey() string {
	return LookBlobKey(l.ID, "front")
}

// BackKey returns the blob key for the look's back image
func (l *SavedLook) BackKey() string {
	return LookBlobKey(l.ID, "back")
}
