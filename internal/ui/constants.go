// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for slider rendering.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// TrackPadding is the number of cells left empty on each side of a track
	// so handles at 0% and 100% are fully visible.
	TrackPadding = 1

	// MinTrackWidth is the narrowest track that still gives a usable drag.
	MinTrackWidth = 10

	// HandleHitRadius is how many cells away from a handle a press still
	// grabs it.
	HandleHitRadius = 1

	// EventLogSize is the number of event lines kept by the demo.
	EventLogSize = 200
)
