// Package captions defines the cue model shared by the subtitle serializer
// and the frame renderer.
//
// The package owns the three transforms that must run before either output
// path sees a cue: sanitizing text against ASS control sequences, resolving
// temporal overlaps between neighboring cues, and validating the immutable
// style configuration a job renders with.
package captions
