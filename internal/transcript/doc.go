// Package transcript loads transcription output into the cue model.
// Supported inputs are WhisperX-style JSON (sentence segments with optional
// per-word timings) and plain SRT.
package transcript
