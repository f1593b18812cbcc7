// Package render rasterizes subtitle overlay frames for arbitrary
// timestamps. A Renderer owns a per-instance cache keyed by the active
// (cue, word) pair, so an external frame loop calling it tens of times per
// second of footage only pays for text layout when the highlight actually
// changes. Renderers are not safe for concurrent use; give each encode job
// its own instance.
package render
