// Package assdoc serializes normalized cues into an Advanced SubStation
// (ASS) description consumed by the external video compositor.
//
// The document carries one named style whose fields come verbatim from the
// validated job style, followed by one dialogue event per rendered unit.
// Cues with word timings are encoded as karaoke fill tokens or as layered
// active-word events depending on the requested highlight style; cues
// without word timings always degrade to a single static event.
package assdoc
