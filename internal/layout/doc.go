// Package layout wraps word sequences into display lines under a character
// budget and splits cues whose text cannot fit the configured line count.
//
// Wrapping is generic over the token type so the same algorithm serves plain
// words and timed words. Widths are measured in display cells rather than
// bytes or runes, so double-width scripts wrap under the real visual budget.
package layout
