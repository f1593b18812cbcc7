package captions

import "strings"

// assControlReplacer neutralizes characters the ASS grammar treats as
// control tokens. Braces open/close override blocks and the backslash
// introduces escape sequences, so user text gets visually similar stand-ins
// instead. Line terminators would split a dialogue event, so they collapse
// to spaces.
var assControlReplacer = strings.NewReplacer(
	"{", "(",
	"}", ")",
	"\\", "/",
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
	"\u2028", " ",
	"\u2029", " ",
)

// Sanitize neutralizes ASS control characters in user-editable text.
// Idempotent: the replacement characters are all fixed points.
func Sanitize(text string) string {
	return strings.TrimSpace(collapseSpaces(assControlReplacer.Replace(text)))
}

// SanitizeCue sanitizes a cue's text and every word text, returning a clone.
func SanitizeCue(c Cue) Cue {
	out := c.Clone()
	out.Text = Sanitize(out.Text)
	for i := range out.Words {
		out.Words[i].Text = Sanitize(out.Words[i].Text)
	}
	return out
}

// SanitizeCues sanitizes a full transcript without touching the input slice.
func SanitizeCues(cues []Cue) []Cue {
	out := make([]Cue, len(cues))
	for i, c := range cues {
		out[i] = SanitizeCue(c)
	}
	return out
}

func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
