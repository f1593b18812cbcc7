package layout

import "strings"

// Wrap greedily fills lines of at most maxChars display cells, counting one
// cell for the space between tokens on the same line. A token that alone
// exceeds the budget is hard-split at a rune boundary rather than dropped;
// every split fragment except the last occupies a full line of its own.
func Wrap[T Token[T]](tokens []T, maxChars int) [][]T {
	if maxChars < 1 {
		maxChars = 1
	}
	var lines [][]T
	var line []T
	width := 0
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, line)
			line = nil
			width = 0
		}
	}
	for _, tok := range tokens {
		w := cellWidth(tok.TokenText())
		if w > maxChars {
			flush()
			rest := tok
			for cellWidth(rest.TokenText()) > maxChars && len([]rune(rest.TokenText())) > 1 {
				head, tail := rest.SplitAt(splitPoint(rest.TokenText(), maxChars))
				lines = append(lines, []T{head})
				rest = tail
			}
			line = []T{rest}
			width = cellWidth(rest.TokenText())
			continue
		}
		if width > 0 && width+1+w > maxChars {
			flush()
		}
		if width > 0 {
			width++
		}
		line = append(line, tok)
		width += w
	}
	flush()
	return lines
}

// splitPoint returns the largest rune count whose prefix fits maxCells.
// Always at least one rune so hard splitting makes progress.
func splitPoint(text string, maxCells int) int {
	count := 0
	cells := 0
	for _, r := range text {
		w := cellWidth(string(r))
		if count > 0 && cells+w > maxCells {
			break
		}
		cells += w
		count++
	}
	return count
}

// LineText joins a wrapped line's tokens with single spaces.
func LineText[T Token[T]](line []T) string {
	parts := make([]string, len(line))
	for i, tok := range line {
		parts[i] = tok.TokenText()
	}
	return strings.Join(parts, " ")
}
