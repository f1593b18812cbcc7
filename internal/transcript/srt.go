package transcript

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"subforge/internal/captions"
)

// ParseSRT decodes SRT subtitle text into cues without word timings.
// Malformed blocks are skipped; an entirely unparseable input yields an
// empty slice, not an error, matching the engine's drop-don't-abort policy
// for input anomalies.
func ParseSRT(data []byte) []captions.Cue {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	blocks := strings.Split(strings.TrimSpace(content), "\n\n")
	var cues []captions.Cue
	for _, block := range blocks {
		cue, ok := parseSRTBlock(block)
		if !ok {
			continue
		}
		cues = append(cues, cue)
	}
	return cues
}

// LoadSRT reads and parses an SRT file.
func LoadSRT(path string) ([]captions.Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	return ParseSRT(data), nil
}

func parseSRTBlock(block string) (captions.Cue, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	idx := 0
	// Optional numeric index line.
	if idx < len(lines) && isNumeric(strings.TrimSpace(lines[idx])) {
		idx++
	}
	if idx >= len(lines) || !strings.Contains(lines[idx], "-->") {
		return captions.Cue{}, false
	}
	parts := strings.Split(lines[idx], "-->")
	if len(parts) != 2 {
		return captions.Cue{}, false
	}
	start, errStart := parseSRTTimestamp(parts[0])
	end, errEnd := parseSRTTimestamp(parts[1])
	if errStart != nil || errEnd != nil || end <= start {
		return captions.Cue{}, false
	}
	text := strings.TrimSpace(strings.Join(lines[idx+1:], " "))
	if text == "" {
		return captions.Cue{}, false
	}
	return captions.Cue{Start: start, End: end, Text: text}, true
}

func parseSRTTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// SRT standard uses a comma before milliseconds; tolerate a period.
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
