package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"subforge/internal/captions"
)

type whisperWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type whisperSegment struct {
	Text  string        `json:"text"`
	Start float64       `json:"start"`
	End   float64       `json:"end"`
	Words []whisperWord `json:"words"`
}

type whisperPayload struct {
	Segments []whisperSegment `json:"segments"`
}

// ParseWhisperJSON decodes WhisperX-style transcription JSON into cues.
// Segments with unusable timing or empty text are skipped; words with
// unusable timing are dropped from their segment rather than failing the
// whole transcript.
func ParseWhisperJSON(data []byte) ([]captions.Cue, error) {
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse transcript json: %w", err)
	}
	cues := make([]captions.Cue, 0, len(payload.Segments))
	for _, seg := range payload.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" || seg.End <= seg.Start {
			continue
		}
		cue := captions.Cue{Start: seg.Start, End: seg.End, Text: text}
		for _, w := range seg.Words {
			word := strings.TrimSpace(w.Word)
			if word == "" || w.End <= w.Start {
				continue
			}
			cue.Words = append(cue.Words, captions.WordTiming{
				Start: w.Start,
				End:   w.End,
				Text:  word,
			})
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

// LoadWhisperJSON reads and parses a WhisperX-style JSON file.
func LoadWhisperJSON(path string) ([]captions.Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return ParseWhisperJSON(data)
}
