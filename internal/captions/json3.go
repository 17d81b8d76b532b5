package captions

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// json3 is YouTube's JSON timedtext format: a list of timed events, each
// holding text segments with a utf8 run.
type json3Payload struct {
	Events []struct {
		Segs []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// ParseJSON3 joins the text segments of a JSON3 payload, dropping timing and
// newline-only segments.
func ParseJSON3(data []byte) (string, error) {
	var payload json3Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decode json3: %w", err)
	}

	var b strings.Builder
	for _, event := range payload.Events {
		for _, seg := range event.Segs {
			text := strings.TrimSpace(seg.UTF8)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(text)
		}
	}

	if b.Len() == 0 {
		return "", errors.New("json3 payload contains no text")
	}
	return b.String(), nil
}
