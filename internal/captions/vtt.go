// Package captions recovers plain text from timed caption payloads (WebVTT
// and YouTube's JSON3 format). Parsers are pure so they can be tested without
// touching the network.
package captions

import (
	"errors"
	"html"
	"regexp"
	"strings"
)

var (
	vttTagRE    = regexp.MustCompile(`<[^>]*>`)
	cueNumberRE = regexp.MustCompile(`^\d+$`)
)

// ParseVTT strips cue timings, cue identifiers, and inline markup from a
// WebVTT payload and joins the remaining cue text. Consecutive duplicate
// lines are collapsed — YouTube auto-captions repeat rolling lines.
func ParseVTT(data []byte) (string, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || !strings.HasPrefix(strings.TrimSpace(lines[0]), "WEBVTT") {
		return "", errors.New("not a WebVTT payload")
	}

	var parts []string
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "-->") {
			continue
		}
		if strings.HasPrefix(line, "NOTE") || strings.HasPrefix(line, "STYLE") ||
			strings.HasPrefix(line, "Kind:") || strings.HasPrefix(line, "Language:") {
			continue
		}
		if cueNumberRE.MatchString(line) {
			continue
		}
		line = html.UnescapeString(vttTagRE.ReplaceAllString(line, ""))
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(parts) > 0 && parts[len(parts)-1] == line {
			continue
		}
		parts = append(parts, line)
	}

	if len(parts) == 0 {
		return "", errors.New("WebVTT payload contains no text")
	}
	return strings.Join(parts, " "), nil
}
