package captions

import (
	"strings"
	"testing"
)

func TestParseVTT(t *testing.T) {
	payload := `WEBVTT
Kind: captions
Language: fr

1
00:00:00.000 --> 00:00:02.500
Bonjour à tous

2
00:00:02.500 --> 00:00:05.000
<c.colorCCCCCC>bienvenue dans cette</c> vidéo

3
00:00:05.000 --> 00:00:07.000
bienvenue dans cette vidéo
`

	text, err := ParseVTT([]byte(payload))
	if err != nil {
		t.Fatalf("ParseVTT failed: %v", err)
	}

	expected := "Bonjour à tous bienvenue dans cette vidéo"
	if text != expected {
		t.Errorf("Expected %q, got %q", expected, text)
	}
}

func TestParseVTT_DropsTimingAndMarkup(t *testing.T) {
	payload := "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\n<v Speaker>hello &amp; welcome</v>\n"

	text, err := ParseVTT([]byte(payload))
	if err != nil {
		t.Fatalf("ParseVTT failed: %v", err)
	}
	if text != "hello & welcome" {
		t.Errorf("Expected 'hello & welcome', got %q", text)
	}
	if strings.Contains(text, "-->") {
		t.Error("Timing cue leaked into output")
	}
}

func TestParseVTT_RejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not vtt", "just some text"},
		{"empty", ""},
		{"header only", "WEBVTT\n\n"},
		{"timings only", "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseVTT([]byte(tc.payload)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestParseJSON3(t *testing.T) {
	payload := `{"events":[
		{"tStartMs":0,"segs":[{"utf8":"Bonjour"},{"utf8":" à tous"}]},
		{"tStartMs":2500,"segs":[{"utf8":"\n"}]},
		{"tStartMs":3000,"segs":[{"utf8":"bienvenue"}]}
	]}`

	text, err := ParseJSON3([]byte(payload))
	if err != nil {
		t.Fatalf("ParseJSON3 failed: %v", err)
	}

	expected := "Bonjour à tous bienvenue"
	if text != expected {
		t.Errorf("Expected %q, got %q", expected, text)
	}
}

func TestParseJSON3_RejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"invalid json", "{not json"},
		{"no events", `{"events":[]}`},
		{"newline-only segments", `{"events":[{"segs":[{"utf8":"\n"}]}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseJSON3([]byte(tc.payload)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
