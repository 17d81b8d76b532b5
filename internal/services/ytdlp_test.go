package services

import "testing"

func TestPickSubtitleTrack(t *testing.T) {
	vtt := func(url string) subtitleTrack { return subtitleTrack{URL: url, Ext: "vtt"} }
	json3 := func(url string) subtitleTrack { return subtitleTrack{URL: url, Ext: "json3"} }

	tests := []struct {
		name         string
		dump         ytdlpDump
		expectedURL  string
		expectedLang string
		expectedOK   bool
	}{
		{
			"no tracks at all",
			ytdlpDump{},
			"", "", false,
		},
		{
			"manual french preferred",
			ytdlpDump{
				Subtitles:         map[string][]subtitleTrack{"fr": {vtt("fr-manual")}, "en": {vtt("en-manual")}},
				AutomaticCaptions: map[string][]subtitleTrack{"fr": {vtt("fr-auto")}},
			},
			"fr-manual", "fr", true,
		},
		{
			"manual english before auto french",
			ytdlpDump{
				Subtitles:         map[string][]subtitleTrack{"en": {vtt("en-manual")}},
				AutomaticCaptions: map[string][]subtitleTrack{"fr": {vtt("fr-auto")}},
			},
			"en-manual", "en", true,
		},
		{
			"auto french when no manual tracks",
			ytdlpDump{
				AutomaticCaptions: map[string][]subtitleTrack{"fr": {vtt("fr-auto")}, "de": {vtt("de-auto")}},
			},
			"fr-auto", "fr", true,
		},
		{
			"first available language as last resort",
			ytdlpDump{
				Subtitles: map[string][]subtitleTrack{"de": {vtt("de-manual")}, "ja": {vtt("ja-manual")}},
			},
			"de-manual", "de", true,
		},
		{
			"vtt preferred over json3 within a language",
			ytdlpDump{
				Subtitles: map[string][]subtitleTrack{"fr": {json3("fr-json3"), vtt("fr-vtt")}},
			},
			"fr-vtt", "fr", true,
		},
		{
			"json3 when no vtt",
			ytdlpDump{
				Subtitles: map[string][]subtitleTrack{"en": {json3("en-json3"), {URL: "en-srv", Ext: "srv1"}}},
			},
			"en-json3", "en", true,
		},
		{
			"unusable formats are skipped",
			ytdlpDump{
				Subtitles: map[string][]subtitleTrack{"fr": {{URL: "fr-ttml", Ext: "ttml"}}},
			},
			"", "", false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			track, lang, ok := pickSubtitleTrack(&tc.dump)
			if ok != tc.expectedOK {
				t.Fatalf("Expected ok=%v, got %v", tc.expectedOK, ok)
			}
			if track.URL != tc.expectedURL {
				t.Errorf("Expected track %q, got %q", tc.expectedURL, track.URL)
			}
			if lang != tc.expectedLang {
				t.Errorf("Expected language %q, got %q", tc.expectedLang, lang)
			}
		})
	}
}

func TestYtdlpDumpMetadata(t *testing.T) {
	d := &ytdlpDump{
		Title:      "Ma vidéo",
		Uploader:   "Ma chaîne",
		Duration:   933.4,
		ViewCount:  12345,
		UploadDate: "20240115",
	}

	meta := d.metadata("abc123")

	if meta.Title != "Ma vidéo" {
		t.Errorf("Expected title 'Ma vidéo', got %q", meta.Title)
	}
	if meta.Channel != "Ma chaîne" {
		t.Errorf("Expected uploader fallback for channel, got %q", meta.Channel)
	}
	if meta.Duration != 933 {
		t.Errorf("Expected duration 933, got %d", meta.Duration)
	}
	if meta.Thumbnail != "https://img.youtube.com/vi/abc123/maxresdefault.jpg" {
		t.Errorf("Expected default thumbnail, got %q", meta.Thumbnail)
	}
	if meta.UploadDate == nil || meta.UploadDate.Year() != 2024 {
		t.Errorf("Expected upload date in 2024, got %v", meta.UploadDate)
	}
}
