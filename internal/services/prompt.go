package services

import (
	"fmt"
	"unicode/utf8"

	"quicktube-backend/internal/models"
)

// Transcripts are cut to this budget before templating; long transcripts are
// truncated, not chunked.
const transcriptCharBudget = 4000

// systemPrompt is shared by both summary providers.
const systemPrompt = "Tu es expert en résumé de vidéos."

// BuildSummaryPrompt renders the fixed prompt for a style. Any style that is
// not bullets or paragraph gets the structured template. When no transcript
// is available the template carries the video URL instead and the model is
// asked to work from it.
func BuildSummaryPrompt(style models.SummaryStyle, title, transcript, videoURL string) string {
	source := "TRANSCRIPTION:\n" + truncate(transcript, transcriptCharBudget)
	if transcript == "" {
		source = "URL DE LA VIDÉO (pas de transcription disponible, analyse la vidéo depuis son URL):\n" + videoURL
	}

	switch style {
	case models.StyleBullets:
		return fmt.Sprintf(`Résume en bullet points en français.

Titre: %s

%s

5-7 points clés.`, title, source)

	case models.StyleParagraph:
		return fmt.Sprintf(`Résumé en paragraphe fluide en français.

Titre: %s

%s

1 paragraphe de 4-6 phrases.`, title, source)

	default:
		return fmt.Sprintf(`Analyse cette transcription et crée un résumé structuré en français.

Titre: %s

%s

FORMAT:
## 📝 Résumé Principal
[2-3 phrases]

## 🎯 Points Clés
- Point 1
- Point 2
- Point 3

## 💡 Idées Principales
[Développement]

## 🔑 Conclusion
[Takeaway]`, title, source)
	}
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
