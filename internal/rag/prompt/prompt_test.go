package prompt

import (
	"strings"
	"testing"

	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
)

func TestBuildSystemPrompt_LanguageDirective(t *testing.T) {
	tests := []struct {
		language chatModel.Language
		want     string
	}{
		{chatModel.LanguageItalian, "respond in Italian"},
		{chatModel.LanguageSpanish, "respond in Spanish"},
		{chatModel.LanguageEnglish, "respond in English"},
	}

	for _, tt := range tests {
		got := BuildSystemPrompt(nil, tt.language)
		if !strings.Contains(got, tt.want) {
			t.Errorf("prompt for %s missing %q", tt.language, tt.want)
		}
	}
}

func TestBuildSystemPrompt_PersonaToneAppended(t *testing.T) {
	persona := &chatModel.Persona{
		Name:             "Il Pescatore",
		ToneInstructions: "Speak like an old fisherman, salty and direct.",
	}

	got := BuildSystemPrompt(persona, chatModel.LanguageEnglish)

	if !strings.Contains(got, "Il Pescatore") || !strings.Contains(got, "salty and direct") {
		t.Error("persona name and tone must both appear in the prompt")
	}
	if strings.Contains(got, defaultVoice) {
		t.Error("default voice must be replaced when a persona is set")
	}
	if strings.Index(got, baseMission) != 0 {
		t.Error("mission must lead the prompt")
	}
	if strings.Index(got, "salty and direct") > strings.Index(got, "respond in English") {
		t.Error("tone must come before the language directive")
	}
}

func TestBuildSystemPrompt_DefaultVoiceWithoutPersona(t *testing.T) {
	got := BuildSystemPrompt(nil, chatModel.LanguageItalian)
	if !strings.Contains(got, defaultVoice) {
		t.Error("default voice missing when no persona is set")
	}
}

func TestBuildContextBlock(t *testing.T) {
	passages := []knowledgeModel.ScoredPassage{
		{Passage: knowledgeModel.Passage{Title: "Castello di Muro", Category: "monumenti", Location: "centro storico", Content: "Il castello domina il borgo."}},
		{Passage: knowledgeModel.Passage{Title: "Ponte delle Ripe", Category: "monumenti", Content: "Ponte medievale."}},
	}

	got := BuildContextBlock(passages)

	if !strings.Contains(got, "Castello di Muro (monumenti, centro storico): Il castello domina il borgo.") {
		t.Errorf("first entry malformed:\n%s", got)
	}
	if !strings.Contains(got, "Ponte delle Ripe (monumenti): Ponte medievale.") {
		t.Errorf("entry without location malformed:\n%s", got)
	}
}

func TestBuildContextBlock_EmptyRetrievalOmitsBlock(t *testing.T) {
	if got := BuildContextBlock(nil); got != "" {
		t.Errorf("empty retrieval must produce no block, got %q", got)
	}
}

func TestFallbackReply_PerLanguage(t *testing.T) {
	it := FallbackReply(chatModel.LanguageItalian)
	es := FallbackReply(chatModel.LanguageSpanish)
	en := FallbackReply(chatModel.LanguageEnglish)

	if it == es || it == en || es == en {
		t.Error("fallback replies must differ per language")
	}
	if !strings.Contains(en, "trouble connecting") {
		t.Errorf("english fallback unexpected: %s", en)
	}
}
