package prompt

import (
	"fmt"
	"strings"

	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
)

// Composer builds the system message for the LLM. Concatenation order is
// fixed: mission -> persona tone -> language directive -> retrieved context.

const baseMission = `You are an AI tourism assistant for Muro Lucano and Italian villages in Basilicata. Your role is to tell stories, explain monuments, answer questions about culture and history, and create memorable experiences for tourists.

Guidelines:
- Be engaging and conversational, like a friendly local guide
- Tell stories that bring history to life
- Share legends, cultural insights, and interesting details
- Be factual but entertaining
- When given context, use it to provide accurate information
- Mention specific monuments, dates, and historical figures from the context
- If you don't have enough context, offer to tell them about other attractions
- Create a personal connection with the place
- Answer in plain spoken-style text with no markup, it may be read aloud`

const defaultVoice = "Voice: a professional, warm local guide who knows every stone of the village."

func languageName(language chatModel.Language) string {
	switch language {
	case chatModel.LanguageItalian:
		return "Italian"
	case chatModel.LanguageSpanish:
		return "Spanish"
	default:
		return "English"
	}
}

// BuildSystemPrompt composes the persona-conditioned system instruction.
// The knowledge corpus is authored in Italian no matter what language the
// visitor speaks, so the directive tells the model to carry meaning across,
// never to quote the Italian source verbatim into a mismatched language.
func BuildSystemPrompt(persona *chatModel.Persona, responseLanguage chatModel.Language) string {
	var b strings.Builder
	b.WriteString(baseMission)

	if persona != nil && persona.ToneInstructions != "" {
		b.WriteString("\n\nPersona: ")
		b.WriteString(persona.Name)
		b.WriteString("\n")
		b.WriteString(persona.ToneInstructions)
	} else {
		b.WriteString("\n\n")
		b.WriteString(defaultVoice)
	}

	name := languageName(responseLanguage)
	b.WriteString(fmt.Sprintf(`

Language: You MUST respond in %s, and only in %s.

IMPORTANT: The knowledge base context provided to you is in Italian. If the user asks in another language:
1. Understand their question
2. Use the Italian context provided
3. Respond naturally in %s
4. DO NOT translate word-for-word; instead, convey the meaning naturally`, name, name, name))

	return b.String()
}

// BuildContextBlock renders the retrieved passages, each tagged with its
// category and location. Empty retrieval means an empty string - the block
// is omitted entirely, the model just improvises as a guide.
func BuildContextBlock(passages []knowledgeModel.ScoredPassage) string {
	if len(passages) == 0 {
		return ""
	}

	var entries []string
	for _, match := range passages {
		passage := match.Passage
		tag := passage.Category
		if passage.Location != "" {
			tag = fmt.Sprintf("%s, %s", passage.Category, passage.Location)
		}
		entries = append(entries, fmt.Sprintf("%s (%s): %s", passage.Title, tag, passage.Content))
	}

	return "\n\nRelevant information from knowledge base:\n" + strings.Join(entries, "\n\n")
}

// FallbackReply is the canned answer for a failed LLM round trip. The chat
// surface always gets a reply, never an error.
func FallbackReply(language chatModel.Language) string {
	switch language {
	case chatModel.LanguageItalian:
		return "Al momento ho difficoltà di connessione, ma mi piacerebbe aiutarti a esplorare questo luogo. Puoi dirmi di più su cosa vorresti sapere?"
	case chatModel.LanguageSpanish:
		return "Estoy teniendo problemas de conexión en este momento, pero me encantaría ayudarte a explorar este lugar. ¿Puedes contarme más sobre lo que te gustaría saber?"
	default:
		return "I'm having trouble connecting right now, but I'd love to help you explore this place. Could you tell me more about what you'd like to know?"
	}
}
