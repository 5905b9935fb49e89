package chatModel

import (
	"context"
	"time"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageItalian Language = "it"
	LanguageSpanish Language = "es"
)

// ParseLanguage normalizes whatever the client sent ("it", "it-IT", junk)
// to one of the three supported response languages. English is the default.
func ParseLanguage(raw string) Language {
	if len(raw) >= 2 {
		switch Language(raw[:2]) {
		case LanguageItalian:
			return LanguageItalian
		case LanguageSpanish:
			return LanguageSpanish
		case LanguageEnglish:
			return LanguageEnglish
		}
	}
	return LanguageEnglish
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Conversation struct {
	Id          string    `json:"id"`
	UserId      string    `json:"user_id,omitempty"` //empty for anonymous visitors
	PersonaId   string    `json:"persona_id,omitempty"`
	Language    Language  `json:"language"`
	Title       string    `json:"title"`
	CreatedTime time.Time `json:"created_at"`
	UpdatedTime time.Time `json:"updated_at"`
}

// Message turns are append only - ordering is CreatedTime ascending.
type Message struct {
	Id             string    `json:"id"`
	ConversationId string    `json:"conversation_id"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	CreatedTime    time.Time `json:"created_at"`
}

// Persona is a tone profile for the guide. ToneInstructions is free text
// spliced verbatim into the system prompt, nothing more clever than that.
type Persona struct {
	Id               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ToneInstructions string `json:"tone_instructions"`
}

type ConversationStore interface {
	CreateConversation(ctx context.Context, conversation Conversation) (Conversation, error)
	GetConversation(ctx context.Context, id string) (Conversation, bool)
	ListConversations(ctx context.Context, userId string) ([]Conversation, error)
	DeleteConversation(ctx context.Context, id string) error

	AppendMessage(ctx context.Context, message Message) (Message, error)
	GetMessages(ctx context.Context, conversationId string) ([]Message, error)

	SetTitle(ctx context.Context, conversationId string, title string) error
	SetPersona(ctx context.Context, conversationId string, personaId string) error
}

type PersonaStore interface {
	GetPersona(ctx context.Context, id string) (Persona, bool)
	ListPersonas(ctx context.Context) ([]Persona, error)
}
