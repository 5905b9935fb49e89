package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/metrics"
	"github.com/avitale/VillageGuideAPI/internal/rag/llm"
	"github.com/avitale/VillageGuideAPI/internal/rag/prompt"
	"github.com/avitale/VillageGuideAPI/internal/rag/retrieval"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

var ErrConversationNotFound = errors.New("conversation not found")
var ErrPersonaNotFound = errors.New("persona not found")
var ErrEmptyMessage = errors.New("message must not be empty")

// Reply is one assistant turn plus the knowledge passages it was grounded on.
// Sources go back to the client so the UI can cite them.
type Reply struct {
	Content string
	Sources []knowledgeModel.ScoredPassage
}

// Service runs a full conversation turn: persist the user message, retrieve
// context, build the persona prompt, call the model, persist the answer.
type Service interface {
	StartConversation(ctx context.Context, userId string, personaId string, language chatModel.Language) (chatModel.Conversation, error)
	GenerateResponse(ctx context.Context, conversationId string, userMessage string) (Reply, error)
}

type service struct {
	conversations chatModel.ConversationStore
	personas      chatModel.PersonaStore
	retriever     retrieval.Service
	provider      llm.Provider
	logger        *logger_i.Logger
}

func NewService(conversations chatModel.ConversationStore, personas chatModel.PersonaStore, retriever retrieval.Service, provider llm.Provider) Service {
	return &service{
		conversations: conversations,
		personas:      personas,
		retriever:     retriever,
		provider:      provider,
		logger:        logger_i.NewLogger("Agent Service :"),
	}
}

func (s *service) StartConversation(ctx context.Context, userId string, personaId string, language chatModel.Language) (chatModel.Conversation, error) {
	if personaId != "" {
		if _, found := s.personas.GetPersona(ctx, personaId); !found {
			return chatModel.Conversation{}, ErrPersonaNotFound
		}
	}

	conversation := chatModel.Conversation{
		UserId:    userId,
		PersonaId: personaId,
		Language:  language,
	}
	created, err := s.conversations.CreateConversation(ctx, conversation)
	if err != nil {
		return chatModel.Conversation{}, fmt.Errorf("creating conversation: %w", err)
	}
	return created, nil
}

func (s *service) GenerateResponse(ctx context.Context, conversationId string, userMessage string) (Reply, error) {
	log := s.logger.WithTrace(ctx)
	start := time.Now()

	if userMessage == "" {
		return Reply{}, ErrEmptyMessage
	}

	conversation, found := s.conversations.GetConversation(ctx, conversationId)
	if !found {
		return Reply{}, ErrConversationNotFound
	}

	// The user turn is persisted before anything that can fail later. A
	// provider outage must never lose what the visitor typed.
	userTurn := chatModel.Message{
		ConversationId: conversation.Id,
		Role:           chatModel.RoleUser,
		Content:        userMessage,
	}
	if _, err := s.conversations.AppendMessage(ctx, userTurn); err != nil {
		return Reply{}, fmt.Errorf("persisting user message: %w", err)
	}

	history, err := s.conversations.GetMessages(ctx, conversation.Id)
	if err != nil {
		return Reply{}, fmt.Errorf("loading history: %w", err)
	}

	if len(history) == 1 {
		s.setTitleFromFirstMessage(ctx, conversation.Id, userMessage)
	}
	if len(history) > config.HistoryWindowTurns {
		history = history[len(history)-config.HistoryWindowTurns:]
	}

	matches := s.retriever.Search(ctx, userMessage, retrieval.SearchOptions{})

	systemPrompt := s.composePrompt(ctx, conversation, matches)

	answer, err := s.provider.Generate(ctx, systemPrompt, history)
	status := "success"
	if err != nil {
		// The turn still succeeds from the visitor's point of view, with a
		// canned apology in their language.
		log.Error("llm generation failed, serving fallback reply", "error", err)
		answer = prompt.FallbackReply(conversation.Language)
		matches = nil
		status = "fallback"
	}

	assistantTurn := chatModel.Message{
		ConversationId: conversation.Id,
		Role:           chatModel.RoleAssistant,
		Content:        answer,
	}
	if _, err := s.conversations.AppendMessage(ctx, assistantTurn); err != nil {
		log.Error("persisting assistant message failed", "error", err)
	}

	metrics.CaptureChatTurnMetrics(status, time.Since(start))
	return Reply{Content: answer, Sources: matches}, nil
}

func (s *service) composePrompt(ctx context.Context, conversation chatModel.Conversation, matches []knowledgeModel.ScoredPassage) string {
	var persona *chatModel.Persona
	if conversation.PersonaId != "" {
		if p, found := s.personas.GetPersona(ctx, conversation.PersonaId); found {
			persona = &p
		} else {
			s.logger.WithTrace(ctx).Warn("conversation references unknown persona, using default voice", "personaId", conversation.PersonaId)
		}
	}
	return prompt.BuildSystemPrompt(persona, conversation.Language) + prompt.BuildContextBlock(matches)
}

// setTitleFromFirstMessage derives a display title from the opening message,
// once per conversation. Truncation counts runes so accented text does not
// get cut mid character.
func (s *service) setTitleFromFirstMessage(ctx context.Context, conversationId string, message string) {
	title := []rune(message)
	if len(title) > config.TitleMaxRunes {
		title = title[:config.TitleMaxRunes]
	}
	derived := string(title)
	if len([]rune(message)) > config.TitleMaxRunes {
		derived += "..."
	}
	if err := s.conversations.SetTitle(ctx, conversationId, derived); err != nil {
		s.logger.WithTrace(ctx).Error("setting conversation title failed", "error", err)
	}
}
