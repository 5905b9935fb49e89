package agent_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/agent"
	"github.com/avitale/VillageGuideAPI/internal/rag/retrieval"
)

func newAgentUnderTest(store *MockConversationStore, personas *MockPersonaStore, retriever *MockRetriever, provider *MockLLM) agent.Service {
	if personas == nil {
		personas = &MockPersonaStore{Personas: map[string]chatModel.Persona{}}
	}
	if retriever == nil {
		retriever = &MockRetriever{}
	}
	if provider == nil {
		provider = &MockLLM{}
	}
	return agent.NewService(store, personas, retriever, provider)
}

func startConversation(t *testing.T, s agent.Service, language chatModel.Language) chatModel.Conversation {
	t.Helper()
	conversation, err := s.StartConversation(context.Background(), "visitor-1", "", language)
	if err != nil {
		t.Fatalf("StartConversation: %v", err)
	}
	return conversation
}

func TestGenerateResponse_FullFlow(t *testing.T) {
	store := NewMockConversationStore()
	retriever := &MockRetriever{
		OnSearch: func(ctx context.Context, query string, options retrieval.SearchOptions) []knowledgeModel.ScoredPassage {
			return []knowledgeModel.ScoredPassage{
				{Passage: knowledgeModel.Passage{Id: "p1", Title: "Castello di Muro"}, Score: 0.87},
			}
		},
	}
	var gotPrompt string
	provider := &MockLLM{
		OnGenerate: func(ctx context.Context, systemPrompt string, history []chatModel.Message) (string, error) {
			gotPrompt = systemPrompt
			return "Il castello risale al periodo normanno.", nil
		},
	}

	s := newAgentUnderTest(store, nil, retriever, provider)
	conversation := startConversation(t, s, chatModel.LanguageItalian)

	reply, err := s.GenerateResponse(context.Background(), conversation.Id, "Raccontami del castello")
	if err != nil {
		t.Fatalf("GenerateResponse: %v", err)
	}

	if reply.Content != "Il castello risale al periodo normanno." {
		t.Errorf("unexpected reply content: %s", reply.Content)
	}
	if len(reply.Sources) != 1 || reply.Sources[0].Passage.Title != "Castello di Muro" {
		t.Errorf("sources not forwarded: %+v", reply.Sources)
	}
	if !strings.Contains(gotPrompt, "Castello di Muro") {
		t.Error("retrieved passage missing from system prompt")
	}

	turns := store.Messages[conversation.Id]
	if len(turns) != 2 {
		t.Fatalf("got %d persisted messages, want 2", len(turns))
	}
	if turns[0].Role != chatModel.RoleUser || turns[1].Role != chatModel.RoleAssistant {
		t.Errorf("turn roles wrong: %s then %s", turns[0].Role, turns[1].Role)
	}
}

func TestGenerateResponse_LLMFailureServesFallback(t *testing.T) {
	store := NewMockConversationStore()
	provider := &MockLLM{
		OnGenerate: func(ctx context.Context, systemPrompt string, history []chatModel.Message) (string, error) {
			return "", errors.New("provider down")
		},
	}

	s := newAgentUnderTest(store, nil, nil, provider)
	conversation := startConversation(t, s, chatModel.LanguageItalian)

	reply, err := s.GenerateResponse(context.Background(), conversation.Id, "Raccontami del castello")
	if err != nil {
		t.Fatalf("fallback turn must not surface an error, got %v", err)
	}
	if !strings.Contains(reply.Content, "difficoltà di connessione") {
		t.Errorf("expected Italian fallback reply, got: %s", reply.Content)
	}
	if len(reply.Sources) != 0 {
		t.Errorf("fallback reply must carry no sources, got %d", len(reply.Sources))
	}

	// The user turn survives the outage, and the canned reply is persisted
	// like any other assistant turn.
	turns := store.Messages[conversation.Id]
	if len(turns) != 2 {
		t.Fatalf("got %d persisted messages, want 2", len(turns))
	}
	if turns[0].Content != "Raccontami del castello" {
		t.Errorf("user turn lost: %+v", turns[0])
	}
	if turns[1].Content != reply.Content {
		t.Errorf("assistant turn differs from reply: %s", turns[1].Content)
	}
}

func TestGenerateResponse_TitleSetOnceFromFirstMessage(t *testing.T) {
	store := NewMockConversationStore()
	s := newAgentUnderTest(store, nil, nil, nil)
	conversation := startConversation(t, s, chatModel.LanguageEnglish)

	if _, err := s.GenerateResponse(context.Background(), conversation.Id, "Tell me about the castle"); err != nil {
		t.Fatalf("first turn: %v", err)
	}
	if _, err := s.GenerateResponse(context.Background(), conversation.Id, "And the old bridge?"); err != nil {
		t.Fatalf("second turn: %v", err)
	}

	if len(store.Titles) != 1 {
		t.Fatalf("title set %d times, want once", len(store.Titles))
	}
	if store.Titles[0] != "Tell me about the castle" {
		t.Errorf("title got %q", store.Titles[0])
	}
}

func TestGenerateResponse_LongFirstMessageTruncatedAtRunes(t *testing.T) {
	store := NewMockConversationStore()
	s := newAgentUnderTest(store, nil, nil, nil)
	conversation := startConversation(t, s, chatModel.LanguageItalian)

	long := strings.Repeat("è", config.TitleMaxRunes+10)
	if _, err := s.GenerateResponse(context.Background(), conversation.Id, long); err != nil {
		t.Fatalf("GenerateResponse: %v", err)
	}

	if len(store.Titles) != 1 {
		t.Fatalf("title not set")
	}
	want := strings.Repeat("è", config.TitleMaxRunes) + "..."
	if store.Titles[0] != want {
		t.Errorf("truncated title got %q, want %q", store.Titles[0], want)
	}
}

func TestGenerateResponse_HistoryWindowTrimmed(t *testing.T) {
	store := NewMockConversationStore()
	var gotHistory []chatModel.Message
	provider := &MockLLM{
		OnGenerate: func(ctx context.Context, systemPrompt string, history []chatModel.Message) (string, error) {
			gotHistory = history
			return "ok", nil
		},
	}
	s := newAgentUnderTest(store, nil, nil, provider)
	conversation := startConversation(t, s, chatModel.LanguageEnglish)

	for i := 0; i < 5; i++ {
		if _, err := s.GenerateResponse(context.Background(), conversation.Id, "turn"); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
	}

	if len(gotHistory) != config.HistoryWindowTurns {
		t.Errorf("history got %d messages, want %d", len(gotHistory), config.HistoryWindowTurns)
	}
	if gotHistory[len(gotHistory)-1].Role != chatModel.RoleUser {
		t.Error("latest user turn must be last in history")
	}
}

func TestGenerateResponse_PersonaToneInPrompt(t *testing.T) {
	store := NewMockConversationStore()
	personas := &MockPersonaStore{Personas: map[string]chatModel.Persona{
		"nonna": {Id: "nonna", Name: "Nonna Lucia", ToneInstructions: "Speak warmly like a grandmother telling stories by the fire."},
	}}
	var gotPrompt string
	provider := &MockLLM{
		OnGenerate: func(ctx context.Context, systemPrompt string, history []chatModel.Message) (string, error) {
			gotPrompt = systemPrompt
			return "ok", nil
		},
	}

	s := newAgentUnderTest(store, personas, nil, provider)
	conversation, err := s.StartConversation(context.Background(), "visitor-1", "nonna", chatModel.LanguageEnglish)
	if err != nil {
		t.Fatalf("StartConversation: %v", err)
	}

	if _, err := s.GenerateResponse(context.Background(), conversation.Id, "hello"); err != nil {
		t.Fatalf("GenerateResponse: %v", err)
	}
	if !strings.Contains(gotPrompt, "grandmother telling stories") {
		t.Error("persona tone instructions missing from system prompt")
	}
}

func TestGenerateResponse_UnknownConversation(t *testing.T) {
	s := newAgentUnderTest(NewMockConversationStore(), nil, nil, nil)

	_, err := s.GenerateResponse(context.Background(), "nope", "hello")
	if !errors.Is(err, agent.ErrConversationNotFound) {
		t.Errorf("got %v, want ErrConversationNotFound", err)
	}
}

func TestStartConversation_UnknownPersona(t *testing.T) {
	s := newAgentUnderTest(NewMockConversationStore(), nil, nil, nil)

	_, err := s.StartConversation(context.Background(), "visitor-1", "ghost", chatModel.LanguageEnglish)
	if !errors.Is(err, agent.ErrPersonaNotFound) {
		t.Errorf("got %v, want ErrPersonaNotFound", err)
	}
}
