package agent_test

import (
	"context"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/retrieval"
	"github.com/google/uuid"
)

// MockConversationStore implements chatModel.ConversationStore backed by
// plain maps. No locking, tests are single goroutine.
type MockConversationStore struct {
	Conversations map[string]chatModel.Conversation
	Messages      map[string][]chatModel.Message
	Titles        []string

	OnAppendMessage func(ctx context.Context, message chatModel.Message) (chatModel.Message, error)
}

func NewMockConversationStore() *MockConversationStore {
	return &MockConversationStore{
		Conversations: map[string]chatModel.Conversation{},
		Messages:      map[string][]chatModel.Message{},
	}
}

func (m *MockConversationStore) CreateConversation(ctx context.Context, conversation chatModel.Conversation) (chatModel.Conversation, error) {
	conversation.Id = uuid.NewString()
	conversation.Title = "New Conversation"
	conversation.CreatedTime = time.Now()
	conversation.UpdatedTime = conversation.CreatedTime
	m.Conversations[conversation.Id] = conversation
	return conversation, nil
}

func (m *MockConversationStore) GetConversation(ctx context.Context, id string) (chatModel.Conversation, bool) {
	conversation, ok := m.Conversations[id]
	return conversation, ok
}

func (m *MockConversationStore) ListConversations(ctx context.Context, userId string) ([]chatModel.Conversation, error) {
	var out []chatModel.Conversation
	for _, c := range m.Conversations {
		if c.UserId == userId {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockConversationStore) DeleteConversation(ctx context.Context, id string) error {
	delete(m.Conversations, id)
	delete(m.Messages, id)
	return nil
}

func (m *MockConversationStore) AppendMessage(ctx context.Context, message chatModel.Message) (chatModel.Message, error) {
	if m.OnAppendMessage != nil {
		return m.OnAppendMessage(ctx, message)
	}
	message.Id = uuid.NewString()
	message.CreatedTime = time.Now()
	m.Messages[message.ConversationId] = append(m.Messages[message.ConversationId], message)
	return message, nil
}

func (m *MockConversationStore) GetMessages(ctx context.Context, conversationId string) ([]chatModel.Message, error) {
	return m.Messages[conversationId], nil
}

func (m *MockConversationStore) SetTitle(ctx context.Context, conversationId string, title string) error {
	m.Titles = append(m.Titles, title)
	conversation := m.Conversations[conversationId]
	conversation.Title = title
	m.Conversations[conversationId] = conversation
	return nil
}

func (m *MockConversationStore) SetPersona(ctx context.Context, conversationId string, personaId string) error {
	conversation := m.Conversations[conversationId]
	conversation.PersonaId = personaId
	m.Conversations[conversationId] = conversation
	return nil
}

type MockPersonaStore struct {
	Personas map[string]chatModel.Persona
}

func (m *MockPersonaStore) GetPersona(ctx context.Context, id string) (chatModel.Persona, bool) {
	persona, ok := m.Personas[id]
	return persona, ok
}

func (m *MockPersonaStore) ListPersonas(ctx context.Context) ([]chatModel.Persona, error) {
	var out []chatModel.Persona
	for _, p := range m.Personas {
		out = append(out, p)
	}
	return out, nil
}

// MockRetriever implements retrieval.Service
type MockRetriever struct {
	OnSearch func(ctx context.Context, query string, options retrieval.SearchOptions) []knowledgeModel.ScoredPassage
}

func (m *MockRetriever) Search(ctx context.Context, query string, options retrieval.SearchOptions) []knowledgeModel.ScoredPassage {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, query, options)
	}
	return nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, systemPrompt string, history []chatModel.Message) (string, error)
}

func (m *MockLLM) Generate(ctx context.Context, systemPrompt string, history []chatModel.Message) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, systemPrompt, history)
	}
	return "mocked llm response", nil
}
