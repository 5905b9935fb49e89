package conversationStore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/google/uuid"
)

// InMemoryConversationStore backs the server when Redis is offline and the
// agent tests. Same contract, map + RWMutex instead of a network hop.
type InMemoryConversationStore struct {
	lock          *sync.RWMutex
	conversations map[string]chatModel.Conversation
	messages      map[string][]chatModel.Message
}

func InitInMemoryConversationStore() *InMemoryConversationStore {
	return &InMemoryConversationStore{
		lock:          new(sync.RWMutex),
		conversations: make(map[string]chatModel.Conversation),
		messages:      make(map[string][]chatModel.Message),
	}
}

func (store *InMemoryConversationStore) CreateConversation(ctx context.Context, conversation chatModel.Conversation) (chatModel.Conversation, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	if conversation.Id == "" {
		conversation.Id = uuid.New().String()
	}
	now := time.Now()
	conversation.CreatedTime = now
	conversation.UpdatedTime = now
	if conversation.Title == "" {
		conversation.Title = "New Conversation"
	}
	store.conversations[conversation.Id] = conversation
	store.messages[conversation.Id] = make([]chatModel.Message, 0)
	return conversation, nil
}

func (store *InMemoryConversationStore) GetConversation(ctx context.Context, id string) (chatModel.Conversation, bool) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	conversation, found := store.conversations[id]
	return conversation, found
}

func (store *InMemoryConversationStore) ListConversations(ctx context.Context, userId string) ([]chatModel.Conversation, error) {
	if userId == "" {
		return nil, nil
	}
	store.lock.RLock()
	defer store.lock.RUnlock()

	var result []chatModel.Conversation
	for _, conversation := range store.conversations {
		if conversation.UserId == userId {
			result = append(result, conversation)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedTime.After(result[j].UpdatedTime)
	})
	return result, nil
}

func (store *InMemoryConversationStore) DeleteConversation(ctx context.Context, id string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	if _, found := store.conversations[id]; !found {
		return ErrConversationNotFound
	}
	delete(store.conversations, id)
	delete(store.messages, id)
	return nil
}

func (store *InMemoryConversationStore) AppendMessage(ctx context.Context, message chatModel.Message) (chatModel.Message, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	conversation, found := store.conversations[message.ConversationId]
	if !found {
		return chatModel.Message{}, ErrConversationNotFound
	}
	if message.Id == "" {
		message.Id = uuid.New().String()
	}
	message.CreatedTime = time.Now()
	store.messages[message.ConversationId] = append(store.messages[message.ConversationId], message)

	conversation.UpdatedTime = message.CreatedTime
	store.conversations[message.ConversationId] = conversation
	return message, nil
}

func (store *InMemoryConversationStore) GetMessages(ctx context.Context, conversationId string) ([]chatModel.Message, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	messages := store.messages[conversationId]
	result := make([]chatModel.Message, len(messages))
	copy(result, messages)
	return result, nil
}

func (store *InMemoryConversationStore) SetTitle(ctx context.Context, conversationId string, title string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	conversation, found := store.conversations[conversationId]
	if !found {
		return ErrConversationNotFound
	}
	conversation.Title = title
	conversation.UpdatedTime = time.Now()
	store.conversations[conversationId] = conversation
	return nil
}

func (store *InMemoryConversationStore) SetPersona(ctx context.Context, conversationId string, personaId string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	conversation, found := store.conversations[conversationId]
	if !found {
		return ErrConversationNotFound
	}
	conversation.PersonaId = personaId
	conversation.UpdatedTime = time.Now()
	store.conversations[conversationId] = conversation
	return nil
}
