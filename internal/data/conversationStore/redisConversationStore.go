package conversationStore

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/data/redisStore"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
	"github.com/google/uuid"
)

const (
	conversationKeyPrefix = "conversation:"
	messagesKeyPrefix     = "messages:"
	userIndexKeyPrefix    = "user-conversations:"
)

var ErrConversationNotFound = errors.New("conversation not found")

type RedisConversationStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisConversationStore(ctx context.Context) *RedisConversationStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisConversationStore)
	if inner == nil {
		return nil
	}
	return &RedisConversationStore{
		store:  inner,
		logger: logger_i.NewLogger("ConversationStore"),
	}
}

// TestConversationStore wires a miniredis-backed store in tests.
func TestConversationStore(store *redisStore.Store) *RedisConversationStore {
	return &RedisConversationStore{
		store:  store,
		logger: logger_i.NewLogger("test conversation store"),
	}
}

func (s *RedisConversationStore) CreateConversation(ctx context.Context, conversation chatModel.Conversation) (chatModel.Conversation, error) {
	log := s.logger.WithTrace(ctx)

	if conversation.Id == "" {
		conversation.Id = uuid.New().String()
	}
	now := time.Now()
	conversation.CreatedTime = now
	conversation.UpdatedTime = now
	if conversation.Title == "" {
		conversation.Title = "New Conversation"
	}

	if err := s.saveConversation(ctx, conversation); err != nil {
		log.Error("error creating conversation", "error", err)
		return chatModel.Conversation{}, err
	}

	// anonymous conversations are not listable, so no user index entry
	if conversation.UserId != "" {
		if err := s.store.SetAdd(ctx, userIndexKeyPrefix+conversation.UserId, conversation.Id); err != nil {
			log.Error("error indexing conversation for user", "error", err)
		}
	}

	log.Debug("created conversation", "conversationId", conversation.Id)
	return conversation, nil
}

func (s *RedisConversationStore) GetConversation(ctx context.Context, id string) (chatModel.Conversation, bool) {
	var conversation chatModel.Conversation
	val, err := s.store.Get(ctx, conversationKeyPrefix+id)
	if s.store.IsNil(err) {
		return conversation, false
	} else if err != nil {
		s.logger.WithTrace(ctx).Error("error getting conversation", "error", err)
		return conversation, false
	}
	if err := json.Unmarshal([]byte(val), &conversation); err != nil {
		return conversation, false
	}
	return conversation, true
}

func (s *RedisConversationStore) ListConversations(ctx context.Context, userId string) ([]chatModel.Conversation, error) {
	if userId == "" {
		return nil, nil
	}
	ids, err := s.store.SetMembers(ctx, userIndexKeyPrefix+userId)
	if err != nil {
		return nil, err
	}

	var conversations []chatModel.Conversation
	for _, id := range ids {
		if conversation, found := s.GetConversation(ctx, id); found {
			conversations = append(conversations, conversation)
		}
	}
	// newest first, the way a history sidebar wants them
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].UpdatedTime.After(conversations[j].UpdatedTime)
	})
	return conversations, nil
}

func (s *RedisConversationStore) DeleteConversation(ctx context.Context, id string) error {
	log := s.logger.WithTrace(ctx)

	conversation, found := s.GetConversation(ctx, id)
	if !found {
		return ErrConversationNotFound
	}

	// delete cascades to the message list
	if err := s.store.Del(ctx, conversationKeyPrefix+id, messagesKeyPrefix+id); err != nil {
		log.Error("error deleting conversation", "error", err)
		return err
	}
	if conversation.UserId != "" {
		if err := s.store.SetRemove(ctx, userIndexKeyPrefix+conversation.UserId, id); err != nil {
			log.Error("error removing conversation from user index", "error", err)
		}
	}
	log.Debug("deleted conversation", "conversationId", id)
	return nil
}

func (s *RedisConversationStore) AppendMessage(ctx context.Context, message chatModel.Message) (chatModel.Message, error) {
	log := s.logger.WithTrace(ctx)

	conversation, found := s.GetConversation(ctx, message.ConversationId)
	if !found {
		return chatModel.Message{}, ErrConversationNotFound
	}

	if message.Id == "" {
		message.Id = uuid.New().String()
	}
	message.CreatedTime = time.Now()

	data, err := json.Marshal(message)
	if err != nil {
		return chatModel.Message{}, err
	}
	if err := s.store.ListPush(ctx, messagesKeyPrefix+message.ConversationId, data); err != nil {
		log.Error("error appending message", "error", err)
		return chatModel.Message{}, err
	}

	// every message advances updated_at
	conversation.UpdatedTime = message.CreatedTime
	if err := s.saveConversation(ctx, conversation); err != nil {
		log.Error("error advancing conversation timestamp", "error", err)
	}
	return message, nil
}

func (s *RedisConversationStore) GetMessages(ctx context.Context, conversationId string) ([]chatModel.Message, error) {
	raw, err := s.store.ListGetAll(ctx, messagesKeyPrefix+conversationId)
	if err != nil {
		return nil, err
	}
	messages := make([]chatModel.Message, 0, len(raw))
	for _, item := range raw {
		var message chatModel.Message
		if err := json.Unmarshal([]byte(item), &message); err != nil {
			s.logger.WithTrace(ctx).Error("skipping malformed message entry", "error", err)
			continue
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (s *RedisConversationStore) SetTitle(ctx context.Context, conversationId string, title string) error {
	conversation, found := s.GetConversation(ctx, conversationId)
	if !found {
		return ErrConversationNotFound
	}
	conversation.Title = title
	conversation.UpdatedTime = time.Now()
	return s.saveConversation(ctx, conversation)
}

func (s *RedisConversationStore) SetPersona(ctx context.Context, conversationId string, personaId string) error {
	conversation, found := s.GetConversation(ctx, conversationId)
	if !found {
		return ErrConversationNotFound
	}
	conversation.PersonaId = personaId
	conversation.UpdatedTime = time.Now()
	return s.saveConversation(ctx, conversation)
}

func (s *RedisConversationStore) saveConversation(ctx context.Context, conversation chatModel.Conversation) error {
	data, err := json.Marshal(conversation)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, conversationKeyPrefix+conversation.Id, data, 0)
}
