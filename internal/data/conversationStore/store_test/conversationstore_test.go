package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/data/conversationStore"
	"github.com/avitale/VillageGuideAPI/internal/data/redisStore"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *conversationStore.RedisConversationStore {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return conversationStore.TestConversationStore(redisStore.NewTestStore(client))
}

func TestRedisConversationStore_Lifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	created, err := store.CreateConversation(ctx, chatModel.Conversation{
		UserId:    "visitor-1",
		PersonaId: "storyteller",
		Language:  chatModel.LanguageItalian,
	})
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	if created.Id == "" {
		t.Fatal("created conversation has no id")
	}
	if created.Title != "New Conversation" {
		t.Errorf("got default title %q, want New Conversation", created.Title)
	}

	t.Run("Get Roundtrip", func(t *testing.T) {
		retrieved, found := store.GetConversation(ctx, created.Id)
		if !found {
			t.Fatal("conversation was saved but not found")
		}
		if retrieved.Language != chatModel.LanguageItalian || retrieved.PersonaId != "storyteller" {
			t.Errorf("data mismatch: got language=%q persona=%q", retrieved.Language, retrieved.PersonaId)
		}
	})

	t.Run("Get Non-Existent Conversation", func(t *testing.T) {
		if _, found := store.GetConversation(ctx, "ghost-id"); found {
			t.Error("expected found=false for non-existent key")
		}
	})

	t.Run("Messages Append In Order", func(t *testing.T) {
		turns := []chatModel.Message{
			{ConversationId: created.Id, Role: chatModel.RoleUser, Content: "Parlami del castello"},
			{ConversationId: created.Id, Role: chatModel.RoleAssistant, Content: "Il castello medievale..."},
			{ConversationId: created.Id, Role: chatModel.RoleUser, Content: "E la cattedrale?"},
		}
		for _, turn := range turns {
			saved, err := store.AppendMessage(ctx, turn)
			if err != nil {
				t.Fatalf("AppendMessage failed: %v", err)
			}
			if saved.Id == "" {
				t.Fatal("appended message has no id")
			}
		}

		messages, err := store.GetMessages(ctx, created.Id)
		if err != nil {
			t.Fatalf("GetMessages failed: %v", err)
		}
		if len(messages) != len(turns) {
			t.Fatalf("got %d messages, want %d", len(messages), len(turns))
		}
		for i, message := range messages {
			if message.Content != turns[i].Content || message.Role != turns[i].Role {
				t.Errorf("message %d out of order: got %q (%s)", i, message.Content, message.Role)
			}
		}
	})

	t.Run("Append Advances UpdatedTime", func(t *testing.T) {
		retrieved, _ := store.GetConversation(ctx, created.Id)
		if !retrieved.UpdatedTime.After(created.UpdatedTime) {
			t.Error("UpdatedTime did not advance after appending messages")
		}
	})

	t.Run("SetTitle", func(t *testing.T) {
		if err := store.SetTitle(ctx, created.Id, "Il castello"); err != nil {
			t.Fatalf("SetTitle failed: %v", err)
		}
		retrieved, _ := store.GetConversation(ctx, created.Id)
		if retrieved.Title != "Il castello" {
			t.Errorf("got title %q, want Il castello", retrieved.Title)
		}
	})

	t.Run("Delete Cascades To Messages", func(t *testing.T) {
		if err := store.DeleteConversation(ctx, created.Id); err != nil {
			t.Fatalf("DeleteConversation failed: %v", err)
		}
		if _, found := store.GetConversation(ctx, created.Id); found {
			t.Error("conversation still exists after delete")
		}
		messages, err := store.GetMessages(ctx, created.Id)
		if err != nil {
			t.Fatalf("GetMessages failed: %v", err)
		}
		if len(messages) != 0 {
			t.Errorf("got %d orphaned messages after delete, want 0", len(messages))
		}
	})
}

func TestRedisConversationStore_ListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	first, err := store.CreateConversation(ctx, chatModel.Conversation{UserId: "visitor-2"})
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := store.CreateConversation(ctx, chatModel.Conversation{UserId: "visitor-2"}); err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	// bumping the older conversation moves it to the top
	time.Sleep(time.Millisecond)
	if _, err := store.AppendMessage(ctx, chatModel.Message{
		ConversationId: first.Id,
		Role:           chatModel.RoleUser,
		Content:        "ciao",
	}); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	conversations, err := store.ListConversations(ctx, "visitor-2")
	if err != nil {
		t.Fatalf("ListConversations failed: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("got %d conversations, want 2", len(conversations))
	}
	if conversations[0].Id != first.Id {
		t.Errorf("got %q first, want the most recently updated conversation", conversations[0].Id)
	}
}

func TestRedisConversationStore_AnonymousNotListed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	if _, err := store.CreateConversation(ctx, chatModel.Conversation{}); err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	conversations, err := store.ListConversations(ctx, "")
	if err != nil {
		t.Fatalf("ListConversations failed: %v", err)
	}
	if len(conversations) != 0 {
		t.Errorf("anonymous conversations should not be listable, got %d", len(conversations))
	}
}

func TestRedisConversationStore_AppendToMissingConversation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	_, err := store.AppendMessage(ctx, chatModel.Message{ConversationId: "ghost-id", Content: "hello"})
	if !errors.Is(err, conversationStore.ErrConversationNotFound) {
		t.Errorf("got %v, want ErrConversationNotFound", err)
	}
}
