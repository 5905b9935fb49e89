package llm

import (
	"context"

	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
)

// Provider is the chat-completion boundary. History arrives already trimmed
// to the context window, newest turn (the user's question) last.
type Provider interface {
	Generate(ctx context.Context, systemPrompt string, history []chatModel.Message) (string, error)
}
