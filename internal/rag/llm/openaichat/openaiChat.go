package openaichat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/customHttpClient"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/llm"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var logger *logger_i.Logger
var chatClient *llmClient
var once sync.Once

type llmClient struct {
	api       openai.Client
	modelName string
}

func GetOpenAIChatClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		newChatClient(modelName, apikey)
	})

	if chatClient == nil {
		return nil
	}
	return &llmClient{api: chatClient.api, modelName: chatClient.modelName}
}

func newChatClient(modelName string, apikey string) {
	if apikey == "" {
		logger.Error("OpenAI API key not configured")
		return
	}
	api := openai.NewClient(
		option.WithAPIKey(apikey),
		option.WithHTTPClient(customHttpClient.PooledClient(60*time.Second)),
	)
	chatClient = &llmClient{api: api, modelName: modelName}
	logger.Info("OpenAI chat client created", "model", modelName)
}

func (c *llmClient) Generate(ctx context.Context, systemPrompt string, history []chatModel.Message) (string, error) {
	log := logger.WithTrace(ctx)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, turn := range history {
		switch turn.Role {
		case chatModel.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}

	result, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.modelName),
		Messages:    messages,
		Temperature: openai.Float(config.ModelTemperature),
	})
	if err != nil {
		log.Error("Error generating chat completion", "error", err.Error())
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", errors.New("chat completion carried no choices")
	}
	return result.Choices[0].Message.Content, nil
}
