package gemini

import (
	"context"
	"errors"
	"sync"

	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/llm"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
	"google.golang.org/genai"
)

// alternative chat provider, selected with config.LLMProviderName = "gemini"

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

func GetGeminiClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, modelName, apikey)
	})

	if geminiClient == nil {
		return nil
	}
	return &llmClient{client: geminiClient.client, modelName: geminiClient.modelName}
}

func newGeminiClient(ctx context.Context, modelName string, apikey string) {
	if apikey == "" {
		logger.Error("Gemini API key not configured")
		return
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	geminiClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Gemini client created", "model", modelName)
	go closeClient(ctx, geminiClient)
}

func (c *llmClient) Generate(ctx context.Context, systemPrompt string, history []chatModel.Message) (string, error) {
	log := logger.WithTrace(ctx)

	systemInstruction := &genai.Content{
		Parts: []*genai.Part{
			{Text: systemPrompt},
		},
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := "user"
		if turn.Role == chatModel.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		contents,
		&genai.GenerateContentConfig{SystemInstruction: systemInstruction},
	)
	if err != nil {
		log.Error("Error generating content", "error", err.Error())
		return "", err
	}
	text := result.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty candidate")
	}
	return text, nil
}

func closeClient(ctx context.Context, llm *llmClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	llm.client = nil
	llm.modelName = ""
}
