package openaiEmbedding

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/customHttpClient"
	"github.com/avitale/VillageGuideAPI/internal/rag/embedding"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var logger *logger_i.Logger
var once sync.Once
var embeddingClient *client

type client struct {
	api   openai.Client
	model string
}

func GetOpenAIEmbeddingClient(ctx context.Context, modelName string, apikey string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("openai_embedding")
		newOpenAIEmbedder(ctx, modelName, apikey)
	})

	//if init still fails
	if embeddingClient == nil {
		return nil
	}
	return &client{api: embeddingClient.api, model: embeddingClient.model}
}

func newOpenAIEmbedder(ctx context.Context, modelName string, apikey string) {
	if apikey == "" {
		logger.Error("OpenAI API key not configured")
		return
	}
	api := openai.NewClient(
		option.WithAPIKey(apikey),
		option.WithHTTPClient(customHttpClient.PooledClient(30*time.Second)),
	)
	embeddingClient = &client{
		api:   api,
		model: modelName,
	}
	logger.Debug("OpenAI embedding model name: " + modelName)
	logger.Info("OpenAI embedding client created")
}

func (c *client) ModelID() string {
	return c.model
}

func (c *client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	log := logger.WithTrace(ctx)

	result, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model:          openai.EmbeddingModel(c.model),
		Input:          openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		EncodingFormat: openai.EmbeddingNewParamsEncodingFormatFloat,
	})
	if err != nil {
		log.Error("Error getting embedding from OpenAI", "error", err.Error())
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, errors.New("embedding response carried no data")
	}

	values := result.Data[0].Embedding
	vector := make([]float32, len(values))
	for i, v := range values {
		vector[i] = float32(v)
	}
	return vector, nil
}
