package tts

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/customHttpClient"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var logger *logger_i.Logger
var once sync.Once
var speechClient *client

// Synthesizer reads guide replies aloud. Output is an MP3 stream.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, language chatModel.Language) (io.ReadCloser, error)
}

type client struct {
	api   openai.Client
	model string
}

func GetSpeechClient(ctx context.Context, apikey string) Synthesizer {
	once.Do(func() {
		logger = logger_i.NewLogger("openai_tts")
		newSpeechClient(apikey)
	})

	//if init still fails
	if speechClient == nil {
		return nil
	}
	return &client{api: speechClient.api, model: speechClient.model}
}

func newSpeechClient(apikey string) {
	if apikey == "" {
		logger.Error("OpenAI API key not configured")
		return
	}
	api := openai.NewClient(
		option.WithAPIKey(apikey),
		option.WithHTTPClient(customHttpClient.PooledClient(60*time.Second)),
	)
	speechClient = &client{
		api:   api,
		model: config.TTSModel,
	}
	logger.Info("OpenAI speech client created")
}

// voiceFor picks a voice that suits the spoken language. The mapping is a
// taste call, not a technical constraint, every voice can speak every
// supported language.
func voiceFor(language chatModel.Language) openai.AudioSpeechNewParamsVoice {
	switch language {
	case chatModel.LanguageItalian:
		return openai.AudioSpeechNewParamsVoiceAlloy
	case chatModel.LanguageSpanish:
		return openai.AudioSpeechNewParamsVoiceShimmer
	default:
		return openai.AudioSpeechNewParamsVoice("nova")
	}
}

func (c *client) Synthesize(ctx context.Context, text string, language chatModel.Language) (io.ReadCloser, error) {
	log := logger.WithTrace(ctx)

	response, err := c.api.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(c.model),
		Input:          text,
		Voice:          voiceFor(language),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		log.Error("Error synthesizing speech", "error", err.Error())
		return nil, err
	}
	return response.Body, nil
}
