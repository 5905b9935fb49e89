package handlers

import (
	"sync"

	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/ingestjob"
	"github.com/avitale/VillageGuideAPI/internal/rag/agent"
	"github.com/avitale/VillageGuideAPI/internal/tts"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

var (
	handlerInstance *GuideHandler //private singleton
	once            sync.Once
	logRH           *logger_i.Logger
)

type GuideHandler struct {
	agent         agent.Service
	conversations chatModel.ConversationStore
	personas      chatModel.PersonaStore
	documents     knowledgeModel.DocumentStore
	ingestService *ingestjob.Service
	speech        tts.Synthesizer
}

type Services struct {
	Agent         agent.Service
	Conversations chatModel.ConversationStore
	Personas      chatModel.PersonaStore
	Documents     knowledgeModel.DocumentStore
	IngestService *ingestjob.Service
	Speech        tts.Synthesizer
}

func InitHandlers(services Services) {
	once.Do(func() {
		handlerInstance = &GuideHandler{
			agent:         services.Agent,
			conversations: services.Conversations,
			personas:      services.Personas,
			documents:     services.Documents,
			ingestService: services.IngestService,
			speech:        services.Speech,
		}
		logRH = logger_i.NewLogger("RequestHandler")
		logRH.Info("Starting request handlers")
	})
}
