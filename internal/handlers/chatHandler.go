package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avitale/VillageGuideAPI/internal/adapter"
	"github.com/avitale/VillageGuideAPI/internal/api"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/agent"
)

// ChatHandler godoc
// @Summary      Send a chat message
// @Description  Sends a visitor message, runs retrieval and the LLM, and returns the guide's reply with source citations. Omit conversation_id to start a new conversation.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      api.ChatRequest   true  "Message, optional conversation id, language and persona"
// @Success      200      {object}  api.ChatResponse  "The guide's reply"
// @Failure      400      {object}  api.ErrorResponse "Invalid request data"
// @Failure      404      {object}  api.ErrorResponse "Conversation not found"
// @Router       /chat [post]
func ChatHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	var requestData api.ChatRequest
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logRH.Error("Couldn't close the Chat handler reader :", err)
		}
	}(request.Body)
	if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || requestData.Message == "" {
		logRH.Warn("Bad Chat Request: ", "error:", err, "request data:", requestData)
		WriteErrorResponse(w, http.StatusBadRequest, requestData.ConversationId, "Bad Request")
		return
	}

	ctx := request.Context()
	conversationId := requestData.ConversationId
	if conversationId == "" {
		conversation, err := handlerInstance.agent.StartConversation(ctx, requestData.UserId, requestData.PersonaId, chatModel.ParseLanguage(requestData.Language))
		if err != nil {
			if errors.Is(err, agent.ErrPersonaNotFound) {
				WriteErrorResponse(w, http.StatusBadRequest, requestData.PersonaId, "Unknown persona")
				return
			}
			logRH.Error("Failed to start conversation", "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "", "Could not start conversation")
			return
		}
		conversationId = conversation.Id
	}

	reply, err := handlerInstance.agent.GenerateResponse(ctx, conversationId, requestData.Message)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrConversationNotFound):
			WriteErrorResponse(w, http.StatusNotFound, conversationId, "Conversation not found")
		case errors.Is(err, agent.ErrEmptyMessage):
			WriteErrorResponse(w, http.StatusBadRequest, conversationId, "Message must not be empty")
		default:
			logRH.Error("Chat turn failed", "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, conversationId, "Chat turn failed")
		}
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToChatResponse(conversationId, reply))
}
