package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avitale/VillageGuideAPI/internal/adapter"
	"github.com/avitale/VillageGuideAPI/internal/adapter/utils"
	"github.com/avitale/VillageGuideAPI/internal/api"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/agent"
)

// CreateConversationHandler godoc
// @Summary      Start a new conversation
// @Description  Creates an empty conversation with the chosen persona and language. POST /chat without a conversation_id does the same implicitly.
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        request  body      api.CreateConversationRequest  true  "User, persona and language"
// @Success      201      {object}  api.ConversationResponse
// @Failure      400      {object}  api.ErrorResponse "Unknown persona"
// @Router       /conversations [post]
func CreateConversationHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var requestData api.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
		return
	}
	defer r.Body.Close()

	conversation, err := handlerInstance.agent.StartConversation(r.Context(), requestData.UserId, requestData.PersonaId, chatModel.ParseLanguage(requestData.Language))
	if err != nil {
		if errors.Is(err, agent.ErrPersonaNotFound) {
			WriteErrorResponse(w, http.StatusBadRequest, requestData.PersonaId, "Unknown persona")
			return
		}
		logRH.Error("Failed to create conversation", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Could not create conversation")
		return
	}
	writeJsonResponse(w, http.StatusCreated, adapter.ToConversationResponse(conversation))
}

// ListConversationsHandler godoc
// @Summary      List conversations for a user
// @Tags         Conversations
// @Produce      json
// @Param        user_id  query     string  true  "User identifier"
// @Success      200      {array}   api.ConversationResponse
// @Router       /conversations [get]
func ListConversationsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	userId := r.URL.Query().Get("user_id")
	conversations, err := handlerInstance.conversations.ListConversations(r.Context(), userId)
	if err != nil {
		logRH.Error("Failed listing conversations", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, userId, "Could not list conversations")
		return
	}

	out := make([]api.ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		out = append(out, adapter.ToConversationResponse(conversation))
	}
	writeJsonResponse(w, http.StatusOK, out)
}

// GetConversationHandler godoc
// @Summary      Get a conversation with its full message log
// @Tags         Conversations
// @Produce      json
// @Param        id   path      string  true  "Conversation ID"
// @Success      200  {object}  api.ConversationDetailResponse
// @Failure      404  {object}  api.ErrorResponse "Conversation not found"
// @Router       /conversations/{id} [get]
func GetConversationHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	id := utils.GetChiURLParam(r, "id")
	conversation, found := handlerInstance.conversations.GetConversation(r.Context(), id)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, id, "Conversation not found")
		return
	}

	messages, err := handlerInstance.conversations.GetMessages(r.Context(), id)
	if err != nil {
		logRH.Error("Failed loading messages", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, id, "Could not load messages")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToConversationDetailResponse(conversation, messages))
}

// DeleteConversationHandler godoc
// @Summary      Delete a conversation and all of its messages
// @Tags         Conversations
// @Param        id   path  string  true  "Conversation ID"
// @Success      204  "Deleted"
// @Failure      404  {object}  api.ErrorResponse "Conversation not found"
// @Router       /conversations/{id} [delete]
func DeleteConversationHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	id := utils.GetChiURLParam(r, "id")
	if _, found := handlerInstance.conversations.GetConversation(r.Context(), id); !found {
		WriteErrorResponse(w, http.StatusNotFound, id, "Conversation not found")
		return
	}

	if err := handlerInstance.conversations.DeleteConversation(r.Context(), id); err != nil {
		logRH.Error("Failed deleting conversation", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, id, "Could not delete conversation")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPersonasHandler godoc
// @Summary      List available guide personas
// @Tags         Personas
// @Produce      json
// @Success      200  {array}  api.PersonaResponse
// @Router       /personas [get]
func ListPersonasHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	personas, err := handlerInstance.personas.ListPersonas(r.Context())
	if err != nil {
		logRH.Error("Failed listing personas", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Could not list personas")
		return
	}

	out := make([]api.PersonaResponse, 0, len(personas))
	for _, persona := range personas {
		out = append(out, adapter.ToPersonaResponse(persona))
	}
	writeJsonResponse(w, http.StatusOK, out)
}
