package adapter

import (
	"fmt"

	"github.com/avitale/VillageGuideAPI/internal/api"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/agent"
)

func ToChatResponse(conversationId string, reply agent.Reply) api.ChatResponse {
	return api.ChatResponse{
		ConversationId: conversationId,
		Reply:          reply.Content,
		Sources:        toSourceRefs(reply.Sources),
	}
}

func toSourceRefs(matches []knowledgeModel.ScoredPassage) []api.SourceRef {
	if len(matches) == 0 {
		return nil
	}
	refs := make([]api.SourceRef, 0, len(matches))
	for _, match := range matches {
		refs = append(refs, api.SourceRef{
			Title:    match.Passage.Title,
			Category: match.Passage.Category,
			Location: match.Passage.Location,
			Score:    match.Score,
		})
	}
	return refs
}

func ToConversationResponse(conversation chatModel.Conversation) api.ConversationResponse {
	return api.ConversationResponse{
		Id:        conversation.Id,
		Title:     conversation.Title,
		Language:  string(conversation.Language),
		PersonaId: conversation.PersonaId,
		CreatedAt: conversation.CreatedTime,
		UpdatedAt: conversation.UpdatedTime,
	}
}

func ToConversationDetailResponse(conversation chatModel.Conversation, messages []chatModel.Message) api.ConversationDetailResponse {
	out := api.ConversationDetailResponse{
		ConversationResponse: ToConversationResponse(conversation),
		Messages:             make([]api.MessageResponse, 0, len(messages)),
	}
	for _, message := range messages {
		out.Messages = append(out.Messages, api.MessageResponse{
			Id:        message.Id,
			Role:      string(message.Role),
			Content:   message.Content,
			CreatedAt: message.CreatedTime,
		})
	}
	return out
}

func ToPersonaResponse(persona chatModel.Persona) api.PersonaResponse {
	return api.PersonaResponse{
		Id:          persona.Id,
		Name:        persona.Name,
		Description: persona.Description,
	}
}

func ToUploadAcceptedResponse(documentId string) api.UploadAcceptedResponse {
	return api.UploadAcceptedResponse{
		DocumentId: documentId,
		StatusURL:  fmt.Sprintf("documents/%s", documentId),
	}
}

func ToDocumentStatusResponse(document knowledgeModel.UploadedDocument) api.DocumentStatusResponse {
	return api.DocumentStatusResponse{
		Id:            document.Id,
		Filename:      document.Filename,
		Status:        string(document.Status),
		ChunksCreated: document.ChunksCreated,
		ChunksFailed:  document.ChunksFailed,
		ErrorMessage:  document.ErrorMessage,
		UploadedAt:    document.UploadedAt,
		ProcessedAt:   document.ProcessedAt,
	}
}

func BadRequest(id string, message string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Code:    code,
		Message: message,
		Id:      id,
	}
}
