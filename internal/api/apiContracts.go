package api

import "time"

type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Conversation not found"`
	Id      string `json:"id,omitempty"`
}

// SourceRef is a citation for one passage that grounded the reply.
type SourceRef struct {
	Title    string  `json:"title"`
	Category string  `json:"category,omitempty"`
	Location string  `json:"location,omitempty"`
	Score    float32 `json:"score"`
}

type ChatResponse struct {
	ConversationId string      `json:"conversation_id"`
	Reply          string      `json:"reply"`
	Sources        []SourceRef `json:"sources,omitempty"`
}

type ConversationResponse struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	PersonaId string    `json:"persona_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MessageResponse struct {
	Id        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ConversationDetailResponse struct {
	ConversationResponse
	Messages []MessageResponse `json:"messages"`
}

type PersonaResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UploadAcceptedResponse struct {
	DocumentId string `json:"document_id"`
	StatusURL  string `json:"status_url"`
}

type DocumentStatusResponse struct {
	Id            string    `json:"id"`
	Filename      string    `json:"filename"`
	Status        string    `json:"status"`
	ChunksCreated int       `json:"chunks_created"`
	ChunksFailed  int       `json:"chunks_failed,omitempty"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at"`
	ProcessedAt   time.Time `json:"processed_at,omitempty"`
}

// requests---------------------

type CreateConversationRequest struct {
	UserId    string `json:"user_id,omitempty"`
	PersonaId string `json:"persona_id,omitempty"`
	Language  string `json:"language,omitempty" example:"it"`
}

type ChatRequest struct {
	Message        string `json:"message" validate:"required"`
	ConversationId string `json:"conversation_id,omitempty"`
	Language       string `json:"language,omitempty" example:"it"`
	PersonaId      string `json:"persona_id,omitempty"`
	UserId         string `json:"user_id,omitempty"`
}

type SpeechRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language,omitempty" example:"it"`
}
