package models

import "time"

// Message is one turn of a conversation. Conversations live in the client
// and are re-sent in full on every chat request; the server stores nothing.
type Message struct {
	Role      string    `json:"role" validate:"required,oneof=user assistant"`
	Content   string    `json:"content" validate:"required"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

type ChatRequest struct {
	Messages     []Message `json:"messages" validate:"required,min=1,dive"`
	SystemPrompt string    `json:"systemPrompt,omitempty"`
}

type ChatResponse struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

type LoginRequest struct {
	Password string `json:"password"`
}
