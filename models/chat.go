package models

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest is forwarded verbatim to the upstream completions endpoint.
type ChatRequest struct {
	Model    string        `json:"model" binding:"required"`
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}
