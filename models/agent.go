package models

import "strings"

// ChatMessage is one message in the agent conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the agent's chat completion endpoint.
type ChatRequest struct {
	Model                string        `json:"model,omitempty"`
	Messages             []ChatMessage `json:"messages"`
	MaxTokens            int           `json:"max_tokens"`
	Temperature          float64       `json:"temperature"`
	TopP                 float64       `json:"top_p"`
	K                    int           `json:"k"`
	RetrievalMethod      string        `json:"retrieval_method"`
	IncludeRetrievalInfo bool          `json:"include_retrieval_info"`
	Stream               bool          `json:"stream"`
}

type ChatChoice struct {
	Message *ChatMessage `json:"message,omitempty"`
	Delta   *ChatMessage `json:"delta,omitempty"`
}

type ChatError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ChatResponse is what the agent endpoint returns.
type ChatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Error   *ChatError   `json:"error,omitempty"`
}

// Content returns the trimmed text of the first choice, or "".
func (r *ChatResponse) Content() string {
	if len(r.Choices) == 0 {
		return ""
	}
	choice := r.Choices[0]
	if choice.Message != nil && choice.Message.Content != "" {
		return strings.TrimSpace(choice.Message.Content)
	}
	if choice.Delta != nil {
		return strings.TrimSpace(choice.Delta.Content)
	}
	return ""
}
