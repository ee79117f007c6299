package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/VindiceCode/plantprince/models"
)

// AgentErrorKind classifies outbound agent failures. Every failure maps
// to exactly one kind so the handler can log it and serve the fallback.
type AgentErrorKind string

const (
	AgentUnconfigured      AgentErrorKind = "agent_unconfigured"
	AgentTimeout           AgentErrorKind = "agent_timeout"
	AgentUnreachable       AgentErrorKind = "agent_unreachable"
	AgentAuthRejected      AgentErrorKind = "agent_auth_rejected"
	AgentMalformedResponse AgentErrorKind = "agent_malformed_response"
)

// AgentError is the only error type returned by AgentClient.
type AgentError struct {
	Kind    AgentErrorKind
	Message string
	Err     error
}

func (e *AgentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AgentError) Unwrap() error { return e.Err }

func agentErr(kind AgentErrorKind, message string, err error) *AgentError {
	return &AgentError{Kind: kind, Message: message, Err: err}
}

const (
	chatCompletionsPath = "/api/v1/chat/completions"

	// MaxAgentTimeout caps how long a single recommendation request may
	// wait on the agent, no matter what LLM_TIMEOUT asks for.
	MaxAgentTimeout = 30 * time.Second

	defaultMaxTokens = 2000
)

// AgentConfig holds the settings for the recommendation agent.
type AgentConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

// AgentClient talks to the agent's chat completion API.
type AgentClient struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewAgentClient builds a client, clamping the timeout to MaxAgentTimeout.
func NewAgentClient(cfg AgentConfig) *AgentClient {
	timeout := cfg.Timeout
	if timeout <= 0 || timeout > MaxAgentTimeout {
		timeout = MaxAgentTimeout
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &AgentClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether the client has enough settings to call out.
func (a *AgentClient) Configured() bool {
	return a != nil && a.baseURL != "" && a.apiKey != ""
}

// Timeout returns the effective wait ceiling for one agent call.
func (a *AgentClient) Timeout() time.Duration {
	return a.httpClient.Timeout
}

// Recommend sends the prompt to the agent and returns the parsed
// recommendation. location and season fill in when the agent omits
// them. Every failure is an *AgentError.
func (a *AgentClient) Recommend(ctx context.Context, prompt, location, season string) (*models.RecommendationResponse, error) {
	content, err := a.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	resp, err := ParseRecommendation(content, location, season)
	if err != nil {
		return nil, err
	}
	resp.GeneratedBy = models.GeneratedByLLM
	return resp, nil
}

// Complete performs one chat completion call and returns the reply text.
func (a *AgentClient) Complete(ctx context.Context, prompt string) (string, error) {
	if !a.Configured() {
		return "", agentErr(AgentUnconfigured, "agent endpoint or API key not set", nil)
	}

	payload := models.ChatRequest{
		Model:                a.model,
		Messages:             []models.ChatMessage{{Role: "user", Content: prompt}},
		MaxTokens:            a.maxTokens,
		Temperature:          0.7,
		TopP:                 0.9,
		K:                    10,
		RetrievalMethod:      "rewrite",
		IncludeRetrievalInfo: true,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return "", agentErr(AgentUnreachable, "failed to build agent request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", agentErr(AgentTimeout, fmt.Sprintf("agent did not answer within %s", a.httpClient.Timeout), err)
		}
		return "", agentErr(AgentUnreachable, "agent request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", agentErr(AgentUnreachable, "failed to read agent response", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return "", agentErr(AgentAuthRejected, fmt.Sprintf("agent rejected the request (status %d): %s", resp.StatusCode, truncate(string(raw), 200)), nil)
	default:
		return "", agentErr(AgentUnreachable, fmt.Sprintf("agent returned status %d", resp.StatusCode), nil)
	}

	var chat models.ChatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return "", agentErr(AgentMalformedResponse, "agent reply is not valid JSON", err)
	}
	if chat.Error != nil && chat.Error.Message != "" {
		return "", agentErr(AgentMalformedResponse, "agent reported an error: "+chat.Error.Message, nil)
	}
	content := chat.Content()
	if content == "" {
		return "", agentErr(AgentMalformedResponse, "agent reply has no content", nil)
	}
	return content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
