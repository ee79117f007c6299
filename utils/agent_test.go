package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/VindiceCode/plantprince/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatReply(content string) string {
	body, _ := json.Marshal(models.ChatResponse{
		ID:      "chatcmpl-test",
		Choices: []models.ChatChoice{{Message: &models.ChatMessage{Role: "assistant", Content: content}}},
	})
	return string(body)
}

func newTestAgent(baseURL string, timeout time.Duration) *AgentClient {
	return NewAgentClient(AgentConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: timeout,
	})
}

func TestNewAgentClientClampsTimeout(t *testing.T) {
	assert.Equal(t, MaxAgentTimeout, NewAgentClient(AgentConfig{Timeout: 5 * time.Minute}).Timeout())
	assert.Equal(t, MaxAgentTimeout, NewAgentClient(AgentConfig{}).Timeout())
	assert.Equal(t, 10*time.Second, NewAgentClient(AgentConfig{Timeout: 10 * time.Second}).Timeout())
}

func TestRecommendHappyPath(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Messages, 1)
		assert.Equal(t, "user", payload.Messages[0].Role)
		assert.Equal(t, "test-model", payload.Model)
		assert.False(t, payload.Stream)

		fmt.Fprint(w, chatReply(goodReply))
	}))
	defer srv.Close()

	agent := newTestAgent(srv.URL, 5*time.Second)
	resp, err := agent.Recommend(context.Background(), "prompt", "Denver, Colorado", "Spring Planting Season")
	require.NoError(t, err)

	assert.Equal(t, models.GeneratedByLLM, resp.GeneratedBy)
	assert.Len(t, resp.Plants, 2)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestRecommendRepairsWrappedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply("Sure! Here you go:\n```json\n"+goodReply+"\n```\nEnjoy your garden."))
	}))
	defer srv.Close()

	agent := newTestAgent(srv.URL, 5*time.Second)
	resp, err := agent.Recommend(context.Background(), "prompt", "Denver, Colorado", "Spring Planting Season")
	require.NoError(t, err)
	assert.Equal(t, models.GeneratedByLLM, resp.GeneratedBy)
	assert.Len(t, resp.Plants, 2)
}

func TestCompleteUnconfiguredShortCircuits(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	agent := NewAgentClient(AgentConfig{BaseURL: srv.URL}) // no API key
	_, err := agent.Recommend(context.Background(), "prompt", "a, b", "s")
	require.Error(t, err)

	var aerr *AgentError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, AgentUnconfigured, aerr.Kind)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestCompleteErrorKindsByStatus(t *testing.T) {
	cases := []struct {
		name   string
		status int
		kind   AgentErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, AgentAuthRejected},
		{"forbidden", http.StatusForbidden, AgentAuthRejected},
		{"rate limited", http.StatusTooManyRequests, AgentAuthRejected},
		{"server error", http.StatusInternalServerError, AgentUnreachable},
		{"bad gateway", http.StatusBadGateway, AgentUnreachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tc.status)
			}))
			defer srv.Close()

			agent := newTestAgent(srv.URL, 5*time.Second)
			_, err := agent.Complete(context.Background(), "prompt")

			var aerr *AgentError
			require.ErrorAs(t, err, &aerr)
			assert.Equal(t, tc.kind, aerr.Kind)
		})
	}
}

func TestCompleteTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, chatReply(goodReply))
	}))
	defer srv.Close()

	agent := newTestAgent(srv.URL, 50*time.Millisecond)
	start := time.Now()
	_, err := agent.Complete(context.Background(), "prompt")

	var aerr *AgentError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, AgentTimeout, aerr.Kind)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCompleteHonorsContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, chatReply(goodReply))
	}))
	defer srv.Close()

	agent := newTestAgent(srv.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := agent.Complete(ctx, "prompt")

	var aerr *AgentError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, AgentTimeout, aerr.Kind)
}

func TestCompleteUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	agent := newTestAgent(srv.URL, time.Second)
	_, err := agent.Complete(context.Background(), "prompt")

	var aerr *AgentError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, AgentUnreachable, aerr.Kind)
}

func TestCompleteMalformedReplies(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "<html>gateway</html>"},
		{"empty choices", `{"id": "x", "choices": []}`},
		{"blank content", chatReply("   ")},
		{"api error field", `{"error": {"message": "model overloaded", "type": "server_error"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			agent := newTestAgent(srv.URL, 5*time.Second)
			_, err := agent.Complete(context.Background(), "prompt")

			var aerr *AgentError
			require.ErrorAs(t, err, &aerr)
			assert.Equal(t, AgentMalformedResponse, aerr.Kind)
		})
	}
}

func TestAgentErrorUnwrap(t *testing.T) {
	cause := context.DeadlineExceeded
	err := agentErr(AgentTimeout, "too slow", cause)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "agent_timeout")
	assert.Contains(t, err.Error(), "too slow")
}
