package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenfield-hub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestChatService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req chatCompletionRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "test-model", req.Model)
			assert.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, "how to grow millet?", req.Messages[1].Content)

			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": "Sow after first rains."}},
				},
			})
		}))
		defer upstream.Close()

		svc := NewChatService("test-key", "test-model", upstream.URL)
		reply, err := svc.Complete(ctx, "how to grow millet?")
		assert.NoError(t, err)
		assert.Equal(t, "Sow after first rains.", reply)
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer upstream.Close()

		svc := NewChatService("test-key", "test-model", upstream.URL)
		reply, err := svc.Complete(ctx, "hello")
		assert.Empty(t, reply)
		var upstreamErr *domain.UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "openrouter", upstreamErr.Service)
	})

	t.Run("Empty Choices", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
		}))
		defer upstream.Close()

		svc := NewChatService("test-key", "test-model", upstream.URL)
		reply, err := svc.Complete(ctx, "hello")
		assert.NoError(t, err)
		assert.Equal(t, "No response", reply)
	})
}
