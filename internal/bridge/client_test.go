package bridge_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuvaraja22/wordle-bot/internal/bridge"
	"github.com/yuvaraja22/wordle-bot/internal/errors"
)

func TestSendMessage(t *testing.T) {
	var got struct {
		ChatID         string `json:"chat_id"`
		Text           string `json:"text"`
		IdempotencyKey string `json:"idempotency_key"`
	}
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/send", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := bridge.New(server.URL, "secret", 5*time.Second)
	err := client.SendMessage(context.Background(), "group@g.us", "hello")

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "group@g.us", got.ChatID)
	assert.Equal(t, "hello", got.Text)
	assert.NotEmpty(t, got.IdempotencyKey)
}

func TestSendMessageFreshIdempotencyKeys(t *testing.T) {
	keys := make(map[string]bool)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IdempotencyKey string `json:"idempotency_key"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		keys[body.IdempotencyKey] = true
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := bridge.New(server.URL, "", 5*time.Second)
	for i := 0; i < 3; i++ {
		require.NoError(t, client.SendMessage(context.Background(), "group@g.us", "hello"))
	}
	assert.Len(t, keys, 3)
}

func TestSendMessageBridgeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := bridge.New(server.URL, "secret", 5*time.Second)
	err := client.SendMessage(context.Background(), "group@g.us", "hello")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRemoteUnavailable))
}

func TestSendMessageBridgeDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := bridge.New(server.URL, "secret", time.Second)
	err := client.SendMessage(context.Background(), "group@g.us", "hello")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRemoteUnavailable))
}
