// Package bridge is the REST client for the WhatsApp bridge process. The
// bridge owns the actual WhatsApp session; this client only pushes outbound
// messages to it.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        *logger.Logger
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		log:        logger.Default().WithPrefix("bridge"),
	}
}

type sendRequest struct {
	ChatID         string `json:"chat_id"`
	Text           string `json:"text"`
	IdempotencyKey string `json:"idempotency_key"`
}

// SendMessage pushes one outbound message to the bridge. Each call carries a
// fresh idempotency key so the bridge can dedupe retried deliveries.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	log := logger.FromContext(ctx).WithPrefix("bridge").WithField("chat", chatID)
	url := c.baseURL + "/api/send"

	body, err := json.Marshal(sendRequest{
		ChatID:         chatID,
		Text:           text,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return err
	}

	log.Debug("sending message via bridge")
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to reach bridge: %v", err)
		return fmt.Errorf("%w: %v", errors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug("bridge response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("bridge send failed: status=%d, body=%s", resp.StatusCode, string(respBody))
		return fmt.Errorf("%w: bridge status %d", errors.ErrRemoteUnavailable, resp.StatusCode)
	}

	log.Info("message delivered to bridge")
	return nil
}
