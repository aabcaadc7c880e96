package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
)

const graphqlURL = "https://leetcode.com/graphql/"

const countsQuery = `
query userProblemsSolved($username: String!) {
  matchedUser(username: $username) {
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
  }
}`

type Client struct {
	httpClient *http.Client
	url        string
	log        *logger.Logger
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        graphqlURL,
		log:        logger.Default().WithPrefix("leetcode"),
	}
}

// NewWithURL is used by tests to point the client at a stub server.
func NewWithURL(url string, timeout time.Duration) *Client {
	c := New(timeout)
	c.url = url
	return c
}

// Counts holds a user's cumulative accepted-solution counters per tier.
type Counts struct {
	Total  int `json:"total"`
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type countsResponse struct {
	Data struct {
		MatchedUser *struct {
			SubmitStatsGlobal struct {
				ACSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
	} `json:"data"`
}

// FetchCounts retrieves the user's solved-problem counters. Any transport
// failure, non-2xx status, or missing-user payload surfaces as
// errors.ErrRemoteUnavailable so callers can degrade to an error reply.
func (c *Client) FetchCounts(ctx context.Context, username string) (*Counts, error) {
	log := logger.FromContext(ctx).WithPrefix("leetcode").WithField("username", username)

	body, err := json.Marshal(graphqlRequest{
		Query:     strings.ReplaceAll(countsQuery, "\n", " "),
		Variables: map[string]any{"username": username},
	})
	if err != nil {
		return nil, err
	}

	log.Debug("fetching solved counts")
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch counts: %v", err)
		return nil, fmt.Errorf("%w: %w", errors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug("counts response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("counts request failed: status=%d, body=%s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("%w: status %d", errors.ErrRemoteUnavailable, resp.StatusCode)
	}

	var payload countsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Error("failed to decode counts response: %v", err)
		return nil, fmt.Errorf("%w: %w", errors.ErrRemoteUnavailable, err)
	}

	if payload.Data.MatchedUser == nil {
		log.Warn("no such user on remote")
		return nil, fmt.Errorf("%w: user %q not found", errors.ErrRemoteUnavailable, username)
	}

	var counts Counts
	for _, tier := range payload.Data.MatchedUser.SubmitStatsGlobal.ACSubmissionNum {
		switch tier.Difficulty {
		case "All":
			counts.Total = tier.Count
		case "Easy":
			counts.Easy = tier.Count
		case "Medium":
			counts.Medium = tier.Count
		case "Hard":
			counts.Hard = tier.Count
		}
	}

	log.Info("fetched counts: total=%d, easy=%d, medium=%d, hard=%d", counts.Total, counts.Easy, counts.Medium, counts.Hard)
	return &counts, nil
}
