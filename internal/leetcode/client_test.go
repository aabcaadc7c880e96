package leetcode_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/leetcode"
)

func statsPayload() map[string]any {
	return map[string]any{
		"data": map[string]any{
			"matchedUser": map[string]any{
				"submitStatsGlobal": map[string]any{
					"acSubmissionNum": []map[string]any{
						{"difficulty": "All", "count": 120},
						{"difficulty": "Easy", "count": 60},
						{"difficulty": "Medium", "count": 45},
						{"difficulty": "Hard", "count": 15},
					},
				},
			},
		},
	}
}

func TestFetchCounts_ParsesTiers(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(statsPayload())
	}))
	defer srv.Close()

	client := leetcode.NewWithURL(srv.URL, 5*time.Second)
	counts, err := client.FetchCounts(context.Background(), "mathanika")
	require.NoError(t, err)

	assert.Equal(t, 120, counts.Total)
	assert.Equal(t, 60, counts.Easy)
	assert.Equal(t, 45, counts.Medium)
	assert.Equal(t, 15, counts.Hard)

	vars, ok := gotBody["variables"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mathanika", vars["username"])
}

func TestFetchCounts_MissingUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"matchedUser": nil}})
	}))
	defer srv.Close()

	client := leetcode.NewWithURL(srv.URL, 5*time.Second)
	_, err := client.FetchCounts(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}

func TestFetchCounts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := leetcode.NewWithURL(srv.URL, 5*time.Second)
	_, err := client.FetchCounts(context.Background(), "mathanika")
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}

func TestFetchCounts_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := leetcode.NewWithURL(srv.URL, 50*time.Millisecond)
	_, err := client.FetchCounts(context.Background(), "mathanika")
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}
