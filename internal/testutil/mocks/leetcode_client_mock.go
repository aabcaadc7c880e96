package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yuvaraja22/wordle-bot/internal/leetcode"
)

// MockLeetCodeClient is a mock implementation of leetcode.ClientInterface
type MockLeetCodeClient struct {
	mock.Mock
}

func (m *MockLeetCodeClient) FetchCounts(ctx context.Context, username string) (*leetcode.Counts, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leetcode.Counts), args.Error(1)
}
