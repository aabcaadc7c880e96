package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTransport is a mock implementation of bot.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) SendMessage(ctx context.Context, chatID, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}
