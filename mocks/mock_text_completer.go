package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTextCompleter is a mock implementation of port.TextCompleter.
type MockTextCompleter struct {
	mock.Mock
}

func (m *MockTextCompleter) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	args := m.Called(ctx, systemPrompt, userText)
	return args.String(0), args.Error(1)
}
