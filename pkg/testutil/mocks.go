package testutil

import (
	"context"

	"github.com/arthur-debert/javaswitch/pkg/dialog"
	"github.com/stretchr/testify/mock"
)

// MockConfirmer is a testify mock implementing dialog.Confirmer
type MockConfirmer struct {
	mock.Mock
}

// Confirm records the request and returns the configured answer
func (m *MockConfirmer) Confirm(ctx context.Context, req dialog.Request) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

// Answering returns a confirmer that always gives answer
func Answering(answer bool) *MockConfirmer {
	m := &MockConfirmer{}
	m.On("Confirm", mock.Anything, mock.Anything).Return(answer, nil)
	return m
}
