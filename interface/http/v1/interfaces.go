package v1

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockProjectService struct {
	mock.Mock
}

func (m *mockProjectService) Submit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockProjectService) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockProjectService) Submitting() bool {
	args := m.Called()
	return args.Bool(0)
}
