package activitystore

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/strideworks/stridemap/internal/contract"
	"github.com/strideworks/stridemap/schema"
)

// MockStore is a mock implementation of ActivityStore for testing.
type MockStore struct {
	mock.Mock
}

var _ contract.ActivityStore = &MockStore{} // Compile-time check

// SaveActivities implements the ActivityStore interface.
func (m *MockStore) SaveActivities(ctx context.Context, acts []schema.Activity) (int, error) {
	args := m.Called(ctx, acts)
	return args.Int(0), args.Error(1)
}

// ListActivities implements the ActivityStore interface.
func (m *MockStore) ListActivities(ctx context.Context) ([]schema.Activity, error) {
	args := m.Called(ctx)
	acts, _ := args.Get(0).([]schema.Activity)
	return acts, args.Error(1)
}

// Status implements the ActivityStore interface.
func (m *MockStore) Status(ctx context.Context) (*schema.StoreStatus, error) {
	args := m.Called(ctx)
	status, _ := args.Get(0).(*schema.StoreStatus)
	return status, args.Error(1)
}

// Clear implements the ActivityStore interface.
func (m *MockStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close implements the ActivityStore interface.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
