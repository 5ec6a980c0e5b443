// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishShipmentPacked(ctx context.Context, record *model.ShipmentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
