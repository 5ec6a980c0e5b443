// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockShipmentsClient struct {
	mock.Mock
}

func (m *MockShipmentsClient) UpdatePacking(ctx context.Context, shipmentID string, lines []model.PackingLine, status model.ShipmentStatus) (*model.ShipmentRecord, error) {
	args := m.Called(ctx, shipmentID, lines, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShipmentRecord), args.Error(1)
}
