package pos_test

import (
	"context"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) Create(ctx context.Context, req ports.CreateOrderRequest) (ports.OrderReceipt, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.OrderReceipt), args.Error(1)
}

func (m *MockOrderService) AddItem(
	ctx context.Context,
	orderID kernel.UUID,
	req ports.AddItemRequest,
) (ports.LineItemRecord, error) {
	args := m.Called(ctx, orderID, req)
	return args.Get(0).(ports.LineItemRecord), args.Error(1)
}

func (m *MockOrderService) Confirm(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockOrderService) Serve(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockOrderService) Complete(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(
	ctx context.Context,
	orderID kernel.UUID,
	status order.Status,
) (order.Status, error) {
	args := m.Called(ctx, orderID, status)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) ListItems(ctx context.Context) ([]menu.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]menu.Item)
	return items, args.Error(1)
}

func (m *MockMenuCatalog) GetItem(ctx context.Context, id kernel.UUID) (menu.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(menu.Item), args.Error(1)
}
