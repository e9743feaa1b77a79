package queries_test

import (
	"context"

	"havenpos/internal/core/application/usecases/queries"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/payment"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, statuses []order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListKitchenQueue(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMenuRepository struct {
	mock.Mock
	ports.MenuRepository
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (menu.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(menu.Item), args.Error(1)
}

func (m *MockMenuRepository) List(ctx context.Context, onlyAvailable bool) ([]menu.Item, error) {
	args := m.Called(ctx, onlyAvailable)
	items, _ := args.Get(0).([]menu.Item)
	return items, args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
	ports.TableRepository
}

func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (table.Table, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(table.Table), args.Error(1)
}

func (m *MockTableRepository) List(ctx context.Context, onlyAvailable bool) ([]table.Table, error) {
	args := m.Called(ctx, onlyAvailable)
	tables, _ := args.Get(0).([]table.Table)
	return tables, args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
	ports.PaymentRepository
}

func (m *MockPaymentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]payment.Payment, error) {
	args := m.Called(ctx, orderID)
	payments, _ := args.Get(0).([]payment.Payment)
	return payments, args.Error(1)
}

type orderReader struct {
	repo ports.OrderRepository
}

func (r orderReader) OrderRepository() ports.OrderRepository {
	return r.repo
}

type orderReaderFactory struct {
	repo ports.OrderRepository
}

func (f orderReaderFactory) Create() queries.OrderReader {
	return orderReader(f)
}

type menuReader struct {
	repo ports.MenuRepository
}

func (r menuReader) MenuRepository() ports.MenuRepository {
	return r.repo
}

type menuReaderFactory struct {
	repo ports.MenuRepository
}

func (f menuReaderFactory) Create() queries.MenuReader {
	return menuReader(f)
}

type tableReader struct {
	repo ports.TableRepository
}

func (r tableReader) TableRepository() ports.TableRepository {
	return r.repo
}

type tableReaderFactory struct {
	repo ports.TableRepository
}

func (f tableReaderFactory) Create() queries.TableReader {
	return tableReader(f)
}

type paymentReader struct {
	orders   ports.OrderRepository
	payments ports.PaymentRepository
}

func (r paymentReader) OrderRepository() ports.OrderRepository {
	return r.orders
}

func (r paymentReader) PaymentRepository() ports.PaymentRepository {
	return r.payments
}

type paymentReaderFactory struct {
	orders   ports.OrderRepository
	payments ports.PaymentRepository
}

func (f paymentReaderFactory) Create() queries.PaymentReader {
	return paymentReader(f)
}
