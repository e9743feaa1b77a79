package ports

import (
	"context"

	"havenpos/internal/core/domain/model/order"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	MenuRepository() MenuRepository

	TableRepository() TableRepository

	PaymentRepository() PaymentRepository

	// CommittedEvents returns the status changes of the orders written in
	// the last committed transaction.
	CommittedEvents() []order.StatusChanged
}
