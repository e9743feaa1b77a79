package commands

import (
	"context"

	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// EventSource hands out the status changes of the last commit.
	EventSource interface {
		CommittedEvents() []order.StatusChanged
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	UoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// DiningUoW covers order writes that also seat or release a table.
	DiningUoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
		EventSource
	}

	DiningUoWFactory interface {
		Create() DiningUoW
	}

	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	TableUoWFactory interface {
		Create() TableUoW
	}

	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
