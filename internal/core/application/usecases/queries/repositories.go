package queries

import (
	"time"

	"havenpos/internal/core/ports"
)

type (
	OrderReader interface {
		OrderRepository() ports.OrderRepository
	}

	OrderReaderFactory interface {
		Create() OrderReader
	}

	MenuReader interface {
		MenuRepository() ports.MenuRepository
	}

	MenuReaderFactory interface {
		Create() MenuReader
	}

	TableReader interface {
		TableRepository() ports.TableRepository
	}

	TableReaderFactory interface {
		Create() TableReader
	}

	// PaymentReader also reads orders, so unknown orders are told apart
	// from orders nobody paid for yet.
	PaymentReader interface {
		OrderRepository() ports.OrderRepository
		PaymentRepository() ports.PaymentRepository
	}

	PaymentReaderFactory interface {
		Create() PaymentReader
	}
)

type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c()
}
