// Package usecases assembles the command and query handlers of the order
// service over one unit of work factory.
package usecases

import (
	"log/slog"
	"time"

	"havenpos/internal/core/application/usecases/commands"
	"havenpos/internal/core/application/usecases/queries"
	"havenpos/internal/core/domain/services"
	"havenpos/internal/core/ports"
)

// Handlers is the full set of order service operations. Handle methods
// have pointer receivers, so pass Handlers by pointer.
type Handlers struct {
	CreateOrder             commands.CreateOrderCommandHandler
	AddOrderItem            commands.AddOrderItemCommandHandler
	ChangeOrderStatus       commands.ChangeOrderStatusCommandHandler
	ApplyDiscount           commands.ApplyDiscountCommandHandler
	CreateMenuItem          commands.CreateMenuItemCommandHandler
	SetMenuItemAvailability commands.SetMenuItemAvailabilityCommandHandler
	CreateTable             commands.CreateTableCommandHandler
	SetTableOccupancy       commands.SetTableOccupancyCommandHandler
	AddPayment              commands.AddPaymentCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	ListOverdueOrders queries.ListOverdueOrdersQueryHandler
	ListKitchenQueue  queries.ListKitchenQueueQueryHandler
	GetMenuItem       queries.GetMenuItemQueryHandler
	ListMenuItems     queries.ListMenuItemsQueryHandler
	GetTable          queries.GetTableQueryHandler
	ListTables        queries.ListTablesQueryHandler
	ListPayments      queries.ListPaymentsQueryHandler
}

func NewHandlers(
	uowFactory ports.UnitOfWorkFactory,
	pricer services.Pricer,
	publisher ports.OrderEventPublisher,
	clock func() time.Time,
	logger *slog.Logger,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		orderUoW commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
			return uowFactory.Create()
		})
		menuUoW commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
			return uowFactory.Create()
		})
		uow commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
			return uowFactory.Create()
		})
		diningUoW commands.DiningUoWFactory = FuncDiningUoWFactory(func() commands.DiningUoW {
			return uowFactory.Create()
		})
		tableUoW commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
			return uowFactory.Create()
		})
		paymentUoW commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
			return uowFactory.Create()
		})
		orderReader queries.OrderReaderFactory = FuncOrderReaderFactory(func() queries.OrderReader {
			return uowFactory.Create()
		})
		menuReader queries.MenuReaderFactory = FuncMenuReaderFactory(func() queries.MenuReader {
			return uowFactory.Create()
		})
		tableReader queries.TableReaderFactory = FuncTableReaderFactory(func() queries.TableReader {
			return uowFactory.Create()
		})
		paymentReader queries.PaymentReaderFactory = FuncPaymentReaderFactory(func() queries.PaymentReader {
			return uowFactory.Create()
		})
	)

	return &Handlers{
		CreateOrder:             commands.NewCreateOrderCommandHandler(diningUoW, clock),
		AddOrderItem:            commands.NewAddOrderItemCommandHandler(uow, pricer),
		ChangeOrderStatus:       commands.NewChangeOrderStatusCommandHandler(diningUoW, publisher, clock, logger),
		ApplyDiscount:           commands.NewApplyDiscountCommandHandler(orderUoW, pricer),
		CreateMenuItem:          commands.NewCreateMenuItemCommandHandler(menuUoW),
		SetMenuItemAvailability: commands.NewSetMenuItemAvailabilityCommandHandler(menuUoW),
		CreateTable:             commands.NewCreateTableCommandHandler(tableUoW),
		SetTableOccupancy:       commands.NewSetTableOccupancyCommandHandler(tableUoW),
		AddPayment:              commands.NewAddPaymentCommandHandler(paymentUoW, clock),

		GetOrder:          queries.NewGetOrderQueryHandler(orderReader),
		ListOrders:        queries.NewListOrdersQueryHandler(orderReader),
		ListOverdueOrders: queries.NewListOverdueOrdersQueryHandler(orderReader, clock),
		ListKitchenQueue:  queries.NewListKitchenQueueQueryHandler(orderReader),
		GetMenuItem:       queries.NewGetMenuItemQueryHandler(menuReader),
		ListMenuItems:     queries.NewListMenuItemsQueryHandler(menuReader),
		GetTable:          queries.NewGetTableQueryHandler(tableReader),
		ListTables:        queries.NewListTablesQueryHandler(tableReader),
		ListPayments:      queries.NewListPaymentsQueryHandler(paymentReader),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDiningUoWFactory func() commands.DiningUoW

func (f FuncDiningUoWFactory) Create() commands.DiningUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncOrderReaderFactory func() queries.OrderReader

func (f FuncOrderReaderFactory) Create() queries.OrderReader {
	return f()
}

type FuncMenuReaderFactory func() queries.MenuReader

func (f FuncMenuReaderFactory) Create() queries.MenuReader {
	return f()
}

type FuncTableReaderFactory func() queries.TableReader

func (f FuncTableReaderFactory) Create() queries.TableReader {
	return f()
}

type FuncPaymentReaderFactory func() queries.PaymentReader

func (f FuncPaymentReaderFactory) Create() queries.PaymentReader {
	return f()
}
