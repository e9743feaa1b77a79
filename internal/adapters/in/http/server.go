package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"havenpos/internal/core/application/usecases"
	"havenpos/internal/core/application/usecases/commands"
	"havenpos/internal/core/application/usecases/queries"
	"havenpos/internal/core/domain/model/access"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/payment"
	"havenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server serves the order service API over the application's use cases.
type Server struct {
	// Command handlers
	createOrderHandler             commands.CreateOrderCommandHandler
	addOrderItemHandler            commands.AddOrderItemCommandHandler
	changeOrderStatusHandler       commands.ChangeOrderStatusCommandHandler
	applyDiscountHandler           commands.ApplyDiscountCommandHandler
	createMenuItemHandler          commands.CreateMenuItemCommandHandler
	setMenuItemAvailabilityHandler commands.SetMenuItemAvailabilityCommandHandler
	createTableHandler             commands.CreateTableCommandHandler
	setTableOccupancyHandler       commands.SetTableOccupancyCommandHandler
	addPaymentHandler              commands.AddPaymentCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	listOverdueOrdersHandler queries.ListOverdueOrdersQueryHandler
	listKitchenQueueHandler  queries.ListKitchenQueueQueryHandler
	getMenuItemHandler       queries.GetMenuItemQueryHandler
	listMenuItemsHandler     queries.ListMenuItemsQueryHandler
	getTableHandler          queries.GetTableQueryHandler
	listTablesHandler        queries.ListTablesQueryHandler
	listPaymentsHandler      queries.ListPaymentsQueryHandler

	tokens *Tokens
	logger *slog.Logger
}

func NewServer(handlers *usecases.Handlers, tokens *Tokens, logger *slog.Logger) (*Server, error) {
	if handlers == nil {
		return nil, errs.NewValueIsRequiredError("handlers")
	}
	if tokens == nil {
		return nil, errs.NewValueIsRequiredError("tokens")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		createOrderHandler:             handlers.CreateOrder,
		addOrderItemHandler:            handlers.AddOrderItem,
		changeOrderStatusHandler:       handlers.ChangeOrderStatus,
		applyDiscountHandler:           handlers.ApplyDiscount,
		createMenuItemHandler:          handlers.CreateMenuItem,
		setMenuItemAvailabilityHandler: handlers.SetMenuItemAvailability,
		createTableHandler:             handlers.CreateTable,
		setTableOccupancyHandler:       handlers.SetTableOccupancy,
		addPaymentHandler:              handlers.AddPayment,
		getOrderHandler:                handlers.GetOrder,
		listOrdersHandler:              handlers.ListOrders,
		listOverdueOrdersHandler:       handlers.ListOverdueOrders,
		listKitchenQueueHandler:        handlers.ListKitchenQueue,
		getMenuItemHandler:             handlers.GetMenuItem,
		listMenuItemsHandler:           handlers.ListMenuItems,
		getTableHandler:                handlers.GetTable,
		listTablesHandler:              handlers.ListTables,
		listPaymentsHandler:            handlers.ListPayments,
		tokens:                         tokens,
		logger:                         logger.With("component", "http.Server"),
	}, nil
}

// Register mounts the API, the health probe and the docs UI on e.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := LoadOpenAPI()
	if err != nil {
		return err
	}
	validate, err := validateRequests(doc)
	if err != nil {
		return err
	}

	e.HTTPErrorHandler = ErrorHandler(s.logger)
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", authenticate(s.tokens), validate)

	menuItems := api.Group("/menu/items")
	menuItems.GET("/", s.ListMenuItems)
	menuItems.POST("/", s.CreateMenuItem, requirePermission(access.MenuManagement))
	menuItems.GET("/:id/", s.GetMenuItem)
	menuItems.PATCH("/:id/", s.SetMenuItemAvailability, requirePermission(access.MenuManagement))

	orders := api.Group("/orders", requirePermission(access.POSAccess))
	orders.GET("/orders/", s.ListOrders)
	orders.POST("/orders/", s.CreateOrder)
	orders.GET("/orders/active/", s.ListActiveOrders)
	orders.GET("/orders/overdue/", s.ListOverdueOrders)
	orders.GET("/orders/kitchen_queue/", s.ListKitchenQueue)
	orders.GET("/orders/:id/", s.GetOrder)
	orders.PATCH("/orders/:id/", s.UpdateOrderStatus)
	orders.POST("/orders/:id/confirm/", s.statusAction(order.Confirmed))
	orders.POST("/orders/:id/serve/", s.statusAction(order.Served))
	orders.POST("/orders/:id/complete/", s.statusAction(order.Completed))
	orders.POST("/orders/:id/cancel/", s.statusAction(order.Cancelled))
	orders.POST("/orders/:id/discount/", s.ApplyDiscount, requirePermission(access.FinancialAccess))
	orders.POST("/orders/:id/add_payment/", s.AddPayment)
	orders.GET("/orders/:id/payments/", s.ListPayments)
	orders.POST("/order-items/", s.AddOrderItem)

	orders.GET("/tables/", s.ListTables)
	orders.POST("/tables/", s.CreateTable, requirePermission(access.SettingsAccess))
	orders.GET("/tables/available/", s.ListAvailableTables)
	orders.GET("/tables/:id/", s.GetTable)
	orders.POST("/tables/:id/occupy/", s.tableOccupancy(true))
	orders.POST("/tables/:id/free/", s.tableOccupancy(false))

	return nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListMenuItems handles GET /api/menu/items/ - the whole menu, or only the
// available items with ?available=true.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	var available *bool
	if err := runtime.BindQueryParameter("form", true, false, "available", ctx.QueryParams(), &available); err != nil {
		return fmt.Errorf("%w: invalid available: %v", ErrBadRequest, err)
	}

	query := queries.NewListMenuItemsQuery(available != nil && *available)
	items, err := s.listMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItemFromDomain(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/menu/items/.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), body.Name, body.Category, price, body.PreparationTime)
	if err != nil {
		return err
	}

	item, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, MenuItemFromDomain(item))
}

// GetMenuItem handles GET /api/menu/items/:id/.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return err
	}

	item, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, MenuItemFromDomain(item))
}

// SetMenuItemAvailability handles PATCH /api/menu/items/:id/.
func (s *Server) SetMenuItemAvailability(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var body MenuItemAvailability
	if err = ctx.Bind(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}

	cmd, err := commands.NewSetMenuItemAvailabilityCommand(id, body.IsAvailable)
	if err != nil {
		return err
	}
	item, err := s.setMenuItemAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, MenuItemFromDomain(item))
}

// CreateOrder handles POST /api/orders/orders/.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}

	orderType, err := order.ParseType(body.OrderType)
	if err != nil {
		return err
	}
	customer := order.Customer{
		Name:         body.CustomerName,
		Phone:        body.CustomerPhone,
		Instructions: body.SpecialInstructions,
	}
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		order.Destination{Type: orderType, Table: body.TableNumber},
		customer,
	)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, OrderFromDomain(created))
}

// ListOrders handles GET /api/orders/orders/ with an optional
// comma-separated ?status filter.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *[]string
	if err := runtime.BindQueryParameter("form", false, false, "status", ctx.QueryParams(), &status); err != nil {
		return fmt.Errorf("%w: invalid status: %v", ErrBadRequest, err)
	}

	var statuses []order.Status
	if status != nil {
		for _, raw := range *status {
			parsed, err := order.ParseStatus(raw)
			if err != nil {
				return err
			}
			statuses = append(statuses, parsed)
		}
	}

	query, err := queries.NewListOrdersQuery(statuses...)
	if err != nil {
		return err
	}
	return s.listOrders(ctx, query)
}

// ListActiveOrders handles GET /api/orders/orders/active/.
func (s *Server) ListActiveOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.NewActiveOrdersQuery())
}

// ListOverdueOrders handles GET /api/orders/orders/overdue/.
func (s *Server) ListOverdueOrders(ctx echo.Context) error {
	overdue, err := s.listOverdueOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOverdueOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]OverdueOrder, len(overdue))
	for i, o := range overdue {
		response[i] = OverdueOrderFromResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListKitchenQueue handles GET /api/orders/orders/kitchen_queue/.
func (s *Server) ListKitchenQueue(ctx echo.Context) error {
	queue, err := s.listKitchenQueueHandler.Handle(ctx.Request().Context(), queries.NewListKitchenQueueQuery())
	if err != nil {
		return err
	}

	response := make([]Order, len(queue))
	for i, o := range queue {
		response[i] = OrderFromDomain(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/orders/:id/.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	return s.respondWithOrder(ctx, id)
}

// UpdateOrderStatus handles PATCH /api/orders/orders/:id/.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}
	return s.changeStatus(ctx, target)
}

// statusAction serves the POST /api/orders/orders/:id/<action>/ shortcuts.
func (s *Server) statusAction(target order.Status) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return s.changeStatus(ctx, target)
	}
}

// ApplyDiscount handles POST /api/orders/orders/:id/discount/.
func (s *Server) ApplyDiscount(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var body Discount
	if err = ctx.Bind(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}

	amount, err := kernel.MoneyFromString(body.DiscountAmount)
	if err != nil {
		return err
	}
	cmd, err := commands.NewApplyDiscountCommand(id, amount)
	if err != nil {
		return err
	}
	if _, err = s.applyDiscountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithOrder(ctx, id)
}

// AddPayment handles POST /api/orders/orders/:id/add_payment/. The
// signed-in user is recorded as the one who took the payment.
func (s *Server) AddPayment(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return err
	}
	var body NewPayment
	if err = ctx.Bind(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}

	amount, err := kernel.MoneyFromString(body.Amount)
	if err != nil {
		return err
	}
	method, err := payment.ParseMethod(body.PaymentMethod)
	if err != nil {
		return err
	}
	details := payment.Details{
		TransactionID: body.TransactionID,
		Reference:     body.ReferenceNumber,
		CardLastFour:  body.CardLastFour,
	}
	cmd, err := commands.NewAddPaymentCommand(
		kernel.NewUUID(), orderID, amount, method, details, sessionFrom(ctx).UserID,
	)
	if err != nil {
		return err
	}

	recorded, err := s.addPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx.Request().Context(), "payment recorded",
		"order_id", orderID.String(),
		"payment_id", recorded.ID().String(),
		"method", recorded.Method().String())

	return ctx.JSON(http.StatusCreated, PaymentFromDomain(recorded))
}

// ListPayments handles GET /api/orders/orders/:id/payments/.
func (s *Server) ListPayments(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewListPaymentsQuery(orderID)
	if err != nil {
		return err
	}

	paid, err := s.listPaymentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, PaymentSummaryFromResponse(paid))
}

// ListTables handles GET /api/orders/tables/, optionally only the
// available ones with ?available=true.
func (s *Server) ListTables(ctx echo.Context) error {
	var available *bool
	if err := runtime.BindQueryParameter("form", true, false, "available", ctx.QueryParams(), &available); err != nil {
		return fmt.Errorf("%w: invalid available: %v", ErrBadRequest, err)
	}
	return s.listTables(ctx, available != nil && *available)
}

// ListAvailableTables handles GET /api/orders/tables/available/.
func (s *Server) ListAvailableTables(ctx echo.Context) error {
	return s.listTables(ctx, true)
}

// CreateTable handles POST /api/orders/tables/.
func (s *Server) CreateTable(ctx echo.Context) error {
	var body NewTable
	if err := ctx.Bind(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}

	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), body.TableNumber, body.Capacity, body.Section)
	if err != nil {
		return err
	}
	created, err := s.createTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, TableFromDomain(created))
}

// GetTable handles GET /api/orders/tables/:id/.
func (s *Server) GetTable(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetTableQuery(id)
	if err != nil {
		return err
	}

	found, err := s.getTableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TableFromDomain(found))
}

// tableOccupancy serves POST /api/orders/tables/:id/occupy/ and /free/.
func (s *Server) tableOccupancy(occupied bool) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := pathID(ctx)
		if err != nil {
			return err
		}
		cmd, err := commands.NewSetTableOccupancyCommand(id, occupied)
		if err != nil {
			return err
		}

		updated, err := s.setTableOccupancyHandler.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, TableFromDomain(updated))
	}
}

func (s *Server) listTables(ctx echo.Context, onlyAvailable bool) error {
	tables, err := s.listTablesHandler.Handle(ctx.Request().Context(), queries.NewListTablesQuery(onlyAvailable))
	if err != nil {
		return err
	}

	response := make([]Table, len(tables))
	for i, t := range tables {
		response[i] = TableFromDomain(t)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddOrderItem handles POST /api/orders/order-items/. Without unit_price
// the current menu price is charged.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	var body NewOrderItem
	if err := ctx.Bind(&body); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}

	orderID, err := kernel.UUIDFromBytes(body.Order[:])
	if err != nil {
		return err
	}
	menuItemID, err := kernel.UUIDFromBytes(body.MenuItemID[:])
	if err != nil {
		return err
	}

	var price *kernel.Money
	if body.UnitPrice != nil {
		p, parseErr := kernel.MoneyFromString(*body.UnitPrice)
		if parseErr != nil {
			return parseErr
		}
		price = &p
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, menuItemID, body.Quantity, price, body.SpecialInstructions)
	if err != nil {
		return err
	}
	line, err := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, OrderItemFromDomain(orderID, line))
}

func (s *Server) changeStatus(ctx echo.Context, target order.Status) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return err
	}

	changed, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx.Request().Context(), "order status changed",
		"order_id", changed.ID().String(),
		"status", changed.Status().String(),
		"user_id", sessionFrom(ctx).UserID)

	return ctx.JSON(http.StatusOK, StatusResponse{
		ID:     changed.ID().Bytes(),
		Status: changed.Status().String(),
	})
}

func (s *Server) listOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = OrderFromDomain(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) respondWithOrder(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, OrderFromDomain(found))
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: invalid id: %v", ErrBadRequest, err)
	}
	return kernel.UUIDFromBytes(id[:])
}
