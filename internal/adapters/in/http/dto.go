package http

import (
	"time"

	"havenpos/internal/core/application/usecases/queries"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/payment"
	"havenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// Wire types of the order service API. Field names follow openapi.json.
// Amounts travel as decimal strings with two places.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type MenuItem struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           string    `json:"price"`
	IsAvailable     bool      `json:"is_available"`
	PreparationTime int       `json:"preparation_time"`
}

type NewMenuItem struct {
	Name            string `json:"name"`
	Category        string `json:"category,omitempty"`
	Price           string `json:"price"`
	PreparationTime int    `json:"preparation_time,omitempty"`
}

type MenuItemAvailability struct {
	IsAvailable bool `json:"is_available"`
}

type NewOrder struct {
	OrderType           string `json:"order_type"`
	TableNumber         string `json:"table_number,omitempty"`
	CustomerName        string `json:"customer_name,omitempty"`
	CustomerPhone       string `json:"customer_phone,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

type Order struct {
	ID                  uuid.UUID   `json:"id"`
	OrderNumber         string      `json:"order_number"`
	OrderType           string      `json:"order_type"`
	TableNumber         string      `json:"table_number,omitempty"`
	CustomerName        string      `json:"customer_name,omitempty"`
	CustomerPhone       string      `json:"customer_phone,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Status              string      `json:"status"`
	Subtotal            string      `json:"subtotal"`
	TaxAmount           string      `json:"tax_amount"`
	DiscountAmount      string      `json:"discount_amount"`
	TotalAmount         string      `json:"total_amount"`
	EstimatedPrepTime   int         `json:"estimated_prep_time"`
	Items               []OrderItem `json:"items"`
	CreatedAt           time.Time   `json:"created_at"`
	ConfirmedAt         *time.Time  `json:"confirmed_at,omitempty"`
	ServedAt            *time.Time  `json:"served_at,omitempty"`
	CompletedAt         *time.Time  `json:"completed_at,omitempty"`
	CancelledAt         *time.Time  `json:"cancelled_at,omitempty"`
}

type OrderItem struct {
	ID                  uuid.UUID `json:"id"`
	Order               uuid.UUID `json:"order"`
	MenuItemID          uuid.UUID `json:"menu_item_id"`
	MenuItemName        string    `json:"menu_item_name"`
	Quantity            int       `json:"quantity"`
	UnitPrice           string    `json:"unit_price"`
	Subtotal            string    `json:"subtotal"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
}

type NewOrderItem struct {
	Order               uuid.UUID `json:"order"`
	MenuItemID          uuid.UUID `json:"menu_item_id"`
	Quantity            int       `json:"quantity"`
	UnitPrice           *string   `json:"unit_price,omitempty"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
}

type OverdueOrder struct {
	ID                uuid.UUID `json:"id"`
	OrderNumber       string    `json:"order_number"`
	Status            string    `json:"status"`
	OrderType         string    `json:"order_type"`
	TableNumber       string    `json:"table_number,omitempty"`
	EstimatedPrepTime int       `json:"estimated_prep_time"`
	WaitingMinutes    int       `json:"waiting_minutes"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type StatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type Discount struct {
	DiscountAmount string `json:"discount_amount"`
}

type Table struct {
	ID          uuid.UUID `json:"id"`
	TableNumber string    `json:"table_number"`
	Capacity    int       `json:"capacity"`
	Section     string    `json:"section"`
	IsActive    bool      `json:"is_active"`
	IsOccupied  bool      `json:"is_occupied"`
	IsAvailable bool      `json:"is_available"`
}

type NewTable struct {
	TableNumber string `json:"table_number"`
	Capacity    int    `json:"capacity"`
	Section     string `json:"section,omitempty"`
}

type NewPayment struct {
	Amount          string `json:"amount"`
	PaymentMethod   string `json:"payment_method"`
	TransactionID   string `json:"transaction_id,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	CardLastFour    string `json:"card_last_four,omitempty"`
}

type Payment struct {
	ID              uuid.UUID  `json:"id"`
	Order           uuid.UUID  `json:"order"`
	Amount          string     `json:"amount"`
	PaymentMethod   string     `json:"payment_method"`
	Status          string     `json:"status"`
	TransactionID   string     `json:"transaction_id,omitempty"`
	ReferenceNumber string     `json:"reference_number,omitempty"`
	CardLastFour    string     `json:"card_last_four,omitempty"`
	ProcessedBy     string     `json:"processed_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
}

type PaymentSummary struct {
	Payments  []Payment `json:"payments"`
	TotalPaid string    `json:"total_paid"`
	Balance   string    `json:"balance"`
}

func TableFromDomain(t table.Table) Table {
	return Table{
		ID:          t.ID().Bytes(),
		TableNumber: t.Number(),
		Capacity:    t.Capacity(),
		Section:     t.Section(),
		IsActive:    t.Active(),
		IsOccupied:  t.Occupied(),
		IsAvailable: t.Available(),
	}
}

// TableToDomain restores a table received over the wire.
func TableToDomain(dto Table) (table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return table.Table{}, err
	}
	return table.RestoreTable(id, dto.TableNumber, dto.Capacity, dto.Section, dto.IsActive, dto.IsOccupied)
}

func PaymentFromDomain(p payment.Payment) Payment {
	return Payment{
		ID:              p.ID().Bytes(),
		Order:           p.OrderID().Bytes(),
		Amount:          p.Amount().String(),
		PaymentMethod:   p.Method().String(),
		Status:          p.Status().String(),
		TransactionID:   p.Details().TransactionID,
		ReferenceNumber: p.Details().Reference,
		CardLastFour:    p.Details().CardLastFour,
		ProcessedBy:     p.ProcessedBy(),
		CreatedAt:       p.CreatedAt().UTC(),
		ProcessedAt:     optionalTime(p.ProcessedAt()),
	}
}

// PaymentToDomain restores a payment received over the wire.
func PaymentToDomain(dto Payment) (payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return payment.Payment{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.Order[:])
	if err != nil {
		return payment.Payment{}, err
	}
	amount, err := kernel.MoneyFromString(dto.Amount)
	if err != nil {
		return payment.Payment{}, err
	}
	method, err := payment.ParseMethod(dto.PaymentMethod)
	if err != nil {
		return payment.Payment{}, err
	}
	status, err := payment.ParseStatus(dto.Status)
	if err != nil {
		return payment.Payment{}, err
	}
	return payment.RestorePayment(payment.Snapshot{
		ID:      id,
		OrderID: orderID,
		Amount:  amount,
		Method:  method,
		Status:  status,
		Details: payment.Details{
			TransactionID: dto.TransactionID,
			Reference:     dto.ReferenceNumber,
			CardLastFour:  dto.CardLastFour,
		},
		ProcessedBy: dto.ProcessedBy,
		CreatedAt:   dto.CreatedAt,
		ProcessedAt: derefTime(dto.ProcessedAt),
	})
}

func PaymentSummaryFromResponse(r queries.PaymentsResponse) PaymentSummary {
	payments := make([]Payment, len(r.Payments))
	for i, p := range r.Payments {
		payments[i] = PaymentFromDomain(p)
	}
	return PaymentSummary{
		Payments:  payments,
		TotalPaid: r.TotalPaid.String(),
		Balance:   r.Balance.String(),
	}
}

func MenuItemFromDomain(item menu.Item) MenuItem {
	return MenuItem{
		ID:              item.ID().Bytes(),
		Name:            item.Name(),
		Category:        item.Category(),
		Price:           item.Price().String(),
		IsAvailable:     item.Available(),
		PreparationTime: item.PrepMinutes(),
	}
}

// MenuItemToDomain restores a menu item received over the wire.
func MenuItemToDomain(dto MenuItem) (menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.Item{}, err
	}
	price, err := kernel.MoneyFromString(dto.Price)
	if err != nil {
		return menu.Item{}, err
	}
	return menu.RestoreItem(id, dto.Name, dto.Category, price, dto.IsAvailable, dto.PreparationTime)
}

func OrderFromDomain(o *order.Order) Order {
	totals, ok := o.ConfirmedTotals()
	if !ok {
		totals = order.Totals{
			Subtotal: o.Total(),
			Tax:      kernel.Zero(),
			Discount: kernel.Zero(),
			Total:    o.Total(),
		}
	}

	lines := o.Lines()
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItemFromDomain(o.ID(), l))
	}

	return Order{
		ID:                  o.ID().Bytes(),
		OrderNumber:         o.Number(),
		OrderType:           o.Destination().Type.String(),
		TableNumber:         o.Destination().Table,
		CustomerName:        o.Customer().Name,
		CustomerPhone:       o.Customer().Phone,
		SpecialInstructions: o.Customer().Instructions,
		Status:              o.Status().String(),
		Subtotal:            totals.Subtotal.String(),
		TaxAmount:           totals.Tax.String(),
		DiscountAmount:      totals.Discount.String(),
		TotalAmount:         totals.Total.String(),
		EstimatedPrepTime:   o.PrepMinutes(),
		Items:               items,
		CreatedAt:           o.CreatedAt(),
		ConfirmedAt:         optionalTime(o.ConfirmedAt()),
		ServedAt:            optionalTime(o.ServedAt()),
		CompletedAt:         optionalTime(o.CompletedAt()),
		CancelledAt:         optionalTime(o.CancelledAt()),
	}
}

// OrderToDomain restores an order received over the wire. Server totals
// become the order's confirmed totals.
func OrderToDomain(dto Order) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderType, err := order.ParseType(dto.OrderType)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	totals, err := totalsFromWire(dto)
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineSnapshot, 0, len(dto.Items))
	for _, item := range dto.Items {
		line, lineErr := lineFromWire(item)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          id,
		Number:      dto.OrderNumber,
		Destination: order.Destination{Type: orderType, Table: dto.TableNumber},
		Customer: order.Customer{
			Name:         dto.CustomerName,
			Phone:        dto.CustomerPhone,
			Instructions: dto.SpecialInstructions,
		},
		Status:      status,
		Lines:       lines,
		Totals:      &totals,
		PrepMinutes: dto.EstimatedPrepTime,
		CreatedAt:   dto.CreatedAt,
		ConfirmedAt: derefTime(dto.ConfirmedAt),
		ServedAt:    derefTime(dto.ServedAt),
		CompletedAt: derefTime(dto.CompletedAt),
		CancelledAt: derefTime(dto.CancelledAt),
	})
}

func OrderItemFromDomain(orderID kernel.UUID, l order.LineItem) OrderItem {
	return OrderItem{
		ID:                  l.ID().Bytes(),
		Order:               orderID.Bytes(),
		MenuItemID:          l.MenuItemID().Bytes(),
		MenuItemName:        l.Name(),
		Quantity:            l.Quantity(),
		UnitPrice:           l.UnitPrice().String(),
		Subtotal:            l.Subtotal().String(),
		SpecialInstructions: l.Note(),
	}
}

func OverdueOrderFromResponse(r queries.OverdueOrderResponse) OverdueOrder {
	return OverdueOrder{
		ID:                r.ID.Bytes(),
		OrderNumber:       r.Number,
		Status:            r.Status.String(),
		OrderType:         r.Destination.Type.String(),
		TableNumber:       r.Destination.Table,
		EstimatedPrepTime: r.PrepMinutes,
		WaitingMinutes:    int(r.Waiting / time.Minute),
	}
}

func totalsFromWire(dto Order) (order.Totals, error) {
	var (
		t   order.Totals
		err error
	)
	if t.Subtotal, err = kernel.MoneyFromString(dto.Subtotal); err != nil {
		return order.Totals{}, err
	}
	if t.Tax, err = kernel.MoneyFromString(dto.TaxAmount); err != nil {
		return order.Totals{}, err
	}
	if t.Discount, err = kernel.MoneyFromString(dto.DiscountAmount); err != nil {
		return order.Totals{}, err
	}
	if t.Total, err = kernel.MoneyFromString(dto.TotalAmount); err != nil {
		return order.Totals{}, err
	}
	return t, nil
}

func lineFromWire(item OrderItem) (order.LineSnapshot, error) {
	id, err := kernel.UUIDFromBytes(item.ID[:])
	if err != nil {
		return order.LineSnapshot{}, err
	}
	menuItemID, err := kernel.UUIDFromBytes(item.MenuItemID[:])
	if err != nil {
		return order.LineSnapshot{}, err
	}
	price, err := kernel.MoneyFromString(item.UnitPrice)
	if err != nil {
		return order.LineSnapshot{}, err
	}
	return order.LineSnapshot{
		ID:         id,
		MenuItemID: menuItemID,
		Name:       item.MenuItemName,
		UnitPrice:  price,
		Quantity:   item.Quantity,
		Note:       item.SpecialInstructions,
	}, nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
