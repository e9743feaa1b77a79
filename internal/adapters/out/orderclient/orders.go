package orderclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	httpin "havenpos/internal/adapters/in/http"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/ports"
)

var (
	_ ports.OrderService = (*Client)(nil)
	_ ports.MenuCatalog  = (*Client)(nil)
)

const (
	ordersPath     = "/api/orders/orders/"
	orderItemsPath = "/api/orders/order-items/"
	menuItemsPath  = "/api/menu/items/"
)

// Create opens a pending order. The receipt carries the number the service
// assigned.
//
// Example:
//
//	receipt, err := client.Create(ctx, ports.CreateOrderRequest{
//	    Destination: order.AtTable("T4"),
//	    Customer:    order.Customer{Name: "Ngozi"},
//	})
//	if err != nil {
//	    return err
//	}
//	// receipt.Status is order.Pending
func (c *Client) Create(ctx context.Context, req ports.CreateOrderRequest) (ports.OrderReceipt, error) {
	body := httpin.NewOrder{
		OrderType:           req.Destination.Type.String(),
		TableNumber:         req.Destination.Table,
		CustomerName:        req.Customer.Name,
		CustomerPhone:       req.Customer.Phone,
		SpecialInstructions: req.Customer.Instructions,
	}

	var created httpin.Order
	if err := c.do(ctx, http.MethodPost, ordersPath, nil, body, &created); err != nil {
		return ports.OrderReceipt{}, err
	}

	id, err := kernel.UUIDFromBytes(created.ID[:])
	if err != nil {
		return ports.OrderReceipt{}, err
	}
	status, err := order.ParseStatus(created.Status)
	if err != nil {
		return ports.OrderReceipt{}, err
	}
	return ports.OrderReceipt{ID: id, Number: created.OrderNumber, Status: status}, nil
}

// AddItem sends the terminal's unit price; a zero price lets the service
// charge the menu price.
func (c *Client) AddItem(ctx context.Context, orderID kernel.UUID, req ports.AddItemRequest) (ports.LineItemRecord, error) {
	body := httpin.NewOrderItem{
		Order:               orderID.Bytes(),
		MenuItemID:          req.MenuItemID.Bytes(),
		Quantity:            req.Quantity,
		SpecialInstructions: req.Instructions,
	}
	if !req.UnitPrice.IsZero() {
		price := req.UnitPrice.String()
		body.UnitPrice = &price
	}

	var created httpin.OrderItem
	if err := c.do(ctx, http.MethodPost, orderItemsPath, nil, body, &created); err != nil {
		return ports.LineItemRecord{}, err
	}
	return lineRecord(created)
}

// Confirm sends the order to the kitchen and returns the status the service
// acknowledged.
func (c *Client) Confirm(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	return c.action(ctx, orderID, "confirm")
}

func (c *Client) Serve(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	return c.action(ctx, orderID, "serve")
}

func (c *Client) Complete(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	return c.action(ctx, orderID, "complete")
}

// Cancel works from any non-terminal status. A dine-in order's table is
// freed by the service.
func (c *Client) Cancel(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	return c.action(ctx, orderID, "cancel")
}

// UpdateStatus asks for any target status. Illegal transitions come back as
// an APIError matching errs.ErrValueIsInvalid.
//
// Example:
//
//	status, err := client.UpdateStatus(ctx, orderID, order.Ready)
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // the order was not preparing
//	}
func (c *Client) UpdateStatus(ctx context.Context, orderID kernel.UUID, status order.Status) (order.Status, error) {
	var resp httpin.StatusResponse
	body := httpin.StatusUpdate{Status: status.String()}
	if err := c.do(ctx, http.MethodPatch, orderPath(orderID), nil, body, &resp); err != nil {
		return order.Unknown, err
	}
	return order.ParseStatus(resp.Status)
}

// Get fetches the order with its lines. Unknown ids match
// errs.ErrObjectNotFound.
func (c *Client) Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	var dto httpin.Order
	if err := c.do(ctx, http.MethodGet, orderPath(orderID), nil, nil, &dto); err != nil {
		return nil, err
	}
	return httpin.OrderToDomain(dto)
}

// List returns orders newest first. An empty filter lists every order.
func (c *Client) List(ctx context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	var query url.Values
	if len(filter.Statuses) > 0 {
		names := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			names[i] = s.String()
		}
		query = url.Values{"status": {strings.Join(names, ",")}}
	}

	var dtos []httpin.Order
	if err := c.do(ctx, http.MethodGet, ordersPath, query, nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := httpin.OrderToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// ListItems returns the whole menu, including unavailable items.
func (c *Client) ListItems(ctx context.Context) ([]menu.Item, error) {
	var dtos []httpin.MenuItem
	if err := c.do(ctx, http.MethodGet, menuItemsPath, nil, nil, &dtos); err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := httpin.MenuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, id kernel.UUID) (menu.Item, error) {
	var dto httpin.MenuItem
	if err := c.do(ctx, http.MethodGet, menuItemsPath+id.String()+"/", nil, nil, &dto); err != nil {
		return menu.Item{}, err
	}
	return httpin.MenuItemToDomain(dto)
}

func (c *Client) action(ctx context.Context, orderID kernel.UUID, name string) (order.Status, error) {
	var resp httpin.StatusResponse
	if err := c.do(ctx, http.MethodPost, orderPath(orderID)+name+"/", nil, nil, &resp); err != nil {
		return order.Unknown, err
	}
	return order.ParseStatus(resp.Status)
}

func orderPath(id kernel.UUID) string {
	return ordersPath + id.String() + "/"
}

func lineRecord(dto httpin.OrderItem) (ports.LineItemRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.LineItemRecord{}, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return ports.LineItemRecord{}, err
	}
	unitPrice, err := kernel.MoneyFromString(dto.UnitPrice)
	if err != nil {
		return ports.LineItemRecord{}, err
	}
	subtotal, err := kernel.MoneyFromString(dto.Subtotal)
	if err != nil {
		return ports.LineItemRecord{}, err
	}

	return ports.LineItemRecord{
		ID:           id,
		MenuItemID:   menuItemID,
		Name:         dto.MenuItemName,
		Quantity:     dto.Quantity,
		UnitPrice:    unitPrice,
		Subtotal:     subtotal,
		Instructions: dto.SpecialInstructions,
	}, nil
}
