package pos

import (
	"context"
	"fmt"
	"log/slog"

	"havenpos/internal/core/domain/model/access"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/ports"
	"havenpos/internal/pkg/errs"
)

// Checkout turns a draft built at the terminal into a stored order.
type Checkout struct {
	orders  ports.OrderService
	catalog ports.MenuCatalog
	gate    access.Gate
	logger  *slog.Logger
}

func NewCheckout(
	orders ports.OrderService,
	catalog ports.MenuCatalog,
	gate access.Gate,
	logger *slog.Logger,
) (*Checkout, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	if gate == nil {
		gate = access.RoleGate{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Checkout{
		orders:  orders,
		catalog: catalog,
		gate:    gate,
		logger:  logger.With("component", "Checkout"),
	}, nil
}

// AvailableMenu lists what can be added to a draft right now.
func (c *Checkout) AvailableMenu(ctx context.Context) ([]menu.Item, error) {
	items, err := c.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return menu.FilterAvailable(items), nil
}

// Submit sends the draft to the order service: the order is created once,
// then every line the service does not hold yet is added, then the
// server-side totals are fetched. A failed step returns its error and keeps
// whatever already succeeded recorded on the draft, so calling Submit again
// continues where the previous call stopped.
func (c *Checkout) Submit(ctx context.Context, s access.Session, draft *order.Order) error {
	if err := authorize(c.gate, s, access.POSAccess); err != nil {
		return err
	}
	if err := draft.ValidateForSubmit(); err != nil {
		return err
	}

	if !draft.IsPersisted() {
		receipt, err := c.orders.Create(ctx, ports.CreateOrderRequest{
			Destination: draft.Destination(),
			Customer:    draft.Customer(),
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err = draft.MarkPersisted(receipt.ID, receipt.Number, receipt.Status); err != nil {
			return fmt.Errorf("record order %s: %w", receipt.Number, err)
		}
		c.logger.DebugContext(ctx, "order created", "order_id", receipt.ID.String(), "number", receipt.Number)
	}

	for _, line := range draft.UnsyncedLines() {
		_, err := c.orders.AddItem(ctx, draft.ID(), ports.AddItemRequest{
			MenuItemID:   line.MenuItemID(),
			Quantity:     line.PendingQuantity(),
			UnitPrice:    line.UnitPrice(),
			Instructions: line.Note(),
		})
		if err != nil {
			return fmt.Errorf("add %q to order %s: %w", line.Name(), draft.Number(), err)
		}
		draft.MarkLineSynced(line.MenuItemID())
	}

	stored, err := c.orders.Get(ctx, draft.ID())
	if err != nil {
		return fmt.Errorf("fetch order %s: %w", draft.Number(), err)
	}
	if totals, ok := stored.ConfirmedTotals(); ok {
		draft.ConfirmTotals(totals)
	}

	c.logger.InfoContext(ctx, "order submitted",
		"order_id", draft.ID().String(),
		"number", draft.Number(),
		"user_id", s.UserID,
		"lines", len(draft.Lines()))
	return nil
}

// Discard empties a draft that was never submitted.
func (c *Checkout) Discard(draft *order.Order) error {
	if draft.IsPersisted() {
		return fmt.Errorf("discard %s: %w", draft.Number(), ErrOrderAlreadySubmitted)
	}
	draft.Clear()
	return nil
}
