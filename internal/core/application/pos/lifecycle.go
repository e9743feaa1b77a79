package pos

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"havenpos/internal/core/domain/model/access"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/ports"
	"havenpos/internal/pkg/errs"
)

// OrderLifecycle forwards status changes to the order service and applies
// them locally once acknowledged.
//
// At most one request per order is in flight. Orders handed to the
// lifecycle must not have their status changed by other means while a
// request is pending.
type OrderLifecycle struct {
	orders ports.OrderService
	gate   access.Gate
	clock  func() time.Time
	logger *slog.Logger

	mu       sync.Mutex
	inFlight map[kernel.UUID]struct{}
}

func NewOrderLifecycle(
	orders ports.OrderService,
	gate access.Gate,
	clock func() time.Time,
	logger *slog.Logger,
) (*OrderLifecycle, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if gate == nil {
		gate = access.RoleGate{}
	}
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &OrderLifecycle{
		orders:   orders,
		gate:     gate,
		clock:    clock,
		logger:   logger.With("component", "OrderLifecycle"),
		inFlight: make(map[kernel.UUID]struct{}),
	}, nil
}

// RequestTransition asks the service to move o to target. Unsubmitted
// orders and transitions the table forbids fail without a call. On a
// service error o keeps its current status and the error is returned
// unchanged apart from wrapping; nothing is retried.
func (l *OrderLifecycle) RequestTransition(
	ctx context.Context,
	s access.Session,
	o *order.Order,
	target order.Status,
) error {
	if err := authorize(l.gate, s, access.POSAccess); err != nil {
		return err
	}
	if err := l.begin(o, target); err != nil {
		return err
	}
	defer l.end(o.ID())

	acknowledged, err := l.call(ctx, o.ID(), target)
	if err != nil {
		l.logger.WarnContext(ctx, "status change rejected",
			"order_id", o.ID().String(), "target", target.String(), "error", err)
		return fmt.Errorf("%s order %s: %w", target, o.Number(), err)
	}
	if acknowledged != target {
		return fmt.Errorf("%s order %s: got %s: %w", target, o.Number(), acknowledged, ErrUnexpectedStatus)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return o.TransitionTo(acknowledged, l.clock())
}

// InFlight reports whether a request for the order is pending.
func (l *OrderLifecycle) InFlight(orderID kernel.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.inFlight[orderID]
	return ok
}

func (l *OrderLifecycle) begin(o *order.Order, target order.Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := o.CanTransitionTo(target); err != nil {
		return err
	}
	if _, busy := l.inFlight[o.ID()]; busy {
		return fmt.Errorf("order %s: %w", o.Number(), ErrTransitionInFlight)
	}
	l.inFlight[o.ID()] = struct{}{}
	return nil
}

func (l *OrderLifecycle) end(orderID kernel.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inFlight, orderID)
}

func (l *OrderLifecycle) call(ctx context.Context, orderID kernel.UUID, target order.Status) (order.Status, error) {
	switch target {
	case order.Confirmed:
		return l.orders.Confirm(ctx, orderID)
	case order.Served:
		return l.orders.Serve(ctx, orderID)
	case order.Completed:
		return l.orders.Complete(ctx, orderID)
	case order.Cancelled:
		return l.orders.Cancel(ctx, orderID)
	default:
		return l.orders.UpdateStatus(ctx, orderID, target)
	}
}
