package commands

import (
	"context"
	"log/slog"

	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves orders along their lifecycle.
// Completing or cancelling a dine-in order frees its registered table.
type ChangeOrderStatusCommandHandler struct {
	uowFactory DiningUoWFactory
	publisher  ports.OrderEventPublisher
	clock      Clock
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler publishes committed transitions to
// publisher.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher, nil, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Confirmed)
//
//	if _, err := handler.Handle(ctx, cmd); errors.Is(err, order.ErrIllegalTransition) {
//	    // someone else moved the order first
//	}
func NewChangeOrderStatusCommandHandler(
	uowFactory DiningUoWFactory,
	publisher ports.OrderEventPublisher,
	clock Clock,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "ChangeOrderStatusCommandHandler"),
	}
}

// Handle applies the transition. The events the unit of work reports for
// the commit are published afterwards; a failed publish is logged and does
// not undo the stored transition.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = target.TransitionTo(cmd.Target(), h.clock.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if target.Status().IsTerminal() {
		if err = releaseFrom(ctx, uow.TableRepository(), target.Destination()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, event := range uow.CommittedEvents() {
		if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
			h.logger.ErrorContext(ctx, "failed to publish status change",
				"order_id", event.OrderID.String(),
				"from", event.From.String(),
				"to", event.To.String(),
				"error", err)
		}
	}

	return target, nil
}
