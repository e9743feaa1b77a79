// Package pos is the terminal side of order handling: building a draft,
// submitting it to the order service, moving submitted orders through their
// lifecycle and keeping the active-orders board current.
//
// Nothing here changes an order's status without an acknowledgement from
// ports.OrderService. Every permission decision goes through an access.Gate
// and the access.Session passed by the caller.
//
// A terminal UI wires the package to the order service's REST API through
// orderclient, which implements both ports.OrderService and
// ports.MenuCatalog:
//
//	client, err := orderclient.New(orderclient.Config{
//	    BaseURL: "http://orders.local:8080",
//	    Token:   sessionToken,
//	})
//	if err != nil {
//	    return err
//	}
//
//	checkout, err := pos.NewCheckout(client, client, access.RoleGate{}, logger)
//	if err != nil {
//	    return err
//	}
//	lifecycle, err := pos.NewOrderLifecycle(client, access.RoleGate{}, nil, logger)
//	if err != nil {
//	    return err
//	}
//	board, err := pos.NewBoard(client, nil)
//	if err != nil {
//	    return err
//	}
//
//	draft := order.NewDraft(order.AtTable("T4"))
//	draft.AddLine(burger.ID(), burger.Name(), burger.Price(), 2, "no onions")
//	if err = checkout.Submit(ctx, session, draft); err != nil {
//	    return err
//	}
//	if err = lifecycle.RequestTransition(ctx, session, draft, order.Confirmed); err != nil {
//	    return err
//	}
//	_ = board.Refresh(ctx)
//
// A process that embeds the order service passes inprocess.NewOrderService
// and inprocess.NewMenuCatalog instead of the client.
package pos
