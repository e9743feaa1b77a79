// Package order contains the order aggregate and its status lifecycle.
//
// The same aggregate serves both sides of the point of sale. A terminal builds
// a draft with AddItem, RemoveItem, SetQuantity and Clear, all local, and the
// cached Total always equals the sum of unit price times quantity over the
// surviving lines. Once a line reached the order service its quantity can
// only grow; the service has no operation to take items back. The order service creates persisted
// orders with NewOrder and rebuilds them with RestoreOrder.
//
// Status changes go through CanTransitionTo and TransitionTo, which enforce
// the lifecycle table documented on Status. Every applied transition is
// recorded as a StatusChanged until PullStatusChanges drains it.
package order
