// Package payment records money taken against an order.
//
// A payment belongs to exactly one order and is immutable once recorded.
// Payments do not change the order's totals or status; the balance due is
// derived by comparing the order total with the sum of completed payments.
package payment
