// Package services holds domain logic that spans more than one aggregate or
// needs configuration the aggregates do not carry.
//
// Pricer turns the line items of an order plus the venue tax rate and a
// discount into the totals the order service reports to terminals.
package services
