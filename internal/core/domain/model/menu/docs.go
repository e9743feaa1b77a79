// Package menu models the catalog entries an order is priced from.
//
// The order side never mutates menu items. It copies identifier, name and
// unit price into a line item at the moment the item is added, so later
// price changes do not rewrite existing orders.
package menu
