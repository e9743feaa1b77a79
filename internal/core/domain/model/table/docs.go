// Package table models the dining tables a dine-in order is seated at.
//
// Orders reference a table by its number. The order service occupies a
// registered table when a dine-in order is created for it and frees it again
// when that order is completed or cancelled. References to unregistered
// tables are accepted and left alone.
package table
