// Package queries contains read operations over orders, the menu, tables
// and payments.
//
// Query handlers read through repositories without opening a transaction;
// every handler receives a narrow factory that exposes only the repository
// it reads from.
package queries
