// Package kernel holds the value objects shared by every aggregate of the
// point of sale: identifiers and money.
//
// Both types are immutable and safe for concurrent use. Their zero values are
// invalid where that matters (a zero UUID never identifies anything), so
// constructors and Validate are the way in.
package kernel
