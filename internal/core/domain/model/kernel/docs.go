// Package kernel contains shared value objects used across domain aggregates:
// UUID identifiers and cent-denominated Money amounts. Value objects here are
// immutable and validate themselves; the zero value of each type is invalid
// and must be replaced through a constructor function.
package kernel
