// Package domain holds the value types shared by the calculator layers:
// raw caller inputs, the error taxonomy, result envelopes and history records.
//
// Nothing in this package performs I/O or holds mutable state.
package domain
