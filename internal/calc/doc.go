// Package calc owns the pure arithmetic primitives.
//
// Ownership boundary:
// - integer add/sub/mul
// - float division with an explicit zero-divisor error
package calc
