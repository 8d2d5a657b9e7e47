// Package ops owns named arithmetic operations exposed by calcctl.
//
// Ownership boundary:
// - operation metadata shape
// - operation application interface
// - local operation registry primitives
package ops
