package calc

import "errors"

var ErrDivideByZero = errors.New("calc: division by zero")

// Add returns a+b. Wraps on int64 overflow.
func Add(a, b int64) int64 {
	return a + b
}

// Sub returns a-b.
func Sub(a, b int64) int64 {
	return a - b
}

// Mul returns a*b.
func Mul(a, b int64) int64 {
	return a * b
}

// Div returns a/b. A zero divisor (including negative zero) yields
// ErrDivideByZero rather than a sentinel result.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}
