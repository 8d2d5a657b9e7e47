package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/danmuck/calckit/internal/calc"
)

var ErrNotAnInteger = errors.New("ops: operand is not an integer")

// opFunc adapts a plain function into an Operation.
type opFunc struct {
	meta  Metadata
	apply func(a, b float64) (float64, error)
}

func (o opFunc) Metadata() Metadata {
	return o.meta
}

func (o opFunc) Apply(a, b float64) (float64, error) {
	return o.apply(a, b)
}

// intOp wraps an integer calc function, rejecting fractional operands.
func intOp(meta Metadata, fn func(a, b int64) int64) Operation {
	return opFunc{meta: meta, apply: func(a, b float64) (float64, error) {
		ia, err := toInt64(a)
		if err != nil {
			return 0, fmt.Errorf("%s: operand a: %w", meta.ID, err)
		}
		ib, err := toInt64(b)
		if err != nil {
			return 0, fmt.Errorf("%s: operand b: %w", meta.ID, err)
		}
		return float64(fn(ia, ib)), nil
	}}
}

// Builtin returns a registry pre-loaded with the four arithmetic
// operations.
func Builtin() *Registry {
	r := NewRegistry()
	builtins := []Operation{
		intOp(Metadata{ID: "add", Name: "Add", Description: "Add two integers"}, calc.Add),
		intOp(Metadata{ID: "sub", Name: "Subtract", Description: "Subtract b from a"}, calc.Sub),
		intOp(Metadata{ID: "mul", Name: "Multiply", Description: "Multiply two integers"}, calc.Mul),
		opFunc{
			meta:  Metadata{ID: "div", Name: "Divide", Description: "Divide a by b; b must be non-zero"},
			apply: calc.Div,
		},
	}
	for _, op := range builtins {
		if err := r.Register(op); err != nil {
			// Builtins are static; a failure here is a programming error.
			panic(err)
		}
	}
	return r
}

func toInt64(v float64) (int64, error) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrNotAnInteger, v)
	}
	return int64(v), nil
}
