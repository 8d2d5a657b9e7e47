package ops

// Metadata is the contract for operation identity and display data.
type Metadata struct {
	ID          string
	Name        string
	Description string
}

// Operation is the dispatch boundary between the CLI and arithmetic.
// Operands arrive as float64; integer operations validate integrality
// themselves.
type Operation interface {
	Metadata() Metadata
	Apply(a, b float64) (float64, error)
}
