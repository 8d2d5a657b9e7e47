package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// BatchOp is one requested evaluation in a batch file.
type BatchOp struct {
	Name string  `toml:"name"`
	A    float64 `toml:"a"`
	B    float64 `toml:"b"`
}

// Batch is an ordered list of evaluations.
type Batch struct {
	Ops []BatchOp `toml:"op"`
}

// LoadBatch reads a batch file and validates its shape. Operation names
// are resolved later, at dispatch.
func LoadBatch(path string) (Batch, error) {
	var b Batch
	if _, err := toml.DecodeFile(path, &b); err != nil {
		return Batch{}, fmt.Errorf("load batch: %w", err)
	}
	if len(b.Ops) == 0 {
		return Batch{}, fmt.Errorf("batch file %s defines no ops", path)
	}
	for i, op := range b.Ops {
		if strings.TrimSpace(op.Name) == "" {
			return Batch{}, fmt.Errorf("op[%d]: name is required", i)
		}
	}
	return b, nil
}
