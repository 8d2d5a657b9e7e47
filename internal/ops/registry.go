package ops

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrOpExists        = errors.New("ops: operation already exists")
	ErrOpNil           = errors.New("ops: operation is nil")
	ErrInvalidMetadata = errors.New("ops: invalid operation metadata")
)

// Ids are lowercase alphanumeric runs joined by single '.', '-' or '_'.
var idPattern = regexp.MustCompile(`^[a-z0-9]+(?:[._-][a-z0-9]+)*$`)

// Validate checks required fields and id format.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.ID) == "" || strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("%w: id, name, and description are required", ErrInvalidMetadata)
	}
	if !idPattern.MatchString(m.ID) {
		return fmt.Errorf("%w: invalid id format %q", ErrInvalidMetadata, m.ID)
	}
	return nil
}

// Registry stores operations by stable identifier.
type Registry struct {
	items map[string]Operation
}

// NewRegistry creates an empty operation registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Operation)}
}

// Register adds an operation under its metadata id.
func (r *Registry) Register(op Operation) error {
	if op == nil {
		return ErrOpNil
	}

	meta := op.Metadata()
	if err := meta.Validate(); err != nil {
		return err
	}

	if _, ok := r.items[meta.ID]; ok {
		return fmt.Errorf("%w: %q", ErrOpExists, meta.ID)
	}
	r.items[meta.ID] = op
	return nil
}

// Resolve returns an operation by id.
func (r *Registry) Resolve(id string) (Operation, bool) {
	op, ok := r.items[id]
	return op, ok
}

// ListMetadata returns deterministic metadata ordering by id.
func (r *Registry) ListMetadata() []Metadata {
	list := make([]Metadata, 0, len(r.items))
	for _, op := range r.items {
		list = append(list, op.Metadata())
	}
	slices.SortFunc(list, func(a, b Metadata) int {
		return strings.Compare(a.ID, b.ID)
	})
	return list
}
