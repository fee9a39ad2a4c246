// internal/domain/models/upsert.go
package models

// UpsertOp is one idempotent persistence operation: overwrite the student
// keyed by UID with exactly these fields. Pure set semantics, so applying
// the same op twice leaves the same state as applying it once. Ops are
// independent and commutative; the persistence layer may batch or reorder
// them freely.
type UpsertOp struct {
	UID     string
	Name    string
	Section string
	Email   string
}
