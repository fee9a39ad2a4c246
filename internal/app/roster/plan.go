// internal/app/roster/plan.go
package roster

import "github.com/VivekChaurasia03/attendance-app/internal/domain/models"

// BuildPlan emits one op per student, preserving input order. Callers must
// not build a plan from a set that failed Reconcile.
func BuildPlan(students []models.Student) []models.UpsertOp {
	ops := make([]models.UpsertOp, 0, len(students))
	for _, s := range students {
		ops = append(ops, models.UpsertOp{
			UID:     s.UID,
			Name:    s.Name,
			Section: s.Section,
			Email:   s.Email,
		})
	}
	return ops
}
