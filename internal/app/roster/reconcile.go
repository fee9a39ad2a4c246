// internal/app/roster/reconcile.go
package roster

import (
	"sort"
	"strings"

	"github.com/VivekChaurasia03/attendance-app/internal/domain/models"
)

// Report summarizes an accepted roster after the set-wide checks pass.
type Report struct {
	Total         int
	SectionCounts map[string]int
	WithEmail     int // students with a non-empty email
}

// Sections returns the section codes present in the report in sorted order,
// for stable display.
func (r Report) Sections() []string {
	secs := make([]string, 0, len(r.SectionCounts))
	for sec := range r.SectionCounts {
		secs = append(secs, sec)
	}
	sort.Strings(secs)
	return secs
}

// DuplicateUIDError is the global invariant failure: the same uid was
// accepted on more than one row. No upsert plan may be produced from such a
// set.
type DuplicateUIDError struct {
	UIDs []string // sorted, each listed once
}

func (e *DuplicateUIDError) Error() string {
	return "duplicate uids: " + strings.Join(e.UIDs, ", ")
}

// Reconcile post-processes validated students set-wide: per-section
// distribution, duplicate-uid detection, and email coverage. Duplicate uids
// fail the whole reconciliation; the error names every duplicated uid. The
// input is never mutated.
func Reconcile(students []models.Student) (Report, error) {
	rep := Report{Total: len(students), SectionCounts: map[string]int{}}
	seen := make(map[string]int, len(students))
	var dupes []string

	for _, s := range students {
		rep.SectionCounts[s.Section]++
		if s.Email != "" {
			rep.WithEmail++
		}
		seen[s.UID]++
		if seen[s.UID] == 2 {
			dupes = append(dupes, s.UID)
		}
	}

	if len(dupes) > 0 {
		sort.Strings(dupes)
		return Report{}, &DuplicateUIDError{UIDs: dupes}
	}
	return rep, nil
}
