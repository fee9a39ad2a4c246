// internal/app/fixtures/fixtures.go
//
// Synthetic attendance data for testing dashboards and reports. This is an
// out-of-band tool, not part of the ingestion path: it only shares the
// section/uid data model and the insert-with-expected-duplicate-skip
// discipline with the roster pipeline.
package fixtures

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	attendancestore "github.com/VivekChaurasia03/attendance-app/internal/app/store/attendance"
	studentstore "github.com/VivekChaurasia03/attendance-app/internal/app/store/students"
	"github.com/VivekChaurasia03/attendance-app/internal/domain/models"
)

// syntheticTimeOfDay is appended to the date for every generated record.
const syntheticTimeOfDay = "T12:30:00"

// DayPlan names one target date and how many students each section should
// have marked present.
type DayPlan struct {
	Date   string // YYYY-MM-DD
	Counts map[string]int
}

// Inserter is the slice of the attendance store the generator needs.
type Inserter interface {
	Insert(ctx context.Context, rec models.AttendanceRecord) error
}

// SectionSummary reports one (date, section) pair's outcome.
type SectionSummary struct {
	Section string
	Present int // records attempted = min(target, section size)
	Total   int // section population
}

// DaySummary reports what one date's seeding actually did. Duplicates counts
// (uid, date) uniqueness skips — the expected outcome on re-runs — separately
// from Failed, which counts any other insert error.
type DaySummary struct {
	Date       string
	Inserted   int
	Duplicates int
	Failed     int
	Sections   []SectionSummary
}

// DefaultSchedule reproduces the built-in fixture schedule: two dates with
// per-section counts randomized within fixed ranges, one with fixed counts.
func DefaultSchedule(rng *rand.Rand) []DayPlan {
	randCounts := func() map[string]int {
		return map[string]int{
			"0201": 28 + rng.Intn(11), // 28..38
			"0202": 30 + rng.Intn(11), // 30..40
			"0203": 25 + rng.Intn(12), // 25..36
		}
	}
	return []DayPlan{
		{Date: "2026-01-23", Counts: randCounts()},
		{Date: "2026-01-30", Counts: randCounts()},
		{Date: "2026-02-06", Counts: map[string]int{"0201": 33, "0202": 38, "0203": 30}},
	}
}

// Seed inserts fixtures for each day in the plan. Shapes are reproducible,
// values are not: each (date, section) pair gets a uniform random subset of
// that section's students, drawn without replacement and capped at the
// section size. Insert failures other than the duplicate skip are logged and
// counted but never abort the batch.
func Seed(ctx context.Context, ins Inserter, bySection map[string][]studentstore.SectionMember, days []DayPlan, rng *rand.Rand, logger *zap.Logger) []DaySummary {
	summaries := make([]DaySummary, 0, len(days))
	for _, day := range days {
		sum := DaySummary{Date: day.Date}

		for _, sec := range sortedSections(day.Counts) {
			pool := bySection[sec]
			chosen := sample(rng, pool, day.Counts[sec])
			sum.Sections = append(sum.Sections, SectionSummary{
				Section: sec,
				Present: len(chosen),
				Total:   len(pool),
			})

			for _, m := range chosen {
				rec := models.AttendanceRecord{
					UID:       m.UID,
					Date:      day.Date,
					Section:   sec,
					Timestamp: day.Date + syntheticTimeOfDay,
				}
				switch err := ins.Insert(ctx, rec); {
				case err == nil:
					sum.Inserted++
				case errors.Is(err, attendancestore.ErrDuplicate):
					sum.Duplicates++
				default:
					sum.Failed++
					logger.Error("attendance insert failed",
						zap.String("uid", m.UID),
						zap.String("date", day.Date),
						zap.Error(err))
				}
			}
		}
		summaries = append(summaries, sum)
	}
	return summaries
}

// sample draws min(n, len(pool)) elements uniformly without replacement. The
// pool slice itself is never reordered.
func sample(rng *rand.Rand, pool []studentstore.SectionMember, n int) []studentstore.SectionMember {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	out := make([]studentstore.SectionMember, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}

func sortedSections(counts map[string]int) []string {
	secs := make([]string, 0, len(counts))
	for sec := range counts {
		secs = append(secs, sec)
	}
	sort.Strings(secs)
	return secs
}
