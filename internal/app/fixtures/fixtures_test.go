package fixtures

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	attendancestore "github.com/VivekChaurasia03/attendance-app/internal/app/store/attendance"
	studentstore "github.com/VivekChaurasia03/attendance-app/internal/app/store/students"
	"github.com/VivekChaurasia03/attendance-app/internal/domain/models"
)

// fakeInserter records inserts and simulates duplicate/failure outcomes.
type fakeInserter struct {
	records []models.AttendanceRecord
	seen    map[string]bool // uid|date pairs, for duplicate simulation
	failUID string          // simulate a non-duplicate failure for this uid
}

func newFakeInserter() *fakeInserter {
	return &fakeInserter{seen: make(map[string]bool)}
}

func (f *fakeInserter) Insert(_ context.Context, rec models.AttendanceRecord) error {
	if rec.UID == f.failUID {
		return errors.New("server selection timeout")
	}
	key := rec.UID + "|" + rec.Date
	if f.seen[key] {
		return attendancestore.ErrDuplicate
	}
	f.seen[key] = true
	f.records = append(f.records, rec)
	return nil
}

func members(uids ...string) []studentstore.SectionMember {
	out := make([]studentstore.SectionMember, 0, len(uids))
	for _, uid := range uids {
		out = append(out, studentstore.SectionMember{UID: uid, Section: "0201"})
	}
	return out
}

func TestSeed_CapsAtSectionSize(t *testing.T) {
	ins := newFakeInserter()
	bySection := map[string][]studentstore.SectionMember{
		"0201": members("1", "2", "3"),
	}
	days := []DayPlan{{Date: "2026-01-23", Counts: map[string]int{"0201": 10}}}

	summaries := Seed(context.Background(), ins, bySection, days, rand.New(rand.NewSource(1)), zap.NewNop())
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	s := summaries[0]
	if s.Inserted != 3 {
		t.Errorf("Inserted: got %d, want 3 (capped at section size)", s.Inserted)
	}
	if len(ins.records) != 3 {
		t.Errorf("records: got %d, want 3", len(ins.records))
	}
	if len(s.Sections) != 1 || s.Sections[0].Present != 3 || s.Sections[0].Total != 3 {
		t.Errorf("section summary: got %+v", s.Sections)
	}
}

func TestSeed_SampleWithoutReplacement(t *testing.T) {
	ins := newFakeInserter()
	bySection := map[string][]studentstore.SectionMember{
		"0201": members("1", "2", "3", "4", "5"),
	}
	days := []DayPlan{{Date: "2026-01-23", Counts: map[string]int{"0201": 3}}}

	Seed(context.Background(), ins, bySection, days, rand.New(rand.NewSource(7)), zap.NewNop())

	if len(ins.records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(ins.records))
	}
	seen := make(map[string]bool)
	for _, rec := range ins.records {
		if seen[rec.UID] {
			t.Errorf("uid %s drawn more than once", rec.UID)
		}
		seen[rec.UID] = true
		if rec.Date != "2026-01-23" || rec.Section != "0201" {
			t.Errorf("unexpected record: %+v", rec)
		}
		if rec.Timestamp != "2026-01-23T12:30:00" {
			t.Errorf("Timestamp: got %q, want fixed synthetic time of day", rec.Timestamp)
		}
	}
}

func TestSeed_RerunCountsDuplicatesDistinctly(t *testing.T) {
	ins := newFakeInserter()
	bySection := map[string][]studentstore.SectionMember{
		"0201": members("1", "2"),
	}
	days := []DayPlan{{Date: "2026-01-23", Counts: map[string]int{"0201": 2}}}
	rng := rand.New(rand.NewSource(3))

	first := Seed(context.Background(), ins, bySection, days, rng, zap.NewNop())
	if first[0].Inserted != 2 || first[0].Duplicates != 0 {
		t.Fatalf("first run: %+v", first[0])
	}

	// Same dates, same students: every insert hits the uniqueness constraint.
	second := Seed(context.Background(), ins, bySection, days, rng, zap.NewNop())
	if second[0].Inserted != 0 {
		t.Errorf("second run Inserted: got %d, want 0", second[0].Inserted)
	}
	if second[0].Duplicates != 2 {
		t.Errorf("second run Duplicates: got %d, want 2", second[0].Duplicates)
	}
	if second[0].Failed != 0 {
		t.Errorf("second run Failed: got %d, want 0", second[0].Failed)
	}
}

func TestSeed_OtherFailuresDoNotAbort(t *testing.T) {
	ins := newFakeInserter()
	ins.failUID = "2"
	bySection := map[string][]studentstore.SectionMember{
		"0201": members("1", "2", "3"),
	}
	days := []DayPlan{{Date: "2026-01-23", Counts: map[string]int{"0201": 3}}}

	summaries := Seed(context.Background(), ins, bySection, days, rand.New(rand.NewSource(5)), zap.NewNop())
	s := summaries[0]
	if s.Failed != 1 {
		t.Errorf("Failed: got %d, want 1", s.Failed)
	}
	if s.Inserted != 2 {
		t.Errorf("Inserted: got %d, want 2 (batch continues past failures)", s.Inserted)
	}
	if s.Duplicates != 0 {
		t.Errorf("Duplicates: got %d, want 0", s.Duplicates)
	}
}

func TestSeed_UnknownSectionIsEmptyPool(t *testing.T) {
	ins := newFakeInserter()
	days := []DayPlan{{Date: "2026-01-23", Counts: map[string]int{"0209": 5}}}

	summaries := Seed(context.Background(), ins, nil, days, rand.New(rand.NewSource(1)), zap.NewNop())
	s := summaries[0]
	if s.Inserted != 0 || s.Failed != 0 || s.Duplicates != 0 {
		t.Errorf("expected nothing inserted for unknown section, got %+v", s)
	}
	if len(s.Sections) != 1 || s.Sections[0].Present != 0 || s.Sections[0].Total != 0 {
		t.Errorf("section summary: got %+v", s.Sections)
	}
}

func TestDefaultSchedule(t *testing.T) {
	days := DefaultSchedule(rand.New(rand.NewSource(42)))
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}

	ranges := map[string][2]int{
		"0201": {28, 38},
		"0202": {30, 40},
		"0203": {25, 36},
	}
	for _, day := range days[:2] {
		for sec, r := range ranges {
			got, ok := day.Counts[sec]
			if !ok {
				t.Errorf("%s: missing section %s", day.Date, sec)
				continue
			}
			if got < r[0] || got > r[1] {
				t.Errorf("%s section %s: count %d outside [%d, %d]", day.Date, sec, got, r[0], r[1])
			}
		}
	}

	fixed := days[2]
	if fixed.Date != "2026-02-06" {
		t.Errorf("fixed day Date: got %q", fixed.Date)
	}
	want := map[string]int{"0201": 33, "0202": 38, "0203": 30}
	for sec, n := range want {
		if fixed.Counts[sec] != n {
			t.Errorf("fixed day %s: got %d, want %d", sec, fixed.Counts[sec], n)
		}
	}
}
