// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VivekChaurasia03/attendance-app/internal/app/system/indexes"
	"github.com/VivekChaurasia03/attendance-app/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// EnsureIndexes creates the same indexes the tools ensure before writing, so
// uniqueness-constraint behavior is exercised for real.
func (f *Fixtures) EnsureIndexes(ctx context.Context) {
	f.t.Helper()
	if err := indexes.EnsureAll(ctx, f.db); err != nil {
		f.t.Fatalf("failed to ensure indexes: %v", err)
	}
}

// CreateStudent inserts a student document directly.
func (f *Fixtures) CreateStudent(ctx context.Context, uid, name, section, email string) models.Student {
	f.t.Helper()

	s := models.Student{UID: uid, Name: name, Section: section, Email: email}
	if _, err := f.db.Collection("students").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return s
}

// CreateAttendance inserts an attendance record directly.
func (f *Fixtures) CreateAttendance(ctx context.Context, uid, date, section string) models.AttendanceRecord {
	f.t.Helper()

	rec := models.AttendanceRecord{
		UID:       uid,
		Date:      date,
		Section:   section,
		Timestamp: date + "T12:30:00",
	}
	if _, err := f.db.Collection("attendance").InsertOne(ctx, rec); err != nil {
		f.t.Fatalf("failed to create test attendance record: %v", err)
	}
	return rec
}
