// internal/app/store/attendance/attendancestore.go
package attendancestore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VivekChaurasia03/attendance-app/internal/app/system/indexes"
	"github.com/VivekChaurasia03/attendance-app/internal/domain/models"
)

// ErrDuplicate is the expected uniqueness skip: the student already has a
// record for that date. Callers use errors.Is to tell it apart from real
// persistence failures.
var ErrDuplicate = errors.New("attendance record already exists for uid and date")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("attendance")}
}

// Insert adds one record. A (uid, date) uniqueness violation comes back as
// ErrDuplicate; anything else is returned as-is.
func (s *Store) Insert(ctx context.Context, rec models.AttendanceRecord) error {
	_, err := s.c.InsertOne(ctx, rec)
	if indexes.IsDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

// DeleteAll removes every attendance record unconditionally and reports how
// many were deleted.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
