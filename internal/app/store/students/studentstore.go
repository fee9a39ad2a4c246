// internal/app/store/students/studentstore.go
package studentstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/VivekChaurasia03/attendance-app/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("students")}
}

// UpsertResult mirrors the driver's bulk counts for run reporting.
type UpsertResult struct {
	Matched  int64
	Upserted int64
	Modified int64
}

// ApplyPlan runs the upsert plan as one unordered bulk write. Every op is a
// pure $set keyed on uid with upsert semantics, so re-running the same plan
// over an unchanged input leaves the collection identical. Requires the
// unique uid index (indexes.EnsureStudents) for the key to act as a
// uniqueness constraint.
func (s *Store) ApplyPlan(ctx context.Context, plan []models.UpsertOp) (UpsertResult, error) {
	if len(plan) == 0 {
		return UpsertResult{}, nil
	}

	writes := make([]mongo.WriteModel, 0, len(plan))
	for _, op := range plan {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"uid": op.UID}).
			SetUpdate(bson.M{"$set": bson.M{
				"name":    op.Name,
				"section": op.Section,
				"email":   op.Email,
			}}).
			SetUpsert(true))
	}

	// Ops are commutative, so unordered execution is safe and lets the
	// server batch freely.
	res, err := s.c.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return UpsertResult{}, err
	}
	return UpsertResult{
		Matched:  res.MatchedCount,
		Upserted: res.UpsertedCount,
		Modified: res.ModifiedCount,
	}, nil
}

// SectionMember is the uid+section projection the fixture tool works from.
type SectionMember struct {
	UID     string `bson:"uid"`
	Section string `bson:"section"`
}

// BySection returns every persisted student grouped by section, fetching only
// the uid and section fields.
func (s *Store) BySection(ctx context.Context) (map[string][]SectionMember, error) {
	opts := options.Find().SetProjection(bson.M{"uid": 1, "section": 1, "_id": 0})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	bySection := make(map[string][]SectionMember)
	for cur.Next(ctx) {
		var m SectionMember
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		bySection[m.Section] = append(bySection[m.Section], m)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return bySection, nil
}
