// internal/domain/models/attendance.go
package models

// AttendanceRecord marks one student present on one calendar date. The
// (uid, date) pair is unique; records are only ever inserted or bulk-deleted,
// never updated.
type AttendanceRecord struct {
	UID       string `bson:"uid" json:"uid"`
	Date      string `bson:"date" json:"date"` // YYYY-MM-DD
	Section   string `bson:"section" json:"section"`
	Timestamp string `bson:"timestamp" json:"timestamp"` // ISO-8601, synthetic fixed time of day
}
