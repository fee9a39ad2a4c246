// internal/domain/models/student.go
package models

// Student is one validated roster row. UID is the SIS identifier, treated as
// an opaque all-digit string, and is unique across the students collection.
// Email is empty when the email directory had no entry for the student's
// normalized name.
type Student struct {
	UID     string `bson:"uid" json:"uid"`
	Name    string `bson:"name" json:"name"`
	Section string `bson:"section" json:"section"`
	Email   string `bson:"email" json:"email"`
}
