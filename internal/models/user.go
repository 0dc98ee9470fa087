package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the persistence aggregate: one document per user embedding every
// subject and study note it owns.
type User struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	CreationDate time.Time          `bson:"creationDate" json:"creationDate"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Subjects     []Subject          `bson:"subjects" json:"subjects"`
}

// NewUser builds a user with a fresh identifier and an empty subject list.
func NewUser(username, email string) *User {
	return &User{
		ID:           primitive.NewObjectID(),
		CreationDate: time.Now().UTC(),
		Username:     username,
		Email:        email,
		Subjects:     []Subject{},
	}
}

// SubjectIndex returns the position of the subject with the given name or -1.
func (u *User) SubjectIndex(name string) int {
	for i := range u.Subjects {
		if u.Subjects[i].Name == name {
			return i
		}
	}
	return -1
}

// HasSubject reports whether the user owns a subject with the given name.
func (u *User) HasSubject(name string) bool {
	return u.SubjectIndex(name) >= 0
}

// Subject returns a pointer into the user's subject list so callers can mutate it in place.
func (u *User) Subject(name string) *Subject {
	if i := u.SubjectIndex(name); i >= 0 {
		return &u.Subjects[i]
	}
	return nil
}

// RemoveSubject drops the named subject preserving the order of the rest.
func (u *User) RemoveSubject(name string) bool {
	i := u.SubjectIndex(name)
	if i < 0 {
		return false
	}
	u.Subjects = append(u.Subjects[:i], u.Subjects[i+1:]...)
	return true
}

// Normalize replaces nil slices so the aggregate always serialises lists as [].
func (u *User) Normalize() {
	if u.Subjects == nil {
		u.Subjects = []Subject{}
	}
	for i := range u.Subjects {
		if u.Subjects[i].Notes == nil {
			u.Subjects[i].Notes = []StudyNote{}
		}
	}
}
