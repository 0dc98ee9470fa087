package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subject groups study notes under a user-chosen name, e.g. a language or a course.
type Subject struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Notes []StudyNote        `bson:"notes" json:"notes"`
}

// NewSubject builds an empty subject.
func NewSubject(name string) Subject {
	return Subject{ID: primitive.NewObjectID(), Name: name, Notes: []StudyNote{}}
}
