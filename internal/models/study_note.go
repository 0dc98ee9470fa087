package models

import "time"

// StudyNote is a single note inside a subject. Notes have no identity of their own.
type StudyNote struct {
	Content      string    `bson:"content" json:"content"`
	Colour       string    `bson:"colour" json:"colour"`
	CreationDate time.Time `bson:"creationDate" json:"creationDate"`
	IsFavourite  bool      `bson:"isFavourite" json:"isFavourite"`
}
