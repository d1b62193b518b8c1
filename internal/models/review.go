package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is the typed view of a review document, used when the service
// needs to read the author before authorizing an edit or delete. Review
// creation persists the caller's body verbatim plus createdAt.
type Review struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CourseID     string             `json:"courseId" bson:"courseId"`
	StudentEmail string             `json:"studentEmail" bson:"studentEmail"`
	Rating       float64            `json:"rating" bson:"rating"`
	Comment      string             `json:"comment" bson:"comment"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
