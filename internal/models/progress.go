package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Progress tracks a student's advancement through one course. A record is
// seeded exactly once per (studentEmail, courseId), as a side effect of the
// first successful enrollment, and is never mutated by this service.
//
// CourseTitle and TotalModules carry whatever value the course document
// held at enrollment time; course documents are schemaless, so the copied
// values keep their stored type.
type Progress struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	StudentEmail     string             `json:"studentEmail" bson:"studentEmail"`
	CourseID         string             `json:"courseId" bson:"courseId"`
	CourseTitle      interface{}        `json:"courseTitle" bson:"courseTitle"`
	CompletedModules int                `json:"completedModules" bson:"completedModules"`
	TotalModules     interface{}        `json:"totalModules" bson:"totalModules"`
	Scores           []interface{}      `json:"scores" bson:"scores"`
	LastActive       time.Time          `json:"lastActive" bson:"lastActive"`
}
