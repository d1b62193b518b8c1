package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	DisplayName string             `json:"displayName" bson:"displayName"`
	Password    string             `json:"-" bson:"password"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
