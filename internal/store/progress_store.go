package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanvir81/course-nest-server/internal/models"
)

type MongoProgressStore struct {
	collection *mongo.Collection
}

func NewProgressStore(client *mongo.Client, dbName string) *MongoProgressStore {
	return &MongoProgressStore{
		collection: client.Database(dbName).Collection("progress"),
	}
}

// Seed uses an upsert with $setOnInsert only: the fields are written when
// no record exists for the key and never touch an existing record, so
// repeated calls for the same (studentEmail, courseId) stay a no-op.
func (s *MongoProgressStore) Seed(ctx context.Context, p models.Progress) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{
			"studentEmail": p.StudentEmail,
			"courseId":     p.CourseID,
		},
		bson.M{
			"$setOnInsert": bson.M{
				"studentEmail":     p.StudentEmail,
				"courseId":         p.CourseID,
				"courseTitle":      p.CourseTitle,
				"completedModules": p.CompletedModules,
				"totalModules":     p.TotalModules,
				"scores":           p.Scores,
				"lastActive":       p.LastActive,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
