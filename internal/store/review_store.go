package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tanvir81/course-nest-server/internal/models"
)

type MongoReviewStore struct {
	collection *mongo.Collection
}

func NewReviewStore(client *mongo.Client, dbName string) *MongoReviewStore {
	return &MongoReviewStore{
		collection: client.Database(dbName).Collection("reviews"),
	}
}

func (s *MongoReviewStore) Create(ctx context.Context, doc bson.M) (string, error) {
	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListByCourse matches on the stored courseId string, not on an ObjectID.
func (s *MongoReviewStore) ListByCourse(ctx context.Context, courseID string) ([]bson.M, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"courseId": courseID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []bson.M{}
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return stringifyAll(reviews), nil
}

func (s *MongoReviewStore) AverageRating(ctx context.Context, courseID string) (float64, error) {
	pipeline := mongo.Pipeline{
		{
			{Key: "$match", Value: bson.D{
				{Key: "courseId", Value: courseID},
			}},
		},
		{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			}},
		},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Average, nil
}

func (s *MongoReviewStore) Get(ctx context.Context, id string) (*models.Review, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var review models.Review
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *MongoReviewStore) Update(ctx context.Context, id string, rating float64, comment string) (*UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"rating":    rating,
			"comment":   comment,
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (s *MongoReviewStore) Delete(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
