package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoEnrollmentStore struct {
	collection *mongo.Collection
}

func NewEnrollmentStore(client *mongo.Client, dbName string) *MongoEnrollmentStore {
	return &MongoEnrollmentStore{
		collection: client.Database(dbName).Collection("enrollments"),
	}
}

// Exists is a check-then-act guard, not a constraint: two concurrent
// enrollments for the same key can both pass it. The progress seeding is
// idempotent precisely so that window stays harmless downstream.
func (s *MongoEnrollmentStore) Exists(ctx context.Context, courseID, studentEmail string) (bool, error) {
	err := s.collection.FindOne(ctx, bson.M{
		"courseId":     courseID,
		"studentEmail": studentEmail,
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MongoEnrollmentStore) Create(ctx context.Context, doc bson.M) (string, error) {
	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MongoEnrollmentStore) List(ctx context.Context, studentEmail string) ([]bson.M, error) {
	filter := bson.M{}
	if studentEmail != "" {
		filter["studentEmail"] = studentEmail
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	enrollments := []bson.M{}
	if err = cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return stringifyAll(enrollments), nil
}

func (s *MongoEnrollmentStore) Delete(ctx context.Context, id string) (int64, error) {
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
