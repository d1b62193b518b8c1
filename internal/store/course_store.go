package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCourseStore struct {
	collection *mongo.Collection
}

func NewCourseStore(client *mongo.Client, dbName string) *MongoCourseStore {
	return &MongoCourseStore{
		collection: client.Database(dbName).Collection("courses"),
	}
}

func (s *MongoCourseStore) List(ctx context.Context, category, owner string) ([]bson.M, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = AnchoredCaseInsensitive(category)
	}
	if owner != "" {
		filter["owner"] = owner
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []bson.M{}
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return stringifyAll(courses), nil
}

func (s *MongoCourseStore) Get(ctx context.Context, id string) (bson.M, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var course bson.M
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return StringifyID(course), nil
}

func (s *MongoCourseStore) Create(ctx context.Context, doc bson.M) (string, error) {
	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MongoCourseStore) Update(ctx context.Context, id string, fields bson.M) (*UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (s *MongoCourseStore) Delete(ctx context.Context, id string) (int64, error) {
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
