package handlers

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tanvir81/course-nest-server/internal/models"
	"github.com/tanvir81/course-nest-server/internal/store"
)

type storeUpdateResult = store.UpdateResult

// In-memory stores with the same contracts as the mongo-backed ones, so the
// handlers can be exercised without a running database.

type fakeCourseStore struct {
	docs       map[string]bson.M
	lastUpdate bson.M
	err        error
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{docs: map[string]bson.M{}}
}

func (f *fakeCourseStore) List(ctx context.Context, category, owner string) ([]bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []bson.M{}
	for _, doc := range f.docs {
		if category != "" {
			c, _ := doc["category"].(string)
			if !strings.EqualFold(c, category) {
				continue
			}
		}
		if owner != "" {
			o, _ := doc["owner"].(string)
			if o != owner {
				continue
			}
		}
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeCourseStore) Get(ctx context.Context, id string) (bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (f *fakeCourseStore) Create(ctx context.Context, doc bson.M) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	id := primitive.NewObjectID().Hex()
	stored := bson.M{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	f.docs[id] = stored
	return id, nil
}

func (f *fakeCourseStore) Update(ctx context.Context, id string, fields bson.M) (*storeUpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	f.lastUpdate = fields
	doc, ok := f.docs[id]
	if !ok {
		return &storeUpdateResult{}, nil
	}
	for k, v := range fields {
		doc[k] = v
	}
	return &storeUpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeCourseStore) Delete(ctx context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, err
	}
	if _, ok := f.docs[id]; !ok {
		return 0, nil
	}
	delete(f.docs, id)
	return 1, nil
}

type fakeEnrollmentStore struct {
	docs      map[string]bson.M
	createErr error
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{docs: map[string]bson.M{}}
}

func (f *fakeEnrollmentStore) Exists(ctx context.Context, courseID, studentEmail string) (bool, error) {
	return f.countFor(courseID, studentEmail) > 0, nil
}

func (f *fakeEnrollmentStore) Create(ctx context.Context, doc bson.M) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	id := primitive.NewObjectID().Hex()
	stored := bson.M{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	f.docs[id] = stored
	return id, nil
}

func (f *fakeEnrollmentStore) List(ctx context.Context, studentEmail string) ([]bson.M, error) {
	out := []bson.M{}
	for _, doc := range f.docs {
		if studentEmail != "" {
			e, _ := doc["studentEmail"].(string)
			if e != studentEmail {
				continue
			}
		}
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeEnrollmentStore) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, err
	}
	if _, ok := f.docs[id]; !ok {
		return 0, nil
	}
	delete(f.docs, id)
	return 1, nil
}

func (f *fakeEnrollmentStore) countFor(courseID, studentEmail string) int {
	n := 0
	for _, doc := range f.docs {
		c, _ := doc["courseId"].(string)
		e, _ := doc["studentEmail"].(string)
		if c == courseID && e == studentEmail {
			n++
		}
	}
	return n
}

type fakeProgressStore struct {
	records   map[string]models.Progress
	seedCalls int
	err       error
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: map[string]models.Progress{}}
}

func (f *fakeProgressStore) Seed(ctx context.Context, p models.Progress) error {
	if f.err != nil {
		return f.err
	}
	f.seedCalls++
	key := p.StudentEmail + "|" + p.CourseID
	if _, ok := f.records[key]; ok {
		return nil
	}
	f.records[key] = p
	return nil
}

type fakeReviewStore struct {
	docs map[string]bson.M
	err  error
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{docs: map[string]bson.M{}}
}

func (f *fakeReviewStore) Create(ctx context.Context, doc bson.M) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	id := primitive.NewObjectID().Hex()
	stored := bson.M{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	f.docs[id] = stored
	return id, nil
}

func (f *fakeReviewStore) ListByCourse(ctx context.Context, courseID string) ([]bson.M, error) {
	out := []bson.M{}
	for _, doc := range f.docs {
		c, _ := doc["courseId"].(string)
		if c == courseID {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeReviewStore) AverageRating(ctx context.Context, courseID string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	sum, n := 0.0, 0
	for _, doc := range f.docs {
		c, _ := doc["courseId"].(string)
		if c != courseID {
			continue
		}
		if rating, ok := doc["rating"].(float64); ok {
			sum += rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

func (f *fakeReviewStore) Get(ctx context.Context, id string) (*models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	review := &models.Review{}
	review.CourseID, _ = doc["courseId"].(string)
	review.StudentEmail, _ = doc["studentEmail"].(string)
	review.Rating, _ = doc["rating"].(float64)
	review.Comment, _ = doc["comment"].(string)
	return review, nil
}

func (f *fakeReviewStore) Update(ctx context.Context, id string, rating float64, comment string) (*storeUpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	doc, ok := f.docs[id]
	if !ok {
		return &storeUpdateResult{}, nil
	}
	doc["rating"] = rating
	doc["comment"] = comment
	doc["updatedAt"] = time.Now()
	return &storeUpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeReviewStore) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, err
	}
	if _, ok := f.docs[id]; !ok {
		return 0, nil
	}
	delete(f.docs, id)
	return 1, nil
}

type fakeUserStore struct {
	byEmail map[string]models.User
	err     error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]models.User{}}
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.byEmail {
		if user.ID.Hex() == id {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user models.User) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	user.ID = primitive.NewObjectID()
	f.byEmail[user.Email] = user
	return user.ID.Hex(), nil
}
