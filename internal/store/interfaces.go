package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tanvir81/course-nest-server/internal/models"
)

// UpdateResult mirrors the counts the driver reports for an update, in the
// shape clients of the old API expect back.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// Course documents are schemaless: whatever object the caller posts is
// persisted verbatim, so the stores traffic in bson.M rather than structs.
// Documents returned by a store always carry their _id as a hex string.

type CourseStore interface {
	// List returns courses matching the supplied filters ANDed together.
	// category matches case-insensitively as an anchored literal, owner
	// matches exactly. Returns an empty slice when nothing matches.
	List(ctx context.Context, category, owner string) ([]bson.M, error)
	// Get returns nil with no error when no course has the id. A malformed
	// id is an error.
	Get(ctx context.Context, id string) (bson.M, error)
	Create(ctx context.Context, doc bson.M) (string, error)
	// Update merges only the supplied fields into the existing document.
	Update(ctx context.Context, id string, fields bson.M) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type EnrollmentStore interface {
	// Exists reports whether an enrollment with the natural key
	// (courseId, studentEmail) is already present.
	Exists(ctx context.Context, courseID, studentEmail string) (bool, error)
	Create(ctx context.Context, doc bson.M) (string, error)
	// List returns all enrollments, or only the given student's when
	// studentEmail is non-empty.
	List(ctx context.Context, studentEmail string) ([]bson.M, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type ProgressStore interface {
	// Seed inserts the progress record only if none exists for its
	// (studentEmail, courseId) key; an existing record is left untouched.
	Seed(ctx context.Context, p models.Progress) error
}

type ReviewStore interface {
	Create(ctx context.Context, doc bson.M) (string, error)
	ListByCourse(ctx context.Context, courseID string) ([]bson.M, error)
	// AverageRating returns the arithmetic mean of ratings for the course,
	// and 0 when the course has no reviews.
	AverageRating(ctx context.Context, courseID string) (float64, error)
	// Get returns nil with no error when no review has the id.
	Get(ctx context.Context, id string) (*models.Review, error)
	Update(ctx context.Context, id string, rating float64, comment string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type UserStore interface {
	// FindByEmail returns nil with no error when no user has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user models.User) (string, error)
}
