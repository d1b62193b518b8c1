package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tanvir81/course-nest-server/internal/store"
)

type ReviewHandler struct {
	reviews store.ReviewStore
	timeout time.Duration
}

func NewReviewHandler(reviews store.ReviewStore, timeout time.Duration) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, timeout: timeout}
}

// CreateReview stores the body verbatim with a server-assigned createdAt.
// Ratings are not range-checked.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var review bson.M
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	review["createdAt"] = time.Now()

	id, err := h.reviews.Create(ctx, review)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add review")
		return
	}

	writeJSON(w, http.StatusOK, insertResponse{InsertedID: id})
}

// GetReviewsByCourse lists all reviews whose courseId field equals the
// path parameter.
func (h *ReviewHandler) GetReviewsByCourse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	courseID := mux.Vars(r)["courseId"]

	reviews, err := h.reviews.ListByCourse(ctx, courseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// GetAverageRating returns the mean rating for a course, 0 when it has no
// reviews.
func (h *ReviewHandler) GetAverageRating(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	courseID := mux.Vars(r)["id"]

	average, err := h.reviews.AverageRating(ctx, courseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to calculate average rating")
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{"average": average})
}

type updateReviewRequest struct {
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
	StudentEmail string  `json:"studentEmail"`
}

// UpdateReview edits a review's rating and comment. Only the authoring
// studentEmail may edit; unlike delete there is no admin override. The
// requester identity is taken from the body as supplied.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]

	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := h.reviews.Get(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}
	if review == nil {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}
	if review.StudentEmail != req.StudentEmail {
		writeError(w, http.StatusForbidden, "Not authorized to edit this review")
		return
	}

	result, err := h.reviews.Update(ctx, id, req.Rating, req.Comment)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type deleteReviewRequest struct {
	StudentEmail string `json:"studentEmail"`
	IsAdmin      bool   `json:"isAdmin"`
}

// DeleteReview removes a review. Allowed for the author, or for any caller
// asserting the admin flag.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]

	var req deleteReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := h.reviews.Get(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if review == nil {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}
	if review.StudentEmail != req.StudentEmail && !req.IsAdmin {
		writeError(w, http.StatusForbidden, "Not authorized to delete this review")
		return
	}

	count, err := h.reviews.Delete(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{DeletedCount: count})
}
