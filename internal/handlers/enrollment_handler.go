package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tanvir81/course-nest-server/internal/models"
	"github.com/tanvir81/course-nest-server/internal/store"
)

type EnrollmentHandler struct {
	enrollments store.EnrollmentStore
	courses     store.CourseStore
	progress    store.ProgressStore
	logger      *logrus.Logger
	timeout     time.Duration
}

func NewEnrollmentHandler(enrollments store.EnrollmentStore, courses store.CourseStore, progress store.ProgressStore, logger *logrus.Logger, timeout time.Duration) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollments: enrollments,
		courses:     courses,
		progress:    progress,
		logger:      logger,
		timeout:     timeout,
	}
}

// Enroll creates an enrollment for a (courseId, studentEmail) pair:
// duplicate check, course lookup, insert with a denormalized course
// snapshot, then idempotent progress seeding. The snapshot is a
// point-in-time copy and never refreshes when the course changes.
//
// If the progress seeding fails after the enrollment insert, the caller
// gets a 500 but the enrollment stays: there is no rollback, and that
// inconsistency window is part of the contract.
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var enrollment bson.M
	if err := json.NewDecoder(r.Body).Decode(&enrollment); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	courseID, _ := enrollment["courseId"].(string)
	studentEmail, _ := enrollment["studentEmail"].(string)

	exists, err := h.enrollments.Exists(ctx, courseID, studentEmail)
	if err != nil {
		h.logger.WithError(err).Error("Enrollment error")
		writeError(w, http.StatusInternalServerError, "Failed to enroll")
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "Already enrolled in this course")
		return
	}

	course, err := h.courses.Get(ctx, courseID)
	if err != nil {
		h.logger.WithError(err).Error("Enrollment error")
		writeError(w, http.StatusInternalServerError, "Failed to enroll")
		return
	}
	if course == nil {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	enriched := bson.M{}
	for k, v := range enrollment {
		enriched[k] = v
	}
	enriched["courseTitle"] = course["title"]
	enriched["courseImage"] = course["imageUrl"]
	enriched["courseCategory"] = course["category"]
	enriched["courseDuration"] = course["duration"]
	enriched["coursePrice"] = course["price"]
	enriched["description"] = course["description"]

	id, err := h.enrollments.Create(ctx, enriched)
	if err != nil {
		h.logger.WithError(err).Error("Enrollment error")
		writeError(w, http.StatusInternalServerError, "Failed to enroll")
		return
	}

	totalModules := course["totalModules"]
	if totalModules == nil {
		totalModules = 0
	}
	seed := models.Progress{
		StudentEmail:     studentEmail,
		CourseID:         courseID,
		CourseTitle:      course["title"],
		CompletedModules: 0,
		TotalModules:     totalModules,
		Scores:           []interface{}{},
		LastActive:       time.Now(),
	}
	if err := h.progress.Seed(ctx, seed); err != nil {
		h.logger.WithError(err).Error("Enrollment error")
		writeError(w, http.StatusInternalServerError, "Failed to enroll")
		return
	}

	writeJSON(w, http.StatusOK, insertResponse{InsertedID: id})
}

// GetEnrollments lists enrollments, optionally for one student.
func (h *EnrollmentHandler) GetEnrollments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	studentEmail := r.URL.Query().Get("studentEmail")

	enrollments, err := h.enrollments.List(ctx, studentEmail)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch enrollments")
		return
	}

	writeJSON(w, http.StatusOK, enrollments)
}

// Unenroll deletes an enrollment by id. The progress record, if any,
// survives the unenrollment.
func (h *EnrollmentHandler) Unenroll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]

	count, err := h.enrollments.Delete(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to unenroll")
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{DeletedCount: count})
}
