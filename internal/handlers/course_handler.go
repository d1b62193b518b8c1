package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tanvir81/course-nest-server/internal/store"
)

type CourseHandler struct {
	courses store.CourseStore
	logger  *logrus.Logger
	timeout time.Duration
}

func NewCourseHandler(courses store.CourseStore, logger *logrus.Logger, timeout time.Duration) *CourseHandler {
	return &CourseHandler{courses: courses, logger: logger, timeout: timeout}
}

// GetCourses lists courses, optionally filtered by category and owner.
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	category := r.URL.Query().Get("category")
	owner := r.URL.Query().Get("owner")

	courses, err := h.courses.List(ctx, category, owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// GetCourseByID fetches one course. An absent course is a 200 with a null
// body; a malformed id is reported as a fetch failure, never a panic.
func (h *CourseHandler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]

	course, err := h.courses.Get(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch course details")
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// CreateCourse persists the request body verbatim. There is no course
// schema: callers may attach arbitrary attributes.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var newCourse bson.M
	if err := json.NewDecoder(r.Body).Decode(&newCourse); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := h.courses.Create(ctx, newCourse)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add course")
		return
	}

	writeJSON(w, http.StatusOK, insertResponse{InsertedID: id})
}

// UpdateCourse merges only the supplied fields into the course; omitted
// fields keep their prior values.
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]

	var updatedFields bson.M
	if err := json.NewDecoder(r.Body).Decode(&updatedFields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.courses.Update(ctx, id, updatedFields)
	if err != nil {
		h.logger.WithError(err).Error("Update error")
		writeError(w, http.StatusInternalServerError, "Failed to update course")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteCourse removes a course unconditionally. Enrollments referencing it
// are left in place; their denormalized snapshot keeps serving reads.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]

	count, err := h.courses.Delete(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete course")
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{DeletedCount: count})
}
