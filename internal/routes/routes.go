package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tanvir81/course-nest-server/internal/config"
	"github.com/tanvir81/course-nest-server/internal/handlers"
	"github.com/tanvir81/course-nest-server/internal/middleware"
	"github.com/tanvir81/course-nest-server/internal/store"
)

func SetupRouter(client *mongo.Client, cfg config.Config, logger *logrus.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))

	// Liveness endpoints
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Course-Nest Server Is Running"))
	}).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	courses := store.NewCourseStore(client, cfg.DatabaseName)
	enrollments := store.NewEnrollmentStore(client, cfg.DatabaseName)
	progress := store.NewProgressStore(client, cfg.DatabaseName)
	reviews := store.NewReviewStore(client, cfg.DatabaseName)
	users := store.NewUserStore(client, cfg.DatabaseName)

	jwtSecret := []byte(cfg.JWTSecret)
	courseHandler := handlers.NewCourseHandler(courses, logger, cfg.Timeout)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollments, courses, progress, logger, cfg.Timeout)
	reviewHandler := handlers.NewReviewHandler(reviews, cfg.Timeout)
	userHandler := handlers.NewUserHandler(users, cfg.SMTP, jwtSecret, logger, cfg.Timeout)

	router.HandleFunc("/courses", courseHandler.GetCourses).Methods("GET")
	router.HandleFunc("/courses", courseHandler.CreateCourse).Methods("POST")
	router.HandleFunc("/courses/{id}/average-rating", reviewHandler.GetAverageRating).Methods("GET")
	router.HandleFunc("/courses/{id}", courseHandler.GetCourseByID).Methods("GET")
	router.HandleFunc("/courses/{id}", courseHandler.UpdateCourse).Methods("PATCH")
	router.HandleFunc("/courses/{id}", courseHandler.DeleteCourse).Methods("DELETE")

	router.HandleFunc("/enrollments", enrollmentHandler.Enroll).Methods("POST")
	router.HandleFunc("/enrollments", enrollmentHandler.GetEnrollments).Methods("GET")
	router.HandleFunc("/enrollments/{id}", enrollmentHandler.Unenroll).Methods("DELETE")

	router.HandleFunc("/reviews", reviewHandler.CreateReview).Methods("POST")
	router.HandleFunc("/reviews/{courseId}", reviewHandler.GetReviewsByCourse).Methods("GET")
	router.HandleFunc("/reviews/{id}", reviewHandler.UpdateReview).Methods("PATCH")
	router.HandleFunc("/reviews/{id}", reviewHandler.DeleteReview).Methods("DELETE")

	router.HandleFunc("/users", userHandler.Register).Methods("POST")
	router.HandleFunc("/users/login", userHandler.Login).Methods("POST")
	router.Handle("/users/me", middleware.UserAuth(jwtSecret)(http.HandlerFunc(userHandler.Me))).Methods("GET")

	return router
}
