package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/tanvir81/course-nest-server/internal/auth"
	"github.com/tanvir81/course-nest-server/internal/config"
	"github.com/tanvir81/course-nest-server/internal/middleware"
	"github.com/tanvir81/course-nest-server/internal/models"
	"github.com/tanvir81/course-nest-server/internal/store"
	"github.com/tanvir81/course-nest-server/internal/utils"
)

type UserHandler struct {
	users     store.UserStore
	smtp      config.SMTPConfig
	jwtSecret []byte
	logger    *logrus.Logger
	timeout   time.Duration
}

func NewUserHandler(users store.UserStore, smtp config.SMTPConfig, jwtSecret []byte, logger *logrus.Logger, timeout time.Duration) *UserHandler {
	return &UserHandler{
		users:     users,
		smtp:      smtp,
		jwtSecret: jwtSecret,
		logger:    logger,
		timeout:   timeout,
	}
}

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

// Register creates a user account. The welcome email is best-effort: a
// delivery failure is logged and the registration still succeeds.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Email == "" || req.DisplayName == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email, display name, and password are required")
		return
	}

	existing, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check email availability")
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "Email already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	newUser := models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    string(hashedPassword),
		CreatedAt:   time.Now(),
	}

	id, err := h.users.Create(ctx, newUser)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	if err := utils.SendWelcomeEmail(h.smtp, req.Email, req.DisplayName); err != nil {
		h.logger.WithError(err).Warn("Failed to send welcome email")
	}

	writeJSON(w, http.StatusOK, insertResponse{InsertedID: id})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a JWT.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.GenerateJWT(user.ID.Hex(), h.jwtSecret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Me returns the profile of the authenticated user.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.users.FindByID(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
