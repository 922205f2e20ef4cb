package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pockettrader/pockettrader/internal/logger"
	"github.com/pockettrader/pockettrader/internal/user"
)

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,excludesall=\x00\n\r\t"`
}

// HandleRegisterUser handles user registration
// @Summary Register a user
// @Description Create a user account, or return the existing account for the username
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode register user request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		registered, err := svc.Register(r.Context(), req.Username)
		if err != nil {
			log.Error("Failed to register user", "error", err, "username", req.Username)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("User registered", "userID", registered.ID, "username", registered.Username)
		respondJSON(w, http.StatusCreated, registered)
	}
}

// HandleGetUser handles user lookup by ID
// @Summary Get a user
// @Description Look up a user by ID
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID} [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		u, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			log.Warn("Failed to get user", "error", err, "userID", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}

// HandleListUsers handles listing all users
// @Summary List users
// @Description List all registered users sorted by username
// @Tags users
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func HandleListUsers(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		users, err := svc.ListUsers(r.Context())
		if err != nil {
			log.Error("Failed to list users", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: users})
	}
}
