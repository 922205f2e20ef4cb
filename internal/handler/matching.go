package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pockettrader/pockettrader/internal/logger"
	"github.com/pockettrader/pockettrader/internal/matching"
)

// HandleFindOpportunities handles listing trade opportunities for a user
// @Summary Find opportunities
// @Description List wishlisted cards other users hold in surplus
// @Tags matching
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/opportunities [get]
func HandleFindOpportunities(svc matching.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		opportunities, err := svc.FindOpportunities(r.Context(), userID)
		if err != nil {
			log.Warn("Failed to find opportunities", "error", err, "userID", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: opportunities})
	}
}

// HandleFindMatches handles listing mutual matches for a user
// @Summary Find matches
// @Description List card pairs where the user and a partner each hold surplus the other wants
// @Tags matching
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/matches [get]
func HandleFindMatches(svc matching.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		matches, err := svc.FindMatches(r.Context(), userID)
		if err != nil {
			log.Warn("Failed to find matches", "error", err, "userID", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: matches})
	}
}
