package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pockettrader/pockettrader/internal/inventory"
	"github.com/pockettrader/pockettrader/internal/logger"
)

type WishlistRequest struct {
	CardID string `json:"card_id" validate:"required,max=100"`
}

// HandleGetWishlist handles listing a user's wishlist
// @Summary Get wishlist
// @Description List the card IDs on a user's wishlist
// @Tags wishlist
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/wishlist [get]
func HandleGetWishlist(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		cardIDs, err := svc.GetWishlist(r.Context(), userID)
		if err != nil {
			log.Warn("Failed to get wishlist", "error", err, "userID", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: cardIDs})
	}
}

// HandleAddWishlist handles adding a card to a user's wishlist
// @Summary Add to wishlist
// @Description Add a card to the user's wishlist; adding twice is a no-op
// @Tags wishlist
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body WishlistRequest true "Card to add"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/wishlist [post]
func HandleAddWishlist(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req WishlistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode wishlist request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		if err := svc.AddWishlist(r.Context(), userID, req.CardID); err != nil {
			log.Warn("Failed to add wishlist entry", "error", err, "userID", userID, "cardID", req.CardID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Wishlist entry added", "userID", userID, "cardID", req.CardID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Card added to wishlist"})
	}
}

// HandleRemoveWishlist handles removing a card from a user's wishlist
// @Summary Remove from wishlist
// @Description Remove a card from the user's wishlist; removing an absent card is a no-op
// @Tags wishlist
// @Produce json
// @Param userID path string true "User ID"
// @Param cardID path string true "Card ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/wishlist/{cardID} [delete]
func HandleRemoveWishlist(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")
		cardID := chi.URLParam(r, "cardID")

		if err := svc.RemoveWishlist(r.Context(), userID, cardID); err != nil {
			log.Warn("Failed to remove wishlist entry", "error", err, "userID", userID, "cardID", cardID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Wishlist entry removed", "userID", userID, "cardID", cardID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Card removed from wishlist"})
	}
}
