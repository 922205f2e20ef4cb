package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pockettrader/pockettrader/internal/inventory"
	"github.com/pockettrader/pockettrader/internal/logger"
)

// AdjustQuantityRequest carries a signed delta. Zero is accepted and
// leaves the quantity unchanged, so the field has no required tag.
type AdjustQuantityRequest struct {
	CardID string `json:"card_id" validate:"required,max=100"`
	Delta  int    `json:"delta"`
}

type AdjustQuantityResponse struct {
	CardID   string `json:"card_id"`
	Quantity int    `json:"quantity"`
}

// HandleGetCollection handles listing a user's collection
// @Summary Get collection
// @Description List every card a user owns with quantities
// @Tags collection
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/collection [get]
func HandleGetCollection(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		entries, err := svc.GetCollection(r.Context(), userID)
		if err != nil {
			log.Warn("Failed to get collection", "error", err, "userID", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}

// HandleAdjustQuantity handles adding or removing copies of a card
// @Summary Adjust card quantity
// @Description Adjust the owned quantity of a card by a signed delta
// @Tags collection
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body AdjustQuantityRequest true "Adjustment details"
// @Success 200 {object} AdjustQuantityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{userID}/collection [post]
func HandleAdjustQuantity(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req AdjustQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode adjust quantity request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		quantity, err := svc.AdjustQuantity(r.Context(), userID, req.CardID, req.Delta)
		if err != nil {
			log.Warn("Failed to adjust quantity", "error", err, "userID", userID, "cardID", req.CardID, "delta", req.Delta)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Quantity adjusted", "userID", userID, "cardID", req.CardID, "quantity", quantity)
		respondJSON(w, http.StatusOK, AdjustQuantityResponse{CardID: req.CardID, Quantity: quantity})
	}
}
