package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pockettrader/pockettrader/internal/catalog"
	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/logger"
)

// HandleListCards handles listing the card catalog
// @Summary List cards
// @Description List catalog cards, optionally filtered by rarity, type, or pack
// @Tags cards
// @Produce json
// @Param rarity query string false "Rarity filter"
// @Param type query string false "Type filter"
// @Param pack query string false "Pack name filter"
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /cards [get]
func HandleListCards(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := domain.CardFilter{
			Rarity:   r.URL.Query().Get("rarity"),
			Type:     r.URL.Query().Get("type"),
			PackName: r.URL.Query().Get("pack"),
		}

		cards, err := svc.ListCards(r.Context(), filter)
		if err != nil {
			log.Error("Failed to list cards", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: cards})
	}
}

// HandleGetCard handles card lookup by ID
// @Summary Get a card
// @Description Look up a catalog card by ID
// @Tags cards
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} domain.Card
// @Failure 404 {object} ErrorResponse
// @Router /cards/{cardID} [get]
func HandleGetCard(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		cardID := chi.URLParam(r, "cardID")

		card, err := svc.GetCard(r.Context(), cardID)
		if err != nil {
			log.Warn("Failed to get card", "error", err, "cardID", cardID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, card)
	}
}
