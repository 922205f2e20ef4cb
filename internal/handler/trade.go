package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/logger"
	"github.com/pockettrader/pockettrader/internal/trade"
)

type ProposeTradeRequest struct {
	InitiatorID     string `json:"initiator_id" validate:"required,max=100"`
	ResponderID     string `json:"responder_id" validate:"required,max=100"`
	CardByInitiator string `json:"card_offered_by_initiator" validate:"required,max=100"`
	CardByResponder string `json:"card_offered_by_responder" validate:"required,max=100"`
}

type TradeActionRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
}

// HandleProposeTrade handles proposing a trade
// @Summary Propose a trade
// @Description Propose a one-for-one card swap between two users
// @Tags trades
// @Accept json
// @Produce json
// @Param request body ProposeTradeRequest true "Trade details"
// @Success 201 {object} domain.Trade
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trades [post]
func HandleProposeTrade(svc trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ProposeTradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode propose trade request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		proposed, err := svc.ProposeTrade(r.Context(), req.InitiatorID, req.ResponderID, req.CardByInitiator, req.CardByResponder)
		if err != nil {
			log.Warn("Failed to propose trade", "error", err, "initiatorID", req.InitiatorID, "responderID", req.ResponderID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Trade proposed", "tradeID", proposed.ID)
		respondJSON(w, http.StatusCreated, proposed)
	}
}

// HandleGetTrade handles trade lookup by ID
// @Summary Get a trade
// @Description Look up a trade by ID
// @Tags trades
// @Produce json
// @Param tradeID path string true "Trade ID"
// @Success 200 {object} domain.Trade
// @Failure 404 {object} ErrorResponse
// @Router /trades/{tradeID} [get]
func HandleGetTrade(svc trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		tradeID := chi.URLParam(r, "tradeID")

		t, err := svc.GetTrade(r.Context(), tradeID)
		if err != nil {
			log.Warn("Failed to get trade", "error", err, "tradeID", tradeID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, t)
	}
}

// HandleConfirmTrade handles a participant confirming a trade
// @Summary Confirm a trade
// @Description Record a participant's confirmation; the trade executes once both have confirmed
// @Tags trades
// @Accept json
// @Produce json
// @Param tradeID path string true "Trade ID"
// @Param request body TradeActionRequest true "Acting user"
// @Success 200 {object} domain.Trade
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /trades/{tradeID}/confirm [post]
func HandleConfirmTrade(svc trade.Service) http.HandlerFunc {
	return tradeAction("confirm", svc.Confirm)
}

// HandleDeclineTrade handles a participant declining a trade
// @Summary Decline a trade
// @Description Decline a pending trade as either participant
// @Tags trades
// @Accept json
// @Produce json
// @Param tradeID path string true "Trade ID"
// @Param request body TradeActionRequest true "Acting user"
// @Success 200 {object} domain.Trade
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /trades/{tradeID}/decline [post]
func HandleDeclineTrade(svc trade.Service) http.HandlerFunc {
	return tradeAction("decline", svc.Decline)
}

// HandleCancelTrade handles the initiator withdrawing a trade
// @Summary Cancel a trade
// @Description Withdraw a pending trade; only the initiator may cancel
// @Tags trades
// @Accept json
// @Produce json
// @Param tradeID path string true "Trade ID"
// @Param request body TradeActionRequest true "Acting user"
// @Success 200 {object} domain.Trade
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /trades/{tradeID}/cancel [post]
func HandleCancelTrade(svc trade.Service) http.HandlerFunc {
	return tradeAction("cancel", svc.Cancel)
}

// HandleListActiveTrades handles listing a user's pending trades
// @Summary List active trades
// @Description List all pending trades a user participates in, newest first
// @Tags trades
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/trades [get]
func HandleListActiveTrades(svc trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		trades, err := svc.ListActiveTrades(r.Context(), userID)
		if err != nil {
			log.Warn("Failed to list active trades", "error", err, "userID", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: trades})
	}
}

// tradeAction wraps the shared decode/validate/respond cycle of the three
// lifecycle verbs. The verbs differ only in the service call they make.
func tradeAction(action string, call func(ctx context.Context, tradeID, userID string) (*domain.Trade, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		tradeID := chi.URLParam(r, "tradeID")

		var req TradeActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode trade action request", "error", err, "action", action)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err, "action", action)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		t, err := call(r.Context(), tradeID, req.UserID)
		if err != nil {
			log.Warn("Trade action failed", "error", err, "action", action, "tradeID", tradeID, "userID", req.UserID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Trade action applied", "action", action, "tradeID", tradeID, "status", t.Status)
		respondJSON(w, http.StatusOK, t)
	}
}
