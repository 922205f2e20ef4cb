package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pockettrader/pockettrader/internal/domain"
)

func TestHandleProposeTrade(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockTradeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: ProposeTradeRequest{
				InitiatorID:     "u1",
				ResponderID:     "u2",
				CardByInitiator: "c1",
				CardByResponder: "c2",
			},
			setupMock: func(m *MockTradeService) {
				m.On("ProposeTrade", mock.Anything, "u1", "u2", "c1", "c2").
					Return(&domain.Trade{ID: "t1", Status: domain.TradeStatusPending}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"pending"`,
		},
		{
			name: "Self Trade",
			requestBody: ProposeTradeRequest{
				InitiatorID:     "u1",
				ResponderID:     "u1",
				CardByInitiator: "c1",
				CardByResponder: "c2",
			},
			setupMock: func(m *MockTradeService) {
				m.On("ProposeTrade", mock.Anything, "u1", "u1", "c1", "c2").
					Return(nil, domain.ErrSelfTrade)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSelfTradeError,
		},
		{
			name: "Initiator Does Not Own Card",
			requestBody: ProposeTradeRequest{
				InitiatorID:     "u1",
				ResponderID:     "u2",
				CardByInitiator: "c1",
				CardByResponder: "c2",
			},
			setupMock: func(m *MockTradeService) {
				m.On("ProposeTrade", mock.Anything, "u1", "u2", "c1", "c2").
					Return(nil, domain.ErrCardNotOwned)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgCardNotOwnedError,
		},
		{
			name:           "Invalid Request - Missing Fields",
			requestBody:    ProposeTradeRequest{InitiatorID: "u1"},
			setupMock:      func(m *MockTradeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockTradeService{}
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/trades", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleProposeTrade(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleConfirmTrade(t *testing.T) {
	InitValidator()

	t.Run("Success - Completed", func(t *testing.T) {
		mockSvc := &MockTradeService{}
		mockSvc.On("Confirm", mock.Anything, "t1", "u2").
			Return(&domain.Trade{ID: "t1", Status: domain.TradeStatusCompleted}, nil)

		body, _ := json.Marshal(TradeActionRequest{UserID: "u2"})
		req := withURLParam(httptest.NewRequest("POST", "/trades/t1/confirm", bytes.NewBuffer(body)), "tradeID", "t1")
		w := httptest.NewRecorder()

		HandleConfirmTrade(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"completed"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Not Participant", func(t *testing.T) {
		mockSvc := &MockTradeService{}
		mockSvc.On("Confirm", mock.Anything, "t1", "u3").Return(nil, domain.ErrNotParticipant)

		body, _ := json.Marshal(TradeActionRequest{UserID: "u3"})
		req := withURLParam(httptest.NewRequest("POST", "/trades/t1/confirm", bytes.NewBuffer(body)), "tradeID", "t1")
		w := httptest.NewRecorder()

		HandleConfirmTrade(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotParticipantError)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Card No Longer Available", func(t *testing.T) {
		mockSvc := &MockTradeService{}
		mockSvc.On("Confirm", mock.Anything, "t1", "u2").Return(nil, domain.ErrCardNoLongerAvailable)

		body, _ := json.Marshal(TradeActionRequest{UserID: "u2"})
		req := withURLParam(httptest.NewRequest("POST", "/trades/t1/confirm", bytes.NewBuffer(body)), "tradeID", "t1")
		w := httptest.NewRecorder()

		HandleConfirmTrade(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgCardUnavailableError)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Trade Not Found", func(t *testing.T) {
		mockSvc := &MockTradeService{}
		mockSvc.On("Confirm", mock.Anything, "missing", "u2").Return(nil, domain.ErrTradeNotFound)

		body, _ := json.Marshal(TradeActionRequest{UserID: "u2"})
		req := withURLParam(httptest.NewRequest("POST", "/trades/missing/confirm", bytes.NewBuffer(body)), "tradeID", "missing")
		w := httptest.NewRecorder()

		HandleConfirmTrade(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleDeclineTrade(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockTradeService{}
		mockSvc.On("Decline", mock.Anything, "t1", "u2").
			Return(&domain.Trade{ID: "t1", Status: domain.TradeStatusDeclined}, nil)

		body, _ := json.Marshal(TradeActionRequest{UserID: "u2"})
		req := withURLParam(httptest.NewRequest("POST", "/trades/t1/decline", bytes.NewBuffer(body)), "tradeID", "t1")
		w := httptest.NewRecorder()

		HandleDeclineTrade(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"declined"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Already Resolved", func(t *testing.T) {
		mockSvc := &MockTradeService{}
		mockSvc.On("Decline", mock.Anything, "t1", "u2").Return(nil, domain.ErrInvalidState)

		body, _ := json.Marshal(TradeActionRequest{UserID: "u2"})
		req := withURLParam(httptest.NewRequest("POST", "/trades/t1/decline", bytes.NewBuffer(body)), "tradeID", "t1")
		w := httptest.NewRecorder()

		HandleDeclineTrade(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgTradeAlreadyDoneError)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleCancelTrade(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockTradeService{}
		mockSvc.On("Cancel", mock.Anything, "t1", "u1").
			Return(&domain.Trade{ID: "t1", Status: domain.TradeStatusCancelled}, nil)

		body, _ := json.Marshal(TradeActionRequest{UserID: "u1"})
		req := withURLParam(httptest.NewRequest("POST", "/trades/t1/cancel", bytes.NewBuffer(body)), "tradeID", "t1")
		w := httptest.NewRecorder()

		HandleCancelTrade(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Responder Cannot Cancel", func(t *testing.T) {
		mockSvc := &MockTradeService{}
		mockSvc.On("Cancel", mock.Anything, "t1", "u2").Return(nil, domain.ErrNotParticipant)

		body, _ := json.Marshal(TradeActionRequest{UserID: "u2"})
		req := withURLParam(httptest.NewRequest("POST", "/trades/t1/cancel", bytes.NewBuffer(body)), "tradeID", "t1")
		w := httptest.NewRecorder()

		HandleCancelTrade(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleGetTrade(t *testing.T) {
	mockSvc := &MockTradeService{}
	mockSvc.On("GetTrade", mock.Anything, "t1").
		Return(&domain.Trade{ID: "t1", Status: domain.TradeStatusPending}, nil)

	req := withURLParam(httptest.NewRequest("GET", "/trades/t1", nil), "tradeID", "t1")
	w := httptest.NewRecorder()

	HandleGetTrade(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"trade_id":"t1"`)
	mockSvc.AssertExpectations(t)
}

func TestHandleListActiveTrades(t *testing.T) {
	mockSvc := &MockTradeService{}
	mockSvc.On("ListActiveTrades", mock.Anything, "u1").Return([]domain.Trade{
		{ID: "t2", Status: domain.TradeStatusPending},
		{ID: "t1", Status: domain.TradeStatusPending},
	}, nil)

	req := withURLParam(httptest.NewRequest("GET", "/users/u1/trades", nil), "userID", "u1")
	w := httptest.NewRecorder()

	HandleListActiveTrades(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"trade_id":"t2"`)
	mockSvc.AssertExpectations(t)
}
