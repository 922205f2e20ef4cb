package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pockettrader/pockettrader/internal/domain"
)

func TestHandleFindOpportunities(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockMatchingService{}
		mockSvc.On("FindOpportunities", mock.Anything, "u1").Return([]domain.Opportunity{
			{CardID: "c1", OwnerID: "u2", OwnerSurplusQty: 3},
		}, nil)

		req := withURLParam(httptest.NewRequest("GET", "/users/u1/opportunities", nil), "userID", "u1")
		w := httptest.NewRecorder()

		HandleFindOpportunities(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"owner_surplus_qty":3`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Unknown User", func(t *testing.T) {
		mockSvc := &MockMatchingService{}
		mockSvc.On("FindOpportunities", mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

		req := withURLParam(httptest.NewRequest("GET", "/users/missing/opportunities", nil), "userID", "missing")
		w := httptest.NewRecorder()

		HandleFindOpportunities(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Empty Result", func(t *testing.T) {
		mockSvc := &MockMatchingService{}
		mockSvc.On("FindOpportunities", mock.Anything, "u1").Return([]domain.Opportunity{}, nil)

		req := withURLParam(httptest.NewRequest("GET", "/users/u1/opportunities", nil), "userID", "u1")
		w := httptest.NewRecorder()

		HandleFindOpportunities(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleFindMatches(t *testing.T) {
	mockSvc := &MockMatchingService{}
	mockSvc.On("FindMatches", mock.Anything, "u1").Return([]domain.Match{
		{PartnerID: "u2", CardIWant: "c1", CardTheyWant: "c2"},
	}, nil)

	req := withURLParam(httptest.NewRequest("GET", "/users/u1/matches", nil), "userID", "u1")
	w := httptest.NewRecorder()

	HandleFindMatches(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"card_i_want":"c1"`)
	assert.Contains(t, w.Body.String(), `"card_they_want":"c2"`)
	mockSvc.AssertExpectations(t)
}
