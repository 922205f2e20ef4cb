package handler

import (
	"errors"
	"net/http"

	"github.com/pockettrader/pockettrader/internal/domain"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrCardNotFound):
		return http.StatusNotFound, ErrMsgCardNotFoundError
	case errors.Is(err, domain.ErrTradeNotFound):
		return http.StatusNotFound, ErrMsgTradeNotFoundError
	case errors.Is(err, domain.ErrSelfTrade):
		return http.StatusBadRequest, ErrMsgSelfTradeError
	case errors.Is(err, domain.ErrCardNotOwned):
		return http.StatusBadRequest, ErrMsgCardNotOwnedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrNotParticipant):
		return http.StatusForbidden, ErrMsgNotParticipantError
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict, ErrMsgTradeAlreadyDoneError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusConflict, ErrMsgInsufficientQuantityError
	case errors.Is(err, domain.ErrCardNoLongerAvailable):
		return http.StatusConflict, ErrMsgCardUnavailableError
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, ErrMsgStorageUnavailableErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
