package domain

import "time"

// TradeStatus is the lifecycle state of a trade.
type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusCompleted TradeStatus = "completed"
	TradeStatusDeclined  TradeStatus = "declined"
	TradeStatusCancelled TradeStatus = "cancelled"
)

// Trade is a two-party swap of exactly one card per side. It is created
// pending, collects confirmations from both participants, and executes
// atomically once both have confirmed. completed/declined/cancelled are
// terminal; a terminal trade is never mutated again.
type Trade struct {
	ID                      string      `json:"trade_id" db:"trade_id"`
	InitiatorID             string      `json:"initiator_id" db:"initiator_id"`
	ResponderID             string      `json:"responder_id" db:"responder_id"`
	CardOfferedByInitiator  string      `json:"card_offered_by_initiator" db:"card_offered_by_initiator"`
	CardOfferedByResponder  string      `json:"card_offered_by_responder" db:"card_offered_by_responder"`
	Status                  TradeStatus `json:"status" db:"status"`
	ConfirmedBy             []string    `json:"confirmed_by" db:"confirmed_by"`
	CreatedAt               time.Time   `json:"created_at" db:"created_at"`
	CompletedAt             *time.Time  `json:"completed_at,omitempty" db:"completed_at"`
}

// IsParticipant reports whether userID is one of the two trade parties.
func (t *Trade) IsParticipant(userID string) bool {
	return userID == t.InitiatorID || userID == t.ResponderID
}

// HasConfirmed reports whether userID has already confirmed this trade.
func (t *Trade) HasConfirmed(userID string) bool {
	for _, id := range t.ConfirmedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// RecordConfirmation adds userID to the confirmation set. Confirming
// twice is a no-op.
func (t *Trade) RecordConfirmation(userID string) {
	if !t.HasConfirmed(userID) {
		t.ConfirmedBy = append(t.ConfirmedBy, userID)
	}
}

// FullyConfirmed reports whether both participants have confirmed.
func (t *Trade) FullyConfirmed() bool {
	return t.HasConfirmed(t.InitiatorID) && t.HasConfirmed(t.ResponderID)
}

// IsTerminal reports whether the trade has reached a final state.
func (t *Trade) IsTerminal() bool {
	return t.Status == TradeStatusCompleted ||
		t.Status == TradeStatusDeclined ||
		t.Status == TradeStatusCancelled
}
