package domain

// Opportunity is a one-directional trade signal: ownerID holds surplus
// copies of a card the querying user has wishlisted. Derived, never stored.
type Opportunity struct {
	CardID          string `json:"card_id"`
	OwnerID         string `json:"owner_id"`
	OwnerSurplusQty int    `json:"owner_surplus_qty"`
}

// Match is a two-directional trade signal: the querying user wants
// CardIWant which the partner holds in surplus, and the partner wants
// CardTheyWant which the querying user holds in surplus. One Match is
// emitted per card pair, so a single partner can appear many times.
type Match struct {
	PartnerID    string `json:"partner_id"`
	CardIWant    string `json:"card_i_want"`
	CardTheyWant string `json:"card_they_want"`
}
