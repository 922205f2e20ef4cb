package domain

// CollectionEntry is one owned-quantity row: how many copies of a card a
// user holds. Quantity is never negative; rows at zero are removed.
type CollectionEntry struct {
	UserID   string `json:"user_id" db:"user_id"`
	CardID   string `json:"card_id" db:"card_id"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// WishlistEntry is set membership: the user wants this card. A user may
// wishlist a card they already own in any quantity.
type WishlistEntry struct {
	UserID string `json:"user_id" db:"user_id"`
	CardID string `json:"card_id" db:"card_id"`
}

// Surplus reports the tradeable copies of an entry: everything beyond
// the one copy an owner keeps.
func (e CollectionEntry) Surplus() int {
	if e.Quantity <= 1 {
		return 0
	}
	return e.Quantity - 1
}
