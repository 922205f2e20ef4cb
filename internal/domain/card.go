package domain

// Card represents a single entry in the collectible catalog.
// Cards are immutable reference data: the engine only ever stores and
// compares card IDs; the remaining attributes are display metadata.
type Card struct {
	ID       string `json:"card_id" db:"card_id"`
	Name     string `json:"name" db:"name"`
	Rarity   string `json:"rarity" db:"rarity"`
	Type     string `json:"type" db:"card_type"`
	PackName string `json:"pack_name" db:"pack_name"`
	ImageURL string `json:"image_url,omitempty" db:"image_url"`
}

// CardFilter narrows catalog listings. Zero-value fields match everything.
type CardFilter struct {
	Rarity   string
	Type     string
	PackName string
}

// Matches reports whether the card passes the filter.
func (f CardFilter) Matches(c Card) bool {
	if f.Rarity != "" && c.Rarity != f.Rarity {
		return false
	}
	if f.Type != "" && c.Type != f.Type {
		return false
	}
	if f.PackName != "" && c.PackName != f.PackName {
		return false
	}
	return true
}
