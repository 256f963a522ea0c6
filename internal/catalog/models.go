package catalog

// Game is one purchasable catalog entry. Ids are assigned by the repository
// and monotonically increasing.
type Game struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image,omitempty"`
}

const DefaultCategory = "Uncategorized"

// Update carries the fields of an admin edit. Nil fields keep the stored
// value, matching partial PUT semantics.
type Update struct {
	Name     *string
	Price    *float64
	Category *string
	Image    *string
}
