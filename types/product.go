package types

// Product is a shop catalog item. The catalog is served from memory;
// prices are kept as display strings to match frontend formatting.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         string  `json:"price"`
	OriginalPrice string  `json:"originalPrice,omitempty"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Image         string  `json:"image"`
	OnSale        bool    `json:"onSale"`
	Featured      bool    `json:"featured"`
	Description   string  `json:"description"`
}
