package request

// CreatePriceRequest represents the request body for recording a market price.
type CreatePriceRequest struct {
	Category   string  `json:"category"`
	PricePerKg float64 `json:"pricePerKg"`
	PriceDate  string  `json:"priceDate"` // YYYY-MM-DD
	Source     string  `json:"source"`
	Saleyard   string  `json:"saleyard,omitempty"`
	State      string  `json:"state,omitempty"`
}
