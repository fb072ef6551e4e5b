package model

import "time"

// MarketPrice represents a single saleyard price quote for a livestock
// category. Multiple quotes may exist per category; the most recent by
// PriceDate is authoritative.
type MarketPrice struct {
	ID         string    `json:"id"`
	Category   string    `json:"category"`
	PricePerKg float64   `json:"pricePerKg"`
	PriceDate  time.Time `json:"priceDate"`
	Source     string    `json:"source"`
	Saleyard   string    `json:"saleyard,omitempty"`
	State      string    `json:"state,omitempty"`
}
