package validation

import (
	"strings"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/request"
)

// ValidateCreatePrice validates a market price creation request.
func ValidateCreatePrice(req request.CreatePriceRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}

	if req.PricePerKg < 0 {
		errors["pricePerKg"] = "price cannot be negative"
	}

	if req.PriceDate == "" {
		errors["priceDate"] = "price date is required"
	} else if _, err := ParseDate(req.PriceDate); err != nil {
		errors["priceDate"] = "invalid date format"
	}

	if strings.TrimSpace(req.Source) == "" {
		errors["source"] = "source is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
