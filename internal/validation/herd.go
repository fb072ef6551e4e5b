package validation

import (
	"strings"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/request"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// ValidateCreateHerd validates a herd creation request against the domain
// invariants: head count at least 1, non-negative weight figures, calving
// rate in [0,1], and species/category from the closed reference lists.
func ValidateCreateHerd(req request.CreateHerdRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if !model.IsValidSpecies(req.Species) {
		errors["species"] = "unknown species"
	} else if !model.IsValidCategory(req.Species, req.Category) {
		errors["category"] = "unknown category for species"
	}

	if req.Sex != "" && !model.IsValidSex(req.Sex) {
		errors["sex"] = "unknown sex"
	}

	if req.HeadCount < 1 {
		errors["headCount"] = "head count must be at least 1"
	}

	if req.InitialWeightKg < 0 {
		errors["initialWeightKg"] = "initial weight cannot be negative"
	}

	if req.DailyWeightGain < 0 {
		errors["dailyWeightGain"] = "daily weight gain cannot be negative"
	}

	if req.CreatedAt != "" {
		if _, err := ParseDate(req.CreatedAt); err != nil {
			errors["createdAt"] = "invalid date format"
		}
	}

	validateBreeding(errors, req.IsPregnant, req.JoinedDate, req.CalvingRate)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateHerd validates the provided fields of a herd update request.
func ValidateUpdateHerd(req request.UpdateHerdRequest, species string) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Category != nil && !model.IsValidCategory(species, *req.Category) {
		errors["category"] = "unknown category for species"
	}

	if req.Sex != nil && *req.Sex != "" && !model.IsValidSex(*req.Sex) {
		errors["sex"] = "unknown sex"
	}

	if req.HeadCount != nil && *req.HeadCount < 1 {
		errors["headCount"] = "head count must be at least 1"
	}

	if req.DailyWeightGain != nil && *req.DailyWeightGain < 0 {
		errors["dailyWeightGain"] = "daily weight gain cannot be negative"
	}

	// The stored herd may already carry a joined date, so an update never
	// requires one; only the formats and ranges of provided fields are checked.
	if req.JoinedDate != nil {
		if _, err := ParseDate(*req.JoinedDate); err != nil {
			errors["joinedDate"] = "invalid date format"
		}
	}
	if req.CalvingRate != nil && (*req.CalvingRate < 0 || *req.CalvingRate > 1) {
		errors["calvingRate"] = "calving rate must be between 0 and 1"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateBreeding(errors map[string]string, isPregnant bool, joinedDate *string, calvingRate *float64) {
	if joinedDate != nil {
		if _, err := ParseDate(*joinedDate); err != nil {
			errors["joinedDate"] = "invalid date format"
		}
	} else if isPregnant {
		errors["joinedDate"] = "joined date is required for a pregnant herd"
	}

	if calvingRate != nil && (*calvingRate < 0 || *calvingRate > 1) {
		errors["calvingRate"] = "calving rate must be between 0 and 1"
	}
}
