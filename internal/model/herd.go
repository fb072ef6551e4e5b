package model

import "time"

// Herd represents a mob of livestock (or a single animal when HeadCount is 1)
// as stored in the database. Weight state carries at most one growth-rate
// change: PreviousDailyWeightGain and DWGChangeDate are set together when the
// daily weight gain is edited after creation.
type Herd struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	Category  string    `json:"category"`
	Sex       string    `json:"sex"`
	HeadCount int       `json:"headCount"`
	CreatedAt time.Time `json:"createdAt"`

	InitialWeightKg         float64    `json:"initialWeightKg"`
	DailyWeightGain         float64    `json:"dailyWeightGain"`
	PreviousDailyWeightGain *float64   `json:"previousDailyWeightGain,omitempty"`
	DWGChangeDate           *time.Time `json:"dwgChangeDate,omitempty"`

	// UseCreationDateForWeight freezes weight projection at the acquisition
	// date instead of projecting to "now".
	UseCreationDateForWeight bool `json:"useCreationDateForWeight"`

	IsBreeder   bool       `json:"isBreeder"`
	IsPregnant  bool       `json:"isPregnant"`
	JoinedDate  *time.Time `json:"joinedDate,omitempty"`
	CalvingRate float64    `json:"calvingRate"`

	PreferredSaleyard string `json:"preferredSaleyard,omitempty"`
	IsSold            bool   `json:"isSold"`
}

// IsIndividual reports whether this record tracks a single animal rather
// than a mob. Individuals are grouped separately for display but contribute
// to financial totals like any other herd.
func (h Herd) IsIndividual() bool {
	return h.HeadCount == 1
}

// HerdFilter for querying herds
type HerdFilter struct {
	IncludeSold bool
	Species     string
}
