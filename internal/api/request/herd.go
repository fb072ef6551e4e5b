package request

// CreateHerdRequest represents the request body for creating a herd.
// A headCount of 1 registers an individual animal.
type CreateHerdRequest struct {
	Name                     string   `json:"name"`
	Species                  string   `json:"species"`
	Breed                    string   `json:"breed"`
	Category                 string   `json:"category"`
	Sex                      string   `json:"sex"`
	HeadCount                int      `json:"headCount"`
	CreatedAt                string   `json:"createdAt"` // acquisition date, YYYY-MM-DD
	InitialWeightKg          float64  `json:"initialWeightKg"`
	DailyWeightGain          float64  `json:"dailyWeightGain"`
	UseCreationDateForWeight bool     `json:"useCreationDateForWeight"`
	IsBreeder                bool     `json:"isBreeder"`
	IsPregnant               bool     `json:"isPregnant"`
	JoinedDate               *string  `json:"joinedDate,omitempty"`
	CalvingRate              *float64 `json:"calvingRate,omitempty"`
	PreferredSaleyard        string   `json:"preferredSaleyard,omitempty"`
}

// UpdateHerdRequest represents the request body for editing a herd.
// Only provided fields are applied. Changing dailyWeightGain records the
// previous rate and the change date so weight projection stays continuous.
type UpdateHerdRequest struct {
	Name              *string  `json:"name,omitempty"`
	Breed             *string  `json:"breed,omitempty"`
	Category          *string  `json:"category,omitempty"`
	Sex               *string  `json:"sex,omitempty"`
	HeadCount         *int     `json:"headCount,omitempty"`
	DailyWeightGain   *float64 `json:"dailyWeightGain,omitempty"`
	IsBreeder         *bool    `json:"isBreeder,omitempty"`
	IsPregnant        *bool    `json:"isPregnant,omitempty"`
	JoinedDate        *string  `json:"joinedDate,omitempty"`
	CalvingRate       *float64 `json:"calvingRate,omitempty"`
	PreferredSaleyard *string  `json:"preferredSaleyard,omitempty"`
}
