package model

// Species values from the closed reference list.
const (
	SpeciesCattle = "Cattle"
	SpeciesSheep  = "Sheep"
	SpeciesPigs   = "Pigs"
	SpeciesGoats  = "Goats"
)

// AllSpecies lists every supported species.
var AllSpecies = []string{SpeciesCattle, SpeciesSheep, SpeciesPigs, SpeciesGoats}

// IsValidSpecies reports whether s is a known species.
func IsValidSpecies(s string) bool {
	for _, v := range AllSpecies {
		if v == s {
			return true
		}
	}
	return false
}

// CategoriesBySpecies holds the closed category reference list per species.
// These match the categories market prices are quoted against.
var CategoriesBySpecies = map[string][]string{
	SpeciesCattle: {
		"Feeder Steer", "Feeder Heifer", "Yearling Steer", "Yearling Bull",
		"Grown Steer", "Grown Bull", "Weaner Steer", "Weaner Bull", "Weaner Heifer",
		"Breeding Cow", "Breeder", "Dry Cow", "Cull Cow", "Heifer",
		"First Calf Heifer", "Slaughter Cattle", "Calves",
	},
	SpeciesSheep: {
		"Breeding Ewe", "Maiden Ewe", "Dry Ewe", "Cull Ewe",
		"Weaner Ewe", "Feeder Ewe", "Slaughter Ewe",
		"Wether Lamb", "Weaner Lamb", "Feeder Lamb", "Slaughter Lamb", "Lambs",
	},
	SpeciesPigs: {
		"Breeder", "Dry Sow", "Cull Sow", "Weaner Pig", "Feeder Pig",
		"Grower Pig", "Finisher Pig", "Porker", "Baconer",
		"Grower Barrow", "Finisher Barrow",
	},
	SpeciesGoats: {
		"Breeder Doe", "Dry Doe", "Cull Doe", "Breeder Buck", "Sale Buck",
		"Mature Wether", "Rangeland Goat", "Capretto", "Chevon",
	},
}

// IsValidCategory reports whether category belongs to the species' closed list.
func IsValidCategory(species, category string) bool {
	for _, v := range CategoriesBySpecies[species] {
		if v == category {
			return true
		}
	}
	return false
}

// Sex values from the closed reference list.
var AllSexes = []string{"Male", "Female", "Castrate", "Mixed"}

// IsValidSex reports whether s is a known sex value.
func IsValidSex(s string) bool {
	for _, v := range AllSexes {
		if v == s {
			return true
		}
	}
	return false
}
