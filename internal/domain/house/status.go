package house

import "github.com/BruksfildServices01/house-hunting/internal/models"

// Any status may move to any other; there is no transition graph.
var statuses = map[string]bool{
	models.HouseAvailable:   true,
	models.HouseOccupied:    true,
	models.HouseMaintenance: true,
	models.HouseDelisted:    true,
}

func ValidStatus(s string) bool {
	return statuses[s]
}

var houseTypes = map[string]bool{
	"bedsitter": true,
	"1br":       true,
	"2br":       true,
	"3br":       true,
	"4br_plus":  true,
}

func ValidHouseType(t string) bool {
	return houseTypes[t]
}

var amenities = map[string]bool{
	"wifi":             true,
	"parking":          true,
	"water_24h":        true,
	"security":         true,
	"gate":             true,
	"shopping_nearby":  true,
	"school_nearby":    true,
	"public_transport": true,
	"furnished":        true,
	"kitchen_equipped": true,
	"balcony":          true,
	"garden":           true,
	"pet_friendly":     true,
	"cctv":             true,
	"backup_power":     true,
}

func ValidAmenity(a string) bool {
	return amenities[a]
}
