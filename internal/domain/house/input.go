package house

// CreateInput is a new listing as submitted by its landlord.
// Numeric and date fields arrive as Text and are coerced by the service.
type CreateInput struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	HouseType        string `json:"houseType" validate:"required"`
	Bedrooms         Text   `json:"bedrooms" validate:"required"`
	Bathrooms        Text   `json:"bathrooms" validate:"required"`
	Sqft             Text   `json:"sqft"`
	MonthlyRent      Text   `json:"monthlyRent" validate:"required"`
	Deposit          Text   `json:"deposit" validate:"required"`
	Address          string `json:"address" validate:"required"`
	City             string `json:"city" validate:"required"`
	Estate           string `json:"estate" validate:"required"`
	Street           string `json:"street" validate:"required"`
	Latitude         Text   `json:"latitude" validate:"required"`
	Longitude        Text   `json:"longitude" validate:"required"`
	AvailabilityDate Text   `json:"availabilityDate" validate:"required"`

	WaterCharge       Text `json:"waterCharge"`
	ElectricityCharge Text `json:"electricityCharge"`
	ParkingCharge     Text `json:"parkingCharge"`

	Amenities []string `json:"amenities"`
	Rules     []string `json:"rules"`
}

// UpdateInput holds the fields present in an update payload. Absent
// fields stay untouched. Child collections are not replaceable here.
type UpdateInput struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	HouseType        *string `json:"houseType"`
	Bedrooms         *Text   `json:"bedrooms"`
	Bathrooms        *Text   `json:"bathrooms"`
	Sqft             *Text   `json:"sqft"`
	MonthlyRent      *Text   `json:"monthlyRent"`
	Deposit          *Text   `json:"deposit"`
	Address          *string `json:"address"`
	City             *string `json:"city"`
	Estate           *string `json:"estate"`
	Street           *string `json:"street"`
	Latitude         *Text   `json:"latitude"`
	Longitude        *Text   `json:"longitude"`
	AvailabilityDate *Text   `json:"availabilityDate"`

	WaterCharge       *Text `json:"waterCharge"`
	ElectricityCharge *Text `json:"electricityCharge"`
	ParkingCharge     *Text `json:"parkingCharge"`
}

type Filters struct {
	City    string
	Estate  string
	MinRent *float64
	MaxRent *float64
}

type PhotoUpload struct {
	Filename string
	Data     []byte
	Caption  string
}
