package apiclient

import "time"

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	IsVerified      bool      `json:"isVerified"`
	ProfilePhotoURL *string   `json:"profilePhotoUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Session struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type LandlordProfile struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"userId"`
	User               *User   `json:"user,omitempty"`
	Bio                *string `json:"bio"`
	IDType             string  `json:"idType"`
	VerificationStatus string  `json:"verificationStatus"`
	AverageRating      float64 `json:"averageRating"`
	TotalReviews       int     `json:"totalReviews"`
}

type LandlordProfileRequest struct {
	Bio        string `json:"bio,omitempty"`
	IDType     string `json:"idType"`
	IDNumber   string `json:"idNumber"`
	IDPhotoURL string `json:"idPhotoUrl,omitempty"`
}

type Photo struct {
	ID           uint    `json:"id"`
	PhotoURL     string  `json:"photoUrl"`
	Caption      *string `json:"caption"`
	DisplayOrder int     `json:"displayOrder"`
	IsPrimary    bool    `json:"isPrimary"`
}

type Amenity struct {
	Amenity string `json:"amenity"`
}

type Rule struct {
	Rule string `json:"rule"`
}

type House struct {
	ID               string           `json:"id"`
	LandlordID       string           `json:"landlordId"`
	Landlord         *LandlordProfile `json:"landlord,omitempty"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	HouseType        string           `json:"houseType"`
	Bedrooms         int              `json:"bedrooms"`
	Bathrooms        int              `json:"bathrooms"`
	MonthlyRent      float64          `json:"monthlyRent"`
	Deposit          float64          `json:"deposit"`
	City             string           `json:"city"`
	Estate           string           `json:"estate"`
	Status           string           `json:"status"`
	ViewCount        int              `json:"viewCount"`
	AvailabilityDate time.Time        `json:"availabilityDate"`
	Photos           []Photo          `json:"photos"`
	Amenities        []Amenity        `json:"amenities"`
	Rules            []Rule           `json:"rules"`
	DeletedAt        *time.Time       `json:"deletedAt,omitempty"`
	Count            *Counts          `json:"_count,omitempty"`
}

type Counts struct {
	Reviews   int64 `json:"reviews"`
	Comments  int64 `json:"comments"`
	Favorites int64 `json:"favorites"`
}

// HouseInput is a listing payload. Optional numbers are pointers so
// they can be left out.
type HouseInput struct {
	Title             string   `json:"title,omitempty"`
	Description       string   `json:"description,omitempty"`
	HouseType         string   `json:"houseType,omitempty"`
	Bedrooms          *int     `json:"bedrooms,omitempty"`
	Bathrooms         *int     `json:"bathrooms,omitempty"`
	Sqft              *int     `json:"sqft,omitempty"`
	MonthlyRent       *float64 `json:"monthlyRent,omitempty"`
	Deposit           *float64 `json:"deposit,omitempty"`
	Address           string   `json:"address,omitempty"`
	City              string   `json:"city,omitempty"`
	Estate            string   `json:"estate,omitempty"`
	Street            string   `json:"street,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	AvailabilityDate  string   `json:"availabilityDate,omitempty"`
	WaterCharge       *float64 `json:"waterCharge,omitempty"`
	ElectricityCharge *float64 `json:"electricityCharge,omitempty"`
	ParkingCharge     *float64 `json:"parkingCharge,omitempty"`
	Amenities         []string `json:"amenities,omitempty"`
	Rules             []string `json:"rules,omitempty"`
}

type HouseQuery struct {
	Page     int
	PageSize int
	City     string
	Estate   string
	MinPrice *float64
	MaxPrice *float64
}

type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type Activity struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entityId"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"createdAt"`
}

type PhotoFile struct {
	Name    string
	Data    []byte
	Caption string
}
