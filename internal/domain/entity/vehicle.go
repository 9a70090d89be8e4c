package entity

import (
	"time"
)

const (
	VehicleStatusActive   = "active"
	VehicleStatusSold     = "sold"
	VehicleStatusInactive = "inactive"
)

const (
	MinListingImages = 5
	MaxListingImages = 21
)

// Vehicle is a marketplace listing. Seller fields are a snapshot of the
// owner's profile taken at creation time; they are not re-joined on read.
type Vehicle struct {
	ID      string `json:"id" firestore:"id"`
	UserID  string `json:"user_id" firestore:"userId"`
	Make    string `json:"make" firestore:"make"`
	Model   string `json:"model" firestore:"model"`
	Variant string `json:"variant,omitempty" firestore:"variant,omitempty"`
	Year    int    `json:"year" firestore:"year"`

	Price float64 `json:"price" firestore:"price"`
	// Mileage is stored as entered, possibly formatted ("15,000").
	// Numeric comparisons go through filter.ParseMileage.
	Mileage        string `json:"mileage" firestore:"mileage"`
	Transmission   string `json:"transmission" firestore:"transmission"`
	Fuel           string `json:"fuel" firestore:"fuel"`
	EngineCapacity string `json:"engine_capacity" firestore:"engineCapacity"`
	BodyType       string `json:"body_type" firestore:"bodyType"`
	Description    string `json:"description,omitempty" firestore:"description,omitempty"`

	Images []string `json:"images" firestore:"images"`

	City     string `json:"city,omitempty" firestore:"city,omitempty"`
	Province string `json:"province,omitempty" firestore:"province,omitempty"`

	SellerName       string `json:"seller_name" firestore:"sellerName"`
	SellerEmail      string `json:"seller_email" firestore:"sellerEmail"`
	SellerPhone      string `json:"seller_phone" firestore:"sellerPhone"`
	SellerSuburb     string `json:"seller_suburb,omitempty" firestore:"sellerSuburb,omitempty"`
	SellerCity       string `json:"seller_city,omitempty" firestore:"sellerCity,omitempty"`
	SellerProvince   string `json:"seller_province,omitempty" firestore:"sellerProvince,omitempty"`
	SellerProfilePic string `json:"seller_profile_pic,omitempty" firestore:"sellerProfilePic,omitempty"`

	Status string `json:"status" firestore:"status"`
	// DeletedAt must be written as an explicit null for live listings:
	// the list queries filter on deletedAt == nil, and Firestore null
	// equality only matches documents that carry the field.
	DeletedAt    *time.Time `json:"deleted_at,omitempty" firestore:"deletedAt"`
	DeleteReason string     `json:"delete_reason,omitempty" firestore:"deleteReason,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

var BodyTypes = []string{
	"Sedan",
	"SUV",
	"Hatchback",
	"Bakkie",
	"Double Cab",
	"Extended Cab",
	"Single Cab",
	"Coupe",
	"Convertible",
	"Minivan",
	"Panel Van",
	"Minibus",
	"Bus",
	"Motorcycle",
	"Scooter",
	"Off-road",
	"Station Wagon",
}

var FuelTypes = []string{"Petrol", "Diesel", "Electric", "Hybrid"}

var Transmissions = []string{"Manual", "Automatic"}

var Provinces = []string{
	"Eastern Cape",
	"Free State",
	"Gauteng",
	"KwaZulu-Natal",
	"Limpopo",
	"Mpumalanga",
	"North West",
	"Northern Cape",
	"Western Cape",
}

func IsValidBodyType(s string) bool     { return contains(BodyTypes, s) }
func IsValidFuelType(s string) bool     { return contains(FuelTypes, s) }
func IsValidTransmission(s string) bool { return contains(Transmissions, s) }
func IsValidProvince(s string) bool     { return contains(Provinces, s) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
