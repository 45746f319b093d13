package models

// Coordinate is a lat/lng pair extracted from a map link. Values are
// rounded to 6 decimal places before they leave the resolver.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Vendor statuses as the backend spells them.
const (
	VendorActive   = "Active"
	VendorInactive = "Inactive"
)

type Vendor struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Location  string      `json:"location"`
	Phone     string      `json:"phone"`
	GPSURL    string      `json:"gpsUrl"`
	Coords    *Coordinate `json:"coordinates,omitempty"`
	Status    string      `json:"status"` // Active, Inactive
	CreatedAt string      `json:"createdAt"`
}

// TimeSlot is an open/close pair in the backend's "HH:MM" form.
type TimeSlot struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// SportOffering is one sport bookable at a venue, with its pricing and slots.
type SportOffering struct {
	Name            string     `json:"name"`
	SlotPrice       float64    `json:"slotPrice"`
	DiscountedPrice float64    `json:"discountedPrice"`
	WeekendPrice    float64    `json:"weekendPrice"`
	TimeSlots       []TimeSlot `json:"timeSlots"`
	Courts          []string   `json:"courts"`
}

type Venue struct {
	TurfID            string          `json:"turfId"`
	VendorID          string          `json:"vendorId"`
	VendorName        string          `json:"vendorName"`
	Title             string          `json:"title"`
	Address           string          `json:"address"`
	Description       string          `json:"description"`
	Sports            []SportOffering `json:"sports"`
	Amenities         []string        `json:"amenities"`
	Rules             []string        `json:"rules"`
	Images            []string        `json:"images"`
	CancellationHours int             `json:"cancellationHours"`
	Featured          int             `json:"featured"` // 0 or 1
	Suspended         bool            `json:"suspended"`
	Courts            []string        `json:"courts"`
	CreatedAt         string          `json:"createdAt"`
}

type Amenity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Rule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// Booking is the read-only dashboard aggregate; the admin client never
// mutates bookings.
type Booking struct {
	BookingID           string  `json:"bookingId"`
	OrderID             string  `json:"orderId"`
	UserID              string  `json:"userId"`
	VendorName          string  `json:"vendorName"`
	TurfName            string  `json:"turfName"`
	TurfLocation        string  `json:"turfLocation"`
	LocationCoordinates string  `json:"locationCoordinates"`
	Date                string  `json:"date"`
	TimeSlot            string  `json:"timeSlot"`
	Sports              string  `json:"sports"`
	Amount              float64 `json:"amount"`
	PaymentStatus       string  `json:"paymentStatus"`
	BookingStatus       string  `json:"bookingStatus"`
	CreatedAt           string  `json:"createdAt"`
}

// Account is the admin user record returned by login.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
