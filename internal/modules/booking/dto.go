package booking

type CreateBookingRequest struct {
	PackageID     int64  `json:"package_id" binding:"required"`
	FromLocation  string `json:"from_location" binding:"required"`
	ToLocation    string `json:"to_location" binding:"required"`
	DepartureDate string `json:"departure_date" binding:"required"` // YYYY-MM-DD
	DepartureTime string `json:"departure_time" binding:"required"`
	ReturnDate    string `json:"return_date"`
	ReturnTime    string `json:"return_time"`

	PreferredAirline string `json:"preferred_airline"`
	PreferredSeating string `json:"preferred_seating"`

	NumAdults   int    `json:"num_adults" binding:"required,min=1"`
	NumChildren int    `json:"num_children"`
	NumInfants  int    `json:"num_infants"`
	FareType    string `json:"fare_type" binding:"required"`
	FareClass   string `json:"fare_class"` // economy (default) or business

	Message  string `json:"message"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}
