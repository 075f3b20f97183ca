package domain

type RentalType string

const (
	RentalTypeHourly RentalType = "hourly"
	RentalTypeDaily  RentalType = "daily"
)

// RentalConfirmation is the transient booking request. It references an
// existing tractor listing and only exists for the duration of one request;
// confirming a rental notifies the owner but persists nothing and does not
// touch the listing's availability.
type RentalConfirmation struct {
	TractorID   string     `json:"tractorId"`
	RenterName  string     `json:"renterName"`
	RenterEmail string     `json:"renterEmail"`
	StartDate   string     `json:"startDate"`
	RentalType  RentalType `json:"rentalType"`
	Duration    int        `json:"duration"`
	TotalCost   float64    `json:"totalCost"`
}
