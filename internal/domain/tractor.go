package domain

import "time"

type FuelType string

const (
	FuelTypeDiesel    FuelType = "Diesel"
	FuelTypePetrol    FuelType = "Petrol"
	FuelTypeBioDiesel FuelType = "Bio-Diesel"
)

type Tractor struct {
	ID            string    `json:"id"`
	OwnerName     string    `json:"ownerName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Location      string    `json:"location"`
	Model         string    `json:"model"`
	TractorNumber string    `json:"tractorNumber"`
	Horsepower    float64   `json:"horsepower"`
	FuelType      FuelType  `json:"fuelType"`
	RentPerHour   float64   `json:"rentPerHour"`
	RentPerDay    float64   `json:"rentPerDay"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
