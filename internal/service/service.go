package service

import (
	"context"

	"greenfield-hub-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.PublicUser, error)
	Login(ctx context.Context, email, password string) (string, *domain.PublicUser, error) // token, account summary
}

type TractorService interface {
	Register(ctx context.Context, input *RegisterTractorInput) (*domain.Tractor, error)
	List(ctx context.Context) ([]domain.Tractor, error)
	GetByID(ctx context.Context, id string) (*domain.Tractor, error)
	ConfirmRental(ctx context.Context, req *domain.RentalConfirmation) error
}

type ChatService interface {
	Complete(ctx context.Context, message string) (string, error)
}

// EmailService sends the marketplace's templated notifications. Both sends
// are best-effort: callers dispatch them without blocking the request and
// treat failures as log-only.
type EmailService interface {
	SendRegistrationEmail(data RegistrationEmailData) error
	SendRentalConfirmationEmail(data RentalConfirmationEmailData) error
}

// RegisterTractorInput is the listing registration request. Wire names and
// validation rules mirror the public API.
type RegisterTractorInput struct {
	OwnerName     string  `json:"ownerName" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	Model         string  `json:"model" validate:"required"`
	TractorNumber string  `json:"tractorNumber" validate:"required"`
	Horsepower    float64 `json:"horsepower" validate:"required,gt=0"`
	FuelType      string  `json:"fuelType" validate:"required,oneof=Diesel Petrol Bio-Diesel"`
	RentPerHour   float64 `json:"rentPerHour" validate:"required,gt=0"`
	RentPerDay    float64 `json:"rentPerDay" validate:"required,gt=0"`
	IsAvailable   *bool   `json:"isAvailable"`
}

// RegistrationEmailData feeds the owner registration notification.
type RegistrationEmailData struct {
	OwnerName     string
	Email         string
	Model         string
	TractorNumber string
	Horsepower    float64
	FuelType      string
}

// RentalConfirmationEmailData feeds the rental notification to the owner.
type RentalConfirmationEmailData struct {
	OwnerEmail    string
	OwnerName     string
	OwnerPhone    string
	RenterName    string
	RenterEmail   string
	Model         string
	TractorNumber string
	StartDate     string
	RentalType    string
	Duration      int
	TotalCost     float64
}
