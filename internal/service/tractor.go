package service

import (
	"context"
	"strings"

	"greenfield-hub-backend/internal/domain"
	"greenfield-hub-backend/internal/logger"
	"greenfield-hub-backend/internal/repository"
	"greenfield-hub-backend/internal/validation"

	"github.com/google/uuid"
)

// Confirmation only checks that the renter fields are present; renterEmail
// is not format-checked, it is echoed into the owner notification as given.
type confirmRentalInput struct {
	TractorID   string `json:"tractorId" validate:"required"`
	RenterEmail string `json:"renterEmail" validate:"required"`
	RenterName  string `json:"renterName" validate:"required"`
}

type tractorService struct {
	tractorRepo repository.TractorRepository
	emailSvc    EmailService
}

func NewTractorService(tractorRepo repository.TractorRepository, emailSvc EmailService) TractorService {
	return &tractorService{
		tractorRepo: tractorRepo,
		emailSvc:    emailSvc,
	}
}

func (s *tractorService) Register(ctx context.Context, input *RegisterTractorInput) (*domain.Tractor, error) {
	logger.EnterMethod("tractorService.Register", "tractorNumber", input.TractorNumber)
	if err := validation.Struct(input); err != nil {
		logger.ExitMethodWithError("tractorService.Register", err, "tractorNumber", input.TractorNumber)
		return nil, err
	}

	// Availability defaults to true when the caller leaves it unset.
	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	// Owner email is normalized before the unique check, so case variants
	// of an already-registered address conflict instead of duplicating.
	tractor := &domain.Tractor{
		OwnerName:     input.OwnerName,
		Email:         strings.ToLower(input.Email),
		Phone:         input.Phone,
		Location:      input.Location,
		Model:         input.Model,
		TractorNumber: input.TractorNumber,
		Horsepower:    input.Horsepower,
		FuelType:      domain.FuelType(input.FuelType),
		RentPerHour:   input.RentPerHour,
		RentPerDay:    input.RentPerDay,
		IsAvailable:   isAvailable,
	}
	if err := s.tractorRepo.Create(ctx, tractor); err != nil {
		logger.ExitMethodWithError("tractorService.Register", err, "tractorNumber", tractor.TractorNumber)
		return nil, err
	}

	// Best-effort owner notification: the listing is registered whether or
	// not the email ever sends.
	if err := s.emailSvc.SendRegistrationEmail(RegistrationEmailData{
		OwnerName:     tractor.OwnerName,
		Email:         tractor.Email,
		Model:         tractor.Model,
		TractorNumber: tractor.TractorNumber,
		Horsepower:    tractor.Horsepower,
		FuelType:      string(tractor.FuelType),
	}); err != nil {
		logger.Warn("registration email not dispatched", "tractor", tractor.ID, "error", err)
	}

	logger.ExitMethod("tractorService.Register", "id", tractor.ID, "tractorNumber", tractor.TractorNumber)
	return tractor, nil
}

func (s *tractorService) List(ctx context.Context) ([]domain.Tractor, error) {
	return s.tractorRepo.List(ctx)
}

func (s *tractorService) GetByID(ctx context.Context, id string) (*domain.Tractor, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.NewValidationError("id", "Invalid tractor ID")
	}
	return s.tractorRepo.GetByID(ctx, id)
}

func (s *tractorService) ConfirmRental(ctx context.Context, req *domain.RentalConfirmation) error {
	logger.EnterMethod("tractorService.ConfirmRental", "tractorId", req.TractorID)
	input := confirmRentalInput{
		TractorID:   req.TractorID,
		RenterEmail: req.RenterEmail,
		RenterName:  req.RenterName,
	}
	if err := validation.Struct(&input); err != nil {
		logger.ExitMethodWithError("tractorService.ConfirmRental", err, "tractorId", req.TractorID)
		return err
	}
	if _, err := uuid.Parse(req.TractorID); err != nil {
		return domain.NewValidationError("tractorId", "Invalid tractor ID")
	}

	tractor, err := s.tractorRepo.GetByID(ctx, req.TractorID)
	if err != nil {
		logger.ExitMethodWithError("tractorService.ConfirmRental", err, "tractorId", req.TractorID)
		return err
	}

	// Confirmation is a notification, nothing more: availability is not
	// checked or mutated and no booking record is written.
	if err := s.emailSvc.SendRentalConfirmationEmail(RentalConfirmationEmailData{
		OwnerEmail:    tractor.Email,
		OwnerName:     tractor.OwnerName,
		OwnerPhone:    tractor.Phone,
		RenterName:    req.RenterName,
		RenterEmail:   req.RenterEmail,
		Model:         tractor.Model,
		TractorNumber: tractor.TractorNumber,
		StartDate:     req.StartDate,
		RentalType:    string(req.RentalType),
		Duration:      req.Duration,
		TotalCost:     req.TotalCost,
	}); err != nil {
		logger.Warn("rental confirmation email not dispatched", "tractor", tractor.ID, "error", err)
	}

	logger.ExitMethod("tractorService.ConfirmRental", "tractorId", tractor.ID, "renter", req.RenterEmail)
	return nil
}
