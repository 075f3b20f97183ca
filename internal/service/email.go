package service

import (
	"fmt"

	"greenfield-hub-backend/internal/mailer"
)

type emailService struct {
	queue *mailer.Queue
}

// NewEmailService builds the notification service over the async delivery
// queue. Neither send blocks on actual delivery.
func NewEmailService(queue *mailer.Queue) EmailService {
	return &emailService{queue: queue}
}

func (s *emailService) SendRegistrationEmail(data RegistrationEmailData) error {
	plain := fmt.Sprintf(
		"Hello %s,\n\nYour tractor has been registered successfully.\n\nModel: %s\nNumber: %s\nHorsepower: %.0f HP\nFuel: %s\n\nBest regards,\nThe Green Field Hub Team",
		data.OwnerName, data.Model, data.TractorNumber, data.Horsepower, data.FuelType,
	)
	html := fmt.Sprintf(
		`<h2>Tractor Registered Successfully</h2>
<p>Hello <b>%s</b>,</p>
<ul>
  <li><b>Model:</b> %s</li>
  <li><b>Number:</b> %s</li>
  <li><b>Horsepower:</b> %.0f HP</li>
  <li><b>Fuel:</b> %s</li>
</ul>`,
		data.OwnerName, data.Model, data.TractorNumber, data.Horsepower, data.FuelType,
	)

	return s.queue.Enqueue(mailer.Email{
		To:        data.Email,
		ToName:    data.OwnerName,
		Subject:   "Tractor Registration Successful",
		PlainText: plain,
		HTML:      html,
	})
}

func (s *emailService) SendRentalConfirmationEmail(data RentalConfirmationEmailData) error {
	plain := fmt.Sprintf(
		"Hello %s,\n\nYour tractor has been booked.\n\nFarmer: %s (%s)\nTractor: %s (%s)\nStart date: %s\nRental: %s for %d\nTotal: %.2f\n\nBest regards,\nThe Green Field Hub Team",
		data.OwnerName, data.RenterName, data.RenterEmail, data.Model, data.TractorNumber,
		data.StartDate, data.RentalType, data.Duration, data.TotalCost,
	)
	html := fmt.Sprintf(
		`<h2>New Tractor Rental</h2>
<p>Hello <b>%s</b>,</p>
<p>Farmer: %s (%s)</p>
<p>Tractor: %s (%s)</p>
<p>Start date: %s, %s rental for %d</p>
<p>Total: %.2f</p>`,
		data.OwnerName, data.RenterName, data.RenterEmail, data.Model, data.TractorNumber,
		data.StartDate, data.RentalType, data.Duration, data.TotalCost,
	)

	return s.queue.Enqueue(mailer.Email{
		To:        data.OwnerEmail,
		ToName:    data.OwnerName,
		Subject:   "Your Tractor Has Been Booked",
		PlainText: plain,
		HTML:      html,
	})
}
