package validation

import (
	"testing"

	"greenfield-hub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Name  string  `json:"ownerName" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Power float64 `json:"horsepower" validate:"required,gt=0"`
	Fuel  string  `json:"fuelType" validate:"required,oneof=Diesel Petrol Bio-Diesel"`
}

func valid() sampleInput {
	return sampleInput{Name: "Asha", Email: "asha@example.com", Power: 40, Fuel: "Diesel"}
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		input := valid()
		assert.NoError(t, Struct(&input))
	})

	t.Run("Required Uses Wire Name", func(t *testing.T) {
		input := valid()
		input.Name = ""
		err := Struct(&input)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "ownerName", validationErr.Field)
		assert.Equal(t, "ownerName is required", validationErr.Message)
	})

	t.Run("Email Format", func(t *testing.T) {
		input := valid()
		input.Email = "not-an-email"
		err := Struct(&input)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "email", validationErr.Field)
	})

	t.Run("Positivity", func(t *testing.T) {
		input := valid()
		input.Power = -1
		err := Struct(&input)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "horsepower must be greater than 0", validationErr.Message)
	})

	t.Run("Enum", func(t *testing.T) {
		input := valid()
		input.Fuel = "Coal"
		err := Struct(&input)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "fuelType", validationErr.Field)
		assert.Contains(t, validationErr.Message, "Diesel")
	})

	t.Run("First Violation Wins", func(t *testing.T) {
		input := sampleInput{}
		err := Struct(&input)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "ownerName", validationErr.Field)
	})
}
