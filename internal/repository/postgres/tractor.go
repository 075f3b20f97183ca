package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"greenfield-hub-backend/internal/domain"
	"greenfield-hub-backend/internal/logger"
	"greenfield-hub-backend/internal/repository"

	"github.com/google/uuid"
)

type tractorRepository struct {
	db *sql.DB
}

func NewTractorRepository(db *sql.DB) repository.TractorRepository {
	return &tractorRepository{db: db}
}

const tractorColumns = `id, owner_name, email, phone, location, model, tractor_number, horsepower, fuel_type, rent_per_hour, rent_per_day, is_available, created_at, updated_at`

func (r *tractorRepository) Create(ctx context.Context, t *domain.Tractor) error {
	query := `INSERT INTO tractors (id, owner_name, email, phone, location, model, tractor_number, horsepower, fuel_type, rent_per_hour, rent_per_day, is_available, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	t.ID = uuid.NewString()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.OwnerName, t.Email, t.Phone, t.Location, t.Model, t.TractorNumber,
		t.Horsepower, t.FuelType, t.RentPerHour, t.RentPerDay, t.IsAvailable,
		t.CreatedAt, t.UpdatedAt,
	)
	return mapUniqueViolation(err)
}

func (r *tractorRepository) GetByID(ctx context.Context, id string) (*domain.Tractor, error) {
	t := &domain.Tractor{}
	query := `SELECT ` + tractorColumns + ` FROM tractors WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.OwnerName, &t.Email, &t.Phone, &t.Location, &t.Model, &t.TractorNumber,
		&t.Horsepower, &t.FuelType, &t.RentPerHour, &t.RentPerDay, &t.IsAvailable,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "Tractor"}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tractorRepository) List(ctx context.Context) ([]domain.Tractor, error) {
	query := `SELECT ` + tractorColumns + ` FROM tractors ORDER BY created_at DESC`
	logger.DatabaseCall("SELECT", "tractors")

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var tractors []domain.Tractor
	for rows.Next() {
		var t domain.Tractor
		if err := rows.Scan(
			&t.ID, &t.OwnerName, &t.Email, &t.Phone, &t.Location, &t.Model, &t.TractorNumber,
			&t.Horsepower, &t.FuelType, &t.RentPerHour, &t.RentPerDay, &t.IsAvailable,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			logger.DatabaseResult("SELECT", int64(len(tractors)), err)
			return nil, err
		}
		tractors = append(tractors, t)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("SELECT", int64(len(tractors)), err)
		return nil, err
	}

	logger.DatabaseResult("SELECT", int64(len(tractors)), nil)
	return tractors, nil
}
