package postgres

import (
	"database/sql"

	"greenfield-hub-backend/internal/domain"
	"greenfield-hub-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.TractorRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		TractorRepository: NewTractorRepository(db),
	}
}

// conflictFields maps unique-constraint names to the wire field reported
// back to callers on a duplicate write.
var conflictFields = map[string]string{
	"users_email_key":             "email",
	"tractors_email_key":          "email",
	"tractors_tractor_number_key": "tractorNumber",
}

// mapUniqueViolation converts a postgres unique violation into a
// domain.ConflictError naming the conflicting field. Other errors pass
// through untouched.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		if field, known := conflictFields[pqErr.Constraint]; known {
			return &domain.ConflictError{Field: field}
		}
		return &domain.ConflictError{Field: "record"}
	}
	return err
}
