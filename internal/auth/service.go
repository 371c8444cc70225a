package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"
)

// ErrUnknownEmployee reports that no employee row carries the requested id.
var ErrUnknownEmployee = errors.New("unknown employee")

// Employee is a shop employee able to open the terminal.
type Employee struct {
	ID           int
	Name         string
	PasswordHash string
}

// Directory looks employees up in the persistent store. Implementations
// return ErrUnknownEmployee when no employee carries the id.
type Directory interface {
	GetEmployee(ctx context.Context, id int) (Employee, error)
}

// Service checks terminal credentials against the employee directory.
type Service struct {
	Directory Directory
	Logger    zerolog.Logger
}

// Authenticate reports whether secret matches the stored credential of the
// employee with the given id. An unknown id or a wrong secret is a failed
// login, not an error; errors are directory failures.
func (s *Service) Authenticate(ctx context.Context, id int, secret string) (Employee, bool, error) {
	emp, err := s.Directory.GetEmployee(ctx, id)
	if errors.Is(err, ErrUnknownEmployee) {
		return Employee{}, false, nil
	}
	if err != nil {
		return Employee{}, false, fmt.Errorf("look up employee %d: %w", id, err)
	}
	ok, err := argon2id.ComparePasswordAndHash(secret, emp.PasswordHash)
	if err != nil {
		return Employee{}, false, fmt.Errorf("compare credential of employee %d: %w", id, err)
	}
	if !ok {
		s.Logger.Warn().Int("employee_id", id).Msg("login rejected")
		return Employee{}, false, nil
	}
	s.Logger.Info().Int("employee_id", id).Str("name", emp.Name).Msg("login accepted")
	return emp, true, nil
}

// HashPassword produces the argon2id hash stored for an employee credential.
func HashPassword(secret string) (string, error) {
	return argon2id.CreateHash(secret, argon2id.DefaultParams)
}
