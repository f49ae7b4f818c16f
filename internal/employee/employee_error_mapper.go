package employee

import (
	"errors"
	"strings"

	employeeerrors "go-siteops/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates driver-level failures into the typed errors
// the handlers know. Constraint violations are matched by constraint name
// first, then by message text for drivers that do not surface PgError.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	switch {
	case violatesUnique(err, "uq_employee_number"):
		return employeeerrors.ErrEmployeeNumberAlreadyExists
	case violatesUnique(err, "uq_employee_email"):
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}

func violatesUnique(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, constraint)
}
