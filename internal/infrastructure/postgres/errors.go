package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/fitness-gen-api/internal/domain/errs"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// constraintFields names the client-facing field behind each constraint in db/migrations.
var constraintFields = map[string]string{
	"students_cpf_key":                         "cpf",
	"students_email_key":                       "email",
	"students_phone_key":                       "phone",
	"measurements_student_id_measured_at_key": "measured_at",
	"measurements_student_id_fkey":             "student_id",
	"assessments_student_id_fkey":              "student_id",
	"assessments_measurement_id_fkey":          "measurement_id",
	"plans_student_id_fkey":                    "student_id",
	"plans_assessment_id_fkey":                 "assessment_id",
}

// mapError translates driver errors into the errs taxonomy. Anything the taxonomy does not
// cover comes back wrapped in errs.ErrInternal with the original error kept in the chain.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errs.Unique(pgErr.ConstraintName, constraintFields[pgErr.ConstraintName])
		case codeForeignKeyViolation:
			return errs.ForeignKey(pgErr.ConstraintName, constraintFields[pgErr.ConstraintName])
		}
	}
	return fmt.Errorf("%w: %w", errs.ErrInternal, err)
}
