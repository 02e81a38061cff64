package postgres

import (
	stderrors "errors"

	"github.com/lib/pq"

	"github.com/vidaplus/clinic-api/pkg/errors"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// constraintFields maps unique-constraint names to the colliding column and
// its user-facing message. Constraint names follow the postgres default
// <table>_<column>_key convention.
var constraintFields = map[string]struct {
	field   string
	message string
}{
	"users_cpf_key":     {"cpf", "cpf já cadastrado"},
	"users_email_key":   {"email", "email já cadastrado"},
	"doctors_crm_key":   {"crm", "crm já cadastrado"},
	"doctors_email_key": {"email", "email já cadastrado"},
}

// translateConstraint converts postgres constraint violations into Conflict
// errors naming the colliding field. Uniqueness races are resolved here: the
// database rejects the second insert and the loser gets the same Conflict as
// a sequential duplicate. Foreign-key violations cover both inserts
// referencing missing rows and restricted deletes.
func translateConstraint(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !stderrors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case uniqueViolation:
		if c, ok := constraintFields[pqErr.Constraint]; ok {
			return errors.Conflict(c.field, c.message, err)
		}
		return errors.Conflict("", "registro duplicado", err)
	case foreignKeyViolation:
		return errors.Conflict("", "registro possui consultas agendadas", err)
	}

	return err
}
