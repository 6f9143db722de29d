package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

type repository struct {
	db *sqlx.DB
	tx *sqlx.Tx // set when bound to a transaction
}

var _ school.Repository = (*repository)(nil) // interface compliance check

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (repo *repository) ext() sqlx.ExtContext {
	if repo.tx != nil {
		return repo.tx
	}
	return repo.db
}

// Atomic runs fn in one transaction; FOR UPDATE locks taken by fn are held
// until commit/rollback. Nested calls join the outer transaction.
func (repo *repository) Atomic(ctx context.Context, fn func(tx school.Repository) error) error {
	if repo.tx != nil {
		return fn(repo)
	}
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	if err := fn(&repository{db: repo.db, tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}

func sqlxGet(ctx context.Context, ext sqlx.ExtContext, dest interface{}, query string, args ...interface{}) error {
	return sqlx.GetContext(ctx, ext, dest, query, args...)
}

func sqlxSelect(ctx context.Context, ext sqlx.ExtContext, dest interface{}, query string, args ...interface{}) error {
	return sqlx.SelectContext(ctx, ext, dest, query, args...)
}

// trapNoRowsErr maps psql "no rows" to the domain's not-found error.
func trapNoRowsErr(err, notFound error, msg string) error {
	if err == sql.ErrNoRows {
		return notFound
	}
	return errors.Wrap(err, msg)
}

// trapUniqueErr maps psql unique violations back to the domain errors their
// constraints enforce, closing the check-then-insert races.
func trapUniqueErr(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "subjects_code_key":
			return school.ErrSubjectCodeExists
		case "classes_offering_key":
			return school.ErrDuplicateClass
		case "teachers_account_id_key", "teachers_employee_id_key",
			"students_account_id_key", "students_enrollment_number_key":
			return school.ErrProfileExists
		}
	}
	return errors.Wrap(err, msg)
}
