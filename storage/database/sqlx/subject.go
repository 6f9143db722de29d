package sqlxrepos

import (
	"context"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

func (repo *repository) SubjectCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM subjects WHERE code = $1)`
	err := sqlxGet(ctx, repo.ext(), &exists, query, code)
	return exists, errors.Wrap(err, "checking subject code")
}

func (repo *repository) CreateSubject(ctx context.Context, subj school.Subject) (school.Subject, error) {
	query := `
	INSERT INTO subjects (code, name, description, credits)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at`
	row := repo.ext().QueryRowxContext(ctx, query, subj.Code, subj.Name, subj.Description, subj.Credits)
	if err := row.Scan(&subj.ID, &subj.CreatedAt, &subj.UpdatedAt); err != nil {
		return subj, trapUniqueErr(err, "creating subject")
	}
	return subj, nil
}

func (repo *repository) GetSubjectByID(ctx context.Context, id int) (school.Subject, error) {
	var subj school.Subject
	query := `SELECT * FROM subjects WHERE id = $1`
	if err := sqlxGet(ctx, repo.ext(), &subj, query, id); err != nil {
		return subj, trapNoRowsErr(err, school.ErrSubjectNotFound, "getting subject")
	}
	return subj, nil
}

func (repo *repository) QueryAllSubjects(ctx context.Context) ([]school.Subject, error) {
	var subjects []school.Subject
	query := `SELECT * FROM subjects ORDER BY code`
	err := sqlxSelect(ctx, repo.ext(), &subjects, query)
	return subjects, errors.Wrap(err, "querying subjects")
}

func (repo *repository) DeleteSubjectsByID(ctx context.Context, ids ...int) error {
	query := `DELETE FROM subjects WHERE id = ANY($1)`
	_, err := repo.ext().ExecContext(ctx, query, pq.Array(ids))
	return errors.Wrap(err, "deleting subjects")
}
