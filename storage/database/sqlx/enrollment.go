package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"
)

func (repo *repository) CountEnrollments(ctx context.Context, classID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM class_students WHERE class_id = $1`
	err := sqlxGet(ctx, repo.ext(), &count, query, classID)
	return count, errors.Wrap(err, "counting enrollments")
}

func (repo *repository) IsEnrolled(ctx context.Context, classID, studentID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM class_students WHERE class_id = $1 AND student_id = $2)`
	err := sqlxGet(ctx, repo.ext(), &exists, query, classID, studentID)
	return exists, errors.Wrap(err, "checking enrollment")
}

func (repo *repository) AddEnrollment(ctx context.Context, classID, studentID int) error {
	query := `INSERT INTO class_students (class_id, student_id) VALUES ($1, $2)`
	_, err := repo.ext().ExecContext(ctx, query, classID, studentID)
	return errors.Wrap(err, "adding enrollment")
}

func (repo *repository) RemoveEnrollment(ctx context.Context, classID, studentID int) error {
	query := `DELETE FROM class_students WHERE class_id = $1 AND student_id = $2`
	_, err := repo.ext().ExecContext(ctx, query, classID, studentID)
	return errors.Wrap(err, "removing enrollment")
}
