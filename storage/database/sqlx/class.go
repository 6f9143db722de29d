package sqlxrepos

import (
	"context"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

// classColumns joins in the display fields and current headcount so every
// Class read comes back fully populated.
const classColumns = `
	c.id, c.subject_id, c.teacher_id, c.schedule, c.room, c.semester,
	c.max_students, c.is_active, c.created_at, c.updated_at,
	s.code AS subject_code, s.name AS subject_name, t.full_name AS teacher_name,
	(SELECT COUNT(*) FROM class_students cs WHERE cs.class_id = c.id) AS enrolled_count`

const classJoins = `
	FROM classes c
	INNER JOIN subjects s ON s.id = c.subject_id
	INNER JOIN teachers t ON t.id = c.teacher_id`

func (repo *repository) CreateClass(ctx context.Context, cls school.Class) (school.Class, error) {
	query := `
	INSERT INTO classes (subject_id, teacher_id, schedule, room, semester, max_students, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at, updated_at`
	row := repo.ext().QueryRowxContext(ctx, query,
		cls.SubjectID, cls.TeacherID, cls.Schedule, cls.Room, cls.Semester, cls.MaxStudents, cls.IsActive)
	if err := row.Scan(&cls.ID, &cls.CreatedAt, &cls.UpdatedAt); err != nil {
		return cls, trapUniqueErr(err, "creating class")
	}
	return repo.GetClassByID(ctx, cls.ID)
}

func (repo *repository) GetClassByID(ctx context.Context, id int) (school.Class, error) {
	var cls school.Class
	query := `SELECT` + classColumns + classJoins + ` WHERE c.id = $1`
	if err := sqlxGet(ctx, repo.ext(), &cls, query, id); err != nil {
		return cls, trapNoRowsErr(err, school.ErrClassNotFound, "getting class")
	}
	return cls, nil
}

func (repo *repository) GetClassByIDForUpdate(ctx context.Context, id int) (school.Class, error) {
	var cls school.Class
	// FOR UPDATE OF c: lock only the class row, not the joined rows.
	query := `SELECT` + classColumns + classJoins + ` WHERE c.id = $1 FOR UPDATE OF c`
	if err := sqlxGet(ctx, repo.ext(), &cls, query, id); err != nil {
		return cls, trapNoRowsErr(err, school.ErrClassNotFound, "locking class")
	}
	return cls, nil
}

func (repo *repository) UpdateClass(ctx context.Context, cls school.Class) (school.Class, error) {
	query := `
	UPDATE classes
	SET schedule = $2, room = $3, semester = $4, max_students = $5, is_active = $6, updated_at = NOW()
	WHERE id = $1`
	res, err := repo.ext().ExecContext(ctx, query,
		cls.ID, cls.Schedule, cls.Room, cls.Semester, cls.MaxStudents, cls.IsActive)
	if err != nil {
		return cls, trapUniqueErr(err, "updating class")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return cls, school.ErrClassNotFound
	}
	return repo.GetClassByID(ctx, cls.ID)
}

func (repo *repository) DeleteClassesByID(ctx context.Context, ids ...int) error {
	query := `DELETE FROM classes WHERE id = ANY($1)`
	_, err := repo.ext().ExecContext(ctx, query, pq.Array(ids))
	return errors.Wrap(err, "deleting classes")
}

func (repo *repository) ClassOfferingExists(ctx context.Context, subjectID, teacherID int, schedule, semester string) (bool, error) {
	var exists bool
	query := `
	SELECT EXISTS (
		SELECT 1 FROM classes
		WHERE subject_id = $1 AND teacher_id = $2 AND schedule = $3 AND semester = $4
	)`
	err := sqlxGet(ctx, repo.ext(), &exists, query, subjectID, teacherID, schedule, semester)
	return exists, errors.Wrap(err, "checking class offering")
}

func (repo *repository) FilterClasses(ctx context.Context, filter school.ClassFilter) ([]school.Class, error) {
	var classes []school.Class
	query := `SELECT` + classColumns + classJoins + `
	WHERE ($1 = '' OR c.semester = $1) AND (NOT $2 OR c.is_active)
	ORDER BY c.semester DESC, s.code`
	err := sqlxSelect(ctx, repo.ext(), &classes, query, filter.Semester, filter.ActiveOnly)
	return classes, errors.Wrap(err, "filtering classes")
}

func (repo *repository) QueryTeacherClasses(ctx context.Context, teacherID int, semester string) ([]school.Class, error) {
	var classes []school.Class
	query := `SELECT` + classColumns + classJoins + `
	WHERE c.teacher_id = $1 AND c.is_active AND ($2 = '' OR c.semester = $2)
	ORDER BY c.semester DESC, s.code`
	err := sqlxSelect(ctx, repo.ext(), &classes, query, teacherID, semester)
	return classes, errors.Wrap(err, "querying teacher classes")
}

func (repo *repository) QueryStudentClasses(ctx context.Context, studentID int, semester string) ([]school.Class, error) {
	var classes []school.Class
	query := `SELECT` + classColumns + classJoins + `
	INNER JOIN class_students m ON m.class_id = c.id
	WHERE m.student_id = $1 AND c.is_active AND ($2 = '' OR c.semester = $2)
	ORDER BY c.semester DESC, s.code`
	err := sqlxSelect(ctx, repo.ext(), &classes, query, studentID, semester)
	return classes, errors.Wrap(err, "querying student classes")
}

func (repo *repository) QueryClassStudents(ctx context.Context, classID int) ([]school.Student, error) {
	var students []school.Student
	query := `
	SELECT s.* FROM students s
	INNER JOIN class_students cs ON cs.student_id = s.id
	WHERE cs.class_id = $1
	ORDER BY s.full_name`
	err := sqlxSelect(ctx, repo.ext(), &students, query, classID)
	return students, errors.Wrap(err, "querying class students")
}
