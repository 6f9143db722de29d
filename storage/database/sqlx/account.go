package sqlxrepos

import (
	"context"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

func (repo *repository) CreateTeacher(ctx context.Context, tch school.Teacher) (school.Teacher, error) {
	query := `
	INSERT INTO teachers (account_id, full_name, employee_id, specialization, phone_number, bio)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, updated_at`
	row := repo.ext().QueryRowxContext(ctx, query,
		tch.AccountID, tch.FullName, tch.EmployeeID, tch.Specialization, tch.PhoneNumber, tch.Bio)
	if err := row.Scan(&tch.ID, &tch.CreatedAt, &tch.UpdatedAt); err != nil {
		return tch, trapUniqueErr(err, "creating teacher")
	}
	return tch, nil
}

func (repo *repository) CreateStudent(ctx context.Context, std school.Student) (school.Student, error) {
	query := `
	INSERT INTO students (account_id, full_name, enrollment_number, date_of_birth, phone_number)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at`
	row := repo.ext().QueryRowxContext(ctx, query,
		std.AccountID, std.FullName, std.EnrollmentNumber, std.DateOfBirth, std.PhoneNumber)
	if err := row.Scan(&std.ID, &std.CreatedAt, &std.UpdatedAt); err != nil {
		return std, trapUniqueErr(err, "creating student")
	}
	return std, nil
}

func (repo *repository) GetTeacherByID(ctx context.Context, id int) (school.Teacher, error) {
	var tch school.Teacher
	query := `SELECT * FROM teachers WHERE id = $1`
	if err := sqlxGet(ctx, repo.ext(), &tch, query, id); err != nil {
		return tch, trapNoRowsErr(err, school.ErrTeacherNotFound, "getting teacher")
	}
	return tch, nil
}

func (repo *repository) GetStudentByID(ctx context.Context, id int) (school.Student, error) {
	var std school.Student
	query := `SELECT * FROM students WHERE id = $1`
	if err := sqlxGet(ctx, repo.ext(), &std, query, id); err != nil {
		return std, trapNoRowsErr(err, school.ErrStudentNotFound, "getting student")
	}
	return std, nil
}
