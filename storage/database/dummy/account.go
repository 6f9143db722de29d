package dummydb

import (
	"context"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

func (repo *repository) CreateTeacher(ctx context.Context, tch school.Teacher) (school.Teacher, error) {
	defer repo.wlock()()

	for _, existing := range repo.db.teachers {
		if existing.AccountID == tch.AccountID || existing.EmployeeID == tch.EmployeeID {
			return school.Teacher{}, school.ErrProfileExists
		}
	}
	repo.db.teacherPK++
	tch.ID = repo.db.teacherPK
	repo.db.teachers[tch.ID] = &tch
	return tch, nil
}

func (repo *repository) CreateStudent(ctx context.Context, std school.Student) (school.Student, error) {
	defer repo.wlock()()

	for _, existing := range repo.db.students {
		if existing.AccountID == std.AccountID || existing.EnrollmentNumber == std.EnrollmentNumber {
			return school.Student{}, school.ErrProfileExists
		}
	}
	repo.db.studentPK++
	std.ID = repo.db.studentPK
	repo.db.students[std.ID] = &std
	return std, nil
}

func (repo *repository) GetTeacherByID(ctx context.Context, id int) (school.Teacher, error) {
	defer repo.rlock()()

	if tch, ok := repo.db.teachers[id]; ok {
		return *tch, nil
	}
	return school.Teacher{}, school.ErrTeacherNotFound
}

func (repo *repository) GetStudentByID(ctx context.Context, id int) (school.Student, error) {
	defer repo.rlock()()

	if std, ok := repo.db.students[id]; ok {
		return *std, nil
	}
	return school.Student{}, school.ErrStudentNotFound
}
