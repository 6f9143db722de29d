package school_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
	logsvc "github.com/Guilherme-Bernal/distributed-programming-final-project/services/logger"
	dummydb "github.com/Guilherme-Bernal/distributed-programming-final-project/storage/database/dummy"
)

type testEnv struct {
	repo       school.Repository
	enrollment *school.EnrollmentService
	classes    *school.ClassService
	subjects   *school.SubjectService
	accounts   *school.AccountService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	repo := dummydb.NewRepository(db)
	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))

	return &testEnv{
		repo:       repo,
		enrollment: school.NewEnrollmentService(repo, logger),
		classes:    school.NewClassService(repo, logger),
		subjects:   school.NewSubjectService(repo, logger),
		accounts:   school.NewAccountService(repo, logger),
	}
}

func (env *testEnv) createSubject(t *testing.T, code string) school.Subject {
	t.Helper()
	now := time.Now().UTC()
	sub, err := env.repo.CreateSubject(context.Background(), school.Subject{
		Code:      code,
		Name:      code + " name",
		Credits:   4,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateSubject(%s) failed: %v", code, err)
	}
	return sub
}

func (env *testEnv) createTeacher(t *testing.T, accountID int, fullName string) school.Teacher {
	t.Helper()
	now := time.Now().UTC()
	tch, err := env.repo.CreateTeacher(context.Background(), school.Teacher{
		AccountID:  accountID,
		FullName:   fullName,
		EmployeeID: fmt.Sprintf("T%05d", accountID),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("CreateTeacher(%s) failed: %v", fullName, err)
	}
	return tch
}

func (env *testEnv) createStudent(t *testing.T, accountID int, fullName string) school.Student {
	t.Helper()
	now := time.Now().UTC()
	std, err := env.repo.CreateStudent(context.Background(), school.Student{
		AccountID:        accountID,
		FullName:         fullName,
		EnrollmentNumber: fmt.Sprintf("S%05d", accountID),
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		t.Fatalf("CreateStudent(%s) failed: %v", fullName, err)
	}
	return std
}

type classOpts struct {
	schedule    string
	semester    string
	maxStudents int
	inactive    bool
}

func (env *testEnv) createClass(t *testing.T, sub school.Subject, tch school.Teacher, opts classOpts) school.Class {
	t.Helper()
	if opts.schedule == "" {
		opts.schedule = "MON 14:00-16:00"
	}
	if opts.semester == "" {
		opts.semester = school.DefaultSemester
	}
	if opts.maxStudents == 0 {
		opts.maxStudents = school.DefaultMaxStudents
	}
	now := time.Now().UTC()
	cls, err := env.repo.CreateClass(context.Background(), school.Class{
		SubjectID:   sub.ID,
		TeacherID:   tch.ID,
		Schedule:    opts.schedule,
		Semester:    opts.semester,
		MaxStudents: opts.maxStudents,
		IsActive:    !opts.inactive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("CreateClass(%s %s) failed: %v", sub.Code, opts.schedule, err)
	}
	return cls
}

func (env *testEnv) enroll(t *testing.T, classID, studentID int) {
	t.Helper()
	if res := env.enrollment.EnrollStudent(context.Background(), classID, studentID); !res.Success {
		t.Fatalf("EnrollStudent(%d, %d) rejected: %s", classID, studentID, res.Message)
	}
}
