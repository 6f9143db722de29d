package main

import (
	"context"
	"database/sql"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
	logsvc "github.com/Guilherme-Bernal/distributed-programming-final-project/services/logger"
	dummydb "github.com/Guilherme-Bernal/distributed-programming-final-project/storage/database/dummy"
)

// initCLI wires a commandLine against the in-memory store. cli.db stays nil,
// only the migrate command touches it and those tests stub gooseRunFunc.
func initCLI(t *testing.T) *commandLine {
	t.Helper()

	logger = log.New(io.Discard, "", 0)

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	repo := dummydb.NewRepository(db)
	svcLogger := logsvc.NewConsoleLogger(logger)
	return &commandLine{
		repo:          repo,
		enrollmentSvc: school.NewEnrollmentService(repo, svcLogger),
		classSvc:      school.NewClassService(repo, svcLogger),
		subjectSvc:    school.NewSubjectService(repo, svcLogger),
		accountSvc:    school.NewAccountService(repo, svcLogger),
	}
}

func TestCLI_help(t *testing.T) {
	cli := initCLI(t)

	tests := [][]string{
		{"admin"},
		{"admin", "bogus"},
		{"admin", "migrate"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			if err := cli.run(args); err != errHelp {
				t.Errorf("run(%v) = %v; want errHelp", args, err)
			}
		})
	}
}

func TestCLI_migrate(t *testing.T) {
	cli := initCLI(t)

	var gotCommand string
	var gotArgs []string
	origRun := gooseRunFunc
	gooseRunFunc = func(command string, db *sql.DB, dir string, args ...string) error {
		gotCommand = command
		gotArgs = args
		if dir != "." {
			t.Errorf("dir = %q; want %q", dir, ".")
		}
		return nil
	}
	defer func() { gooseRunFunc = origRun }()

	if err := cli.run([]string{"admin", "migrate", "up-to", "2"}); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	if gotCommand != "up-to" {
		t.Errorf("command = %q; want %q", gotCommand, "up-to")
	}
	if len(gotArgs) != 1 || gotArgs[0] != "2" {
		t.Errorf("args = %v; want [2]", gotArgs)
	}
}

func TestCLI_addSubject(t *testing.T) {
	cli := initCLI(t)

	args := []string{"admin", "addsubject", "-code", "cs101", "-name", "Introduction to Programming", "-credits", "4"}
	if err := cli.run(args); err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	subjects, err := cli.repo.QueryAllSubjects(context.Background())
	if err != nil {
		t.Fatalf("QueryAllSubjects() failed: %v", err)
	}
	if len(subjects) != 1 {
		t.Fatalf("len(subjects) = %d; want 1", len(subjects))
	}
	if subjects[0].Code != "CS101" {
		t.Errorf("Code = %q; want %q", subjects[0].Code, "CS101")
	}

	t.Run("duplicate code", func(t *testing.T) {
		err := cli.run(args)
		if err == nil || !strings.Contains(err.Error(), "Subject code already exists") {
			t.Errorf("run() = %v; want duplicate code error", err)
		}
	})

	t.Run("missing flags", func(t *testing.T) {
		if err := cli.run([]string{"admin", "addsubject", "-code", "CS102"}); err != errHelp {
			t.Errorf("run() = %v; want errHelp", err)
		}
	})
}

func TestCLI_provision(t *testing.T) {
	cli := initCLI(t)

	if err := cli.run([]string{"admin", "provision", "-account", "42", "-role", "Student", "-name", "Alice"}); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	std, err := cli.repo.GetStudentByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetStudentByID() failed: %v", err)
	}
	if std.AccountID != 42 || std.EnrollmentNumber != "S00042" {
		t.Errorf("student = %+v; want account 42, S00042", std)
	}

	if err := cli.run([]string{"admin", "provision", "-account", "7", "-role", "teacher", "-name", "Bob"}); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	tch, err := cli.repo.GetTeacherByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetTeacherByID() failed: %v", err)
	}
	if tch.AccountID != 7 || tch.EmployeeID != "T00007" {
		t.Errorf("teacher = %+v; want account 7, T00007", tch)
	}

	t.Run("unknown role", func(t *testing.T) {
		err := cli.run([]string{"admin", "provision", "-account", "8", "-role", "janitor", "-name", "Eve"})
		if err == nil {
			t.Error("run() = nil; want unknown role error")
		}
	})
}

func TestCLI_sampleData(t *testing.T) {
	cli := initCLI(t)

	if err := cli.run([]string{"admin", "sampledata"}); err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	ctx := context.Background()
	subjects, err := cli.repo.QueryAllSubjects(ctx)
	if err != nil {
		t.Fatalf("QueryAllSubjects() failed: %v", err)
	}
	if len(subjects) != 8 {
		t.Errorf("len(subjects) = %d; want 8", len(subjects))
	}

	classes, err := cli.repo.FilterClasses(ctx, school.ClassFilter{})
	if err != nil {
		t.Fatalf("FilterClasses() failed: %v", err)
	}
	if len(classes) != 9 {
		t.Errorf("len(classes) = %d; want 9", len(classes))
	}

	var enrolled int
	for _, cls := range classes {
		enrolled += cls.EnrolledCount
	}
	if enrolled != 20 {
		t.Errorf("total enrollments = %d; want 20", enrolled)
	}
}
