package school_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

func TestSubjectService_CreateSubject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		subject     school.NewSubject
		wantSuccess bool
		wantCode    string
		wantMessage string
	}{
		{
			name:    "missing code reported first",
			subject: school.NewSubject{},
			wantCode: school.CodeMissingField, wantMessage: "Missing required field: code",
		},
		{
			name:    "missing name",
			subject: school.NewSubject{Code: "CS101"},
			wantCode: school.CodeMissingField, wantMessage: "Missing required field: name",
		},
		{
			name:    "missing credits",
			subject: school.NewSubject{Code: "CS101", Name: "Intro"},
			wantCode: school.CodeMissingField, wantMessage: "Missing required field: credits",
		},
		{
			name:        "valid",
			subject:     school.NewSubject{Code: "CS101", Name: "Intro", Credits: 4},
			wantSuccess: true, wantMessage: "Subject created successfully",
		},
		{
			name:    "duplicate code",
			subject: school.NewSubject{Code: "CS101", Name: "Another name", Credits: 2},
			wantCode: school.CodeDuplicateCode, wantMessage: "Subject code already exists",
		},
		{
			name:        "another code",
			subject:     school.NewSubject{Code: "CS201", Name: "Data Structures", Credits: 4},
			wantSuccess: true, wantMessage: "Subject created successfully",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := env.subjects.CreateSubject(ctx, tt.subject)
			if res.Success != tt.wantSuccess {
				t.Fatalf("CreateSubject() success = %v, want %v (message %q)", res.Success, tt.wantSuccess, res.Message)
			}
			if res.Message != tt.wantMessage {
				t.Errorf("CreateSubject() message = %q, want %q", res.Message, tt.wantMessage)
			}
			if !tt.wantSuccess && res.Code != tt.wantCode {
				t.Errorf("CreateSubject() code = %q, want %q", res.Code, tt.wantCode)
			}
			if tt.wantSuccess && res.SubjectID == nil {
				t.Error("CreateSubject() returned no subject id")
			}
		})
	}
}

func TestSubjectService_QueryAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createSubject(t, "MATH201")
	env.createSubject(t, "CS101")
	env.createSubject(t, "PHY101")

	subjects, err := env.subjects.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(subjects) != 3 {
		t.Fatalf("QueryAll() returned %d subjects, want 3", len(subjects))
	}
	// catalog order is by code
	want := []string{"CS101", "MATH201", "PHY101"}
	for i, code := range want {
		if subjects[i].Code != code {
			t.Errorf("subjects[%d].Code = %q, want %q", i, subjects[i].Code, code)
		}
	}
}

func TestSubjectService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub := env.createSubject(t, "CS101")
	tch := env.createTeacher(t, 101, "João Silva")
	cls := env.createClass(t, sub, tch, classOpts{})
	alice := env.createStudent(t, 201, "Alice")
	env.enroll(t, cls.ID, alice.ID)

	if err := env.subjects.Delete(ctx, sub.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := env.subjects.GetByID(ctx, sub.ID); errors.Cause(err) != school.ErrSubjectNotFound {
		t.Errorf("GetByID() error = %v, want %v", err, school.ErrSubjectNotFound)
	}
	// classes of the subject cascade away
	if _, err := env.repo.GetClassByID(ctx, cls.ID); errors.Cause(err) != school.ErrClassNotFound {
		t.Errorf("GetClassByID() error = %v, want %v", err, school.ErrClassNotFound)
	}
}
