package school_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

func TestAccountService_ProvisionStudent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	std, err := env.accounts.ProvisionStudent(ctx, 42, "  Guilherme Ferreira ")
	if err != nil {
		t.Fatalf("ProvisionStudent() failed: %v", err)
	}
	if std.EnrollmentNumber != "S00042" {
		t.Errorf("EnrollmentNumber = %q, want %q", std.EnrollmentNumber, "S00042")
	}
	if std.FullName != "Guilherme Ferreira" {
		t.Errorf("FullName = %q, want %q", std.FullName, "Guilherme Ferreira")
	}

	// an account has at most one profile
	if _, err := env.accounts.ProvisionStudent(ctx, 42, "Guilherme Ferreira"); errors.Cause(err) != school.ErrProfileExists {
		t.Errorf("ProvisionStudent() error = %v, want %v", err, school.ErrProfileExists)
	}
}

func TestAccountService_ProvisionTeacher(t *testing.T) {
	env := newTestEnv(t)

	tch, err := env.accounts.ProvisionTeacher(context.Background(), 7, "João Silva")
	if err != nil {
		t.Fatalf("ProvisionTeacher() failed: %v", err)
	}
	if tch.EmployeeID != "T00007" {
		t.Errorf("EmployeeID = %q, want %q", tch.EmployeeID, "T00007")
	}
	if tch.Specialization != "General" {
		t.Errorf("Specialization = %q, want %q", tch.Specialization, "General")
	}
}

func TestAccountService_ProvisionProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		accountID int
		role      string
		wantErr   bool
	}{
		{name: "student", accountID: 1, role: school.RoleStudent},
		{name: "teacher", accountID: 2, role: school.RoleTeacher},
		{name: "admin has no profile", accountID: 3, role: school.RoleAdmin},
		{name: "unknown role", accountID: 4, role: "janitor", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.accounts.ProvisionProfile(ctx, tt.accountID, tt.role, "Some Person")
			if (err != nil) != tt.wantErr {
				t.Errorf("ProvisionProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
