package school

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
)

// AccountService provisions the domain profile matching a newly created
// identity account. The identity workflow calls it explicitly with the
// account's resolved role; profiles are never created as a side effect.
type AccountService struct {
	repo Repository
	log  core.Logger
}

func NewAccountService(repo Repository, log core.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

// ProvisionProfile creates the Student or Teacher profile for accountID.
// Admin accounts have no domain profile.
func (svc *AccountService) ProvisionProfile(ctx context.Context, accountID int, role, fullName string) error {
	switch role {
	case RoleStudent:
		_, err := svc.ProvisionStudent(ctx, accountID, fullName)
		return err
	case RoleTeacher:
		_, err := svc.ProvisionTeacher(ctx, accountID, fullName)
		return err
	case RoleAdmin:
		return nil
	default:
		return errors.Errorf("unknown account role %q", role)
	}
}

func (svc *AccountService) ProvisionStudent(ctx context.Context, accountID int, fullName string) (Student, error) {
	now := time.Now().UTC()
	std, err := svc.repo.CreateStudent(ctx, Student{
		AccountID:        accountID,
		FullName:         core.CleanString(fullName),
		EnrollmentNumber: fmt.Sprintf("S%05d", accountID),
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return Student{}, err
	}
	svc.log.Info(fmt.Sprintf("Student profile %s provisioned for account %d", std.EnrollmentNumber, accountID))
	return std, nil
}

func (svc *AccountService) ProvisionTeacher(ctx context.Context, accountID int, fullName string) (Teacher, error) {
	now := time.Now().UTC()
	tch, err := svc.repo.CreateTeacher(ctx, Teacher{
		AccountID:      accountID,
		FullName:       core.CleanString(fullName),
		EmployeeID:     fmt.Sprintf("T%05d", accountID),
		Specialization: "General",
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return Teacher{}, err
	}
	svc.log.Info(fmt.Sprintf("Teacher profile %s provisioned for account %d", tch.EmployeeID, accountID))
	return tch, nil
}
