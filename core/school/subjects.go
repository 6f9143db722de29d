package school

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
)

// SubjectService manages the subject catalog.
type SubjectService struct {
	repo Repository
	log  core.Logger
}

func NewSubjectService(repo Repository, log core.Logger) *SubjectService {
	return &SubjectService{repo: repo, log: log}
}

// CreateSubject adds a catalog entry; the code must be globally unique.
func (svc *SubjectService) CreateSubject(ctx context.Context, ns NewSubject) Result {
	if ns.Code == "" {
		return reject(CodeMissingField, "Missing required field: code")
	}
	if ns.Name == "" {
		return reject(CodeMissingField, "Missing required field: name")
	}
	if ns.Credits == 0 {
		return reject(CodeMissingField, "Missing required field: credits")
	}

	var res Result
	err := svc.repo.Atomic(ctx, func(tx Repository) error {
		exists, err := tx.SubjectCodeExists(ctx, ns.Code)
		if err != nil {
			return err
		}
		if exists {
			res = reject(CodeDuplicateCode, "Subject code already exists")
			return nil
		}

		now := time.Now().UTC()
		sub, err := tx.CreateSubject(ctx, Subject{
			Code:        ns.Code,
			Name:        ns.Name,
			Description: ns.Description,
			Credits:     ns.Credits,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			// the unique constraint closes the check-then-insert race
			if errors.Cause(err) == ErrSubjectCodeExists {
				res = reject(CodeDuplicateCode, "Subject code already exists")
				return nil
			}
			return err
		}

		svc.log.Info(fmt.Sprintf("Subject created: %s - %s", sub.Code, sub.Name))
		res = succeed("Subject created successfully")
		res.SubjectID = &sub.ID
		return nil
	})
	if err != nil {
		return svc.fault(fmt.Sprintf("CreateSubject(code=%s)", ns.Code), err)
	}
	return res
}

// QueryAll returns the full catalog ordered by code.
func (svc *SubjectService) QueryAll(ctx context.Context) ([]Subject, error) {
	return svc.repo.QueryAllSubjects(ctx)
}

// GetByID returns one subject; ErrSubjectNotFound when missing.
func (svc *SubjectService) GetByID(ctx context.Context, id int) (Subject, error) {
	return svc.repo.GetSubjectByID(ctx, id)
}

// Delete removes subjects; their classes cascade away with them.
func (svc *SubjectService) Delete(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteSubjectsByID(ctx, ids...)
}

func (svc *SubjectService) fault(op string, err error) Result {
	core.Stats.Faults.Add(1)
	svc.log.Error(op, err)
	return Result{Success: false, Code: CodeFault, Message: fmt.Sprintf("Error: %v", err)}
}
