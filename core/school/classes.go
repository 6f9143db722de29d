package school

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
)

// ClassService creates and manages Class offerings.
type ClassService struct {
	repo Repository
	log  core.Logger
}

func NewClassService(repo Repository, log core.Logger) *ClassService {
	return &ClassService{repo: repo, log: log}
}

// CreateClass creates a class after checking that its subject and teacher
// exist and that no class shares the same (subject, teacher, schedule,
// semester) offering. The checks and the insert are one atomic unit.
func (svc *ClassService) CreateClass(ctx context.Context, nc NewClass) Result {
	if nc.SubjectID == 0 {
		return reject(CodeMissingField, "Missing required field: subject_id")
	}
	if nc.TeacherID == 0 {
		return reject(CodeMissingField, "Missing required field: teacher_id")
	}
	if nc.Schedule == "" {
		return reject(CodeMissingField, "Missing required field: schedule")
	}
	if nc.Semester == "" {
		return reject(CodeMissingField, "Missing required field: semester")
	}

	var res Result
	err := svc.repo.Atomic(ctx, func(tx Repository) error {
		sub, err := tx.GetSubjectByID(ctx, nc.SubjectID)
		if err != nil {
			if errors.Cause(err) == ErrSubjectNotFound {
				res = reject(CodeSubjectNotFound, "Subject not found")
				return nil
			}
			return err
		}

		tch, err := tx.GetTeacherByID(ctx, nc.TeacherID)
		if err != nil {
			if errors.Cause(err) == ErrTeacherNotFound {
				res = reject(CodeTeacherNotFound, "Teacher not found")
				return nil
			}
			return err
		}

		exists, err := tx.ClassOfferingExists(ctx, sub.ID, tch.ID, nc.Schedule, nc.Semester)
		if err != nil {
			return err
		}
		if exists {
			res = reject(CodeDuplicateClass, "Class already exists with same details")
			return nil
		}

		now := time.Now().UTC()
		cls := Class{
			SubjectID:   sub.ID,
			TeacherID:   tch.ID,
			Schedule:    nc.Schedule,
			Room:        nc.Room,
			Semester:    nc.Semester,
			MaxStudents: nc.MaxStudents,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if cls.MaxStudents == 0 {
			cls.MaxStudents = DefaultMaxStudents
		}
		if nc.IsActive != nil {
			cls.IsActive = *nc.IsActive
		}

		created, err := tx.CreateClass(ctx, cls)
		if err != nil {
			// the unique constraint closes the check-then-insert race
			if errors.Cause(err) == ErrDuplicateClass {
				res = reject(CodeDuplicateClass, "Class already exists with same details")
				return nil
			}
			return err
		}

		svc.log.Info(fmt.Sprintf("Class created: %s - %s (%s)", sub.Code, tch.FullName, created.Semester))
		res = succeed("Class created successfully")
		res.ClassID = &created.ID
		return nil
	})
	if err != nil {
		return svc.fault(fmt.Sprintf("CreateClass(subject_id=%d, teacher_id=%d)", nc.SubjectID, nc.TeacherID), err)
	}
	return res
}

// UpdateClass modifies an existing class's schedule, room, semester,
// capacity or active flag; zero-valued fields keep their current value.
func (svc *ClassService) UpdateClass(ctx context.Context, classID int, uc UpdateClass) Result {
	var res Result
	err := svc.repo.Atomic(ctx, func(tx Repository) error {
		cls, err := tx.GetClassByIDForUpdate(ctx, classID)
		if err != nil {
			if errors.Cause(err) == ErrClassNotFound {
				res = reject(CodeClassNotFound, "Class not found")
				return nil
			}
			return err
		}

		if uc.Schedule != "" {
			cls.Schedule = uc.Schedule
		}
		if uc.Room != "" {
			cls.Room = uc.Room
		}
		if uc.Semester != "" {
			cls.Semester = uc.Semester
		}
		if uc.MaxStudents != 0 {
			cls.MaxStudents = uc.MaxStudents
		}
		if uc.IsActive != nil {
			cls.IsActive = *uc.IsActive
		}
		cls.UpdatedAt = time.Now().UTC()

		if _, err := tx.UpdateClass(ctx, cls); err != nil {
			if errors.Cause(err) == ErrDuplicateClass {
				res = reject(CodeDuplicateClass, "Class already exists with same details")
				return nil
			}
			return err
		}
		res = succeed("Class updated successfully")
		res.ClassID = &classID
		return nil
	})
	if err != nil {
		return svc.fault(fmt.Sprintf("UpdateClass(class_id=%d)", classID), err)
	}
	return res
}

// DeleteClass removes a class; its enrollment memberships cascade away with it.
func (svc *ClassService) DeleteClass(ctx context.Context, classID int) Result {
	var res Result
	err := svc.repo.Atomic(ctx, func(tx Repository) error {
		if _, err := tx.GetClassByID(ctx, classID); err != nil {
			if errors.Cause(err) == ErrClassNotFound {
				res = reject(CodeClassNotFound, "Class not found")
				return nil
			}
			return err
		}
		if err := tx.DeleteClassesByID(ctx, classID); err != nil {
			return err
		}
		res = succeed("Class deleted successfully")
		return nil
	})
	if err != nil {
		return svc.fault(fmt.Sprintf("DeleteClass(class_id=%d)", classID), err)
	}
	return res
}

// GetTeacherClasses returns the teacher's active classes, optionally narrowed
// to one semester. An unknown teacher yields an empty slice, not an error.
func (svc *ClassService) GetTeacherClasses(ctx context.Context, teacherID int, semester string) ([]Class, error) {
	return svc.repo.QueryTeacherClasses(ctx, teacherID, semester)
}

// GetStudentClasses returns the active classes the student is enrolled in,
// optionally narrowed to one semester.
func (svc *ClassService) GetStudentClasses(ctx context.Context, studentID int, semester string) ([]Class, error) {
	return svc.repo.QueryStudentClasses(ctx, studentID, semester)
}

// ListClasses returns listing summaries for all classes matching the filter.
func (svc *ClassService) ListClasses(ctx context.Context, filter ClassFilter) ([]ClassSummary, error) {
	classes, err := svc.repo.FilterClasses(ctx, filter)
	if err != nil {
		return nil, err
	}
	summaries := make([]ClassSummary, 0, len(classes))
	for i := range classes {
		summaries = append(summaries, classes[i].Summary())
	}
	return summaries, nil
}

// GetClassDetail returns a single class with its nested subject, teacher and
// roster; ErrClassNotFound when no such class exists.
func (svc *ClassService) GetClassDetail(ctx context.Context, classID int) (ClassDetail, error) {
	var detail ClassDetail
	err := svc.repo.Atomic(ctx, func(tx Repository) error {
		cls, err := tx.GetClassByID(ctx, classID)
		if err != nil {
			return err
		}
		sub, err := tx.GetSubjectByID(ctx, cls.SubjectID)
		if err != nil {
			return err
		}
		tch, err := tx.GetTeacherByID(ctx, cls.TeacherID)
		if err != nil {
			return err
		}
		students, err := tx.QueryClassStudents(ctx, classID)
		if err != nil {
			return err
		}
		detail = ClassDetail{
			ID:             cls.ID,
			Subject:        sub,
			Teacher:        tch,
			Students:       students,
			Schedule:       cls.Schedule,
			Room:           cls.Room,
			Semester:       cls.Semester,
			MaxStudents:    cls.MaxStudents,
			EnrolledCount:  len(students),
			AvailableSeats: cls.MaxStudents - len(students),
			IsActive:       cls.IsActive,
		}
		return nil
	})
	if err != nil {
		return ClassDetail{}, err
	}
	return detail, nil
}

func (svc *ClassService) fault(op string, err error) Result {
	core.Stats.Faults.Add(1)
	svc.log.Error(op, err)
	return Result{Success: false, Code: CodeFault, Message: fmt.Sprintf("Error: %v", err)}
}
