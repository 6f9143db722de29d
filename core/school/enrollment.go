package school

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
)

// EnrollmentService is the sole authority for adding and removing a Student
// from a Class roster. All preconditions are checked and applied with the
// class row locked, so concurrent attempts against one class serialize.
type EnrollmentService struct {
	repo Repository
	log  core.Logger
}

func NewEnrollmentService(repo Repository, log core.Logger) *EnrollmentService {
	return &EnrollmentService{repo: repo, log: log}
}

// EnrollStudent enrolls a student in a class. Precondition failures come back
// as failed Results in a fixed order: class exists, student exists, class
// active, class not full, not already enrolled, no schedule conflict.
func (svc *EnrollmentService) EnrollStudent(ctx context.Context, classID, studentID int) Result {
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

		std, err := tx.GetStudentByID(ctx, studentID)
		if err != nil {
			if errors.Cause(err) == ErrStudentNotFound {
				res = reject(CodeStudentNotFound, "Student not found")
				return nil
			}
			return err
		}

		if !cls.IsActive {
			res = reject(CodeClassInactive, "Class is not active")
			return nil
		}

		// re-read the count under the row lock; the struct's count may predate it
		count, err := tx.CountEnrollments(ctx, classID)
		if err != nil {
			return err
		}
		if count >= cls.MaxStudents {
			res = reject(CodeClassFull, "Class is full")
			return nil
		}

		enrolled, err := tx.IsEnrolled(ctx, classID, studentID)
		if err != nil {
			return err
		}
		if enrolled {
			res = reject(CodeAlreadyEnrolled, "Student already enrolled")
			return nil
		}

		if conflict, err := svc.checkScheduleConflict(ctx, tx, std.ID, &cls); err != nil {
			return err
		} else if conflict != nil {
			res = reject(CodeScheduleConflict, fmt.Sprintf("Schedule conflict with %s", conflict.SubjectCode))
			return nil
		}

		if err := tx.AddEnrollment(ctx, classID, studentID); err != nil {
			return err
		}

		svc.log.Info(fmt.Sprintf("Student %s enrolled in %s (%s)", std.EnrollmentNumber, cls.SubjectCode, cls.Semester))
		res = succeed("Enrolled successfully")
		res.ClassID = &classID
		res.StudentID = &studentID
		return nil
	})
	if err != nil {
		return svc.fault("EnrollStudent", err, classID, studentID)
	}
	return res
}

// UnenrollStudent removes a student from a class roster.
func (svc *EnrollmentService) UnenrollStudent(ctx context.Context, classID, studentID int) Result {
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

		std, err := tx.GetStudentByID(ctx, studentID)
		if err != nil {
			if errors.Cause(err) == ErrStudentNotFound {
				res = reject(CodeStudentNotFound, "Student not found")
				return nil
			}
			return err
		}

		enrolled, err := tx.IsEnrolled(ctx, classID, studentID)
		if err != nil {
			return err
		}
		if !enrolled {
			res = reject(CodeNotEnrolled, "Student not enrolled in this class")
			return nil
		}

		if err := tx.RemoveEnrollment(ctx, classID, studentID); err != nil {
			return err
		}

		svc.log.Info(fmt.Sprintf("Student %s unenrolled from %s (%s)", std.EnrollmentNumber, cls.SubjectCode, cls.Semester))
		res = succeed("Unenrolled successfully")
		return nil
	})
	if err != nil {
		return svc.fault("UnenrollStudent", err, classID, studentID)
	}
	return res
}

// checkScheduleConflict returns the first active same-semester class the
// student is enrolled in whose schedule overlaps newClass's, or nil.
func (svc *EnrollmentService) checkScheduleConflict(ctx context.Context, tx Repository, studentID int, newClass *Class) (*Class, error) {
	enrolledClasses, err := tx.QueryStudentClasses(ctx, studentID, newClass.Semester)
	if err != nil {
		return nil, err
	}
	for i := range enrolledClasses {
		if schedulesOverlap(enrolledClasses[i].Schedule, newClass.Schedule) {
			return &enrolledClasses[i], nil
		}
	}
	return nil, nil
}

// schedulesOverlap compares schedule tokens of the form "MON 14:00-16:00".
// Only the leading day token is compared; two same-day classes count as a
// conflict even when their time ranges do not actually overlap.
// TODO: parse the actual time ranges once the format is settled
func schedulesOverlap(schedule1, schedule2 string) bool {
	var day1, day2 string
	if flds := strings.Fields(schedule1); len(flds) > 0 {
		day1 = flds[0]
	}
	if flds := strings.Fields(schedule2); len(flds) > 0 {
		day2 = flds[0]
	}
	return day1 == day2
}

// fault logs an unexpected failure and collapses it into a generic failed
// Result; the caller cannot tell it apart from a rejection, the metrics can.
func (svc *EnrollmentService) fault(op string, err error, classID, studentID int) Result {
	core.Stats.Faults.Add(1)
	svc.log.Error(fmt.Sprintf("%s(class_id=%d, student_id=%d)", op, classID, studentID), err)
	return Result{Success: false, Code: CodeFault, Message: fmt.Sprintf("Error: %v", err)}
}
