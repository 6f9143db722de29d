package school

import (
	"context"
	"errors"
)

var (
	// errors
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrTeacherNotFound   = errors.New("teacher not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrClassNotFound     = errors.New("class not found")
	ErrSubjectCodeExists = errors.New("a subject with this code already exists")
	ErrDuplicateClass    = errors.New("a class with these offering details already exists")
	ErrProfileExists     = errors.New("a profile for this account already exists")
)

// Repository is the durable record of subjects, profiles, classes and enrollments.
type Repository interface {
	// Atomic runs fn as a single transaction; locks taken inside fn are held
	// until it returns. fn errors roll the transaction back.
	Atomic(ctx context.Context, fn func(tx Repository) error) error

	// subjects
	SubjectCodeExists(ctx context.Context, code string) (bool, error)
	CreateSubject(ctx context.Context, sub Subject) (Subject, error)
	GetSubjectByID(ctx context.Context, id int) (Subject, error)
	QueryAllSubjects(ctx context.Context) ([]Subject, error)
	DeleteSubjectsByID(ctx context.Context, ids ...int) error

	// teacher & student profiles
	CreateTeacher(ctx context.Context, tch Teacher) (Teacher, error)
	CreateStudent(ctx context.Context, std Student) (Student, error)
	GetTeacherByID(ctx context.Context, id int) (Teacher, error)
	GetStudentByID(ctx context.Context, id int) (Student, error)

	// classes
	CreateClass(ctx context.Context, cls Class) (Class, error)
	GetClassByID(ctx context.Context, id int) (Class, error)
	// GetClassByIDForUpdate locks the class row for the rest of the enclosing
	// Atomic block; concurrent callers serialize on it per class.
	GetClassByIDForUpdate(ctx context.Context, id int) (Class, error)
	UpdateClass(ctx context.Context, cls Class) (Class, error)
	DeleteClassesByID(ctx context.Context, ids ...int) error
	ClassOfferingExists(ctx context.Context, subjectID, teacherID int, schedule, semester string) (bool, error)
	// FilterClasses applies AND operation on available ClassFilter fields.
	FilterClasses(ctx context.Context, filter ClassFilter) ([]Class, error)
	QueryTeacherClasses(ctx context.Context, teacherID int, semester string) ([]Class, error)
	QueryStudentClasses(ctx context.Context, studentID int, semester string) ([]Class, error)
	QueryClassStudents(ctx context.Context, classID int) ([]Student, error)

	// enrollment membership
	CountEnrollments(ctx context.Context, classID int) (int, error)
	IsEnrolled(ctx context.Context, classID, studentID int) (bool, error)
	AddEnrollment(ctx context.Context, classID, studentID int) error
	RemoveEnrollment(ctx context.Context, classID, studentID int) error
}
