package school

import (
	"strings"
	"time"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
)

// Account roles, resolved once at the transport boundary.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Semester tokens for the academic terms currently offered.
var Semesters = []string{"2024.1", "2024.2", "2025.1", "2025.2"}

const (
	DefaultSemester    = "2025.1"
	DefaultMaxStudents = 40
)

type Subject struct {
	ID          int       `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Credits     int       `json:"credits" db:"credits"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // UTC
}

type Teacher struct {
	ID             int       `json:"id" db:"id"`
	AccountID      int       `json:"account_id" db:"account_id"`
	FullName       string    `json:"full_name" db:"full_name"`
	EmployeeID     string    `json:"employee_id" db:"employee_id"`
	Specialization string    `json:"specialization" db:"specialization"`
	PhoneNumber    string    `json:"phone_number" db:"phone_number"`
	Bio            string    `json:"bio" db:"bio"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"` // UTC
}

type Student struct {
	ID               int        `json:"id" db:"id"`
	AccountID        int        `json:"account_id" db:"account_id"`
	FullName         string     `json:"full_name" db:"full_name"`
	EnrollmentNumber string     `json:"enrollment_number" db:"enrollment_number"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	PhoneNumber      string     `json:"phone_number" db:"phone_number"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"` // UTC
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"` // UTC
}

// Class is a Subject offering taught by a Teacher in a given Semester.
// SubjectCode, SubjectName, TeacherName and EnrolledCount are populated by queries, never stored.
type Class struct {
	ID          int       `json:"id" db:"id"`
	SubjectID   int       `json:"subject_id" db:"subject_id"`
	TeacherID   int       `json:"teacher_id" db:"teacher_id"`
	Schedule    string    `json:"schedule" db:"schedule"` // e.g., "MON 14:00-16:00"
	Room        string    `json:"room" db:"room"`
	Semester    string    `json:"semester" db:"semester"`
	MaxStudents int       `json:"max_students" db:"max_students"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // UTC

	SubjectCode   string `json:"subject_code" db:"subject_code"`
	SubjectName   string `json:"subject_name" db:"subject_name"`
	TeacherName   string `json:"teacher_name" db:"teacher_name"`
	EnrolledCount int    `json:"enrolled_count" db:"enrolled_count"`
}

func (c *Class) AvailableSeats() int {
	return c.MaxStudents - c.EnrolledCount
}

func (c *Class) IsFull() bool {
	return c.EnrolledCount >= c.MaxStudents
}

// ClassSummary is the flattened listing shape returned by the read paths.
type ClassSummary struct {
	ID             int    `json:"id"`
	SubjectCode    string `json:"subject_code"`
	SubjectName    string `json:"subject_name"`
	TeacherName    string `json:"teacher_name"`
	Schedule       string `json:"schedule"`
	Room           string `json:"room"`
	Semester       string `json:"semester"`
	MaxStudents    int    `json:"max_students"`
	EnrolledCount  int    `json:"enrolled_count"`
	AvailableSeats int    `json:"available_seats"`
	IsFull         bool   `json:"is_full"`
	IsActive       bool   `json:"is_active"`
}

func (c *Class) Summary() ClassSummary {
	return ClassSummary{
		ID:             c.ID,
		SubjectCode:    c.SubjectCode,
		SubjectName:    c.SubjectName,
		TeacherName:    c.TeacherName,
		Schedule:       c.Schedule,
		Room:           c.Room,
		Semester:       c.Semester,
		MaxStudents:    c.MaxStudents,
		EnrolledCount:  c.EnrolledCount,
		AvailableSeats: c.AvailableSeats(),
		IsFull:         c.IsFull(),
		IsActive:       c.IsActive,
	}
}

// ClassDetail is the single-class shape with nested Subject, Teacher and roster.
type ClassDetail struct {
	ID             int       `json:"id"`
	Subject        Subject   `json:"subject"`
	Teacher        Teacher   `json:"teacher"`
	Students       []Student `json:"students"`
	Schedule       string    `json:"schedule"`
	Room           string    `json:"room"`
	Semester       string    `json:"semester"`
	MaxStudents    int       `json:"max_students"`
	EnrolledCount  int       `json:"enrolled_count"`
	AvailableSeats int       `json:"available_seats"`
	IsActive       bool      `json:"is_active"`
}

// NewClass contains information needed to create a new Class.
type NewClass struct {
	SubjectID   int    `json:"subject_id" validate:"required"`
	TeacherID   int    `json:"teacher_id" validate:"required"`
	Schedule    string `json:"schedule" validate:"required"`
	Room        string `json:"room"`
	Semester    string `json:"semester" validate:"required,semester"`
	MaxStudents int    `json:"max_students" validate:"omitempty,min=1"`
	IsActive    *bool  `json:"is_active"`
}

func (nc *NewClass) Validate() error {
	nc.Schedule = core.CleanString(nc.Schedule)
	nc.Room = core.CleanString(nc.Room)
	nc.Semester = core.CleanString(nc.Semester)
	return core.Validate.Struct(nc)
}

// UpdateClass defines what information may be provided to modify an existing Class.
type UpdateClass struct {
	Schedule    string `json:"schedule"`
	Room        string `json:"room"`
	Semester    string `json:"semester" validate:"omitempty,semester"`
	MaxStudents int    `json:"max_students" validate:"omitempty,min=1"`
	IsActive    *bool  `json:"is_active"`
}

func (uc *UpdateClass) Validate() error {
	uc.Schedule = core.CleanString(uc.Schedule)
	uc.Room = core.CleanString(uc.Room)
	uc.Semester = core.CleanString(uc.Semester)
	return core.Validate.Struct(uc)
}

// NewSubject contains information needed to create a new Subject.
type NewSubject struct {
	Code        string `json:"code" validate:"required,alphanum_"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Credits     int    `json:"credits" validate:"required,min=1,max=10"`
}

func (ns *NewSubject) Validate() error {
	ns.Code = strings.ToUpper(core.CleanString(ns.Code))
	ns.Name = core.CleanString(ns.Name)
	ns.Description = core.CleanString(ns.Description)
	return core.Validate.Struct(ns)
}

// ClassFilter applies AND operation on its fields when listing classes.
type ClassFilter struct {
	Semester   string `query:"semester" json:"semester"`
	ActiveOnly bool   `query:"active_only" json:"active_only"`
}
