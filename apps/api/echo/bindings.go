package echoapi

import (
	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

// Request/response records for the method endpoints. Their JSON shapes mirror
// the wire messages of the original RPC clients.

type EnrollmentRequest struct {
	ClassID   int `json:"class_id" validate:"required"`
	StudentID int `json:"student_id" validate:"required"`
}

func (r *EnrollmentRequest) Validate() error {
	return core.Validate.Struct(r)
}

type GetClassRequest struct {
	ClassID int `json:"class_id" validate:"required"`
}

func (r *GetClassRequest) Validate() error {
	return core.Validate.Struct(r)
}

type TeacherClassesRequest struct {
	TeacherID int    `json:"teacher_id" validate:"required"`
	Semester  string `json:"semester" validate:"omitempty,semester"`
}

func (r *TeacherClassesRequest) Validate() error {
	return core.Validate.Struct(r)
}

type StudentClassesRequest struct {
	StudentID int    `json:"student_id" validate:"required"`
	Semester  string `json:"semester" validate:"omitempty,semester"`
}

func (r *StudentClassesRequest) Validate() error {
	return core.Validate.Struct(r)
}

type ClassesResponse struct {
	Classes []school.ClassSummary `json:"classes"`
}

type SubjectsResponse struct {
	Subjects []school.Subject `json:"subjects"`
}
