package school

import (
	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
)

// Rejection codes carried by failed Results. A rejected precondition is an
// expected outcome of concurrent multi-actor use, not a fault.
const (
	CodeClassNotFound    = "class_not_found"
	CodeStudentNotFound  = "student_not_found"
	CodeTeacherNotFound  = "teacher_not_found"
	CodeSubjectNotFound  = "subject_not_found"
	CodeClassInactive    = "class_inactive"
	CodeClassFull        = "class_full"
	CodeAlreadyEnrolled  = "already_enrolled"
	CodeNotEnrolled      = "not_enrolled"
	CodeScheduleConflict = "schedule_conflict"
	CodeDuplicateClass   = "duplicate_class"
	CodeDuplicateCode    = "duplicate_code"
	CodeMissingField     = "missing_field"
	CodeFault            = "fault"
)

// Result is the outcome record returned to the transport adapters.
// Message is user-facing either way; Code is for tests and observability only.
type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Code      string `json:"-"`
	ClassID   *int   `json:"class_id,omitempty"`
	StudentID *int   `json:"student_id,omitempty"`
	SubjectID *int   `json:"subject_id,omitempty"`
}

func reject(code, message string) Result {
	core.Stats.Rejections.Add(1)
	return Result{Success: false, Code: code, Message: message}
}

func succeed(message string) Result {
	return Result{Success: true, Message: message}
}
