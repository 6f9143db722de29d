package school_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

func TestEnrollmentService_EnrollStudent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cs101 := env.createSubject(t, "CS101")
	math201 := env.createSubject(t, "MATH201")
	phy101 := env.createSubject(t, "PHY101")
	tch := env.createTeacher(t, 101, "João Silva")

	// MON afternoon, capacity 2
	monClass := env.createClass(t, cs101, tch, classOpts{schedule: "MON 14:00-16:00", maxStudents: 2})
	// MON morning, no time overlap with monClass but same day
	monMorning := env.createClass(t, math201, tch, classOpts{schedule: "MON 09:00-10:00"})
	// TUE, same semester
	tueClass := env.createClass(t, phy101, tch, classOpts{schedule: "TUE 14:00-16:00"})
	// MON, previous semester
	oldMonClass := env.createClass(t, phy101, tch, classOpts{schedule: "MON 14:00-16:00", semester: "2024.2"})
	inactive := env.createClass(t, cs101, tch, classOpts{schedule: "FRI 08:00-10:00", inactive: true})

	alice := env.createStudent(t, 201, "Alice")
	bob := env.createStudent(t, 202, "Bob")
	carol := env.createStudent(t, 203, "Carol")

	tests := []struct {
		name        string
		classID     int
		studentID   int
		setup       func(t *testing.T)
		wantSuccess bool
		wantCode    string
		wantMessage string
	}{
		{
			name:      "unknown class rejected before unknown student",
			classID:   9999,
			studentID: 9999, wantCode: school.CodeClassNotFound, wantMessage: "Class not found",
		},
		{
			name:    "unknown student",
			classID: monClass.ID, studentID: 9999,
			wantCode: school.CodeStudentNotFound, wantMessage: "Student not found",
		},
		{
			name:    "inactive class",
			classID: inactive.ID, studentID: alice.ID,
			wantCode: school.CodeClassInactive, wantMessage: "Class is not active",
		},
		{
			name:    "first seat",
			classID: monClass.ID, studentID: alice.ID,
			wantSuccess: true, wantMessage: "Enrolled successfully",
		},
		{
			name:    "already enrolled",
			classID: monClass.ID, studentID: alice.ID,
			wantCode: school.CodeAlreadyEnrolled, wantMessage: "Student already enrolled",
		},
		{
			name:    "same day counts as a conflict even without time overlap",
			classID: monMorning.ID, studentID: alice.ID,
			wantCode: school.CodeScheduleConflict, wantMessage: "Schedule conflict with CS101",
		},
		{
			name:    "different day is no conflict",
			classID: tueClass.ID, studentID: alice.ID,
			wantSuccess: true, wantMessage: "Enrolled successfully",
		},
		{
			name:    "same day in another semester is no conflict",
			classID: oldMonClass.ID, studentID: alice.ID,
			wantSuccess: true, wantMessage: "Enrolled successfully",
		},
		{
			name:    "last seat",
			classID: monClass.ID, studentID: bob.ID,
			wantSuccess: true, wantMessage: "Enrolled successfully",
		},
		{
			name:    "class full",
			classID: monClass.ID, studentID: carol.ID,
			wantCode: school.CodeClassFull, wantMessage: "Class is full",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := env.enrollment.EnrollStudent(ctx, tt.classID, tt.studentID)
			if res.Success != tt.wantSuccess {
				t.Fatalf("EnrollStudent() success = %v, want %v (message %q)", res.Success, tt.wantSuccess, res.Message)
			}
			if res.Message != tt.wantMessage {
				t.Errorf("EnrollStudent() message = %q, want %q", res.Message, tt.wantMessage)
			}
			if !tt.wantSuccess && res.Code != tt.wantCode {
				t.Errorf("EnrollStudent() code = %q, want %q", res.Code, tt.wantCode)
			}
		})
	}
}

func TestEnrollmentService_EnrollStudent_fullClassKeepsPrecedenceOverMembership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub := env.createSubject(t, "CS101")
	tch := env.createTeacher(t, 101, "João Silva")
	cls := env.createClass(t, sub, tch, classOpts{maxStudents: 1})
	alice := env.createStudent(t, 201, "Alice")

	env.enroll(t, cls.ID, alice.ID)

	// the enrolled student re-enrolling in a full class sees "full", not "already enrolled"
	res := env.enrollment.EnrollStudent(ctx, cls.ID, alice.ID)
	if res.Code != school.CodeClassFull {
		t.Errorf("EnrollStudent() code = %q, want %q", res.Code, school.CodeClassFull)
	}
	if res.Message != "Class is full" {
		t.Errorf("EnrollStudent() message = %q, want %q", res.Message, "Class is full")
	}
}

func TestEnrollmentService_EnrollStudent_capacityUnderContention(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub := env.createSubject(t, "CS101")
	tch := env.createTeacher(t, 101, "João Silva")
	const capacity = 3
	cls := env.createClass(t, sub, tch, classOpts{maxStudents: capacity})

	const attempts = 20
	students := make([]school.Student, attempts)
	for i := range students {
		students[i] = env.createStudent(t, 300+i, "Student")
	}

	results := make([]school.Result, attempts)
	var wg sync.WaitGroup
	for i := range students {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = env.enrollment.EnrollStudent(ctx, cls.ID, students[i].ID)
		}(i)
	}
	wg.Wait()

	var enrolled, full int
	for _, res := range results {
		switch {
		case res.Success:
			enrolled++
		case res.Code == school.CodeClassFull:
			full++
		default:
			t.Errorf("unexpected rejection: code=%q message=%q", res.Code, res.Message)
		}
	}
	if enrolled != capacity {
		t.Errorf("enrolled = %d, want %d", enrolled, capacity)
	}
	if full != attempts-capacity {
		t.Errorf("full rejections = %d, want %d", full, attempts-capacity)
	}

	count, err := env.repo.CountEnrollments(ctx, cls.ID)
	if err != nil {
		t.Fatalf("CountEnrollments() failed: %v", err)
	}
	if count != capacity {
		t.Errorf("roster size = %d, want %d", count, capacity)
	}
}

func TestEnrollmentService_UnenrollStudent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub := env.createSubject(t, "CS101")
	tch := env.createTeacher(t, 101, "João Silva")
	cls := env.createClass(t, sub, tch, classOpts{})
	alice := env.createStudent(t, 201, "Alice")
	bob := env.createStudent(t, 202, "Bob")

	env.enroll(t, cls.ID, alice.ID)

	tests := []struct {
		name        string
		classID     int
		studentID   int
		wantSuccess bool
		wantCode    string
		wantMessage string
	}{
		{name: "unknown class", classID: 9999, studentID: alice.ID, wantCode: school.CodeClassNotFound, wantMessage: "Class not found"},
		{name: "unknown student", classID: cls.ID, studentID: 9999, wantCode: school.CodeStudentNotFound, wantMessage: "Student not found"},
		{name: "not enrolled", classID: cls.ID, studentID: bob.ID, wantCode: school.CodeNotEnrolled, wantMessage: "Student not enrolled in this class"},
		{name: "enrolled", classID: cls.ID, studentID: alice.ID, wantSuccess: true, wantMessage: "Unenrolled successfully"},
		{name: "unenroll is not idempotent", classID: cls.ID, studentID: alice.ID, wantCode: school.CodeNotEnrolled, wantMessage: "Student not enrolled in this class"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := env.enrollment.UnenrollStudent(ctx, tt.classID, tt.studentID)
			if res.Success != tt.wantSuccess {
				t.Fatalf("UnenrollStudent() success = %v, want %v (message %q)", res.Success, tt.wantSuccess, res.Message)
			}
			if res.Message != tt.wantMessage {
				t.Errorf("UnenrollStudent() message = %q, want %q", res.Message, tt.wantMessage)
			}
			if !tt.wantSuccess && res.Code != tt.wantCode {
				t.Errorf("UnenrollStudent() code = %q, want %q", res.Code, tt.wantCode)
			}
		})
	}

	// the freed seat can be taken again
	res := env.enrollment.EnrollStudent(ctx, cls.ID, alice.ID)
	if !res.Success {
		t.Errorf("re-enroll after unenroll rejected: %s", res.Message)
	}
}

func TestEnrollmentService_unenrollFreesASeat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub := env.createSubject(t, "CS101")
	tch := env.createTeacher(t, 101, "João Silva")
	cls := env.createClass(t, sub, tch, classOpts{maxStudents: 1})
	alice := env.createStudent(t, 201, "Alice")
	bob := env.createStudent(t, 202, "Bob")

	env.enroll(t, cls.ID, alice.ID)

	if res := env.enrollment.EnrollStudent(ctx, cls.ID, bob.ID); res.Code != school.CodeClassFull {
		t.Fatalf("EnrollStudent() code = %q, want %q", res.Code, school.CodeClassFull)
	}
	if res := env.enrollment.UnenrollStudent(ctx, cls.ID, alice.ID); !res.Success {
		t.Fatalf("UnenrollStudent() rejected: %s", res.Message)
	}
	if res := env.enrollment.EnrollStudent(ctx, cls.ID, bob.ID); !res.Success {
		t.Errorf("EnrollStudent() after a seat freed rejected: %s", res.Message)
	}
}
