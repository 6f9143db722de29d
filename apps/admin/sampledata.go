package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

// sampleData seeds the database with a small campus worth of subjects,
// profiles, classes and enrollments for local development.
func (cli *commandLine) sampleData() error {
	ctx := context.Background()

	logger.Println("Creating sample data...")

	subjects := []school.NewSubject{
		{Code: "CS101", Name: "Introduction to Computer Science", Credits: 4, Description: "Fundamental concepts of programming and computer science."},
		{Code: "CS201", Name: "Data Structures", Credits: 4, Description: "Advanced data structures and algorithms."},
		{Code: "CS301", Name: "Database Systems", Credits: 3, Description: "Relational databases, SQL, and database design."},
		{Code: "MATH201", Name: "Calculus I", Credits: 4, Description: "Limits, derivatives, and integrals."},
		{Code: "MATH202", Name: "Linear Algebra", Credits: 3, Description: "Vectors, matrices, and linear transformations."},
		{Code: "PHY101", Name: "Physics I", Credits: 4, Description: "Mechanics, thermodynamics, and waves."},
		{Code: "ENG101", Name: "English Composition", Credits: 3, Description: "Academic writing and critical thinking."},
		{Code: "CS401", Name: "Distributed Systems", Credits: 4, Description: "Design and implementation of distributed systems."},
	}
	subjectIDs := make(map[string]int, len(subjects))
	for _, ns := range subjects {
		res := cli.subjectSvc.CreateSubject(ctx, ns)
		if !res.Success {
			return fmt.Errorf("creating subject %s: %s", ns.Code, res.Message)
		}
		subjectIDs[ns.Code] = *res.SubjectID
		logger.Printf("  created subject: %s", ns.Code)
	}

	now := time.Now().UTC()
	teachers := []school.Teacher{
		{AccountID: 101, FullName: "João Silva", EmployeeID: "T00101", Specialization: "Computer Science", PhoneNumber: "(15) 99999-1111"},
		{AccountID: 102, FullName: "Maria Santos", EmployeeID: "T00102", Specialization: "Mathematics", PhoneNumber: "(15) 99999-1112"},
		{AccountID: 103, FullName: "Pedro Oliveira", EmployeeID: "T00103", Specialization: "Physics", PhoneNumber: "(15) 99999-1113"},
		{AccountID: 104, FullName: "Ana Costa", EmployeeID: "T00104", Specialization: "English Literature", PhoneNumber: "(15) 99999-1114"},
	}
	teacherIDs := make([]int, 0, len(teachers))
	for _, tch := range teachers {
		tch.CreatedAt, tch.UpdatedAt = now, now
		created, err := cli.repo.CreateTeacher(ctx, tch)
		if err != nil {
			return fmt.Errorf("creating teacher %s: %w", tch.FullName, err)
		}
		teacherIDs = append(teacherIDs, created.ID)
		logger.Printf("  created teacher: %s", created.FullName)
	}

	students := []school.Student{
		{AccountID: 201, FullName: "Guilherme Ferreira", EnrollmentNumber: "S00201", PhoneNumber: "(15) 99999-2001"},
		{AccountID: 202, FullName: "Ana Costa", EnrollmentNumber: "S00202", PhoneNumber: "(15) 99999-2002"},
		{AccountID: 203, FullName: "Carlos Ferreira", EnrollmentNumber: "S00203", PhoneNumber: "(15) 99999-2003"},
		{AccountID: 204, FullName: "Beatriz Lima", EnrollmentNumber: "S00204", PhoneNumber: "(15) 99999-2004"},
		{AccountID: 205, FullName: "Rafael Souza", EnrollmentNumber: "S00205", PhoneNumber: "(15) 99999-2005"},
		{AccountID: 206, FullName: "Julia Oliveira", EnrollmentNumber: "S00206", PhoneNumber: "(15) 99999-2006"},
		{AccountID: 207, FullName: "Lucas Pereira", EnrollmentNumber: "S00207", PhoneNumber: "(15) 99999-2007"},
		{AccountID: 208, FullName: "Mariana Santos", EnrollmentNumber: "S00208", PhoneNumber: "(15) 99999-2008"},
	}
	studentIDs := make([]int, 0, len(students))
	for _, std := range students {
		std.CreatedAt, std.UpdatedAt = now, now
		created, err := cli.repo.CreateStudent(ctx, std)
		if err != nil {
			return fmt.Errorf("creating student %s: %w", std.FullName, err)
		}
		studentIDs = append(studentIDs, created.ID)
		logger.Printf("  created student: %s", created.FullName)
	}

	classes := []struct {
		subject     string
		teacher     int // index into teacherIDs
		schedule    string
		room        string
		maxStudents int
	}{
		{"CS101", 0, "MON 14:00-16:00", "Lab 101", 40},
		{"CS101", 0, "WED 10:00-12:00", "Lab 102", 35},
		{"CS201", 0, "TUE 14:00-16:00", "Lab 201", 30},
		{"CS301", 0, "THU 16:00-18:00", "Lab 301", 25},
		{"CS401", 0, "FRI 14:00-17:00", "Lab 401", 20},
		{"MATH201", 1, "MON 10:00-12:00", "Room 202", 45},
		{"MATH202", 1, "WED 14:00-16:00", "Room 203", 40},
		{"PHY101", 2, "TUE 10:00-12:00", "Lab 303", 35},
		{"ENG101", 3, "THU 10:00-12:00", "Room 104", 30},
	}
	classIDs := make([]int, 0, len(classes))
	for _, c := range classes {
		res := cli.classSvc.CreateClass(ctx, school.NewClass{
			SubjectID:   subjectIDs[c.subject],
			TeacherID:   teacherIDs[c.teacher],
			Schedule:    c.schedule,
			Room:        c.room,
			Semester:    school.DefaultSemester,
			MaxStudents: c.maxStudents,
		})
		if !res.Success {
			return fmt.Errorf("creating class %s %s: %s", c.subject, c.schedule, res.Message)
		}
		classIDs = append(classIDs, *res.ClassID)
		logger.Printf("  created class: %s %s", c.subject, c.schedule)
	}

	// class index -> student indexes; all pairs are conflict-free day-wise
	enrollments := map[int][]int{
		0: {0, 1, 3}, // CS101 MON
		1: {2, 4},    // CS101 WED
		2: {0, 5},    // CS201
		3: {0, 6},    // CS301
		4: {0, 7},    // CS401
		5: {7, 2, 4}, // MATH201
		6: {5, 6},    // MATH202
		7: {1, 6},    // PHY101
		8: {3, 7},    // ENG101
	}
	for classIdx, studentIdxs := range enrollments {
		for _, studentIdx := range studentIdxs {
			res := cli.enrollmentSvc.EnrollStudent(ctx, classIDs[classIdx], studentIDs[studentIdx])
			if !res.Success {
				return fmt.Errorf("enrolling student %d in class %d: %s", studentIDs[studentIdx], classIDs[classIdx], res.Message)
			}
		}
	}

	logger.Println("Sample data created successfully!")
	logger.Printf("  subjects: %d, teachers: %d, students: %d, classes: %d",
		len(subjects), len(teachers), len(students), len(classes))
	return nil
}
