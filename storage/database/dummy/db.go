package dummydb

import (
	"sync"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

type DB struct {
	mu sync.RWMutex

	subjects map[int]*school.Subject
	teachers map[int]*school.Teacher
	students map[int]*school.Student
	classes  map[int]*school.Class
	rosters  map[int]map[int]bool // classID -> studentID set

	subjectPK int
	teacherPK int
	studentPK int
	classPK   int
}

func Open() (*DB, error) {
	db := &DB{
		subjects: make(map[int]*school.Subject),
		teachers: make(map[int]*school.Teacher),
		students: make(map[int]*school.Student),
		classes:  make(map[int]*school.Class),
		rosters:  make(map[int]map[int]bool),
	}
	return db, nil
}
