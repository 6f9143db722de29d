package dummydb

import (
	"context"
	"sort"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

type repository struct {
	db *DB
	// inTx repositories run under the DB-wide write lock held by Atomic and
	// must not lock again.
	inTx bool
}

var _ school.Repository = (*repository)(nil) // interface compliance check

func NewRepository(db *DB) *repository {
	return &repository{db: db}
}

// Atomic takes the whole-store write lock; coarser than the per-class row
// lock the SQL repository takes, but the serialization it gives is a superset.
func (repo *repository) Atomic(ctx context.Context, fn func(tx school.Repository) error) error {
	if repo.inTx {
		return fn(repo)
	}
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	return fn(&repository{db: repo.db, inTx: true})
}

func (repo *repository) rlock() func() {
	if repo.inTx {
		return func() {}
	}
	repo.db.mu.RLock()
	return repo.db.mu.RUnlock
}

func (repo *repository) wlock() func() {
	if repo.inTx {
		return func() {}
	}
	repo.db.mu.Lock()
	return repo.db.mu.Unlock
}

// classValue copies cls and fills in the query-computed fields.
func (repo *repository) classValue(cls *school.Class) school.Class {
	out := *cls
	if sub, ok := repo.db.subjects[cls.SubjectID]; ok {
		out.SubjectCode = sub.Code
		out.SubjectName = sub.Name
	}
	if tch, ok := repo.db.teachers[cls.TeacherID]; ok {
		out.TeacherName = tch.FullName
	}
	out.EnrolledCount = len(repo.db.rosters[cls.ID])
	return out
}

// sortClasses orders by semester descending then subject code ascending,
// matching the SQL listing order.
func sortClasses(classes []school.Class) {
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Semester != classes[j].Semester {
			return classes[i].Semester > classes[j].Semester
		}
		return classes[i].SubjectCode < classes[j].SubjectCode
	})
}
