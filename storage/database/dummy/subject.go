package dummydb

import (
	"context"
	"sort"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

func (repo *repository) SubjectCodeExists(ctx context.Context, code string) (bool, error) {
	defer repo.rlock()()

	for _, sub := range repo.db.subjects {
		if sub.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (repo *repository) CreateSubject(ctx context.Context, sub school.Subject) (school.Subject, error) {
	defer repo.wlock()()

	for _, existing := range repo.db.subjects {
		if existing.Code == sub.Code {
			return school.Subject{}, school.ErrSubjectCodeExists
		}
	}
	repo.db.subjectPK++
	sub.ID = repo.db.subjectPK
	repo.db.subjects[sub.ID] = &sub
	return sub, nil
}

func (repo *repository) GetSubjectByID(ctx context.Context, id int) (school.Subject, error) {
	defer repo.rlock()()

	if sub, ok := repo.db.subjects[id]; ok {
		return *sub, nil
	}
	return school.Subject{}, school.ErrSubjectNotFound
}

func (repo *repository) QueryAllSubjects(ctx context.Context) ([]school.Subject, error) {
	defer repo.rlock()()

	subjects := make([]school.Subject, 0, len(repo.db.subjects))
	for _, sub := range repo.db.subjects {
		subjects = append(subjects, *sub)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Code < subjects[j].Code })
	return subjects, nil
}

func (repo *repository) DeleteSubjectsByID(ctx context.Context, ids ...int) error {
	defer repo.wlock()()

	for _, id := range ids {
		delete(repo.db.subjects, id)
		// cascade to classes and their rosters
		for clsID, cls := range repo.db.classes {
			if cls.SubjectID == id {
				delete(repo.db.classes, clsID)
				delete(repo.db.rosters, clsID)
			}
		}
	}
	return nil
}
