package dummydb

import (
	"context"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

func (repo *repository) CountEnrollments(ctx context.Context, classID int) (int, error) {
	defer repo.rlock()()
	return len(repo.db.rosters[classID]), nil
}

func (repo *repository) IsEnrolled(ctx context.Context, classID, studentID int) (bool, error) {
	defer repo.rlock()()
	return repo.db.rosters[classID][studentID], nil
}

func (repo *repository) AddEnrollment(ctx context.Context, classID, studentID int) error {
	defer repo.wlock()()

	roster, ok := repo.db.rosters[classID]
	if !ok {
		return school.ErrClassNotFound
	}
	roster[studentID] = true
	return nil
}

func (repo *repository) RemoveEnrollment(ctx context.Context, classID, studentID int) error {
	defer repo.wlock()()

	if roster, ok := repo.db.rosters[classID]; ok {
		delete(roster, studentID)
	}
	return nil
}
