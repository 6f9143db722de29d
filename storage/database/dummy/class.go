package dummydb

import (
	"context"
	"sort"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

func (repo *repository) CreateClass(ctx context.Context, cls school.Class) (school.Class, error) {
	defer repo.wlock()()

	for _, existing := range repo.db.classes {
		if existing.SubjectID == cls.SubjectID && existing.TeacherID == cls.TeacherID &&
			existing.Schedule == cls.Schedule && existing.Semester == cls.Semester {
			return school.Class{}, school.ErrDuplicateClass
		}
	}
	repo.db.classPK++
	cls.ID = repo.db.classPK
	stored := cls
	repo.db.classes[cls.ID] = &stored
	repo.db.rosters[cls.ID] = make(map[int]bool)
	return repo.classValue(&stored), nil
}

func (repo *repository) GetClassByID(ctx context.Context, id int) (school.Class, error) {
	defer repo.rlock()()

	if cls, ok := repo.db.classes[id]; ok {
		return repo.classValue(cls), nil
	}
	return school.Class{}, school.ErrClassNotFound
}

// GetClassByIDForUpdate relies on Atomic's store-wide lock; no class can
// change until the enclosing block returns.
func (repo *repository) GetClassByIDForUpdate(ctx context.Context, id int) (school.Class, error) {
	return repo.GetClassByID(ctx, id)
}

func (repo *repository) UpdateClass(ctx context.Context, cls school.Class) (school.Class, error) {
	defer repo.wlock()()

	orig, ok := repo.db.classes[cls.ID]
	if !ok {
		return school.Class{}, school.ErrClassNotFound
	}
	for _, existing := range repo.db.classes {
		if existing.ID != cls.ID && existing.SubjectID == cls.SubjectID && existing.TeacherID == cls.TeacherID &&
			existing.Schedule == cls.Schedule && existing.Semester == cls.Semester {
			return school.Class{}, school.ErrDuplicateClass
		}
	}
	orig.Schedule = cls.Schedule
	orig.Room = cls.Room
	orig.Semester = cls.Semester
	orig.MaxStudents = cls.MaxStudents
	orig.IsActive = cls.IsActive
	orig.UpdatedAt = cls.UpdatedAt
	return repo.classValue(orig), nil
}

func (repo *repository) DeleteClassesByID(ctx context.Context, ids ...int) error {
	defer repo.wlock()()

	for _, id := range ids {
		delete(repo.db.classes, id)
		delete(repo.db.rosters, id) // cascade
	}
	return nil
}

func (repo *repository) ClassOfferingExists(ctx context.Context, subjectID, teacherID int, schedule, semester string) (bool, error) {
	defer repo.rlock()()

	for _, cls := range repo.db.classes {
		if cls.SubjectID == subjectID && cls.TeacherID == teacherID &&
			cls.Schedule == schedule && cls.Semester == semester {
			return true, nil
		}
	}
	return false, nil
}

func (repo *repository) FilterClasses(ctx context.Context, filter school.ClassFilter) ([]school.Class, error) {
	defer repo.rlock()()

	classes := make([]school.Class, 0, len(repo.db.classes))
	for _, cls := range repo.db.classes {
		if filter.ActiveOnly && !cls.IsActive {
			continue
		}
		if filter.Semester != "" && cls.Semester != filter.Semester {
			continue
		}
		classes = append(classes, repo.classValue(cls))
	}
	sortClasses(classes)
	return classes, nil
}

func (repo *repository) QueryTeacherClasses(ctx context.Context, teacherID int, semester string) ([]school.Class, error) {
	defer repo.rlock()()

	classes := make([]school.Class, 0)
	for _, cls := range repo.db.classes {
		if cls.TeacherID != teacherID || !cls.IsActive {
			continue
		}
		if semester != "" && cls.Semester != semester {
			continue
		}
		classes = append(classes, repo.classValue(cls))
	}
	sortClasses(classes)
	return classes, nil
}

func (repo *repository) QueryStudentClasses(ctx context.Context, studentID int, semester string) ([]school.Class, error) {
	defer repo.rlock()()

	classes := make([]school.Class, 0)
	for clsID, roster := range repo.db.rosters {
		if !roster[studentID] {
			continue
		}
		cls, ok := repo.db.classes[clsID]
		if !ok || !cls.IsActive {
			continue
		}
		if semester != "" && cls.Semester != semester {
			continue
		}
		classes = append(classes, repo.classValue(cls))
	}
	sortClasses(classes)
	return classes, nil
}

func (repo *repository) QueryClassStudents(ctx context.Context, classID int) ([]school.Student, error) {
	defer repo.rlock()()

	students := make([]school.Student, 0)
	for studentID := range repo.db.rosters[classID] {
		if std, ok := repo.db.students[studentID]; ok {
			students = append(students, *std)
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].FullName < students[j].FullName })
	return students, nil
}
