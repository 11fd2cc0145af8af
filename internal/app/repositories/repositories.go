package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared not-found sentinel used by all repositories.
var ErrNotFound = errors.New("record not found")

// Repositories holds all the repository instances
type Repositories struct {
	UniversityRepository *UniversityRepository
	BranchRepository     *BranchRepository
	CollegeRepository    *CollegeRepository
	CourseRepository     *CourseRepository
	ProgressRepository   *ProgressRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UniversityRepository: NewUniversityRepository(db),
		BranchRepository:     NewBranchRepository(db),
		CollegeRepository:    NewCollegeRepository(db),
		CourseRepository:     NewCourseRepository(db),
		ProgressRepository:   NewProgressRepository(db),
	}
}
