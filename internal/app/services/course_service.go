package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/app/repositories"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
)

// CourseService maintains the minimal course catalog the aggregator
// reads. Catalog entries mirror the external content system; ids are
// supplied, not generated.
type CourseService interface {
	UpsertCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// UpsertCourse registers or refreshes a catalog entry
func (s *courseServiceImpl) UpsertCourse(ctx context.Context, course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if course.ID == uuid.Nil {
		return fmt.Errorf("%w: course ID is required", apperrors.ErrValidationFailed)
	}
	course.Title = strings.TrimSpace(course.Title)
	if course.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.TotalLectures < 0 {
		return fmt.Errorf("%w: total lectures cannot be negative", apperrors.ErrValidationFailed)
	}

	if err := s.courseRepo.Upsert(ctx, course); err != nil {
		return fmt.Errorf("error upserting course: %w", err)
	}
	return nil
}

// GetCourseByID retrieves a catalog entry
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}
