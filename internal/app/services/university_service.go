package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/app/repositories"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
	"github.com/kaan/edusphere/internal/pkg/validation"
)

// UniversityService defines the interface for university-related operations
type UniversityService interface {
	CreateUniversity(ctx context.Context, university *models.University) (int64, error)
	GetUniversityByID(ctx context.Context, id int64) (*models.University, error)
	GetAllUniversities(ctx context.Context, offset uint64, limit int) ([]*models.University, int64, error)
	UpdateUniversity(ctx context.Context, university *models.University) error
	DeleteUniversity(ctx context.Context, id int64) error
}

// universityServiceImpl implements the UniversityService interface
type universityServiceImpl struct {
	universityRepo *repositories.UniversityRepository
	branchRepo     *repositories.BranchRepository
	collegeRepo    *repositories.CollegeRepository
}

// NewUniversityService creates a new university service instance
func NewUniversityService(
	universityRepo *repositories.UniversityRepository,
	branchRepo *repositories.BranchRepository,
	collegeRepo *repositories.CollegeRepository,
) UniversityService {
	return &universityServiceImpl{
		universityRepo: universityRepo,
		branchRepo:     branchRepo,
		collegeRepo:    collegeRepo,
	}
}

// validateUniversity validates university data before database operations
func (s *universityServiceImpl) validateUniversity(university *models.University) error {
	if university == nil {
		return fmt.Errorf("%w: university is nil", apperrors.ErrValidationFailed)
	}
	if !validation.ValidName(university.Name) {
		return fmt.Errorf("%w: name must be %d-%d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}
	if !validation.ValidContactNumbers(university.ContactNumbers) {
		return fmt.Errorf("%w: contact numbers must be valid phone numbers", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateUniversity creates a new university
func (s *universityServiceImpl) CreateUniversity(ctx context.Context, university *models.University) (int64, error) {
	university.Name = strings.TrimSpace(university.Name)
	if err := s.validateUniversity(university); err != nil {
		return 0, err
	}

	id, err := s.universityRepo.Create(ctx, university)
	if err != nil {
		if errors.Is(err, repositories.ErrUniversityAlreadyExists) {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
		return 0, fmt.Errorf("error creating university: %w", err)
	}
	return id, nil
}

// GetUniversityByID retrieves a university by ID
func (s *universityServiceImpl) GetUniversityByID(ctx context.Context, id int64) (*models.University, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	university, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}
	return university, nil
}

// GetAllUniversities retrieves a page of universities plus the total count
func (s *universityServiceImpl) GetAllUniversities(ctx context.Context, offset uint64, limit int) ([]*models.University, int64, error) {
	universities, err := s.universityRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving universities: %w", err)
	}

	total, err := s.universityRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting universities: %w", err)
	}

	return universities, total, nil
}

// UpdateUniversity updates an existing university
func (s *universityServiceImpl) UpdateUniversity(ctx context.Context, university *models.University) error {
	university.Name = strings.TrimSpace(university.Name)
	if err := s.validateUniversity(university); err != nil {
		return err
	}
	if university.ID <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	err := s.universityRepo.Update(ctx, university)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUniversityNotFound
		}
		if errors.Is(err, repositories.ErrUniversityAlreadyExists) {
			return apperrors.ErrUniversityAlreadyExists
		}
		return fmt.Errorf("error updating university: %w", err)
	}
	return nil
}

// DeleteUniversity soft-deletes a university. A university that still
// owns branches or colleges cannot be deleted; deactivate those first.
func (s *universityServiceImpl) DeleteUniversity(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	branches, err := s.branchRepo.FindByUniversity(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking university branches: %w", err)
	}
	colleges, err := s.collegeRepo.FindByUniversity(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking university colleges: %w", err)
	}
	if len(branches) > 0 || len(colleges) > 0 {
		return apperrors.ErrUniversityHasRelations
	}

	err = s.universityRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUniversityNotFound
		}
		return fmt.Errorf("error deleting university: %w", err)
	}
	return nil
}
