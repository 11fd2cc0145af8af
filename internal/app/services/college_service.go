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

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	CreateCollege(ctx context.Context, college *models.College) (int64, error)
	GetCollegeByID(ctx context.Context, id int64) (*models.College, error)
	GetCollegesByUniversity(ctx context.Context, universityID int64) ([]*models.College, error)
	GetPartneredColleges(ctx context.Context) ([]*models.College, error)
	UpdateCollege(ctx context.Context, college *models.College) error
	DeleteCollege(ctx context.Context, id int64) error
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo    *repositories.CollegeRepository
	branchRepo     *repositories.BranchRepository
	universityRepo *repositories.UniversityRepository
}

// NewCollegeService creates a new college service instance
func NewCollegeService(
	collegeRepo *repositories.CollegeRepository,
	branchRepo *repositories.BranchRepository,
	universityRepo *repositories.UniversityRepository,
) CollegeService {
	return &collegeServiceImpl{
		collegeRepo:    collegeRepo,
		branchRepo:     branchRepo,
		universityRepo: universityRepo,
	}
}

// validateCollegeFields validates field-level data before database operations
func (s *collegeServiceImpl) validateCollegeFields(college *models.College) error {
	if college == nil {
		return fmt.Errorf("%w: college is nil", apperrors.ErrValidationFailed)
	}
	if !validation.ValidName(college.Name) {
		return fmt.Errorf("%w: name must be %d-%d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}
	if !validation.ValidContactNumbers(college.ContactNumbers) {
		return fmt.Errorf("%w: contact numbers must be valid phone numbers", apperrors.ErrValidationFailed)
	}
	return nil
}

// validateHierarchy runs the pure hierarchy validator against a fresh
// snapshot of the college's university and that university's branches.
// University and branch writes must be committed before dependent
// college writes; only committed state is visible here.
func (s *collegeServiceImpl) validateHierarchy(ctx context.Context, college *models.College) error {
	var universities []*models.University
	university, err := s.universityRepo.GetByID(ctx, college.UniversityID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("error loading university for validation: %w", err)
	}
	if err == nil {
		universities = append(universities, university)
	}

	branches, err := s.branchRepo.FindByUniversity(ctx, college.UniversityID)
	if err != nil {
		return fmt.Errorf("error loading branches for validation: %w", err)
	}

	return ValidateCollege(college, universities, branches)
}

// CreateCollege creates a new college after hierarchy validation
func (s *collegeServiceImpl) CreateCollege(ctx context.Context, college *models.College) (int64, error) {
	college.Name = strings.TrimSpace(college.Name)
	if err := s.validateCollegeFields(college); err != nil {
		return 0, err
	}
	if err := s.validateHierarchy(ctx, college); err != nil {
		return 0, err
	}

	id, err := s.collegeRepo.Create(ctx, college)
	if err != nil {
		if errors.Is(err, repositories.ErrCollegeAlreadyExists) {
			return 0, apperrors.ErrCollegeAlreadyExists
		}
		return 0, fmt.Errorf("error creating college: %w", err)
	}
	return id, nil
}

// GetCollegeByID retrieves a college by ID
func (s *collegeServiceImpl) GetCollegeByID(ctx context.Context, id int64) (*models.College, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid college ID", apperrors.ErrValidationFailed)
	}

	college, err := s.collegeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}
	return college, nil
}

// GetCollegesByUniversity retrieves all colleges of a university
func (s *collegeServiceImpl) GetCollegesByUniversity(ctx context.Context, universityID int64) ([]*models.College, error) {
	if universityID <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	colleges, err := s.collegeRepo.FindByUniversity(ctx, universityID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, nil
}

// GetPartneredColleges retrieves all colleges with partner mode enabled
func (s *collegeServiceImpl) GetPartneredColleges(ctx context.Context) ([]*models.College, error) {
	colleges, err := s.collegeRepo.FindPartnered(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving partnered colleges: %w", err)
	}
	return colleges, nil
}

// UpdateCollege updates an existing college after hierarchy validation.
// An active partner context built from this college is not refreshed;
// callers must re-resolve to observe the new offered-branches set.
func (s *collegeServiceImpl) UpdateCollege(ctx context.Context, college *models.College) error {
	college.Name = strings.TrimSpace(college.Name)
	if err := s.validateCollegeFields(college); err != nil {
		return err
	}
	if college.ID <= 0 {
		return fmt.Errorf("%w: invalid college ID", apperrors.ErrValidationFailed)
	}

	existing, err := s.collegeRepo.GetByID(ctx, college.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCollegeNotFound
		}
		return fmt.Errorf("error retrieving college: %w", err)
	}
	// The owning university is immutable; ignore any attempt to move it.
	college.UniversityID = existing.UniversityID

	if err := s.validateHierarchy(ctx, college); err != nil {
		return err
	}

	err = s.collegeRepo.Update(ctx, college)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCollegeNotFound
		}
		if errors.Is(err, repositories.ErrCollegeAlreadyExists) {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error updating college: %w", err)
	}
	return nil
}

// DeleteCollege deletes a college by ID
func (s *collegeServiceImpl) DeleteCollege(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid college ID", apperrors.ErrValidationFailed)
	}

	err := s.collegeRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCollegeNotFound
		}
		return fmt.Errorf("error deleting college: %w", err)
	}
	return nil
}
