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

// BranchService defines the interface for branch-related operations
type BranchService interface {
	CreateBranch(ctx context.Context, branch *models.Branch) (int64, error)
	GetBranchByID(ctx context.Context, id int64) (*models.Branch, error)
	GetBranchesByUniversity(ctx context.Context, universityID int64) ([]*models.Branch, error)
	UpdateBranch(ctx context.Context, branch *models.Branch) error
	UpdateBranchStatus(ctx context.Context, id int64, status models.BranchStatus) error
}

// branchServiceImpl implements the BranchService interface
type branchServiceImpl struct {
	branchRepo     *repositories.BranchRepository
	universityRepo *repositories.UniversityRepository
}

// NewBranchService creates a new branch service instance
func NewBranchService(
	branchRepo *repositories.BranchRepository,
	universityRepo *repositories.UniversityRepository,
) BranchService {
	return &branchServiceImpl{
		branchRepo:     branchRepo,
		universityRepo: universityRepo,
	}
}

// validateBranch validates branch field data before database operations
func (s *branchServiceImpl) validateBranch(branch *models.Branch) error {
	if branch == nil {
		return fmt.Errorf("%w: branch is nil", apperrors.ErrValidationFailed)
	}
	if !validation.ValidName(branch.Name) {
		return fmt.Errorf("%w: name must be %d-%d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}
	if !validation.ValidBranchCode(branch.Code) {
		return fmt.Errorf("%w: code must be 2-10 uppercase letters or digits", apperrors.ErrValidationFailed)
	}
	return nil
}

// hierarchySnapshot loads the university owning the branch for the pure
// validator. Callers must commit university writes before dependent
// branch writes; this read observes the latest committed state.
func (s *branchServiceImpl) hierarchySnapshot(ctx context.Context, universityID int64) ([]*models.University, error) {
	university, err := s.universityRepo.GetByID(ctx, universityID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Let the validator produce the dangling-reference error.
			return nil, nil
		}
		return nil, fmt.Errorf("error loading university for validation: %w", err)
	}
	return []*models.University{university}, nil
}

// CreateBranch creates a new branch after hierarchy validation
func (s *branchServiceImpl) CreateBranch(ctx context.Context, branch *models.Branch) (int64, error) {
	branch.Name = strings.TrimSpace(branch.Name)
	branch.Code = strings.TrimSpace(branch.Code)
	if branch.Status == "" {
		branch.Status = models.BranchStatusActive
	}

	if err := s.validateBranch(branch); err != nil {
		return 0, err
	}

	universities, err := s.hierarchySnapshot(ctx, branch.UniversityID)
	if err != nil {
		return 0, err
	}
	if err := ValidateBranch(branch, universities); err != nil {
		return 0, err
	}

	id, err := s.branchRepo.Create(ctx, branch)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchAlreadyExists) {
			return 0, apperrors.ErrBranchAlreadyExists
		}
		return 0, fmt.Errorf("error creating branch: %w", err)
	}
	return id, nil
}

// GetBranchByID retrieves a branch by ID
func (s *branchServiceImpl) GetBranchByID(ctx context.Context, id int64) (*models.Branch, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid branch ID", apperrors.ErrValidationFailed)
	}

	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("error retrieving branch: %w", err)
	}
	return branch, nil
}

// GetBranchesByUniversity retrieves all branches of a university
func (s *branchServiceImpl) GetBranchesByUniversity(ctx context.Context, universityID int64) ([]*models.Branch, error) {
	if universityID <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	branches, err := s.branchRepo.FindByUniversity(ctx, universityID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving branches: %w", err)
	}
	return branches, nil
}

// UpdateBranch updates a branch's mutable fields. The owning university
// never changes, so no hierarchy re-validation is needed here.
func (s *branchServiceImpl) UpdateBranch(ctx context.Context, branch *models.Branch) error {
	branch.Name = strings.TrimSpace(branch.Name)
	branch.Code = strings.TrimSpace(branch.Code)
	if err := s.validateBranch(branch); err != nil {
		return err
	}
	if branch.ID <= 0 {
		return fmt.Errorf("%w: invalid branch ID", apperrors.ErrValidationFailed)
	}

	err := s.branchRepo.Update(ctx, branch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrBranchNotFound
		}
		if errors.Is(err, repositories.ErrBranchAlreadyExists) {
			return apperrors.ErrBranchAlreadyExists
		}
		return fmt.Errorf("error updating branch: %w", err)
	}
	return nil
}

// UpdateBranchStatus toggles a branch between active and inactive.
// Deactivation does not revoke the branch from colleges that offer it;
// existing offerings stand until an admin edits the college.
func (s *branchServiceImpl) UpdateBranchStatus(ctx context.Context, id int64, status models.BranchStatus) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid branch ID", apperrors.ErrValidationFailed)
	}
	if status != models.BranchStatusActive && status != models.BranchStatusInactive {
		return fmt.Errorf("%w: status must be active or inactive", apperrors.ErrValidationFailed)
	}

	err := s.branchRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrBranchNotFound
		}
		return fmt.Errorf("error updating branch status: %w", err)
	}
	return nil
}
