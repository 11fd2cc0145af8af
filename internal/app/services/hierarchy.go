package services

import (
	"fmt"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
)

// The hierarchy validator enforces referential and subset invariants
// between universities, branches, and colleges. Validation is pure: it
// reads the candidate entity against snapshots of its parents and never
// touches the store. Services run it before every create/update commit;
// a failed validation means the repository call is never made.

// ValidateBranch checks that the branch's owning university exists and is
// not soft-deleted.
func ValidateBranch(branch *models.Branch, universities []*models.University) error {
	if findUniversity(universities, branch.UniversityID) == nil {
		return fmt.Errorf("%w: branch %q references university %d",
			apperrors.ErrDanglingReference, branch.Name, branch.UniversityID)
	}
	return nil
}

// ValidateCollege checks that the college's owning university exists and
// that every offered branch id resolves to a branch of that same
// university. A college can never offer a branch from a foreign
// university, nor reference a branch that does not exist.
func ValidateCollege(college *models.College, universities []*models.University, branches []*models.Branch) error {
	if findUniversity(universities, college.UniversityID) == nil {
		return fmt.Errorf("%w: college %q references university %d",
			apperrors.ErrDanglingReference, college.Name, college.UniversityID)
	}

	byID := make(map[int64]*models.Branch, len(branches))
	for _, b := range branches {
		byID[b.ID] = b
	}

	for _, branchID := range college.OfferedBranches {
		branch, ok := byID[branchID]
		if !ok {
			return fmt.Errorf("%w: offered branch %d does not exist",
				apperrors.ErrInvalidOffering, branchID)
		}
		if branch.UniversityID != college.UniversityID {
			return fmt.Errorf("%w: offered branch %d belongs to university %d, not %d",
				apperrors.ErrInvalidOffering, branchID, branch.UniversityID, college.UniversityID)
		}
	}

	return nil
}

func findUniversity(universities []*models.University, id int64) *models.University {
	for _, u := range universities {
		if u.ID == id && !u.IsDeleted() {
			return u
		}
	}
	return nil
}
