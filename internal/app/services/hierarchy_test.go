package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
)

func TestValidateBranch(t *testing.T) {
	universities := []*models.University{
		{ID: 1, Name: "Horizon State University"},
		{ID: 2, Name: "Coastal University"},
	}

	t.Run("valid branch passes", func(t *testing.T) {
		branch := &models.Branch{UniversityID: 1, Name: "Computer Science", Code: "CSE"}
		assert.NoError(t, ValidateBranch(branch, universities))
	})

	t.Run("unknown university is a dangling reference", func(t *testing.T) {
		branch := &models.Branch{UniversityID: 99, Name: "Computer Science", Code: "CSE"}
		err := ValidateBranch(branch, universities)
		assert.ErrorIs(t, err, apperrors.ErrDanglingReference)
	})

	t.Run("soft-deleted university is invisible", func(t *testing.T) {
		deletedAt := time.Now()
		withDeleted := []*models.University{
			{ID: 1, Name: "Horizon State University", DeletedAt: &deletedAt},
		}
		branch := &models.Branch{UniversityID: 1, Name: "Computer Science", Code: "CSE"}
		err := ValidateBranch(branch, withDeleted)
		assert.ErrorIs(t, err, apperrors.ErrDanglingReference)
	})
}

func TestValidateCollege(t *testing.T) {
	universities := []*models.University{
		{ID: 1, Name: "Horizon State University"},
		{ID: 2, Name: "Coastal University"},
	}
	branches := []*models.Branch{
		{ID: 10, UniversityID: 1, Name: "Computer Science", Code: "CSE"},
		{ID: 11, UniversityID: 1, Name: "Electronics", Code: "ECE"},
		{ID: 20, UniversityID: 2, Name: "Marine Biology", Code: "MAR"},
	}

	t.Run("college offering own branches passes", func(t *testing.T) {
		college := &models.College{UniversityID: 1, Name: "Tech Institute", OfferedBranches: []int64{10, 11}}
		assert.NoError(t, ValidateCollege(college, universities, branches))
	})

	t.Run("empty offered set passes", func(t *testing.T) {
		college := &models.College{UniversityID: 1, Name: "Tech Institute"}
		assert.NoError(t, ValidateCollege(college, universities, branches))
	})

	t.Run("unknown university is a dangling reference", func(t *testing.T) {
		college := &models.College{UniversityID: 99, Name: "Tech Institute"}
		err := ValidateCollege(college, universities, branches)
		assert.ErrorIs(t, err, apperrors.ErrDanglingReference)
	})

	t.Run("offering a non-existent branch fails", func(t *testing.T) {
		college := &models.College{UniversityID: 1, Name: "Tech Institute", OfferedBranches: []int64{10, 999}}
		err := ValidateCollege(college, universities, branches)
		assert.ErrorIs(t, err, apperrors.ErrInvalidOffering)
	})

	t.Run("offering a foreign university's branch fails", func(t *testing.T) {
		college := &models.College{UniversityID: 1, Name: "Tech Institute", OfferedBranches: []int64{10, 20}}
		err := ValidateCollege(college, universities, branches)
		assert.ErrorIs(t, err, apperrors.ErrInvalidOffering)
	})
}
