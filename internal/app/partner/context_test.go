package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
)

func testUniversity() *models.University {
	return &models.University{ID: 1, Name: "Horizon State University"}
}

func testBranches() []*models.Branch {
	return []*models.Branch{
		{ID: 10, UniversityID: 1, Name: "Computer Science", Code: "CSE"},
		{ID: 11, UniversityID: 1, Name: "Electronics", Code: "ECE"},
	}
}

func TestResolve(t *testing.T) {
	t.Run("nil college resolves to nil context", func(t *testing.T) {
		ctx, err := Resolve(nil, testUniversity(), testBranches())
		assert.NoError(t, err)
		assert.Nil(t, ctx)
	})

	t.Run("partnered college yields only its offered branches", func(t *testing.T) {
		college := &models.College{
			ID: 5, UniversityID: 1, Name: "Tech Institute",
			OfferedBranches: []int64{10},
			IsPartnered:     true,
		}

		ctx, err := Resolve(college, testUniversity(), testBranches())
		require.NoError(t, err)
		require.NotNil(t, ctx)

		assert.Equal(t, college, ctx.College)
		assert.Equal(t, int64(1), ctx.University.ID)
		require.Len(t, ctx.Branches, 1)
		assert.Equal(t, "CSE", ctx.Branches[0].Code)
	})

	t.Run("mismatched university is rejected", func(t *testing.T) {
		college := &models.College{ID: 5, UniversityID: 2, Name: "Tech Institute", IsPartnered: true}

		ctx, err := Resolve(college, testUniversity(), testBranches())
		assert.ErrorIs(t, err, apperrors.ErrStaleReference)
		assert.Nil(t, ctx)
	})

	t.Run("nil university is rejected", func(t *testing.T) {
		college := &models.College{ID: 5, UniversityID: 1, Name: "Tech Institute", IsPartnered: true}

		ctx, err := Resolve(college, nil, testBranches())
		assert.ErrorIs(t, err, apperrors.ErrStaleReference)
		assert.Nil(t, ctx)
	})

	t.Run("non-partnered college is rejected", func(t *testing.T) {
		college := &models.College{ID: 5, UniversityID: 1, Name: "Tech Institute", OfferedBranches: []int64{10}}

		ctx, err := Resolve(college, testUniversity(), testBranches())
		assert.ErrorIs(t, err, apperrors.ErrNotPartnered)
		assert.Nil(t, ctx)
	})

	t.Run("branch order follows the university list", func(t *testing.T) {
		// Offered set is stored in edit order; the resolved context must
		// not depend on it.
		college := &models.College{
			ID: 5, UniversityID: 1, Name: "Tech Institute",
			OfferedBranches: []int64{11, 10},
			IsPartnered:     true,
		}

		ctx, err := Resolve(college, testUniversity(), testBranches())
		require.NoError(t, err)
		require.Len(t, ctx.Branches, 2)
		assert.Equal(t, "CSE", ctx.Branches[0].Code)
		assert.Equal(t, "ECE", ctx.Branches[1].Code)
	})

	t.Run("offered ids missing from the branch list are skipped", func(t *testing.T) {
		college := &models.College{
			ID: 5, UniversityID: 1, Name: "Tech Institute",
			OfferedBranches: []int64{10, 999},
			IsPartnered:     true,
		}

		ctx, err := Resolve(college, testUniversity(), testBranches())
		require.NoError(t, err)
		require.Len(t, ctx.Branches, 1)
		assert.Equal(t, int64(10), ctx.Branches[0].ID)
	})

	t.Run("resolution is deterministic", func(t *testing.T) {
		college := &models.College{
			ID: 5, UniversityID: 1, Name: "Tech Institute",
			OfferedBranches: []int64{10, 11},
			IsPartnered:     true,
		}

		first, err := Resolve(college, testUniversity(), testBranches())
		require.NoError(t, err)
		second, err := Resolve(college, testUniversity(), testBranches())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
