package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
)

func TestSessionLifecycle(t *testing.T) {
	session := NewSession()
	assert.False(t, session.IsPartnerMode())
	assert.Nil(t, session.Context())

	college := &models.College{
		ID: 5, UniversityID: 1, Name: "Tech Institute",
		OfferedBranches: []int64{10},
		IsPartnered:     true,
	}

	ctx, err := session.SetPartnerCollege(college, testUniversity(), testBranches())
	require.NoError(t, err)
	require.NotNil(t, ctx)
	assert.True(t, session.IsPartnerMode())
	assert.Equal(t, ctx, session.Context())

	session.ClearPartnerContext()
	assert.False(t, session.IsPartnerMode())
	assert.Nil(t, session.Context())
}

func TestSessionSetNilCollegeClears(t *testing.T) {
	session := NewSession()

	college := &models.College{ID: 5, UniversityID: 1, IsPartnered: true}
	_, err := session.SetPartnerCollege(college, testUniversity(), testBranches())
	require.NoError(t, err)
	require.True(t, session.IsPartnerMode())

	ctx, err := session.SetPartnerCollege(nil, nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, ctx)
	assert.False(t, session.IsPartnerMode())
}

func TestSessionKeepsContextOnResolveError(t *testing.T) {
	session := NewSession()

	partnered := &models.College{ID: 5, UniversityID: 1, IsPartnered: true}
	active, err := session.SetPartnerCollege(partnered, testUniversity(), testBranches())
	require.NoError(t, err)

	// Switching to a non-partnered college fails and must not disturb
	// the installed context.
	plain := &models.College{ID: 6, UniversityID: 1}
	_, err = session.SetPartnerCollege(plain, testUniversity(), testBranches())
	assert.ErrorIs(t, err, apperrors.ErrNotPartnered)
	assert.True(t, session.IsPartnerMode())
	assert.Equal(t, active, session.Context())
}

func TestSessionReplaceContext(t *testing.T) {
	session := NewSession()

	first := &models.College{ID: 5, UniversityID: 1, IsPartnered: true, OfferedBranches: []int64{10}}
	_, err := session.SetPartnerCollege(first, testUniversity(), testBranches())
	require.NoError(t, err)

	second := &models.College{ID: 6, UniversityID: 1, IsPartnered: true, OfferedBranches: []int64{11}}
	ctx, err := session.SetPartnerCollege(second, testUniversity(), testBranches())
	require.NoError(t, err)

	assert.Equal(t, int64(6), ctx.College.ID)
	assert.Equal(t, ctx, session.Context())
	require.Len(t, ctx.Branches, 1)
	assert.Equal(t, "ECE", ctx.Branches[0].Code)
}
