// Package partner derives the active white-label branding context from a
// selected college and its owning university. The context is in-memory
// session state, rebuilt from source entities on every activation; it is
// never treated as a source of truth.
package partner

import (
	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
)

// Context is the resolved branding/filtering context for a partner
// session. Branches holds exactly the branch records referenced by the
// college's offered set, in the university's branch order.
type Context struct {
	College    *models.College    `json:"college"`
	University *models.University `json:"university"`
	Branches   []*models.Branch   `json:"branches"`
}

// Resolve builds a Context from a college, its owning university, and the
// university's full branch list. A nil college resolves to a nil context
// (partner mode off). The pair must be an ownership pair: a university
// whose id differs from the college's university_id is a stale read on
// the caller's side and is rejected rather than silently reinterpreted.
//
// Resolve does not validate the hierarchy itself; services run the
// hierarchy validator before entities are ever persisted. It does enforce
// that only partner-enabled colleges produce a context.
func Resolve(college *models.College, university *models.University, universityBranches []*models.Branch) (*Context, error) {
	if college == nil {
		return nil, nil
	}
	if university == nil || college.UniversityID != university.ID {
		return nil, apperrors.ErrStaleReference
	}
	if !college.IsPartnered {
		return nil, apperrors.ErrNotPartnered
	}

	// University order, not offered_branches order, keeps the result
	// deterministic regardless of how the college's set was edited.
	branches := make([]*models.Branch, 0, len(college.OfferedBranches))
	for _, branch := range universityBranches {
		if college.OffersBranch(branch.ID) {
			branches = append(branches, branch)
		}
	}

	return &Context{
		College:    college,
		University: university,
		Branches:   branches,
	}, nil
}
