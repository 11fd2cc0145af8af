package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/kaan/edusphere/internal/app/partner"
	"github.com/kaan/edusphere/internal/app/repositories"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
	"github.com/kaan/edusphere/internal/pkg/logger"
)

// PartnerService manages per-user partner sessions. It is the store-facing
// façade over the partner package: it loads the college, its owning
// university, and the university's branches, then delegates resolution.
type PartnerService interface {
	ActivatePartner(ctx context.Context, userID int64, collegeID int64) (*partner.Context, error)
	DeactivatePartner(ctx context.Context, userID int64) error
	GetPartnerState(ctx context.Context, userID int64) (*partner.Context, bool)
}

// partnerServiceImpl implements the PartnerService interface
type partnerServiceImpl struct {
	collegeRepo    *repositories.CollegeRepository
	universityRepo *repositories.UniversityRepository
	branchRepo     *repositories.BranchRepository
	store          partner.Store

	mu       sync.Mutex
	sessions map[int64]*partner.Session
}

// NewPartnerService creates a new partner service instance. The store is
// the optional persistence hook; pass partner.NopStore for memory-only
// sessions.
func NewPartnerService(
	collegeRepo *repositories.CollegeRepository,
	universityRepo *repositories.UniversityRepository,
	branchRepo *repositories.BranchRepository,
	store partner.Store,
) PartnerService {
	return &partnerServiceImpl{
		collegeRepo:    collegeRepo,
		universityRepo: universityRepo,
		branchRepo:     branchRepo,
		store:          store,
		sessions:       make(map[int64]*partner.Session),
	}
}

func (s *partnerServiceImpl) session(userID int64) *partner.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = partner.NewSession()
		s.sessions[userID] = sess
	}
	return sess
}

func sessionID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// ActivatePartner resolves and installs a partner context for the user
// from the college's current committed state.
func (s *partnerServiceImpl) ActivatePartner(ctx context.Context, userID int64, collegeID int64) (*partner.Context, error) {
	college, err := s.collegeRepo.GetByID(ctx, collegeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error loading college: %w", err)
	}

	university, err := s.universityRepo.GetByID(ctx, college.UniversityID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Owning university is gone or soft-deleted: the pair cannot
			// be formed from committed state.
			return nil, apperrors.ErrStaleReference
		}
		return nil, fmt.Errorf("error loading university: %w", err)
	}

	branches, err := s.branchRepo.FindByUniversity(ctx, college.UniversityID)
	if err != nil {
		return nil, fmt.Errorf("error loading branches: %w", err)
	}

	resolved, err := s.session(userID).SetPartnerCollege(college, university, branches)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, sessionID(userID), resolved); err != nil {
		// The in-memory context is installed; persistence is an explicit
		// extra guarantee, so surface the failure instead of hiding it.
		return nil, fmt.Errorf("partner context activated but not persisted: %w", err)
	}

	logger.Info().Int64("userID", userID).Int64("collegeID", collegeID).Msg("Partner context activated")
	return resolved, nil
}

// DeactivatePartner clears the user's partner context
func (s *partnerServiceImpl) DeactivatePartner(ctx context.Context, userID int64) error {
	s.session(userID).ClearPartnerContext()

	if err := s.store.Delete(ctx, sessionID(userID)); err != nil {
		return fmt.Errorf("error deleting persisted partner context: %w", err)
	}

	logger.Info().Int64("userID", userID).Msg("Partner context cleared")
	return nil
}

// GetPartnerState returns the active context and whether partner mode is
// on. When the in-memory session is empty it consults the persistence
// hook, so a previously saved context survives process restarts.
func (s *partnerServiceImpl) GetPartnerState(ctx context.Context, userID int64) (*partner.Context, bool) {
	sess := s.session(userID)
	if pc := sess.Context(); pc != nil {
		return pc, true
	}

	pc, err := s.store.Load(ctx, sessionID(userID))
	if err != nil {
		if !errors.Is(err, partner.ErrContextNotFound) {
			logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to load persisted partner context")
		}
		return nil, false
	}

	// Reinstall through the resolver so the invariants hold for restored
	// contexts too.
	restored, err := sess.SetPartnerCollege(pc.College, pc.University, pc.Branches)
	if err != nil {
		logger.Warn().Err(err).Int64("userID", userID).Msg("Persisted partner context is no longer valid")
		return nil, false
	}

	return restored, true
}
