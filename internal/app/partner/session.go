package partner

import (
	"sync"

	"github.com/kaan/edusphere/internal/app/models"
)

// Session holds the active partner context for one authenticated user
// session. Its lifetime is the session's, not the process's; callers
// create one at session start and drop it at session end.
//
// Replacement is atomic: readers either see the previous context or the
// new one, never a partially-built mix. The session does not watch for
// hierarchy edits; a college edited while its context is active stays
// stale until the caller re-resolves.
type Session struct {
	mu  sync.RWMutex
	ctx *Context
}

// NewSession creates an empty session (partner mode off).
func NewSession() *Session {
	return &Session{}
}

// SetPartnerCollege resolves and installs a new context in one step. A
// nil college clears the session. On resolution error the previous
// context is kept untouched.
func (s *Session) SetPartnerCollege(college *models.College, university *models.University, universityBranches []*models.Branch) (*Context, error) {
	resolved, err := Resolve(college, university, universityBranches)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.ctx = resolved
	s.mu.Unlock()

	return resolved, nil
}

// ClearPartnerContext drops the active context. Equivalent to resolving
// with a nil college.
func (s *Session) ClearPartnerContext() {
	s.mu.Lock()
	s.ctx = nil
	s.mu.Unlock()
}

// Context returns the active context, or nil when partner mode is off.
func (s *Session) Context() *Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctx
}

// IsPartnerMode reports whether a context is held. True iff Context()
// is non-nil.
func (s *Session) IsPartnerMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctx != nil
}
