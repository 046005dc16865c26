package usecase

import (
	"sync"

	"github.com/google/uuid"
)

type SessionState string

const (
	SessionIdle     SessionState = "idle"
	SessionInFlight SessionState = "in_flight"
	SessionReady    SessionState = "ready"
)

type session struct {
	latest   uint64
	inFlight int
	current  *AnalysisResult
	history  []AnalysisResult
	loaded   bool
}

func (s *session) state() SessionState {
	switch {
	case s.inFlight > 0:
		return SessionInFlight
	case s.current != nil:
		return SessionReady
	default:
		return SessionIdle
	}
}

type sessions struct {
	mu    sync.Mutex
	seq   uint64
	limit int
	byID  map[uuid.UUID]*session
}

func newSessions(limit int) *sessions {
	return &sessions{limit: limit, byID: map[uuid.UUID]*session{}}
}

func (s *sessions) get(userID uuid.UUID) *session {
	sess, ok := s.byID[userID]
	if !ok {
		sess = &session{}
		s.byID[userID] = sess
	}
	return sess
}

// begin issues the next request id and marks it as the latest for userID.
func (s *sessions) begin(userID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	sess := s.get(userID)
	sess.latest = s.seq
	sess.inFlight++
	return s.seq
}

func (s *sessions) isLatest(userID uuid.UUID, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(userID).latest == id
}

// commit records res when id is still the latest request and reports whether it
// did.
func (s *sessions) commit(userID uuid.UUID, id uint64, res AnalysisResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userID)
	sess.inFlight--
	if sess.latest != id {
		return false
	}
	cur := res.Clone()
	sess.current = &cur
	sess.history = append([]AnalysisResult{res.Clone()}, sess.history...)
	if s.limit > 0 && len(sess.history) > s.limit {
		sess.history = sess.history[:s.limit]
	}
	return true
}

func (s *sessions) abandon(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).inFlight--
}

func (s *sessions) snapshot(userID uuid.UUID) (SessionState, *AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userID)
	if sess.current == nil {
		return sess.state(), nil
	}
	cur := sess.current.Clone()
	return sess.state(), &cur
}

func (s *sessions) history(userID uuid.UUID, limit int) ([]AnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userID)
	n := len(sess.history)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]AnalysisResult, 0, n)
	for _, r := range sess.history[:n] {
		out = append(out, r.Clone())
	}
	return out, sess.loaded
}

// restore seeds an empty history from durable storage. Results recorded in the
// meantime win.
func (s *sessions) restore(userID uuid.UUID, items []AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userID)
	sess.loaded = true
	if len(sess.history) > 0 {
		return
	}
	for _, r := range items {
		sess.history = append(sess.history, r.Clone())
	}
	if s.limit > 0 && len(sess.history) > s.limit {
		sess.history = sess.history[:s.limit]
	}
}
