package dialogue

import (
	"log/slog"
	"sync"
	"time"
)

// Store owns the session map. One coarse lock serializes every read and
// mutation; a whole turn, price lookup included, runs inside Update, so at
// most one turn per session is ever in flight and the sweep can never
// observe a session mid-turn.
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	retention time.Duration
	now       func() time.Time
}

func NewStore(retention time.Duration) *Store {
	return &Store{
		sessions:  make(map[string]*Session),
		retention: retention,
		now:       time.Now,
	}
}

func (s *Store) Upsert(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get returns a snapshot copy of a session or ErrNotFound.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return sess.snapshot(), nil
}

// Update runs fn on the live session under the store lock. fn errors are
// returned as-is; an unknown id yields ErrNotFound.
func (s *Store) Update(id string, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(sess)
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// SweepExpired removes ended sessions older than the retention window and
// returns how many were removed. Called opportunistically on poll access,
// never from a timer.
func (s *Store) SweepExpired() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.Ended && now.Sub(sess.CreatedAt) > s.retention {
			slog.Info("cleaning up old session", "session_id", id)
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
