package draft

import (
	"context"
	"sync"
	"time"

	"tbs/src/models"
)

// MemoryStore is the in-process Store used in tests.
type MemoryStore struct {
	mu       sync.Mutex
	drafts   map[string]models.BookingDraft
	sessions map[string]models.PaymentSession
	locks    map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drafts:   make(map[string]models.BookingDraft),
		sessions: make(map[string]models.PaymentSession),
		locks:    make(map[string]time.Time),
	}
}

func (s *MemoryStore) Get(ctx context.Context, userId string) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts[userId], nil
}

func (s *MemoryStore) Save(ctx context.Context, userId string, partial models.BookingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userId] = s.drafts[userId].Merge(partial)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userId)
	return nil
}

func (s *MemoryStore) GetSession(ctx context.Context, userId string) (*models.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userId]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *MemoryStore) SaveSession(ctx context.Context, userId string, session models.PaymentSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userId] = session
	return nil
}

func (s *MemoryStore) ClearSession(ctx context.Context, userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userId)
	return nil
}

func (s *MemoryStore) TryLock(ctx context.Context, userId string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if expiry, held := s.locks[userId]; held && time.Now().Before(expiry) {
		return false, nil
	}
	s.locks[userId] = time.Now().Add(ttl)
	return true, nil
}

func (s *MemoryStore) Unlock(ctx context.Context, userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, userId)
	return nil
}
