package draft

import (
	"context"
	"time"

	"tbs/src/models"
)

// Store persists per-user booking state: the draft being assembled, the
// payment session of a finalized booking, and the short-lived finalize lock
// that guards against double submission. Scoping is by the authenticated
// user's id; drafts never expire on their own.
type Store interface {
	Get(ctx context.Context, userId string) (models.BookingDraft, error)
	// Save shallow-merges partial into the stored draft.
	Save(ctx context.Context, userId string, partial models.BookingDraft) error
	Clear(ctx context.Context, userId string) error

	GetSession(ctx context.Context, userId string) (*models.PaymentSession, error)
	SaveSession(ctx context.Context, userId string, session models.PaymentSession) error
	ClearSession(ctx context.Context, userId string) error

	// TryLock acquires the per-user finalize lock, reporting false when a
	// finalize or confirm call is already in flight.
	TryLock(ctx context.Context, userId string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, userId string) error
}

var store Store

func GetStore() Store {
	if store != nil {
		return store
	}
	store = NewRedisStore()
	return store
}

// NewStore Replace store instance with custom implementation
func NewStore(s Store) Store {
	store = s
	return store
}
