// ABOUTME: Store handle and reserved identity constants for muse-studio persistence
// ABOUTME: Owns the KV medium, the clock, and identifier generation

package store

import (
	"log/slog"
	"time"

	"github.com/2389/muse-studio/internal/kv"
)

// Reserved identities. The admin account is distinguished by its fixed
// user ID, never by access code alone.
const (
	AdminUserID     int64 = 1337
	adminAccessCode       = "A12"
	adminFullName         = "Administrator"

	demoAccessCode = "N1"
	demoFullName   = "Demo User"
	demoAboutInfo  = "This is a demo account."
)

const (
	// dbKey is the KV slot holding the serialized state aggregate.
	dbKey = "muse_studio_db"

	// dateLayout is the calendar-day format used for quota windows.
	// Days are reckoned in UTC.
	dateLayout = "2006-01-02"
)

// Store is the persistent store for all durable application state. Every
// mutating operation is a complete load -> mutate -> save cycle against
// the KV medium; there is no partial-write state visible to subsequent
// calls within a single execution context. Concurrent writers are not
// coordinated: the last save wins.
type Store struct {
	kv     kv.KV
	logger *slog.Logger

	// now is the clock. Tests override it to control quota windows and
	// notification timestamps.
	now func() time.Time

	// lastID tracks the most recently issued identifier so that entities
	// created within the same millisecond still get distinct IDs.
	lastID int64
}

// New creates a Store over the given KV medium.
func New(medium kv.KV) *Store {
	return &Store{
		kv:     medium,
		logger: slog.Default().With("component", "store"),
		now:    time.Now,
	}
}

// newID returns a fresh unique identifier. IDs are millisecond timestamps
// bumped past the previous ID on collision, so newer entities always have
// larger IDs.
func (s *Store) newID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// today returns the current calendar day in the reference timezone (UTC).
func (s *Store) today() string {
	return s.now().UTC().Format(dateLayout)
}
