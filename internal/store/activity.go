// ABOUTME: Bounded newest-first activity log of non-admin user actions
// ABOUTME: Entries snapshot the user's name at the time of the action

package store

import "context"

// activityLogCap bounds the activity log; the oldest entry is dropped on
// an append past the cap.
const activityLogCap = 100

// LogActivity appends an entry describing a user action. Admin actions and
// actions for unknown users are silently skipped.
func (s *Store) LogActivity(ctx context.Context, userID int64, action string) error {
	if IsAdminUser(userID) {
		return nil
	}

	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	var user *User
	for i := range state.Users {
		if state.Users[i].UserID == userID {
			user = &state.Users[i]
			break
		}
	}
	if user == nil {
		return nil
	}

	entry := ActivityEntry{
		ID:           s.newID(),
		UserID:       userID,
		UserFullName: user.FullName,
		Action:       action,
		Timestamp:    s.now().UTC(),
	}

	// Newest first; evict the oldest past the cap.
	state.ActivityLogs = append([]ActivityEntry{entry}, state.ActivityLogs...)
	if len(state.ActivityLogs) > activityLogCap {
		state.ActivityLogs = state.ActivityLogs[:activityLogCap]
	}

	s.save(ctx, state)
	return nil
}

// ActivityLogs returns the log in stored (newest-first) order, unfiltered.
func (s *Store) ActivityLogs(ctx context.Context) ([]ActivityEntry, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return state.ActivityLogs, nil
}
