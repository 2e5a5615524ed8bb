// ABOUTME: Per-user daily usage counters with transparent calendar-day rollover
// ABOUTME: Counts and reports against display limits; hard caps live in the caller

package store

import (
	"context"
	"fmt"
)

// UsageKind identifies one of the three tracked action types.
type UsageKind string

// Tracked action types.
const (
	UsageStory UsageKind = "story"
	UsageImage UsageKind = "image"
	UsageChat  UsageKind = "chat"
)

// Daily display limits per action type. The store only counts against
// these; rejecting further requests is the responsibility of whoever calls
// the generation backend.
const (
	StoryDailyLimit = 1
	ImageDailyLimit = 5
	ChatDailyLimit  = 10
)

// rollUsageDay zeroes all three counters and advances the quota window if
// the stored day is not today. Reports whether the user changed.
func (s *Store) rollUsageDay(u *User) bool {
	today := s.today()
	if u.LastRequestDate == today {
		return false
	}
	u.StoryRequests = 0
	u.ImageRequests = 0
	u.ChatMessages = 0
	u.LastRequestDate = today
	return true
}

// IncrementUsage rolls the user's quota window if needed, increments the
// counter for kind, and records the new count in the activity log. Unknown
// users are a silent no-op.
func (s *Store) IncrementUsage(ctx context.Context, userID int64, kind UsageKind) error {
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

	s.rollUsageDay(user)

	var action string
	switch kind {
	case UsageStory:
		user.StoryRequests++
		action = fmt.Sprintf("generated a story scenario (%d/%d)", user.StoryRequests, StoryDailyLimit)
	case UsageImage:
		user.ImageRequests++
		action = fmt.Sprintf("generated an image (%d/%d)", user.ImageRequests, ImageDailyLimit)
	case UsageChat:
		user.ChatMessages++
		action = fmt.Sprintf("sent a chat message (%d/%d)", user.ChatMessages, ChatDailyLimit)
	default:
		return fmt.Errorf("unknown usage kind %q", kind)
	}

	s.save(ctx, state)
	return s.LogActivity(ctx, userID, action)
}

// UsageCount returns the current counter for kind, rolling the quota
// window first so a caller consulting the counters never sees yesterday's
// numbers. Unknown users report zero.
func (s *Store) UsageCount(ctx context.Context, userID int64, kind UsageKind) (int, error) {
	state, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	for i := range state.Users {
		u := &state.Users[i]
		if u.UserID != userID {
			continue
		}
		if s.rollUsageDay(u) {
			s.save(ctx, state)
		}
		switch kind {
		case UsageStory:
			return u.StoryRequests, nil
		case UsageImage:
			return u.ImageRequests, nil
		case UsageChat:
			return u.ChatMessages, nil
		default:
			return 0, fmt.Errorf("unknown usage kind %q", kind)
		}
	}
	return 0, nil
}
