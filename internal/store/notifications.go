// ABOUTME: Badge-count bookkeeping: last-viewed timestamps and a dismissed-item set
// ABOUTME: Derives unread counts without ever mutating the underlying collections

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Badge sections. Scenarios use the dismissed-set mechanism; plans,
// reports, and the admin log use last-viewed timestamps. Ideas are cleared
// only by deletion.
const (
	SectionScenarios = "scenarios"
	SectionPlans     = "plans"
	SectionReports   = "reports"
	SectionIdeas     = "ideas"
	SectionLogs      = "logs"
)

// NotificationCounts is the per-user badge state. Scenarios is the raw
// outstanding-scenario count: it reflects pending actionable items, not
// read state.
type NotificationCounts struct {
	Scenarios int
	Plans     int
	Reports   int
}

// AdminNotificationCounts is the operator badge state. Ideas is the raw
// pending-idea count.
type AdminNotificationCounts struct {
	Ideas int
	Logs  int
}

const adminLogsViewKey = "lastView_admin_logs"

func lastViewKey(section string, userID int64) string {
	return fmt.Sprintf("lastView_%s_%d", section, userID)
}

func dismissedKey(userID int64) string {
	return fmt.Sprintf("dismissedNews_%d", userID)
}

// lastView reads a last-viewed timestamp (unix milliseconds). The second
// return value is false when the section has never been viewed or the
// bookkeeping value is unreadable.
func (s *Store) lastView(ctx context.Context, key string) (int64, bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return 0, false, fmt.Errorf("reading last-view slot: %w", err)
	}
	if !ok {
		return 0, false, nil
	}
	millis, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		return 0, false, nil
	}
	return millis, true, nil
}

// NotificationCounts computes the badge counts for a user. A plan is
// unread while its timestamp is strictly newer than the last view; reports
// count every entry newer than the last view; scenarios report the raw
// outstanding count.
func (s *Store) NotificationCounts(ctx context.Context, userID int64) (NotificationCounts, error) {
	var counts NotificationCounts

	scenarios, err := s.ScenariosForUser(ctx, userID)
	if err != nil {
		return counts, err
	}
	counts.Scenarios = len(scenarios)

	plan, err := s.PlanForUser(ctx, userID)
	if err != nil {
		return counts, err
	}
	if plan != nil {
		lv, viewed, err := s.lastView(ctx, lastViewKey(SectionPlans, userID))
		if err != nil {
			return counts, err
		}
		if !viewed || plan.Timestamp.UnixMilli() > lv {
			counts.Plans = 1
		}
	}

	reports, err := s.ReportsForUser(ctx, userID)
	if err != nil {
		return counts, err
	}
	lv, viewed, err := s.lastView(ctx, lastViewKey(SectionReports, userID))
	if err != nil {
		return counts, err
	}
	for _, r := range reports {
		if !viewed || r.Timestamp.UnixMilli() > lv {
			counts.Reports++
		}
	}

	return counts, nil
}

// AdminNotificationCounts computes the operator badge counts: all pending
// ideas, and activity-log entries newer than the admin's last view of the
// log.
func (s *Store) AdminNotificationCounts(ctx context.Context) (AdminNotificationCounts, error) {
	var counts AdminNotificationCounts

	state, err := s.load(ctx)
	if err != nil {
		return counts, err
	}
	counts.Ideas = len(state.PostIdeas)

	lv, _, err := s.lastView(ctx, adminLogsViewKey)
	if err != nil {
		return counts, err
	}
	for _, entry := range state.ActivityLogs {
		if entry.Timestamp.UnixMilli() > lv {
			counts.Logs++
		}
	}

	return counts, nil
}

// ClearUserNotifications marks a section as viewed for a user. Timestamp
// sections record the current time as last viewed; the scenarios section
// instead dismisses the single most-recent outstanding scenario. The
// underlying collections are never mutated.
func (s *Store) ClearUserNotifications(ctx context.Context, section string, userID int64) error {
	switch section {
	case SectionScenarios:
		return s.dismissLatest(ctx, userID, SectionScenarios)
	case SectionPlans, SectionReports:
		now := strconv.FormatInt(s.now().UnixMilli(), 10)
		if err := s.kv.Set(ctx, lastViewKey(section, userID), now); err != nil {
			return fmt.Errorf("recording last view of %s: %w", section, err)
		}
		if section == SectionPlans {
			return s.dismissLatest(ctx, userID, "plan")
		}
		return s.dismissLatest(ctx, userID, "report")
	default:
		return fmt.Errorf("unknown notification section %q", section)
	}
}

// ClearAdminNotifications marks an operator section as viewed. Ideas are
// cleared by deletion, so clearing that section is a no-op.
func (s *Store) ClearAdminNotifications(ctx context.Context, section string) error {
	switch section {
	case SectionIdeas:
		return nil
	case SectionLogs:
		now := strconv.FormatInt(s.now().UnixMilli(), 10)
		if err := s.kv.Set(ctx, adminLogsViewKey, now); err != nil {
			return fmt.Errorf("recording last view of admin logs: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown admin notification section %q", section)
	}
}

// dismissLatest records the most-recent active item of the given type in
// the user's dismissed set. Earlier outstanding items stay undismissed.
func (s *Store) dismissLatest(ctx context.Context, userID int64, itemType string) error {
	var itemID string

	switch itemType {
	case "plan":
		plan, err := s.PlanForUser(ctx, userID)
		if err != nil {
			return err
		}
		if plan != nil {
			itemID = fmt.Sprintf("plan_%d", plan.ID)
		}
	case "report":
		reports, err := s.ReportsForUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(reports) > 0 {
			itemID = fmt.Sprintf("report_%d", reports[0].ID)
		}
	case SectionScenarios:
		scenarios, err := s.ScenariosForUser(ctx, userID)
		if err != nil {
			return err
		}
		var latest *PostScenario
		for i := range scenarios {
			if latest == nil || scenarios[i].ID > latest.ID {
				latest = &scenarios[i]
			}
		}
		if latest != nil {
			itemID = fmt.Sprintf("scenarios_%d", latest.ID)
		}
	}

	if itemID == "" {
		return nil
	}

	dismissed, err := s.DismissedItems(ctx, userID)
	if err != nil {
		return err
	}
	for _, d := range dismissed {
		if d == itemID {
			return nil
		}
	}
	dismissed = append(dismissed, itemID)

	data, err := json.Marshal(dismissed)
	if err != nil {
		return fmt.Errorf("serializing dismissed set: %w", err)
	}
	if err := s.kv.Set(ctx, dismissedKey(userID), string(data)); err != nil {
		return fmt.Errorf("recording dismissed set: %w", err)
	}
	return nil
}

// DismissedItems returns the user's dismissed item identifiers
// ("{type}_{id}"). An unreadable set is treated as empty.
func (s *Store) DismissedItems(ctx context.Context, userID int64) ([]string, error) {
	raw, ok, err := s.kv.Get(ctx, dismissedKey(userID))
	if err != nil {
		return nil, fmt.Errorf("reading dismissed set: %w", err)
	}
	if !ok {
		return []string{}, nil
	}

	dismissed := []string{}
	if err := json.Unmarshal([]byte(raw), &dismissed); err != nil {
		return []string{}, nil
	}
	return dismissed, nil
}
