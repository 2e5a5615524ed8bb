// ABOUTME: Tests for badge counts and the dual clearing mechanisms
// ABOUTME: Covers view timestamps, the dismissed set, and raw pending counts

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationCounts_PlanUnreadUntilViewed(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	setClock(s, base)
	require.NoError(t, s.SavePlanForUser(ctx, 42, "a plan"))

	counts, err := s.NotificationCounts(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Plans)

	setClock(s, base.Add(time.Minute))
	require.NoError(t, s.ClearUserNotifications(ctx, SectionPlans, 42))

	counts, err = s.NotificationCounts(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Plans)

	// A newer plan makes the badge reappear
	setClock(s, base.Add(2*time.Minute))
	require.NoError(t, s.SavePlanForUser(ctx, 42, "updated plan"))

	counts, err = s.NotificationCounts(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Plans)
}

func TestNotificationCounts_ReportsNewerThanLastView(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	setClock(s, base)
	require.NoError(t, s.SaveReportForUser(ctx, 42, "old report"))

	setClock(s, base.Add(time.Minute))
	require.NoError(t, s.ClearUserNotifications(ctx, SectionReports, 42))

	setClock(s, base.Add(2*time.Minute))
	require.NoError(t, s.SaveReportForUser(ctx, 42, "new report"))
	setClock(s, base.Add(3*time.Minute))
	require.NoError(t, s.SaveReportForUser(ctx, 42, "newer report"))

	counts, err := s.NotificationCounts(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Reports)
}

func TestNotificationCounts_ScenariosAreRawPendingCount(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddScenarioForUser(ctx, 42, 1, "one"))
	require.NoError(t, s.AddScenarioForUser(ctx, 42, 2, "two"))

	// Clearing dismisses only the most-recent item and never gates the
	// badge: it reflects pending actionable items, not read state.
	require.NoError(t, s.ClearUserNotifications(ctx, SectionScenarios, 42))

	counts, err := s.NotificationCounts(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Scenarios)

	dismissed, err := s.DismissedItems(ctx, 42)
	require.NoError(t, err)
	require.Len(t, dismissed, 1)

	scenarios, err := s.ScenariosForUser(ctx, 42)
	require.NoError(t, err)
	latest := scenarios[len(scenarios)-1]
	assert.Contains(t, dismissed[0], "scenarios_")
	assert.NotEmpty(t, latest)
}

func TestClearUserNotifications_NeverMutatesContent(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SavePlanForUser(ctx, 42, "a plan"))
	require.NoError(t, s.SaveReportForUser(ctx, 42, "a report"))
	require.NoError(t, s.AddScenarioForUser(ctx, 42, 1, "a scenario"))

	for _, section := range []string{SectionScenarios, SectionPlans, SectionReports} {
		require.NoError(t, s.ClearUserNotifications(ctx, section, 42))
	}

	plan, err := s.PlanForUser(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, plan)

	reports, err := s.ReportsForUser(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	scenarios, err := s.ScenariosForUser(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, scenarios, 1)
}

func TestClearUserNotifications_UnknownSection(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	assert.Error(t, s.ClearUserNotifications(ctx, "bogus", 42))
}

func TestAdminNotificationCounts(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	user := addTestUser(t, s, "Casey", "C7")

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	setClock(s, base)
	require.NoError(t, s.AddIdeaForUser(ctx, user.UserID, "idea one"))
	require.NoError(t, s.AddIdeaForUser(ctx, user.UserID, "idea two"))

	counts, err := s.AdminNotificationCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Ideas)
	assert.Equal(t, 2, counts.Logs) // the two idea submissions were logged

	setClock(s, base.Add(time.Minute))
	require.NoError(t, s.ClearAdminNotifications(ctx, SectionLogs))

	setClock(s, base.Add(2*time.Minute))
	require.NoError(t, s.LogActivity(ctx, user.UserID, "did something new"))

	counts, err = s.AdminNotificationCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Logs)

	// Ideas are cleared only by deletion; clearing the section is a no-op
	require.NoError(t, s.ClearAdminNotifications(ctx, SectionIdeas))
	counts, err = s.AdminNotificationCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Ideas)
}

func TestDismissedItems_UnreadableSetIsEmpty(t *testing.T) {
	s, medium := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, medium.Set(ctx, dismissedKey(42), "not json"))

	dismissed, err := s.DismissedItems(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, dismissed)
}
