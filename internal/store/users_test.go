// ABOUTME: Tests for user account operations
// ABOUTME: Covers login verification, duplicate codes, cascade delete, about edits

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAccessCode_ManualLogin(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	user := addTestUser(t, s, "Casey", "C7")

	got, err := s.VerifyAccessCode(ctx, "C7", false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.UserID, got.UserID)

	// Manual logins are recorded in the activity log
	logs, err := s.ActivityLogs(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, "logged in", logs[0].Action)
	assert.Equal(t, "Casey", logs[0].UserFullName)
}

func TestVerifyAccessCode_SessionLogin(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	user := addTestUser(t, s, "Casey", "C7")

	got, err := s.VerifyAccessCode(ctx, fmt.Sprintf("%d", user.UserID), true)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.UserID, got.UserID)

	// Session refreshes are not logged
	logs, err := s.ActivityLogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestVerifyAccessCode_Misses(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	addTestUser(t, s, "Casey", "C7")

	got, err := s.VerifyAccessCode(ctx, "WRONG", false)
	require.NoError(t, err)
	assert.Nil(t, got)

	// A session login with a non-numeric code is a miss, not an error
	got, err = s.VerifyAccessCode(ctx, "C7", true)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestVerifyAccessCode_RollsQuotaWindow(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	yesterday := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	setClock(s, yesterday)
	user := addTestUser(t, s, "Casey", "C7")
	require.NoError(t, s.IncrementUsage(ctx, user.UserID, UsageStory))

	setClock(s, yesterday.Add(2*time.Hour)) // next calendar day

	got, err := s.VerifyAccessCode(ctx, "C7", false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.StoryRequests)
	assert.Equal(t, "2026-03-02", got.LastRequestDate)
}

func TestAddUser_DuplicateAccessCode(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	addTestUser(t, s, "Casey", "C7")

	result, err := s.AddUser(ctx, "Other", "C7")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)

	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGetAllUsers_ExcludesAdmin(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Initialize(ctx))
	addTestUser(t, s, "Casey", "C7")

	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	for _, u := range users {
		assert.False(t, IsAdminUser(u.UserID))
	}
}

func TestGetUserByID_Absent(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	user, err := s.GetUserByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestDeleteUser_Cascades(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	user := addTestUser(t, s, "Casey", "C7")
	other := addTestUser(t, s, "Riley", "R2")

	require.NoError(t, s.SavePlanForUser(ctx, user.UserID, "a plan"))
	require.NoError(t, s.SaveReportForUser(ctx, user.UserID, "report one"))
	require.NoError(t, s.SaveReportForUser(ctx, user.UserID, "report two"))
	require.NoError(t, s.SaveChatHistory(ctx, user.UserID, []ChatMessage{{Role: RoleUser, Text: "hi"}}))
	require.NoError(t, s.AddScenarioForUser(ctx, user.UserID, 1, "scenario"))
	require.NoError(t, s.SavePlanForUser(ctx, other.UserID, "other plan"))

	require.NoError(t, s.DeleteUser(ctx, user.UserID))

	deleted, err := s.GetUserByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	plan, err := s.PlanForUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Nil(t, plan)

	reports, err := s.ReportsForUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, reports)

	chat, err := s.ChatHistoryForUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, chat)

	scenarios, err := s.ScenariosForUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, scenarios)

	// The other user's records survive
	otherPlan, err := s.PlanForUser(ctx, other.UserID)
	require.NoError(t, err)
	assert.NotNil(t, otherPlan)
}

func TestUpdateUserAbout(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	user := addTestUser(t, s, "Casey", "C7")
	require.NoError(t, s.UpdateUserAbout(ctx, user.UserID, "travel photographer"))

	got, err := s.GetUserByID(ctx, user.UserID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "travel photographer", got.AboutInfo)

	// Absent users are a silent no-op
	require.NoError(t, s.UpdateUserAbout(ctx, 9999, "nobody"))
}
