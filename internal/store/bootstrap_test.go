// ABOUTME: Tests for the self-healing bootstrap
// ABOUTME: Covers admin creation, impostor removal, repair, and idempotency

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_EmptyState(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Initialize(ctx))

	state, err := s.load(ctx)
	require.NoError(t, err)
	require.Len(t, state.Users, 2)

	admin, err := s.GetUserByID(ctx, AdminUserID)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, adminAccessCode, admin.AccessCode)
	assert.True(t, admin.IsVerified)

	demo, err := s.VerifyAccessCode(ctx, demoAccessCode, false)
	require.NoError(t, err)
	require.NotNil(t, demo)
	assert.False(t, IsAdminUser(demo.UserID))
}

func TestInitialize_Idempotent(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Initialize(ctx))
	first, err := s.load(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Initialize(ctx))
	second, err := s.load(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestInitialize_RemovesImpostors(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	state := defaultState()
	state.Users = append(state.Users,
		User{UserID: 1, FullName: "Impostor", AccessCode: adminAccessCode, IsVerified: true},
		s.newAdminUser(),
		User{UserID: 2, FullName: "Second Impostor", AccessCode: adminAccessCode, IsVerified: true},
		User{UserID: 3, FullName: "Bystander", AccessCode: "B1", IsVerified: true},
	)
	s.save(ctx, state)

	require.NoError(t, s.Initialize(ctx))

	loaded, err := s.load(ctx)
	require.NoError(t, err)

	holders := 0
	for _, u := range loaded.Users {
		if u.AccessCode == adminAccessCode {
			holders++
			assert.Equal(t, AdminUserID, u.UserID)
		}
	}
	assert.Equal(t, 1, holders)

	// The bystander survives
	bystander, err := s.GetUserByID(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, bystander)
}

func TestInitialize_RepairsMalformedAdmin(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	state := defaultState()
	state.Users = append(state.Users, User{
		UserID:     AdminUserID,
		FullName:   adminFullName,
		AccessCode: "stolen",
		IsVerified: false,
	})
	s.save(ctx, state)

	require.NoError(t, s.Initialize(ctx))

	admin, err := s.GetUserByID(ctx, AdminUserID)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, adminAccessCode, admin.AccessCode)
	assert.True(t, admin.IsVerified)
}

func TestInitialize_CorruptBlobSelfHeals(t *testing.T) {
	s, medium := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, medium.Set(ctx, dbKey, "{{{ definitely not json"))

	require.NoError(t, s.Initialize(ctx))

	admin, err := s.GetUserByID(ctx, AdminUserID)
	require.NoError(t, err)
	assert.NotNil(t, admin)
}

func TestHardReset_MinimalState(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddBroadcast(ctx, "will be discarded"))
	require.NoError(t, s.hardReset(ctx))

	state, err := s.load(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Users, 2)
	assert.Empty(t, state.Broadcasts)
}
