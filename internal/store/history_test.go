// ABOUTME: Tests for chat, story, and image histories
// ABOUTME: Covers transcript replacement and the 10-item bound

package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveChatHistory_Replaces(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveChatHistory(ctx, 42, []ChatMessage{
		{Role: RoleUser, Text: "hello"},
	}))
	require.NoError(t, s.SaveChatHistory(ctx, 42, []ChatMessage{
		{Role: RoleUser, Text: "hello"},
		{Role: RoleAssistant, Text: "hi there"},
	}))

	messages, err := s.ChatHistoryForUser(ctx, 42)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, RoleAssistant, messages[1].Role)

	// One history record per user
	state, err := s.load(ctx)
	require.NoError(t, err)
	assert.Len(t, state.ChatHistory, 1)
}

func TestChatHistoryForUser_Absent(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	messages, err := s.ChatHistoryForUser(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSaveStoryHistory_BoundedNewestFirst(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, s.SaveStoryHistory(ctx, 42, fmt.Sprintf("story %d", i)))
	}

	stories, err := s.StoryHistoryForUser(ctx, 42)
	require.NoError(t, err)
	require.Len(t, stories, historyCap)
	assert.Equal(t, "story 14", stories[0].Content)
	assert.Equal(t, "story 5", stories[len(stories)-1].Content)
}

func TestSaveImageHistory_BoundedNewestFirst(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, s.SaveImageHistory(ctx, 42, fmt.Sprintf("data:image/jpeg;base64,img%d", i)))
	}

	images, err := s.ImageHistoryForUser(ctx, 42)
	require.NoError(t, err)
	require.Len(t, images, historyCap)
	assert.Equal(t, "data:image/jpeg;base64,img11", images[0].URL)
}

func TestHistories_IsolatedPerUser(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveStoryHistory(ctx, 42, "mine"))
	require.NoError(t, s.SaveStoryHistory(ctx, 7, "theirs"))

	stories, err := s.StoryHistoryForUser(ctx, 42)
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "mine", stories[0].Content)
}
