// ABOUTME: Per-user chat, story, and image histories
// ABOUTME: Story and image histories are bounded to the 10 most recent items

package store

import "context"

// historyCap bounds the per-user story and image histories.
const historyCap = 10

// ChatHistoryForUser returns the user's chat transcript, empty if none.
func (s *Store) ChatHistoryForUser(ctx context.Context, userID int64) ([]ChatMessage, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, h := range state.ChatHistory {
		if h.UserID == userID {
			return h.Messages, nil
		}
	}
	return []ChatMessage{}, nil
}

// SaveChatHistory replaces the user's chat transcript wholesale.
func (s *Store) SaveChatHistory(ctx context.Context, userID int64, messages []ChatMessage) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range state.ChatHistory {
		if state.ChatHistory[i].UserID == userID {
			state.ChatHistory[i].Messages = messages
			replaced = true
			break
		}
	}
	if !replaced {
		state.ChatHistory = append(state.ChatHistory, ChatHistory{UserID: userID, Messages: messages})
	}

	s.save(ctx, state)
	return nil
}

// StoryHistoryForUser returns the user's generated stories, newest first.
func (s *Store) StoryHistoryForUser(ctx context.Context, userID int64) ([]StoryEntry, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, h := range state.StoryHistory {
		if h.UserID == userID {
			return h.Stories, nil
		}
	}
	return []StoryEntry{}, nil
}

// SaveStoryHistory prepends a generated story, dropping the oldest past
// the bound.
func (s *Store) SaveStoryHistory(ctx context.Context, userID int64, content string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	entry := StoryEntry{ID: s.newID(), Content: content}

	appended := false
	for i := range state.StoryHistory {
		if state.StoryHistory[i].UserID == userID {
			stories := append([]StoryEntry{entry}, state.StoryHistory[i].Stories...)
			if len(stories) > historyCap {
				stories = stories[:historyCap]
			}
			state.StoryHistory[i].Stories = stories
			appended = true
			break
		}
	}
	if !appended {
		state.StoryHistory = append(state.StoryHistory, StoryHistory{
			UserID:  userID,
			Stories: []StoryEntry{entry},
		})
	}

	s.save(ctx, state)
	return nil
}

// ImageHistoryForUser returns the user's generated images, newest first.
func (s *Store) ImageHistoryForUser(ctx context.Context, userID int64) ([]ImageEntry, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, h := range state.ImageHistory {
		if h.UserID == userID {
			return h.Images, nil
		}
	}
	return []ImageEntry{}, nil
}

// SaveImageHistory prepends a generated image, dropping the oldest past
// the bound.
func (s *Store) SaveImageHistory(ctx context.Context, userID int64, url string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	entry := ImageEntry{ID: s.newID(), URL: url}

	appended := false
	for i := range state.ImageHistory {
		if state.ImageHistory[i].UserID == userID {
			images := append([]ImageEntry{entry}, state.ImageHistory[i].Images...)
			if len(images) > historyCap {
				images = images[:historyCap]
			}
			state.ImageHistory[i].Images = images
			appended = true
			break
		}
	}
	if !appended {
		state.ImageHistory = append(state.ImageHistory, ImageHistory{
			UserID: userID,
			Images: []ImageEntry{entry},
		})
	}

	s.save(ctx, state)
	return nil
}
