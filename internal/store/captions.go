// ABOUTME: Caption repository: append-only, newest first by ID
// ABOUTME: Captions keep a snapshot of the scenario they were generated from

package store

import (
	"context"
	"sort"
)

// CaptionsForUser returns the user's captions sorted newest first by ID.
func (s *Store) CaptionsForUser(ctx context.Context, userID int64) ([]Caption, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	captions := []Caption{}
	for _, c := range state.Captions {
		if c.UserID == userID {
			captions = append(captions, c)
		}
	}
	sort.SliceStable(captions, func(i, j int) bool {
		return captions[i].ID > captions[j].ID
	})
	return captions, nil
}

// AddCaption appends a caption. OriginalScenarioContent is a snapshot of
// the scenario consumed to produce it.
func (s *Store) AddCaption(ctx context.Context, userID int64, title, content, originalScenarioContent string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	state.Captions = append(state.Captions, Caption{
		ID:                      s.newID(),
		UserID:                  userID,
		Title:                   title,
		Content:                 content,
		OriginalScenarioContent: originalScenarioContent,
	})
	s.save(ctx, state)
	return nil
}
