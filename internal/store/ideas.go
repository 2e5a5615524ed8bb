// ABOUTME: Post idea repository: a queue consumed by the operator
// ABOUTME: Ideas are cleared only by deletion, never by a view timestamp

package store

import "context"

// IdeasForUser returns the user's pending ideas in submission order.
func (s *Store) IdeasForUser(ctx context.Context, userID int64) ([]PostIdea, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	ideas := []PostIdea{}
	for _, idea := range state.PostIdeas {
		if idea.UserID == userID {
			ideas = append(ideas, idea)
		}
	}
	return ideas, nil
}

// AllIdeas returns every pending idea across users, in submission order.
func (s *Store) AllIdeas(ctx context.Context) ([]PostIdea, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return state.PostIdeas, nil
}

// AddIdeaForUser appends an idea and records the submission in the
// activity log.
func (s *Store) AddIdeaForUser(ctx context.Context, userID int64, ideaText string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	state.PostIdeas = append(state.PostIdeas, PostIdea{
		ID:       s.newID(),
		UserID:   userID,
		IdeaText: ideaText,
	})
	s.save(ctx, state)

	return s.LogActivity(ctx, userID, "submitted a new post idea")
}

// DeleteIdea removes an idea by ID. This is how ideas are consumed.
func (s *Store) DeleteIdea(ctx context.Context, id int64) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := state.PostIdeas[:0]
	for _, idea := range state.PostIdeas {
		if idea.ID != id {
			kept = append(kept, idea)
		}
	}
	state.PostIdeas = kept
	s.save(ctx, state)
	return nil
}
