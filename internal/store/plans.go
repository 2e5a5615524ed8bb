// ABOUTME: Plan repository with upsert semantics: at most one plan per user
// ABOUTME: Saving overwrites the existing plan and refreshes its timestamp

package store

import "context"

// PlanForUser returns the user's plan, or nil if none exists.
func (s *Store) PlanForUser(ctx context.Context, userID int64) (*Plan, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range state.Plans {
		if state.Plans[i].UserID == userID {
			plan := state.Plans[i]
			return &plan, nil
		}
	}
	return nil, nil
}

// SavePlanForUser upserts the user's plan: the existing plan is
// overwritten in place, otherwise a new one is created.
func (s *Store) SavePlanForUser(ctx context.Context, userID int64, content string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	updated := false
	for i := range state.Plans {
		if state.Plans[i].UserID == userID {
			state.Plans[i].Content = content
			state.Plans[i].Timestamp = s.now().UTC()
			updated = true
			break
		}
	}
	if !updated {
		state.Plans = append(state.Plans, Plan{
			ID:        s.newID(),
			UserID:    userID,
			Content:   content,
			Timestamp: s.now().UTC(),
		})
	}

	s.save(ctx, state)
	return nil
}

// DeletePlanForUser removes the user's plan if present.
func (s *Store) DeletePlanForUser(ctx context.Context, userID int64) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	state.Plans = filterByUser(state.Plans, userID, func(p Plan) int64 { return p.UserID })
	s.save(ctx, state)
	return nil
}
