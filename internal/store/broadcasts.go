// ABOUTME: Global broadcast messages from the operator
// ABOUTME: Only the latest broadcast is surfaced to users

package store

import "context"

// LatestBroadcast returns the most recent broadcast, or nil if none exist.
func (s *Store) LatestBroadcast(ctx context.Context) (*BroadcastMessage, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(state.Broadcasts) == 0 {
		return nil, nil
	}

	latest := state.Broadcasts[0]
	for _, b := range state.Broadcasts[1:] {
		if b.Timestamp.After(latest.Timestamp) {
			latest = b
		}
	}
	return &latest, nil
}

// AddBroadcast appends a broadcast message.
func (s *Store) AddBroadcast(ctx context.Context, message string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	state.Broadcasts = append(state.Broadcasts, BroadcastMessage{
		ID:        s.newID(),
		Message:   message,
		Timestamp: s.now().UTC(),
	})
	s.save(ctx, state)
	return nil
}
