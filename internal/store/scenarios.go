// ABOUTME: Post scenario repository, sorted by scenario number
// ABOUTME: Scenarios are deleted once consumed into a caption

package store

import (
	"context"
	"sort"
)

// ScenariosForUser returns the user's scenarios sorted ascending by
// scenario number.
func (s *Store) ScenariosForUser(ctx context.Context, userID int64) ([]PostScenario, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	scenarios := []PostScenario{}
	for _, sc := range state.PostScenarios {
		if sc.UserID == userID {
			scenarios = append(scenarios, sc)
		}
	}
	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].ScenarioNumber < scenarios[j].ScenarioNumber
	})
	return scenarios, nil
}

// ScenarioByID returns the scenario with the given ID, or nil if absent.
func (s *Store) ScenarioByID(ctx context.Context, id int64) (*PostScenario, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range state.PostScenarios {
		if state.PostScenarios[i].ID == id {
			scenario := state.PostScenarios[i]
			return &scenario, nil
		}
	}
	return nil, nil
}

// AddScenarioForUser appends a scenario with a fresh ID.
func (s *Store) AddScenarioForUser(ctx context.Context, userID int64, scenarioNumber int, content string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	state.PostScenarios = append(state.PostScenarios, PostScenario{
		ID:             s.newID(),
		UserID:         userID,
		ScenarioNumber: scenarioNumber,
		Content:        content,
	})
	s.save(ctx, state)
	return nil
}

// DeleteScenario removes a scenario by ID.
func (s *Store) DeleteScenario(ctx context.Context, id int64) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := state.PostScenarios[:0]
	for _, sc := range state.PostScenarios {
		if sc.ID != id {
			kept = append(kept, sc)
		}
	}
	state.PostScenarios = kept
	s.save(ctx, state)
	return nil
}
