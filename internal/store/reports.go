// ABOUTME: Report repository: append-only per-user history, newest first
// ABOUTME: Reports are never updated, only added and bulk-deleted

package store

import (
	"context"
	"sort"
)

// ReportsForUser returns the user's reports sorted newest first.
func (s *Store) ReportsForUser(ctx context.Context, userID int64) ([]Report, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	reports := []Report{}
	for _, r := range state.Reports {
		if r.UserID == userID {
			reports = append(reports, r)
		}
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Timestamp.After(reports[j].Timestamp)
	})
	return reports, nil
}

// SaveReportForUser appends a new report. Existing reports are never
// updated.
func (s *Store) SaveReportForUser(ctx context.Context, userID int64, content string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	state.Reports = append(state.Reports, Report{
		ID:        s.newID(),
		UserID:    userID,
		Content:   content,
		Timestamp: s.now().UTC(),
	})
	s.save(ctx, state)
	return nil
}

// DeleteReportsForUser removes all of the user's reports.
func (s *Store) DeleteReportsForUser(ctx context.Context, userID int64) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	state.Reports = filterByUser(state.Reports, userID, func(r Report) int64 { return r.UserID })
	s.save(ctx, state)
	return nil
}
