// ABOUTME: Self-healing bootstrap enforcing the admin and demo account invariants
// ABOUTME: Runs once at startup before any other store access

package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Initialize performs the self-healing bootstrap. It must run once per
// process start, before any other store access. After it returns, exactly
// one user carries the admin identity, no other user holds the admin
// access code, and the demo account exists.
//
// If bootstrap fails for any reason the entire state is hard-reset to a
// minimal valid admin+demo configuration. Only a failure of that reset is
// surfaced to the caller, as the process cannot guarantee a usable state.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.bootstrap(ctx); err != nil {
		s.logger.Error("bootstrap failed, performing hard reset", "error", err)
		if rerr := s.hardReset(ctx); rerr != nil {
			return fmt.Errorf("resetting state after failed bootstrap: %w", rerr)
		}
	}
	return nil
}

func (s *Store) bootstrap(ctx context.Context) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	changed := false

	// Any user holding the admin access code without the admin identity is
	// an impostor and is removed.
	kept := state.Users[:0]
	removed := 0
	for _, u := range state.Users {
		if u.AccessCode == adminAccessCode && u.UserID != AdminUserID {
			removed++
			continue
		}
		kept = append(kept, u)
	}
	if removed > 0 {
		state.Users = kept
		changed = true
		s.logger.Warn("removed conflicting users holding the admin access code", "count", removed)
	}

	adminIdx := -1
	for i := range state.Users {
		if state.Users[i].UserID == AdminUserID {
			adminIdx = i
			break
		}
	}

	if adminIdx >= 0 {
		admin := &state.Users[adminIdx]
		if admin.AccessCode != adminAccessCode || !admin.IsVerified {
			s.logger.Warn("admin user is malformed, correcting in place", "user_id", admin.UserID)
			admin.AccessCode = adminAccessCode
			admin.IsVerified = true
			changed = true
		}
	} else {
		s.logger.Warn("admin user not found, creating")
		state.Users = append(state.Users, s.newAdminUser())
		changed = true
	}

	demoExists := false
	for i := range state.Users {
		if state.Users[i].AccessCode == demoAccessCode {
			demoExists = true
			break
		}
	}
	if !demoExists {
		s.logger.Warn("demo user not found, creating")
		state.Users = append(state.Users, s.newDemoUser())
		changed = true
	}

	if changed {
		s.save(ctx, state)
	}
	return nil
}

// hardReset discards the blob entirely and writes a minimal valid state
// containing only the admin and demo users. This is the single
// fatal-recovery path in the system; write failures here are propagated.
func (s *Store) hardReset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, dbKey); err != nil {
		return fmt.Errorf("discarding state blob: %w", err)
	}

	state := defaultState()
	state.Users = append(state.Users, s.newAdminUser(), s.newDemoUser())

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serializing reset state: %w", err)
	}
	if err := s.kv.Set(ctx, dbKey, string(data)); err != nil {
		return fmt.Errorf("writing reset state: %w", err)
	}

	s.logger.Info("state hard reset to minimal admin+demo configuration")
	return nil
}

func (s *Store) newAdminUser() User {
	return User{
		UserID:          AdminUserID,
		FullName:        adminFullName,
		AccessCode:      adminAccessCode,
		IsVerified:      true,
		LastRequestDate: s.today(),
	}
}

func (s *Store) newDemoUser() User {
	return User{
		UserID:          s.newID(),
		FullName:        demoFullName,
		AccessCode:      demoAccessCode,
		IsVerified:      true,
		LastRequestDate: s.today(),
		AboutInfo:       demoAboutInfo,
	}
}
