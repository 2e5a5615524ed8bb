// ABOUTME: User account operations: login verification, admin management, cascade delete
// ABOUTME: Access codes are plaintext lookups; there is no credential hashing

package store

import (
	"context"
	"strconv"
)

// AddUserResult reports the outcome of AddUser. A duplicate access code is
// a structured failure, not an error.
type AddUserResult struct {
	Success bool
	Message string
}

// IsAdminUser reports whether the given user ID is the reserved admin
// identity.
func IsAdminUser(userID int64) bool {
	return userID == AdminUserID
}

// VerifyAccessCode authenticates a login attempt. For manual logins, code
// is matched against verified users' access codes. For session logins,
// code carries the numeric user ID of an existing session. A successful
// lookup rolls the user's quota window if the day has changed; manual
// logins are also recorded in the activity log. Returns nil when no
// verified user matches.
func (s *Store) VerifyAccessCode(ctx context.Context, code string, sessionLogin bool) (*User, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	if sessionLogin {
		userID, perr := strconv.ParseInt(code, 10, 64)
		if perr != nil {
			return nil, nil
		}
		for i := range state.Users {
			if state.Users[i].UserID == userID && state.Users[i].IsVerified {
				idx = i
				break
			}
		}
	} else {
		for i := range state.Users {
			if state.Users[i].AccessCode == code && state.Users[i].IsVerified {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return nil, nil
	}

	if s.rollUsageDay(&state.Users[idx]) {
		s.save(ctx, state)
	}

	user := state.Users[idx]
	if !sessionLogin {
		// Session refreshes are not logged, only manual logins.
		if err := s.LogActivity(ctx, user.UserID, "logged in"); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// GetAllUsers returns every account except the admin.
func (s *Store) GetAllUsers(ctx context.Context) ([]User, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	users := []User{}
	for _, u := range state.Users {
		if !IsAdminUser(u.UserID) {
			users = append(users, u)
		}
	}
	return users, nil
}

// GetUserByID returns the user with the given ID, or nil if absent.
func (s *Store) GetUserByID(ctx context.Context, userID int64) (*User, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range state.Users {
		if state.Users[i].UserID == userID {
			user := state.Users[i]
			return &user, nil
		}
	}
	return nil, nil
}

// AddUser creates a verified account with a fresh ID. The access code must
// not already be in use by any account.
func (s *Store) AddUser(ctx context.Context, fullName, accessCode string) (*AddUserResult, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range state.Users {
		if u.AccessCode == accessCode {
			return &AddUserResult{Success: false, Message: "this access code is already in use"}, nil
		}
	}

	state.Users = append(state.Users, User{
		UserID:          s.newID(),
		FullName:        fullName,
		AccessCode:      accessCode,
		IsVerified:      true, // operator-created accounts are verified on creation
		LastRequestDate: s.today(),
	})
	s.save(ctx, state)

	return &AddUserResult{Success: true, Message: "user " + strconv.Quote(fullName) + " added"}, nil
}

// DeleteUser removes an account and cascades: every record in every other
// collection keyed by the user ID goes in the same load -> mutate -> save
// cycle.
func (s *Store) DeleteUser(ctx context.Context, userID int64) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	users := state.Users[:0]
	for _, u := range state.Users {
		if u.UserID != userID {
			users = append(users, u)
		}
	}
	state.Users = users

	state.PostScenarios = filterByUser(state.PostScenarios, userID, func(v PostScenario) int64 { return v.UserID })
	state.Plans = filterByUser(state.Plans, userID, func(v Plan) int64 { return v.UserID })
	state.Reports = filterByUser(state.Reports, userID, func(v Report) int64 { return v.UserID })
	state.Captions = filterByUser(state.Captions, userID, func(v Caption) int64 { return v.UserID })
	state.PostIdeas = filterByUser(state.PostIdeas, userID, func(v PostIdea) int64 { return v.UserID })
	state.ActivityLogs = filterByUser(state.ActivityLogs, userID, func(v ActivityEntry) int64 { return v.UserID })
	state.ChatHistory = filterByUser(state.ChatHistory, userID, func(v ChatHistory) int64 { return v.UserID })
	state.StoryHistory = filterByUser(state.StoryHistory, userID, func(v StoryHistory) int64 { return v.UserID })
	state.ImageHistory = filterByUser(state.ImageHistory, userID, func(v ImageHistory) int64 { return v.UserID })

	s.save(ctx, state)
	return nil
}

// UpdateUserAbout replaces the about-info text for a user. Absent users
// are a silent no-op.
func (s *Store) UpdateUserAbout(ctx context.Context, userID int64, about string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range state.Users {
		if state.Users[i].UserID == userID {
			state.Users[i].AboutInfo = about
			s.save(ctx, state)
			return nil
		}
	}
	return nil
}

// filterByUser drops every record keyed by userID.
func filterByUser[T any](records []T, userID int64, key func(T) int64) []T {
	kept := records[:0]
	for _, r := range records {
		if key(r) != userID {
			kept = append(kept, r)
		}
	}
	return kept
}
