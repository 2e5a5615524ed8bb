// ABOUTME: State aggregate, entity types, and blob serialization with sanitization
// ABOUTME: The single point of contact with the unreliable KV medium

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// User is an application account. Exactly one user carries the admin
// identity after Initialize has run; access codes are otherwise unique
// among verified users.
type User struct {
	UserID          int64  `json:"user_id"`
	FullName        string `json:"full_name"`
	AccessCode      string `json:"access_code"`
	IsVerified      bool   `json:"is_verified"`
	StoryRequests   int    `json:"story_requests"`
	ImageRequests   int    `json:"image_requests"`
	ChatMessages    int    `json:"chat_messages"`
	LastRequestDate string `json:"last_request_date"` // quota window, "2006-01-02"
	AboutInfo       string `json:"about_info,omitempty"`
}

// PostScenario is a generated story scenario awaiting consumption into a
// caption. It is deleted once consumed.
type PostScenario struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	ScenarioNumber int    `json:"scenario_number"`
	Content        string `json:"content"`
}

// Plan is a content plan. At most one exists per user; saves overwrite.
type Plan struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Report is a performance report. Append-only per user, newest first.
type Report struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Caption is a generated caption, retaining a snapshot of the scenario it
// was generated from.
type Caption struct {
	ID                      int64  `json:"id"`
	UserID                  int64  `json:"user_id"`
	Title                   string `json:"title"`
	Content                 string `json:"content"`
	OriginalScenarioContent string `json:"original_scenario_content"`
}

// PostIdea is a user-submitted idea awaiting operator action. Ideas are
// consumed by deletion.
type PostIdea struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	IdeaText string `json:"idea_text"`
}

// BroadcastMessage is a global operator announcement. Only the latest is
// surfaced to users.
type BroadcastMessage struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityEntry records a non-admin user action. The full name is a
// snapshot taken at the time of the action: a later rename must not
// rewrite history.
type ActivityEntry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	UserFullName string    `json:"user_full_name"`
	Action       string    `json:"action"`
	Timestamp    time.Time `json:"timestamp"`
}

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single message in a user's chat history.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatHistory holds the full chat transcript for one user.
type ChatHistory struct {
	UserID   int64         `json:"user_id"`
	Messages []ChatMessage `json:"messages"`
}

// StoryEntry is one generated story scenario in a user's history.
type StoryEntry struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// StoryHistory holds a user's recent generated stories, newest first,
// bounded to the 10 most recent.
type StoryHistory struct {
	UserID  int64        `json:"user_id"`
	Stories []StoryEntry `json:"stories"`
}

// ImageEntry is one generated image in a user's history. URL is a data URL
// carrying the base64 payload.
type ImageEntry struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// ImageHistory holds a user's recent generated images, newest first,
// bounded to the 10 most recent.
type ImageHistory struct {
	UserID int64        `json:"user_id"`
	Images []ImageEntry `json:"images"`
}

// State is the root aggregate: every durable collection, serialized
// together to a single KV slot.
type State struct {
	Users         []User             `json:"users"`
	PostScenarios []PostScenario     `json:"post_scenarios"`
	Plans         []Plan             `json:"plans"`
	Reports       []Report           `json:"reports"`
	Captions      []Caption          `json:"captions"`
	PostIdeas     []PostIdea         `json:"post_ideas"`
	Broadcasts    []BroadcastMessage `json:"broadcasts"`
	ActivityLogs  []ActivityEntry    `json:"activity_logs"`
	ChatHistory   []ChatHistory      `json:"chat_history"`
	StoryHistory  []StoryHistory     `json:"story_history"`
	ImageHistory  []ImageHistory     `json:"image_history"`
}

// defaultState returns a fully-initialized empty state: every collection
// present and empty.
func defaultState() *State {
	return &State{
		Users:         []User{},
		PostScenarios: []PostScenario{},
		Plans:         []Plan{},
		Reports:       []Report{},
		Captions:      []Caption{},
		PostIdeas:     []PostIdea{},
		Broadcasts:    []BroadcastMessage{},
		ActivityLogs:  []ActivityEntry{},
		ChatHistory:   []ChatHistory{},
		StoryHistory:  []StoryHistory{},
		ImageHistory:  []ImageHistory{},
	}
}

// load reads and sanitizes the state blob. An absent slot yields the
// default empty state. An unparsable or structurally invalid blob is
// treated as total corruption: the slot is discarded and the empty state
// returned. Corruption never propagates to callers.
func (s *Store) load(ctx context.Context) (*State, error) {
	raw, ok, err := s.kv.Get(ctx, dbKey)
	if err != nil {
		return nil, fmt.Errorf("reading state blob: %w", err)
	}
	if !ok {
		return defaultState(), nil
	}

	state, err := decodeState([]byte(raw))
	if err != nil {
		s.logger.Error("state blob is corrupt, resetting to empty state", "error", err)
		if derr := s.kv.Delete(ctx, dbKey); derr != nil {
			s.logger.Error("discarding corrupt state blob", "error", derr)
		}
		return defaultState(), nil
	}
	return state, nil
}

// save serializes the full state back to the KV slot. Writes are best
// effort: failures are logged and swallowed, and callers do not retry.
func (s *Store) save(ctx context.Context, state *State) {
	data, err := json.Marshal(state)
	if err != nil {
		s.logger.Error("serializing state, changes dropped", "error", err)
		return
	}
	if err := s.kv.Set(ctx, dbKey, string(data)); err != nil {
		s.logger.Error("writing state blob, changes dropped", "error", err)
	}
}

// decodeState parses a state blob, sanitizing each collection
// independently so one corrupted collection does not invalidate its
// siblings.
func decodeState(data []byte) (*State, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing state blob: %w", err)
	}
	if root == nil {
		return nil, errors.New("state blob is not an object")
	}

	return &State{
		Users:         sanitizeCollection[User](root["users"]),
		PostScenarios: sanitizeCollection[PostScenario](root["post_scenarios"]),
		Plans:         sanitizeCollection[Plan](root["plans"]),
		Reports:       sanitizeCollection[Report](root["reports"]),
		Captions:      sanitizeCollection[Caption](root["captions"]),
		PostIdeas:     sanitizeCollection[PostIdea](root["post_ideas"]),
		Broadcasts:    sanitizeCollection[BroadcastMessage](root["broadcasts"]),
		ActivityLogs:  sanitizeCollection[ActivityEntry](root["activity_logs"]),
		ChatHistory:   sanitizeCollection[ChatHistory](root["chat_history"]),
		StoryHistory:  sanitizeCollection[StoryHistory](root["story_history"]),
		ImageHistory:  sanitizeCollection[ImageHistory](root["image_history"]),
	}, nil
}

// sanitizeCollection decodes one collection. A missing or non-array value
// becomes an empty collection; elements that are not well-formed objects
// of the record type (null, primitives, mistyped fields) are dropped.
func sanitizeCollection[T any](raw json.RawMessage) []T {
	out := []T{}
	if len(raw) == 0 {
		return out
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return out
	}

	for _, elem := range elems {
		trimmed := bytes.TrimSpace(elem)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}
		var record T
		if err := json.Unmarshal(trimmed, &record); err != nil {
			continue
		}
		out = append(out, record)
	}
	return out
}
