// ABOUTME: Orchestration layer between the store and the generation backend
// ABOUTME: Enforces daily quotas, renders prompts, and persists every result

package assist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/2389/muse-studio/internal/genai"
	"github.com/2389/muse-studio/internal/prompts"
	"github.com/2389/muse-studio/internal/store"
)

// ErrQuotaExceeded is returned when a user has exhausted the daily
// allowance for the requested generation kind.
var ErrQuotaExceeded = errors.New("daily quota exceeded")

// ErrScenarioNotFound is returned when a caption is requested for a
// scenario that does not exist (or was already consumed).
var ErrScenarioNotFound = errors.New("scenario not found")

// Service coordinates generation requests: it gates them on the store's
// usage counters, renders the prompt, calls the backend, and persists the
// result before counting the request against the quota.
type Service struct {
	store  *store.Store
	gen    genai.Generator
	logger *slog.Logger
}

// New creates an assist service over the given store and backend.
func New(st *store.Store, gen genai.Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		gen:    gen,
		logger: logger.With("component", "assist"),
	}
}

// StoryScenario generates a story scenario from the user's raw idea,
// records it in the user's story history, and consumes one story request.
func (s *Service) StoryScenario(ctx context.Context, userID int64, idea string) (string, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if err := s.gate(ctx, userID, store.UsageStory); err != nil {
		return "", err
	}

	prompt, err := prompts.Render(prompts.StoryScenario, map[string]string{
		"About": user.AboutInfo,
		"Idea":  idea,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render story prompt: %w", err)
	}

	stream, err := s.gen.Stream(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to start generation: %w", err)
	}
	defer stream.Close()

	s.logger.Debug("streaming story scenario", "user_id", userID, "request_id", stream.ID())

	text, err := stream.Collect()
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if text == "" {
		return "", genai.ErrNoOutput
	}

	if err := s.store.SaveStoryHistory(ctx, userID, text); err != nil {
		return "", fmt.Errorf("failed to record story: %w", err)
	}
	if err := s.store.IncrementUsage(ctx, userID, store.UsageStory); err != nil {
		return "", fmt.Errorf("failed to count request: %w", err)
	}
	return text, nil
}

// Caption generates a caption for one of the user's pending scenarios.
// The scenario is consumed: its content survives only as the snapshot
// stored alongside the caption.
func (s *Service) Caption(ctx context.Context, userID, scenarioID int64) (string, error) {
	scenario, err := s.store.ScenarioByID(ctx, scenarioID)
	if err != nil {
		return "", err
	}
	if scenario == nil || scenario.UserID != userID {
		return "", ErrScenarioNotFound
	}

	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return "", err
	}

	prompt, err := prompts.Render(prompts.Caption, map[string]string{
		"About":    user.AboutInfo,
		"Scenario": scenario.Content,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render caption prompt: %w", err)
	}

	text, err := s.gen.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if text == "" {
		return "", genai.ErrNoOutput
	}

	title := fmt.Sprintf("Scenario %d", scenario.ScenarioNumber)
	if err := s.store.AddCaption(ctx, userID, title, text, scenario.Content); err != nil {
		return "", fmt.Errorf("failed to save caption: %w", err)
	}
	if err := s.store.DeleteScenario(ctx, scenarioID); err != nil {
		return "", fmt.Errorf("failed to consume scenario: %w", err)
	}
	return text, nil
}

// Chat sends one user message to the assistant, appends both sides of the
// exchange to the transcript, and consumes one chat message.
func (s *Service) Chat(ctx context.Context, userID int64, text string) (string, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if err := s.gate(ctx, userID, store.UsageChat); err != nil {
		return "", err
	}

	system, err := prompts.Render(prompts.ChatSystem, map[string]string{
		"About": user.AboutInfo,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render system prompt: %w", err)
	}

	history, err := s.store.ChatHistoryForUser(ctx, userID)
	if err != nil {
		return "", err
	}

	reply, err := s.gen.Complete(ctx, transcript(system, history, text))
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if reply == "" {
		return "", genai.ErrNoOutput
	}

	history = append(history,
		store.ChatMessage{Role: store.RoleUser, Text: text},
		store.ChatMessage{Role: store.RoleAssistant, Text: reply},
	)
	if err := s.store.SaveChatHistory(ctx, userID, history); err != nil {
		return "", fmt.Errorf("failed to save transcript: %w", err)
	}
	if err := s.store.IncrementUsage(ctx, userID, store.UsageChat); err != nil {
		return "", fmt.Errorf("failed to count request: %w", err)
	}
	return reply, nil
}

// transcript flattens the system instruction and the conversation so far
// into a single prompt ending with the new user message.
func transcript(system string, history []store.ChatMessage, text string) string {
	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\n\n")
	for _, msg := range history {
		switch msg.Role {
		case store.RoleAssistant:
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(msg.Text)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(text)
	b.WriteString("\nAssistant:")
	return b.String()
}

// Image generates an image, records its data URL in the user's image
// history, and consumes one image request.
func (s *Service) Image(ctx context.Context, userID int64, prompt string) (*genai.Image, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.gate(ctx, userID, store.UsageImage); err != nil {
		return nil, err
	}

	img, err := s.gen.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	if err := s.store.SaveImageHistory(ctx, userID, img.DataURL()); err != nil {
		return nil, fmt.Errorf("failed to record image: %w", err)
	}
	if err := s.store.IncrementUsage(ctx, userID, store.UsageImage); err != nil {
		return nil, fmt.Errorf("failed to count request: %w", err)
	}
	return img, nil
}

// EditImage generates a variant of an existing image described by prompt.
// It shares the image quota with Image.
func (s *Service) EditImage(ctx context.Context, userID int64, prompt string) (*genai.Image, error) {
	rendered, err := prompts.Render(prompts.ImageEdit, map[string]string{"Prompt": prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to render edit prompt: %w", err)
	}
	return s.Image(ctx, userID, rendered)
}

// AlgorithmNews returns today's algorithm-news article, fetching and
// caching a fresh one when the cache is empty or stale. The article is
// shared across users, so it is fetched at most once per calendar day.
func (s *Service) AlgorithmNews(ctx context.Context) (*store.CachedArticle, error) {
	cached, err := s.store.CachedArticle(ctx)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		s.logger.Debug("serving cached news article", "date", cached.Date)
		return cached, nil
	}

	prompt, err := prompts.Render(prompts.AlgorithmNews, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to render news prompt: %w", err)
	}

	article, err := s.gen.LatestNews(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("news fetch failed: %w", err)
	}

	sources := make([]store.Source, 0, len(article.Sources))
	for _, src := range article.Sources {
		sources = append(sources, store.Source{Title: src.Title, URL: src.URL})
	}
	if err := s.store.SaveCachedArticle(ctx, article.Text, sources); err != nil {
		return nil, fmt.Errorf("failed to cache article: %w", err)
	}
	return s.store.CachedArticle(ctx)
}

// ArticleHTML renders an article's markdown body to HTML for display.
func ArticleHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render article: %w", err)
	}
	return buf.String(), nil
}

// gate rejects the request when the user's counter for kind has reached
// the daily limit.
func (s *Service) gate(ctx context.Context, userID int64, kind store.UsageKind) error {
	count, err := s.store.UsageCount(ctx, userID, kind)
	if err != nil {
		return err
	}

	var limit int
	switch kind {
	case store.UsageStory:
		limit = store.StoryDailyLimit
	case store.UsageImage:
		limit = store.ImageDailyLimit
	case store.UsageChat:
		limit = store.ChatDailyLimit
	default:
		return fmt.Errorf("unknown usage kind %q", kind)
	}

	if count >= limit {
		s.logger.Info("quota exhausted", "user_id", userID, "kind", string(kind), "limit", limit)
		return fmt.Errorf("%s (%d/%d): %w", kind, count, limit, ErrQuotaExceeded)
	}
	return nil
}

func (s *Service) requireUser(ctx context.Context, userID int64) (*store.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}
	return user, nil
}
