// ABOUTME: Scripted Generator implementation for testing
// ABOUTME: Replays fixed responses and records the prompts it was given

package genai

import (
	"context"
	"sync"
)

// Scripted is a Generator that replays fixed responses. Tests configure
// the fields and assert on the recorded prompts.
type Scripted struct {
	mu sync.Mutex

	// Response is returned by Complete and, split into Chunks when those
	// are set, streamed by Stream.
	Response string
	// Chunks, when non-nil, is streamed fragment by fragment.
	Chunks []string
	// Image is returned by GenerateImage.
	Image *Image
	// Article is returned by LatestNews.
	Article *Article
	// Err, when set, fails every call.
	Err error

	// Prompts records every prompt received, in call order.
	Prompts []string
}

func (g *Scripted) record(prompt string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Prompts = append(g.Prompts, prompt)
}

// Complete returns the scripted response.
func (g *Scripted) Complete(_ context.Context, prompt string) (string, error) {
	g.record(prompt)
	if g.Err != nil {
		return "", g.Err
	}
	return g.Response, nil
}

// Stream streams the scripted chunks, or the whole response as one chunk.
func (g *Scripted) Stream(ctx context.Context, prompt string) (*Stream, error) {
	g.record(prompt)
	if g.Err != nil {
		return nil, g.Err
	}

	chunks := g.Chunks
	if chunks == nil {
		chunks = []string{g.Response}
	}
	return NewStream(ctx, func(ctx context.Context, push func(string) error) error {
		for _, chunk := range chunks {
			if err := push(chunk); err != nil {
				return err
			}
		}
		return nil
	}), nil
}

// GenerateImage returns the scripted image.
func (g *Scripted) GenerateImage(_ context.Context, prompt string) (*Image, error) {
	g.record(prompt)
	if g.Err != nil {
		return nil, g.Err
	}
	if g.Image == nil {
		return nil, ErrNoOutput
	}
	return g.Image, nil
}

// LatestNews returns the scripted article.
func (g *Scripted) LatestNews(_ context.Context, prompt string) (*Article, error) {
	g.record(prompt)
	if g.Err != nil {
		return nil, g.Err
	}
	if g.Article == nil {
		return nil, ErrNoOutput
	}
	return g.Article, nil
}

// Ensure Scripted implements the Generator interface.
var _ Generator = (*Scripted)(nil)
