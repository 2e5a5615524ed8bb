// ABOUTME: Generator interface and result types for the generation backend
// ABOUTME: The store core consumes this contract; it never implements it

package genai

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoOutput is returned when the backend produced no usable payload,
// for example when a response was blocked by safety filters.
var ErrNoOutput = errors.New("backend returned no output")

// Generator is the contract for the generative backend. Given a prompt it
// returns a completed string, a lazily-produced sequence of string chunks,
// or an image payload, and may fail with a descriptive error instead.
type Generator interface {
	// Complete returns the full response for a prompt.
	Complete(ctx context.Context, prompt string) (string, error)

	// Stream returns the response as a finite, single-consumer sequence
	// of fragments whose concatenation is the full result.
	Stream(ctx context.Context, prompt string) (*Stream, error)

	// GenerateImage returns a base64-encoded image payload for a prompt.
	GenerateImage(ctx context.Context, prompt string) (*Image, error)

	// LatestNews returns a grounded article with its citations.
	LatestNews(ctx context.Context, prompt string) (*Article, error)
}

// Image is a generated image payload.
type Image struct {
	Data     string // base64-encoded bytes
	MIMEType string
}

// DataURL renders the payload as a data URL suitable for direct display.
func (i *Image) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", i.MIMEType, i.Data)
}

// ArticleSource is a citation attached to a grounded article.
type ArticleSource struct {
	Title string
	URL   string
}

// Article is a grounded news article.
type Article struct {
	Text    string
	Sources []ArticleSource
}
