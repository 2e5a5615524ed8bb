// ABOUTME: Cancellable single-consumer chunk stream for generation responses
// ABOUTME: Producers push fragments; consumers Recv until io.EOF or Collect the whole text

package genai

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Stream is a finite, non-restartable sequence of text fragments. It has
// exactly one consumer; the concatenation of all fragments is the full
// generation result. Closing the stream cancels the producer.
type Stream struct {
	id     string
	chunks chan string
	errc   chan error
	cancel context.CancelFunc
}

// ProduceFunc feeds a stream. It calls push for each fragment and returns
// when the sequence is complete or failed. push returns an error once the
// stream has been cancelled, at which point the producer should stop.
type ProduceFunc func(ctx context.Context, push func(chunk string) error) error

// NewStream starts produce in its own goroutine and returns the consumer
// handle. The stream is assigned a fresh request ID.
func NewStream(ctx context.Context, produce ProduceFunc) *Stream {
	ctx, cancel := context.WithCancel(ctx)
	s := &Stream{
		id:     uuid.New().String(),
		chunks: make(chan string),
		errc:   make(chan error, 1),
		cancel: cancel,
	}

	go func() {
		defer close(s.chunks)
		push := func(chunk string) error {
			select {
			case s.chunks <- chunk:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		s.errc <- produce(ctx, push)
	}()

	return s
}

// ID returns the request ID assigned to this stream.
func (s *Stream) ID() string {
	return s.id
}

// Recv returns the next fragment. It returns io.EOF after the final
// fragment of a successful sequence, or the producer's error for a failed
// one.
func (s *Stream) Recv() (string, error) {
	chunk, ok := <-s.chunks
	if !ok {
		if err := <-s.errc; err != nil {
			// Re-arm so repeated Recv calls keep reporting the error.
			s.errc <- err
			return "", err
		}
		s.errc <- nil
		return "", io.EOF
	}
	return chunk, nil
}

// Collect consumes the remaining fragments and returns their
// concatenation.
func (s *Stream) Collect() (string, error) {
	var b strings.Builder
	for {
		chunk, err := s.Recv()
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
		b.WriteString(chunk)
	}
}

// Close cancels the producer. Fragments not yet received are discarded.
func (s *Stream) Close() {
	s.cancel()
	// Drain so the producer goroutine can finish.
	for range s.chunks {
	}
}
