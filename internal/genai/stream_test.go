// ABOUTME: Tests for the chunk stream and scripted generator
// ABOUTME: Covers full consumption, producer errors, and cancellation

package genai

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_RecvToEOF(t *testing.T) {
	s := NewStream(context.Background(), func(_ context.Context, push func(string) error) error {
		for _, c := range []string{"hel", "lo"} {
			if err := push(c); err != nil {
				return err
			}
		}
		return nil
	})

	chunk, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "hel", chunk)

	chunk, err = s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "lo", chunk)

	_, err = s.Recv()
	assert.Equal(t, io.EOF, err)

	// EOF is sticky
	_, err = s.Recv()
	assert.Equal(t, io.EOF, err)
}

func TestStream_Collect(t *testing.T) {
	s := NewStream(context.Background(), func(_ context.Context, push func(string) error) error {
		for _, c := range []string{"a", "b", "c"} {
			if err := push(c); err != nil {
				return err
			}
		}
		return nil
	})

	text, err := s.Collect()
	require.NoError(t, err)
	assert.Equal(t, "abc", text)
}

func TestStream_ProducerError(t *testing.T) {
	wantErr := errors.New("backend unavailable")
	s := NewStream(context.Background(), func(_ context.Context, push func(string) error) error {
		if err := push("partial"); err != nil {
			return err
		}
		return wantErr
	})

	_, err := s.Collect()
	assert.ErrorIs(t, err, wantErr)

	// The error is sticky too
	_, err = s.Recv()
	assert.ErrorIs(t, err, wantErr)
}

func TestStream_CloseCancelsProducer(t *testing.T) {
	produced := make(chan struct{})
	s := NewStream(context.Background(), func(ctx context.Context, push func(string) error) error {
		defer close(produced)
		for {
			if err := push("x"); err != nil {
				return err
			}
		}
	})

	chunk, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "x", chunk)

	s.Close()
	<-produced // producer observed the cancellation and returned
}

func TestStream_HasID(t *testing.T) {
	s := NewStream(context.Background(), func(_ context.Context, _ func(string) error) error {
		return nil
	})
	assert.NotEmpty(t, s.ID())
}

func TestScripted_StreamsChunks(t *testing.T) {
	gen := &Scripted{Chunks: []string{"one ", "two"}}

	s, err := gen.Stream(context.Background(), "a prompt")
	require.NoError(t, err)

	text, err := s.Collect()
	require.NoError(t, err)
	assert.Equal(t, "one two", text)
	assert.Equal(t, []string{"a prompt"}, gen.Prompts)
}

func TestScripted_Err(t *testing.T) {
	wantErr := errors.New("quota exhausted upstream")
	gen := &Scripted{Err: wantErr}

	_, err := gen.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, wantErr)

	_, err = gen.GenerateImage(context.Background(), "p")
	assert.ErrorIs(t, err, wantErr)
}

func TestImage_DataURL(t *testing.T) {
	img := &Image{Data: "aGVsbG8=", MIMEType: "image/jpeg"}
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", img.DataURL())
}
