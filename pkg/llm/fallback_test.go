package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient replays a fixed sequence of chunks, or fails the call outright.
type stubClient struct {
	chunks  []Chunk
	callErr error
	calls   int
}

func (s *stubClient) Generate(_ context.Context, _ *Request) (<-chan Chunk, error) {
	s.calls++
	if s.callErr != nil {
		return nil, s.callErr
	}
	ch := make(chan Chunk, len(s.chunks))
	for _, c := range s.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *stubClient) Close() error { return nil }

func collect(t *testing.T, ch <-chan Chunk) []Chunk {
	t.Helper()
	var out []Chunk
	for c := range ch {
		out = append(out, c)
	}
	return out
}

func TestFallbackClient_PrimaryHealthy(t *testing.T) {
	primary := &stubClient{chunks: []Chunk{
		&TextChunk{Content: "hello"},
		&FinishChunk{Reason: FinishReasonStop},
	}}
	fallback := &stubClient{}

	c := NewFallbackClient(primary, fallback)
	ch, err := c.Generate(context.Background(), &Request{Model: "m"})
	require.NoError(t, err)

	chunks := collect(t, ch)
	require.Len(t, chunks, 2)
	assert.Equal(t, "hello", chunks[0].(*TextChunk).Content)
	assert.Zero(t, fallback.calls)
}

func TestFallbackClient_CallFailureRoutesToFallback(t *testing.T) {
	primary := &stubClient{callErr: errors.New("connection refused")}
	fallback := &stubClient{chunks: []Chunk{
		&TextChunk{Content: "from fallback"},
		&FinishChunk{Reason: FinishReasonStop},
	}}

	c := NewFallbackClient(primary, fallback)
	ch, err := c.Generate(context.Background(), &Request{Model: "m"})
	require.NoError(t, err)

	chunks := collect(t, ch)
	require.Len(t, chunks, 2)
	assert.Equal(t, "from fallback", chunks[0].(*TextChunk).Content)
	assert.Equal(t, 1, fallback.calls)
}

func TestFallbackClient_PreContentRetryableError(t *testing.T) {
	primary := &stubClient{chunks: []Chunk{
		&ErrorChunk{Message: "overloaded", Code: "529", Retryable: true},
	}}
	fallback := &stubClient{chunks: []Chunk{
		&TextChunk{Content: "recovered"},
		&FinishChunk{Reason: FinishReasonStop},
	}}

	c := NewFallbackClient(primary, fallback)
	ch, err := c.Generate(context.Background(), &Request{Model: "m"})
	require.NoError(t, err)

	chunks := collect(t, ch)
	require.Len(t, chunks, 2)
	assert.Equal(t, "recovered", chunks[0].(*TextChunk).Content)
}

func TestFallbackClient_MidStreamErrorNotRetried(t *testing.T) {
	primary := &stubClient{chunks: []Chunk{
		&TextChunk{Content: "partial"},
		&ErrorChunk{Message: "stream reset", Retryable: true},
	}}
	fallback := &stubClient{chunks: []Chunk{&TextChunk{Content: "unused"}}}

	c := NewFallbackClient(primary, fallback)
	ch, err := c.Generate(context.Background(), &Request{Model: "m"})
	require.NoError(t, err)

	chunks := collect(t, ch)
	require.Len(t, chunks, 2)
	assert.IsType(t, &ErrorChunk{}, chunks[1])
	assert.Zero(t, fallback.calls)
}

func TestFallbackClient_NoFallbackConfigured(t *testing.T) {
	primary := &stubClient{callErr: errors.New("connection refused")}

	c := NewFallbackClient(primary, nil)
	_, err := c.Generate(context.Background(), &Request{Model: "m"})
	require.Error(t, err)
}
