package e2e

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agentd-io/agentd/pkg/llm"
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	// Response content (exactly one must be set)
	Chunks []llm.Chunk // Pre-built chunks to return
	Text   string      // Shorthand: auto-wrapped as Text + Usage + Finish(stop)
	Error  error       // Return error from Generate()

	// Test control
	BlockUntilCancelled bool            // Block the stream until ctx is cancelled
	WaitCh              <-chan struct{} // Block Generate() until closed, then return normal response
	OnBlock             chan<- struct{} // Notified when Generate() enters its blocking path
}

// ScriptedLLMClient implements llm.Client with a sequential script: each
// Generate() call consumes the next entry. Captured requests are kept for
// prompt assertions.
type ScriptedLLMClient struct {
	mu               sync.Mutex
	entries          []LLMScriptEntry
	index            int
	capturedRequests []*llm.Request
}

// NewScriptedLLMClient creates a new ScriptedLLMClient.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// Add appends an entry consumed by the next Generate() call.
func (c *ScriptedLLMClient) Add(entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

// AddText is shorthand for a plain completed text turn.
func (c *ScriptedLLMClient) AddText(text string) {
	c.Add(LLMScriptEntry{Text: text})
}

// Generate implements llm.Client.
func (c *ScriptedLLMClient) Generate(ctx context.Context, req *llm.Request) (<-chan llm.Chunk, error) {
	c.mu.Lock()
	c.capturedRequests = append(c.capturedRequests, req)

	if c.index >= len(c.entries) {
		n := len(c.entries)
		c.mu.Unlock()
		return nil, fmt.Errorf("ScriptedLLMClient: no more entries (%d consumed)", n)
	}
	entry := &c.entries[c.index]
	c.index++
	c.mu.Unlock()

	// Hold the stream open until the run is cancelled. The first chunk makes
	// the run observably "in progress" before it blocks.
	if entry.BlockUntilCancelled {
		ch := make(chan llm.Chunk, 1)
		ch <- &llm.TextChunk{Content: "working"}
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		return ch, nil
	}

	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
			// Released — fall through to send chunks normally
		case <-ctx.Done():
			ch := make(chan llm.Chunk)
			close(ch)
			return ch, nil
		}
	}

	if entry.Error != nil {
		return nil, entry.Error
	}

	chunks := entry.Chunks
	if len(chunks) == 0 && entry.Text != "" {
		chunks = []llm.Chunk{
			&llm.TextChunk{Content: entry.Text},
			&llm.UsageChunk{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			&llm.FinishChunk{Reason: llm.FinishReasonStop, Model: req.Model, Created: time.Now().Unix()},
		}
	}

	ch := make(chan llm.Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

// Close implements llm.Client.
func (c *ScriptedLLMClient) Close() error { return nil }

// CallCount returns the total number of Generate() calls made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.capturedRequests)
}

// CapturedRequests returns a snapshot of every Generate() request seen.
func (c *ScriptedLLMClient) CapturedRequests() []*llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*llm.Request, len(c.capturedRequests))
	copy(out, c.capturedRequests)
	return out
}
