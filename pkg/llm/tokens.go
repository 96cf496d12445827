package llm

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter counts tokens with tiktoken-go, caching one encoding per
// model. Unknown models fall back to cl100k_base; if no encoding can be
// loaded at all, a character heuristic is used instead.
type TokenCounter struct {
	mu        sync.Mutex
	encodings map[string]*tiktoken.Tiktoken
}

// NewTokenCounter creates an empty counter. Encodings are loaded lazily on
// first use per model.
func NewTokenCounter() *TokenCounter {
	return &TokenCounter{encodings: make(map[string]*tiktoken.Tiktoken)}
}

// Count returns the token count of text for the given model.
func (tc *TokenCounter) Count(model, text string) int {
	if text == "" {
		return 0
	}
	enc := tc.encodingFor(model)
	if enc == nil {
		return estimateFast(text)
	}
	return len(enc.Encode(text, nil, nil))
}

// CountMessages returns the total token count of a conversation, including a
// small per-message overhead for role framing.
func (tc *TokenCounter) CountMessages(model string, messages []Message) int {
	const perMessageOverhead = 4
	total := 0
	for _, m := range messages {
		total += tc.Count(model, m.Content) + perMessageOverhead
	}
	return total
}

// Message is the minimal shape CountMessages needs.
type Message struct {
	Role    string
	Content string
}

// EstimateUsage builds a usage record from prompt and completion text. Used
// when the gateway stream ends without reporting usage.
func (tc *TokenCounter) EstimateUsage(model, prompt, completion string) UsageChunk {
	p := tc.Count(model, prompt)
	c := tc.Count(model, completion)
	return UsageChunk{
		PromptTokens:     p,
		CompletionTokens: c,
		TotalTokens:      p + c,
	}
}

func (tc *TokenCounter) encodingFor(model string) *tiktoken.Tiktoken {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if enc, ok := tc.encodings[model]; ok {
		return enc
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			tc.encodings[model] = nil
			return nil
		}
	}
	tc.encodings[model] = enc
	return enc
}

// estimateFast is a heuristic token estimate: max(runes/4, word count).
func estimateFast(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	runes := len([]rune(trimmed))
	words := len(strings.Fields(trimmed))
	estimate := runes / 4
	if estimate < words {
		estimate = words
	}
	if estimate == 0 {
		estimate = 1
	}
	return estimate
}
