package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenCounter_Count(t *testing.T) {
	tc := NewTokenCounter()

	assert.Zero(t, tc.Count("gpt-4", ""))

	n := tc.Count("gpt-4", "The quick brown fox jumps over the lazy dog.")
	assert.Greater(t, n, 0)
	assert.Less(t, n, 20)
}

func TestTokenCounter_UnknownModelFallsBack(t *testing.T) {
	tc := NewTokenCounter()

	// Unknown models resolve to cl100k_base and still produce a count.
	n := tc.Count("claude-sonnet-4", "hello world")
	assert.Greater(t, n, 0)
}

func TestTokenCounter_EstimateUsage(t *testing.T) {
	tc := NewTokenCounter()

	usage := tc.EstimateUsage("gpt-4", "what is two plus two", "four")
	assert.Greater(t, usage.PromptTokens, 0)
	assert.Greater(t, usage.CompletionTokens, 0)
	assert.Equal(t, usage.PromptTokens+usage.CompletionTokens, usage.TotalTokens)
}

func TestEstimateFast(t *testing.T) {
	assert.Zero(t, estimateFast(""))
	assert.Zero(t, estimateFast("   "))
	assert.Equal(t, 1, estimateFast("a"))

	// Word count floor: short words dominate rune/4.
	assert.GreaterOrEqual(t, estimateFast("a b c d e f"), 6)
}
