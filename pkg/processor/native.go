package processor

import (
	"encoding/json"
	"sort"

	"github.com/agentd-io/agentd/pkg/llm"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/kaptinlin/jsonrepair"
)

// nativeCall accumulates tool-call delta fragments sharing one index.
type nativeCall struct {
	Index     int
	ID        string
	Name      string
	Arguments string
	complete  bool
}

// nativeBuffer merges native tool-call deltas by index and reports calls
// that have become complete: id, name, and parseable arguments present.
type nativeBuffer struct {
	calls map[int]*nativeCall
}

func newNativeBuffer() *nativeBuffer {
	return &nativeBuffer{calls: make(map[int]*nativeCall)}
}

// Add merges one delta. If the merged entry just became complete, the
// canonical tool call is returned; otherwise nil.
func (b *nativeBuffer) Add(delta *llm.ToolCallDeltaChunk) *models.ToolCall {
	entry, ok := b.calls[delta.Index]
	if !ok {
		entry = &nativeCall{Index: delta.Index}
		b.calls[delta.Index] = entry
	}
	if delta.ID != "" {
		entry.ID = delta.ID
	}
	if delta.Name != "" {
		entry.Name = delta.Name
	}
	entry.Arguments += delta.ArgumentsDelta

	if entry.complete || entry.ID == "" || entry.Name == "" {
		return nil
	}
	args, ok := parseArguments(entry.Arguments)
	if !ok {
		return nil
	}
	entry.complete = true
	return &models.ToolCall{
		ID:           entry.ID,
		FunctionName: entry.Name,
		Arguments:    args,
	}
}

// Drain returns any buffered calls not yet reported complete, repairing
// malformed argument JSON where possible. Ordered by index.
func (b *nativeBuffer) Drain() []models.ToolCall {
	indexes := make([]int, 0, len(b.calls))
	for i, entry := range b.calls {
		if !entry.complete && entry.Name != "" {
			indexes = append(indexes, i)
		}
	}
	sort.Ints(indexes)

	var out []models.ToolCall
	for _, i := range indexes {
		entry := b.calls[i]
		args, ok := parseArguments(entry.Arguments)
		if !ok {
			if repaired, err := jsonrepair.JSONRepair(entry.Arguments); err == nil {
				args, ok = parseArguments(repaired)
			}
		}
		if !ok {
			args = map[string]any{}
		}
		entry.complete = true
		out = append(out, models.ToolCall{
			ID:           entry.ID,
			FunctionName: entry.Name,
			Arguments:    args,
		})
	}
	return out
}

// PromptCalls returns every buffered call in the wire shape replayed to the
// model on subsequent turns.
func (b *nativeBuffer) PromptCalls() []models.PromptToolCall {
	indexes := make([]int, 0, len(b.calls))
	for i := range b.calls {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	var out []models.PromptToolCall
	for _, i := range indexes {
		entry := b.calls[i]
		if entry.Name == "" {
			continue
		}
		args := entry.Arguments
		if args == "" {
			args = "{}"
		}
		out = append(out, models.PromptToolCall{
			ID:        entry.ID,
			Name:      entry.Name,
			Arguments: args,
		})
	}
	return out
}

func parseArguments(raw string) (map[string]any, bool) {
	if raw == "" {
		return nil, false
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, false
	}
	return args, true
}
