// Package tools provides the tool registry and execution entry point.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agentd-io/agentd/pkg/llm"
	"github.com/agentd-io/agentd/pkg/models"
)

// Tool is a named callable the model can invoke.
type Tool interface {
	Name() string
	Description() string
	// Schema is the JSON schema of the tool arguments.
	Schema() map[string]any
	Execute(ctx context.Context, args map[string]any) models.ToolResult
}

// Registry maps tool names to implementations. Lookups accept both the
// canonical underscore name and the hyphenated form used in XML tags.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool, replacing any previous tool with the same name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns the tool for name. Hyphenated XML tag names resolve to their
// underscore equivalents.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tools[name]; ok {
		return t, true
	}
	t, ok := r.tools[strings.ReplaceAll(name, "-", "_")]
	return t, ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the registered tools in the shape the LLM gateway
// expects for native tool calling.
func (r *Registry) Definitions() []llm.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]llm.ToolDefinition, 0, len(r.tools))
	for _, t := range r.tools {
		schema := "{}"
		if s := t.Schema(); s != nil {
			if b, err := json.Marshal(s); err == nil {
				schema = string(b)
			}
		}
		defs = append(defs, llm.ToolDefinition{
			Name:             t.Name(),
			Description:      t.Description(),
			ParametersSchema: schema,
		})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Execute runs the named tool. An unknown name is an unsuccessful result,
// not an error: the failure is fed back to the model as a tool result.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) models.ToolResult {
	t, ok := r.Get(name)
	if !ok {
		return models.ToolResult{
			Success: false,
			Error:   fmt.Sprintf("Tool '%s' not found", name),
		}
	}
	return t.Execute(ctx, args)
}
