package models

import "strings"

// Terminating tool names. When one of these returns, no further tools may
// start and the run finishes with reason agent_terminated.
const (
	ToolNameAsk      = "ask"
	ToolNameComplete = "complete"
)

// IsTerminatingTool reports whether a tool name ends the run on return.
func IsTerminatingTool(name string) bool {
	return name == ToolNameAsk || name == ToolNameComplete
}

// ToolCall is a request embedded in the LLM output to invoke a named
// capability with arguments. ID is present for native calls; XMLTagName is
// the hyphenated external alias for calls parsed from the XML form.
type ToolCall struct {
	FunctionName string         `json:"function_name"`
	Arguments    map[string]any `json:"arguments"`
	ID           string         `json:"id,omitempty"`
	XMLTagName   string         `json:"xml_tag_name,omitempty"`
}

// HyphenatedName returns the legacy display alias: function_name with
// underscores replaced by hyphens.
func HyphenatedName(functionName string) string {
	return strings.ReplaceAll(functionName, "_", "-")
}

// ToolResult is the outcome of one tool invocation. Output may be a plain
// string or structured JSON that viewers render specially.
type ToolResult struct {
	Success bool   `json:"success"`
	Output  any    `json:"output"`
	Error   string `json:"error,omitempty"`
}

// ParsingDetails preserves the raw shape of an XML tool call for display.
type ParsingDetails struct {
	RawXML      string            `json:"raw_xml"`
	Attributes  map[string]string `json:"attributes"`
	Elements    map[string]string `json:"elements"`
	TextContent string            `json:"text_content"`
	RootContent string            `json:"root_content"`
}
