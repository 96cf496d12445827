// Package processor transforms one LLM response stream into the ordered
// sequence of response items a run produces, executing tool calls along
// the way.
package processor

import "errors"

// Tool execution strategies.
const (
	StrategySequential = "sequential"
	StrategyParallel   = "parallel"
)

// Roles a tool-result message may take in subsequent LLM turns.
const (
	XMLAddingUserMessage      = "user_message"
	XMLAddingAssistantMessage = "assistant_message"
	XMLAddingInlineEdit       = "inline_edit"
)

// Config controls how a run's LLM responses are processed. It is stored as
// JSON on the run row, so fields carry json tags.
type Config struct {
	XMLToolCalling    bool `json:"xml_tool_calling"`
	NativeToolCalling bool `json:"native_tool_calling"`

	// ExecuteTools false means tool calls are detected and recorded but
	// never run.
	ExecuteTools bool `json:"execute_tools"`

	// ExecuteOnStream starts tool execution as soon as a complete call is
	// parsed instead of batching after the stream ends.
	ExecuteOnStream bool `json:"execute_on_stream"`

	// ToolExecutionStrategy is sequential or parallel.
	ToolExecutionStrategy string `json:"tool_execution_strategy"`

	// XMLAddingStrategy picks the role tool-result messages take in the
	// conversation replayed to the model.
	XMLAddingStrategy string `json:"xml_adding_strategy"`

	// MaxXMLToolCalls truncates the response after N accepted XML calls.
	// Zero disables the cap.
	MaxXMLToolCalls int `json:"max_xml_tool_calls"`

	// MaxAutoContinues bounds auto-continue cycles on finish reason length.
	// Zero disables auto-continue.
	MaxAutoContinues int `json:"max_auto_continues"`
}

// DefaultConfig returns the processing configuration used when a run
// provides none.
func DefaultConfig() Config {
	return Config{
		XMLToolCalling:        true,
		NativeToolCalling:     true,
		ExecuteTools:          true,
		ExecuteOnStream:       false,
		ToolExecutionStrategy: StrategySequential,
		XMLAddingStrategy:     XMLAddingUserMessage,
		MaxXMLToolCalls:       0,
		MaxAutoContinues:      4,
	}
}

// Validate checks internal consistency and fills defaulted enum fields.
func (c *Config) Validate() error {
	if c.ExecuteTools && !c.XMLToolCalling && !c.NativeToolCalling {
		return errors.New("execute_tools requires at least one of xml_tool_calling or native_tool_calling")
	}
	switch c.ToolExecutionStrategy {
	case "":
		c.ToolExecutionStrategy = StrategySequential
	case StrategySequential, StrategyParallel:
	default:
		return errors.New("tool_execution_strategy must be sequential or parallel")
	}
	switch c.XMLAddingStrategy {
	case "":
		c.XMLAddingStrategy = XMLAddingUserMessage
	case XMLAddingUserMessage, XMLAddingAssistantMessage, XMLAddingInlineEdit:
	default:
		return errors.New("xml_adding_strategy must be user_message, assistant_message, or inline_edit")
	}
	if c.MaxXMLToolCalls < 0 {
		return errors.New("max_xml_tool_calls must be >= 0")
	}
	if c.MaxAutoContinues < 0 {
		return errors.New("max_auto_continues must be >= 0")
	}
	return nil
}
