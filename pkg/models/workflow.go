package models

// Workflow step kinds.
const (
	StepTypeInstruction = "instruction"
	StepTypeCondition   = "condition"
)

// Condition kinds for condition steps.
const (
	ConditionIf     = "if"
	ConditionElseIf = "elseif"
	ConditionElse   = "else"
)

// CreateWorkflowRequest contains fields for creating a workflow.
type CreateWorkflowRequest struct {
	AgentID     string         `json:"agent_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Steps       []WorkflowStep `json:"steps"`
}

// UpdateWorkflowRequest contains fields for updating a workflow.
// Nil pointers leave the corresponding field unchanged.
type UpdateWorkflowRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *string        `json:"status,omitempty"`
	Steps       []WorkflowStep `json:"steps,omitempty"`
}

// WorkflowStep is one node of a workflow step tree: an instruction
// (optional tool, optional nested children) or a condition node carrying
// a branch expression and its children.
type WorkflowStep struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Type        string         `json:"type,omitempty"` // instruction when empty
	Tool        string         `json:"tool,omitempty"`
	Conditions  *StepCondition `json:"conditions,omitempty"`
	Children    []WorkflowStep `json:"children,omitempty"`
}

// IsCondition reports whether the step is a condition branch node.
func (s *WorkflowStep) IsCondition() bool {
	return s.Type == StepTypeCondition && s.Conditions != nil
}

// StepCondition carries the branch kind and expression of a condition node.
type StepCondition struct {
	Type       string `json:"type"` // if, elseif, else
	Expression string `json:"expression,omitempty"`
}
