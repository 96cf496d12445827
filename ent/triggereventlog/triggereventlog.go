// Code generated by ent, DO NOT EDIT.

package triggereventlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the triggereventlog type in the database.
	Label = "trigger_event_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "log_id"
	// FieldTriggerID holds the string denoting the trigger_id field in the database.
	FieldTriggerID = "trigger_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldRawData holds the string denoting the raw_data field in the database.
	FieldRawData = "raw_data"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldShouldExecuteAgent holds the string denoting the should_execute_agent field in the database.
	FieldShouldExecuteAgent = "should_execute_agent"
	// FieldShouldExecuteWorkflow holds the string denoting the should_execute_workflow field in the database.
	FieldShouldExecuteWorkflow = "should_execute_workflow"
	// FieldAgentPrompt holds the string denoting the agent_prompt field in the database.
	FieldAgentPrompt = "agent_prompt"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTrigger holds the string denoting the trigger edge name in mutations.
	EdgeTrigger = "trigger"
	// TriggerFieldID holds the string denoting the ID field of the Trigger.
	TriggerFieldID = "trigger_id"
	// Table holds the table name of the triggereventlog in the database.
	Table = "trigger_event_logs"
	// TriggerTable is the table that holds the trigger relation/edge.
	TriggerTable = "trigger_event_logs"
	// TriggerInverseTable is the table name for the Trigger entity.
	// It exists in this package in order to avoid circular dependency with the "trigger" package.
	TriggerInverseTable = "triggers"
	// TriggerColumn is the table column denoting the trigger relation/edge.
	TriggerColumn = "trigger_id"
)

// Columns holds all SQL columns for triggereventlog fields.
var Columns = []string{
	FieldID,
	FieldTriggerID,
	FieldAgentID,
	FieldRawData,
	FieldSuccess,
	FieldShouldExecuteAgent,
	FieldShouldExecuteWorkflow,
	FieldAgentPrompt,
	FieldWorkflowID,
	FieldRunID,
	FieldErrorMessage,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultShouldExecuteAgent holds the default value on creation for the "should_execute_agent" field.
	DefaultShouldExecuteAgent bool
	// DefaultShouldExecuteWorkflow holds the default value on creation for the "should_execute_workflow" field.
	DefaultShouldExecuteWorkflow bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TriggerEventLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTriggerID orders the results by the trigger_id field.
func ByTriggerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByShouldExecuteAgent orders the results by the should_execute_agent field.
func ByShouldExecuteAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShouldExecuteAgent, opts...).ToFunc()
}

// ByShouldExecuteWorkflow orders the results by the should_execute_workflow field.
func ByShouldExecuteWorkflow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShouldExecuteWorkflow, opts...).ToFunc()
}

// ByAgentPrompt orders the results by the agent_prompt field.
func ByAgentPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentPrompt, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTriggerField orders the results by trigger field.
func ByTriggerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTriggerStep(), sql.OrderByField(field, opts...))
	}
}
func newTriggerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TriggerInverseTable, TriggerFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TriggerTable, TriggerColumn),
	)
}
