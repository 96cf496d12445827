// Code generated by ent, DO NOT EDIT.

package triggereventlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentd-io/agentd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContainsFold(FieldID, id))
}

// TriggerID applies equality check predicate on the "trigger_id" field. It's identical to TriggerIDEQ.
func TriggerID(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldTriggerID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldAgentID, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldSuccess, v))
}

// ShouldExecuteAgent applies equality check predicate on the "should_execute_agent" field. It's identical to ShouldExecuteAgentEQ.
func ShouldExecuteAgent(v bool) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldShouldExecuteAgent, v))
}

// ShouldExecuteWorkflow applies equality check predicate on the "should_execute_workflow" field. It's identical to ShouldExecuteWorkflowEQ.
func ShouldExecuteWorkflow(v bool) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldShouldExecuteWorkflow, v))
}

// AgentPrompt applies equality check predicate on the "agent_prompt" field. It's identical to AgentPromptEQ.
func AgentPrompt(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldAgentPrompt, v))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldWorkflowID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldRunID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldCreatedAt, v))
}

// TriggerIDEQ applies the EQ predicate on the "trigger_id" field.
func TriggerIDEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldTriggerID, v))
}

// TriggerIDNEQ applies the NEQ predicate on the "trigger_id" field.
func TriggerIDNEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldTriggerID, v))
}

// TriggerIDIn applies the In predicate on the "trigger_id" field.
func TriggerIDIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIn(FieldTriggerID, vs...))
}

// TriggerIDNotIn applies the NotIn predicate on the "trigger_id" field.
func TriggerIDNotIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotIn(FieldTriggerID, vs...))
}

// TriggerIDGT applies the GT predicate on the "trigger_id" field.
func TriggerIDGT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGT(FieldTriggerID, v))
}

// TriggerIDGTE applies the GTE predicate on the "trigger_id" field.
func TriggerIDGTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGTE(FieldTriggerID, v))
}

// TriggerIDLT applies the LT predicate on the "trigger_id" field.
func TriggerIDLT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLT(FieldTriggerID, v))
}

// TriggerIDLTE applies the LTE predicate on the "trigger_id" field.
func TriggerIDLTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLTE(FieldTriggerID, v))
}

// TriggerIDContains applies the Contains predicate on the "trigger_id" field.
func TriggerIDContains(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContains(FieldTriggerID, v))
}

// TriggerIDHasPrefix applies the HasPrefix predicate on the "trigger_id" field.
func TriggerIDHasPrefix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasPrefix(FieldTriggerID, v))
}

// TriggerIDHasSuffix applies the HasSuffix predicate on the "trigger_id" field.
func TriggerIDHasSuffix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasSuffix(FieldTriggerID, v))
}

// TriggerIDEqualFold applies the EqualFold predicate on the "trigger_id" field.
func TriggerIDEqualFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEqualFold(FieldTriggerID, v))
}

// TriggerIDContainsFold applies the ContainsFold predicate on the "trigger_id" field.
func TriggerIDContainsFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContainsFold(FieldTriggerID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContainsFold(FieldAgentID, v))
}

// RawDataIsNil applies the IsNil predicate on the "raw_data" field.
func RawDataIsNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIsNull(FieldRawData))
}

// RawDataNotNil applies the NotNil predicate on the "raw_data" field.
func RawDataNotNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotNull(FieldRawData))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldSuccess, v))
}

// ShouldExecuteAgentEQ applies the EQ predicate on the "should_execute_agent" field.
func ShouldExecuteAgentEQ(v bool) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldShouldExecuteAgent, v))
}

// ShouldExecuteAgentNEQ applies the NEQ predicate on the "should_execute_agent" field.
func ShouldExecuteAgentNEQ(v bool) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldShouldExecuteAgent, v))
}

// ShouldExecuteWorkflowEQ applies the EQ predicate on the "should_execute_workflow" field.
func ShouldExecuteWorkflowEQ(v bool) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldShouldExecuteWorkflow, v))
}

// ShouldExecuteWorkflowNEQ applies the NEQ predicate on the "should_execute_workflow" field.
func ShouldExecuteWorkflowNEQ(v bool) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldShouldExecuteWorkflow, v))
}

// AgentPromptEQ applies the EQ predicate on the "agent_prompt" field.
func AgentPromptEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldAgentPrompt, v))
}

// AgentPromptNEQ applies the NEQ predicate on the "agent_prompt" field.
func AgentPromptNEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldAgentPrompt, v))
}

// AgentPromptIn applies the In predicate on the "agent_prompt" field.
func AgentPromptIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIn(FieldAgentPrompt, vs...))
}

// AgentPromptNotIn applies the NotIn predicate on the "agent_prompt" field.
func AgentPromptNotIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotIn(FieldAgentPrompt, vs...))
}

// AgentPromptGT applies the GT predicate on the "agent_prompt" field.
func AgentPromptGT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGT(FieldAgentPrompt, v))
}

// AgentPromptGTE applies the GTE predicate on the "agent_prompt" field.
func AgentPromptGTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGTE(FieldAgentPrompt, v))
}

// AgentPromptLT applies the LT predicate on the "agent_prompt" field.
func AgentPromptLT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLT(FieldAgentPrompt, v))
}

// AgentPromptLTE applies the LTE predicate on the "agent_prompt" field.
func AgentPromptLTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLTE(FieldAgentPrompt, v))
}

// AgentPromptContains applies the Contains predicate on the "agent_prompt" field.
func AgentPromptContains(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContains(FieldAgentPrompt, v))
}

// AgentPromptHasPrefix applies the HasPrefix predicate on the "agent_prompt" field.
func AgentPromptHasPrefix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasPrefix(FieldAgentPrompt, v))
}

// AgentPromptHasSuffix applies the HasSuffix predicate on the "agent_prompt" field.
func AgentPromptHasSuffix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasSuffix(FieldAgentPrompt, v))
}

// AgentPromptIsNil applies the IsNil predicate on the "agent_prompt" field.
func AgentPromptIsNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIsNull(FieldAgentPrompt))
}

// AgentPromptNotNil applies the NotNil predicate on the "agent_prompt" field.
func AgentPromptNotNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotNull(FieldAgentPrompt))
}

// AgentPromptEqualFold applies the EqualFold predicate on the "agent_prompt" field.
func AgentPromptEqualFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEqualFold(FieldAgentPrompt, v))
}

// AgentPromptContainsFold applies the ContainsFold predicate on the "agent_prompt" field.
func AgentPromptContainsFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContainsFold(FieldAgentPrompt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDIsNil applies the IsNil predicate on the "workflow_id" field.
func WorkflowIDIsNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIsNull(FieldWorkflowID))
}

// WorkflowIDNotNil applies the NotNil predicate on the "workflow_id" field.
func WorkflowIDNotNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotNull(FieldWorkflowID))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContainsFold(FieldWorkflowID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContainsFold(FieldRunID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTrigger applies the HasEdge predicate on the "trigger" edge.
func HasTrigger() predicate.TriggerEventLog {
	return predicate.TriggerEventLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TriggerTable, TriggerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTriggerWith applies the HasEdge predicate on the "trigger" edge with a given conditions (other predicates).
func HasTriggerWith(preds ...predicate.Trigger) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(func(s *sql.Selector) {
		step := newTriggerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TriggerEventLog) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TriggerEventLog) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TriggerEventLog) predicate.TriggerEventLog {
	return predicate.TriggerEventLog(sql.NotPredicates(p))
}
