// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/ent/event"
	"github.com/agentd-io/agentd/ent/message"
	"github.com/agentd-io/agentd/ent/project"
	"github.com/agentd-io/agentd/ent/schema"
	"github.com/agentd-io/agentd/ent/thread"
	"github.com/agentd-io/agentd/ent/trigger"
	"github.com/agentd-io/agentd/ent/triggereventlog"
	"github.com/agentd-io/agentd/ent/workflow"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescCreatedAt is the schema descriptor for created_at field.
	agentrunDescCreatedAt := agentrunFields[9].Descriptor()
	// agentrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrun.DefaultCreatedAt = agentrunDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescIsLlmMessage is the schema descriptor for is_llm_message field.
	messageDescIsLlmMessage := messageFields[4].Descriptor()
	// message.DefaultIsLlmMessage holds the default value on creation for the is_llm_message field.
	message.DefaultIsLlmMessage = messageDescIsLlmMessage.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescUpdatedAt is the schema descriptor for updated_at field.
	messageDescUpdatedAt := messageFields[9].Descriptor()
	// message.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	message.DefaultUpdatedAt = messageDescUpdatedAt.Default.(func() time.Time)
	// message.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	message.UpdateDefaultUpdatedAt = messageDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescCreatedAt is the schema descriptor for created_at field.
	threadDescCreatedAt := threadFields[4].Descriptor()
	// thread.DefaultCreatedAt holds the default value on creation for the created_at field.
	thread.DefaultCreatedAt = threadDescCreatedAt.Default.(func() time.Time)
	// threadDescUpdatedAt is the schema descriptor for updated_at field.
	threadDescUpdatedAt := threadFields[5].Descriptor()
	// thread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	thread.DefaultUpdatedAt = threadDescUpdatedAt.Default.(func() time.Time)
	// thread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	thread.UpdateDefaultUpdatedAt = threadDescUpdatedAt.UpdateDefault.(func() time.Time)
	triggerFields := schema.Trigger{}.Fields()
	_ = triggerFields
	// triggerDescIsActive is the schema descriptor for is_active field.
	triggerDescIsActive := triggerFields[6].Descriptor()
	// trigger.DefaultIsActive holds the default value on creation for the is_active field.
	trigger.DefaultIsActive = triggerDescIsActive.Default.(bool)
	// triggerDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	triggerDescConsecutiveFailures := triggerFields[7].Descriptor()
	// trigger.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	trigger.DefaultConsecutiveFailures = triggerDescConsecutiveFailures.Default.(int)
	// triggerDescCreatedAt is the schema descriptor for created_at field.
	triggerDescCreatedAt := triggerFields[9].Descriptor()
	// trigger.DefaultCreatedAt holds the default value on creation for the created_at field.
	trigger.DefaultCreatedAt = triggerDescCreatedAt.Default.(func() time.Time)
	// triggerDescUpdatedAt is the schema descriptor for updated_at field.
	triggerDescUpdatedAt := triggerFields[10].Descriptor()
	// trigger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	trigger.DefaultUpdatedAt = triggerDescUpdatedAt.Default.(func() time.Time)
	// trigger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	trigger.UpdateDefaultUpdatedAt = triggerDescUpdatedAt.UpdateDefault.(func() time.Time)
	triggereventlogFields := schema.TriggerEventLog{}.Fields()
	_ = triggereventlogFields
	// triggereventlogDescSuccess is the schema descriptor for success field.
	triggereventlogDescSuccess := triggereventlogFields[4].Descriptor()
	// triggereventlog.DefaultSuccess holds the default value on creation for the success field.
	triggereventlog.DefaultSuccess = triggereventlogDescSuccess.Default.(bool)
	// triggereventlogDescShouldExecuteAgent is the schema descriptor for should_execute_agent field.
	triggereventlogDescShouldExecuteAgent := triggereventlogFields[5].Descriptor()
	// triggereventlog.DefaultShouldExecuteAgent holds the default value on creation for the should_execute_agent field.
	triggereventlog.DefaultShouldExecuteAgent = triggereventlogDescShouldExecuteAgent.Default.(bool)
	// triggereventlogDescShouldExecuteWorkflow is the schema descriptor for should_execute_workflow field.
	triggereventlogDescShouldExecuteWorkflow := triggereventlogFields[6].Descriptor()
	// triggereventlog.DefaultShouldExecuteWorkflow holds the default value on creation for the should_execute_workflow field.
	triggereventlog.DefaultShouldExecuteWorkflow = triggereventlogDescShouldExecuteWorkflow.Default.(bool)
	// triggereventlogDescCreatedAt is the schema descriptor for created_at field.
	triggereventlogDescCreatedAt := triggereventlogFields[11].Descriptor()
	// triggereventlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	triggereventlog.DefaultCreatedAt = triggereventlogDescCreatedAt.Default.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[6].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[7].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
}
