// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/ent/event"
	"github.com/agentd-io/agentd/ent/predicate"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *AgentRunUpdate) SetProjectID(v string) *AgentRunUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableProjectID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *AgentRunUpdate) ClearProjectID() *AgentRunUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentRunUpdate) SetAgentID(v string) *AgentRunUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableAgentID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *AgentRunUpdate) ClearAgentID() *AgentRunUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdate) SetStatus(v agentrun.Status) *AgentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStatus(v *agentrun.Status) *AgentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdate) SetModel(v string) *AgentRunUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableModel(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProcessorConfig sets the "processor_config" field.
func (_u *AgentRunUpdate) SetProcessorConfig(v map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetProcessorConfig(v)
	return _u
}

// ClearProcessorConfig clears the value of the "processor_config" field.
func (_u *AgentRunUpdate) ClearProcessorConfig() *AgentRunUpdate {
	_u.mutation.ClearProcessorConfig()
	return _u
}

// SetSystemPromptSuffix sets the "system_prompt_suffix" field.
func (_u *AgentRunUpdate) SetSystemPromptSuffix(v string) *AgentRunUpdate {
	_u.mutation.SetSystemPromptSuffix(v)
	return _u
}

// SetNillableSystemPromptSuffix sets the "system_prompt_suffix" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableSystemPromptSuffix(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetSystemPromptSuffix(*v)
	}
	return _u
}

// ClearSystemPromptSuffix clears the value of the "system_prompt_suffix" field.
func (_u *AgentRunUpdate) ClearSystemPromptSuffix() *AgentRunUpdate {
	_u.mutation.ClearSystemPromptSuffix()
	return _u
}

// SetAgentConfig sets the "agent_config" field.
func (_u *AgentRunUpdate) SetAgentConfig(v map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetAgentConfig(v)
	return _u
}

// ClearAgentConfig clears the value of the "agent_config" field.
func (_u *AgentRunUpdate) ClearAgentConfig() *AgentRunUpdate {
	_u.mutation.ClearAgentConfig()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentRunUpdate) SetCreatedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCreatedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdate) SetStartedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStartedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentRunUpdate) ClearStartedAt() *AgentRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdate) SetCompletedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCompletedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdate) ClearCompletedAt() *AgentRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdate) SetErrorMessage(v string) *AgentRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorMessage(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdate) ClearErrorMessage() *AgentRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResponses sets the "responses" field.
func (_u *AgentRunUpdate) SetResponses(v []map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *AgentRunUpdate) AppendResponses(v []map[string]interface{}) *AgentRunUpdate {
	_u.mutation.AppendResponses(v)
	return _u
}

// ClearResponses clears the value of the "responses" field.
func (_u *AgentRunUpdate) ClearResponses() *AgentRunUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *AgentRunUpdate) SetInstanceID(v string) *AgentRunUpdate {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableInstanceID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (_u *AgentRunUpdate) ClearInstanceID() *AgentRunUpdate {
	_u.mutation.ClearInstanceID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AgentRunUpdate) SetLastHeartbeatAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AgentRunUpdate) ClearLastHeartbeatAt() *AgentRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AgentRunUpdate) AddEventIDs(ids ...int) *AgentRunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AgentRunUpdate) AddEvents(v ...*Event) *AgentRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AgentRunUpdate) ClearEvents() *AgentRunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AgentRunUpdate) RemoveEventIDs(ids ...int) *AgentRunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AgentRunUpdate) RemoveEvents(v ...*Event) *AgentRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.thread"`)
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(agentrun.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(agentrun.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentrun.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(agentrun.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessorConfig(); ok {
		_spec.SetField(agentrun.FieldProcessorConfig, field.TypeJSON, value)
	}
	if _u.mutation.ProcessorConfigCleared() {
		_spec.ClearField(agentrun.FieldProcessorConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.SystemPromptSuffix(); ok {
		_spec.SetField(agentrun.FieldSystemPromptSuffix, field.TypeString, value)
	}
	if _u.mutation.SystemPromptSuffixCleared() {
		_spec.ClearField(agentrun.FieldSystemPromptSuffix, field.TypeString)
	}
	if value, ok := _u.mutation.AgentConfig(); ok {
		_spec.SetField(agentrun.FieldAgentConfig, field.TypeJSON, value)
	}
	if _u.mutation.AgentConfigCleared() {
		_spec.ClearField(agentrun.FieldAgentConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agentrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(agentrun.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrun.FieldResponses, value)
		})
	}
	if _u.mutation.ResponsesCleared() {
		_spec.ClearField(agentrun.FieldResponses, field.TypeJSON)
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(agentrun.FieldInstanceID, field.TypeString, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(agentrun.FieldInstanceID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agentrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agentrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetProjectID sets the "project_id" field.
func (_u *AgentRunUpdateOne) SetProjectID(v string) *AgentRunUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableProjectID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *AgentRunUpdateOne) ClearProjectID() *AgentRunUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentRunUpdateOne) SetAgentID(v string) *AgentRunUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableAgentID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *AgentRunUpdateOne) ClearAgentID() *AgentRunUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdateOne) SetStatus(v agentrun.Status) *AgentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStatus(v *agentrun.Status) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdateOne) SetModel(v string) *AgentRunUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableModel(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProcessorConfig sets the "processor_config" field.
func (_u *AgentRunUpdateOne) SetProcessorConfig(v map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetProcessorConfig(v)
	return _u
}

// ClearProcessorConfig clears the value of the "processor_config" field.
func (_u *AgentRunUpdateOne) ClearProcessorConfig() *AgentRunUpdateOne {
	_u.mutation.ClearProcessorConfig()
	return _u
}

// SetSystemPromptSuffix sets the "system_prompt_suffix" field.
func (_u *AgentRunUpdateOne) SetSystemPromptSuffix(v string) *AgentRunUpdateOne {
	_u.mutation.SetSystemPromptSuffix(v)
	return _u
}

// SetNillableSystemPromptSuffix sets the "system_prompt_suffix" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableSystemPromptSuffix(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetSystemPromptSuffix(*v)
	}
	return _u
}

// ClearSystemPromptSuffix clears the value of the "system_prompt_suffix" field.
func (_u *AgentRunUpdateOne) ClearSystemPromptSuffix() *AgentRunUpdateOne {
	_u.mutation.ClearSystemPromptSuffix()
	return _u
}

// SetAgentConfig sets the "agent_config" field.
func (_u *AgentRunUpdateOne) SetAgentConfig(v map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetAgentConfig(v)
	return _u
}

// ClearAgentConfig clears the value of the "agent_config" field.
func (_u *AgentRunUpdateOne) ClearAgentConfig() *AgentRunUpdateOne {
	_u.mutation.ClearAgentConfig()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentRunUpdateOne) SetCreatedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCreatedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdateOne) SetStartedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStartedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentRunUpdateOne) ClearStartedAt() *AgentRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdateOne) SetCompletedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdateOne) ClearCompletedAt() *AgentRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdateOne) SetErrorMessage(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorMessage(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdateOne) ClearErrorMessage() *AgentRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResponses sets the "responses" field.
func (_u *AgentRunUpdateOne) SetResponses(v []map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *AgentRunUpdateOne) AppendResponses(v []map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.AppendResponses(v)
	return _u
}

// ClearResponses clears the value of the "responses" field.
func (_u *AgentRunUpdateOne) ClearResponses() *AgentRunUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *AgentRunUpdateOne) SetInstanceID(v string) *AgentRunUpdateOne {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableInstanceID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (_u *AgentRunUpdateOne) ClearInstanceID() *AgentRunUpdateOne {
	_u.mutation.ClearInstanceID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AgentRunUpdateOne) SetLastHeartbeatAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AgentRunUpdateOne) ClearLastHeartbeatAt() *AgentRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AgentRunUpdateOne) AddEventIDs(ids ...int) *AgentRunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AgentRunUpdateOne) AddEvents(v ...*Event) *AgentRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AgentRunUpdateOne) ClearEvents() *AgentRunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AgentRunUpdateOne) RemoveEventIDs(ids ...int) *AgentRunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AgentRunUpdateOne) RemoveEvents(v ...*Event) *AgentRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.thread"`)
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(agentrun.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(agentrun.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentrun.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(agentrun.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessorConfig(); ok {
		_spec.SetField(agentrun.FieldProcessorConfig, field.TypeJSON, value)
	}
	if _u.mutation.ProcessorConfigCleared() {
		_spec.ClearField(agentrun.FieldProcessorConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.SystemPromptSuffix(); ok {
		_spec.SetField(agentrun.FieldSystemPromptSuffix, field.TypeString, value)
	}
	if _u.mutation.SystemPromptSuffixCleared() {
		_spec.ClearField(agentrun.FieldSystemPromptSuffix, field.TypeString)
	}
	if value, ok := _u.mutation.AgentConfig(); ok {
		_spec.SetField(agentrun.FieldAgentConfig, field.TypeJSON, value)
	}
	if _u.mutation.AgentConfigCleared() {
		_spec.ClearField(agentrun.FieldAgentConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agentrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(agentrun.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrun.FieldResponses, value)
		})
	}
	if _u.mutation.ResponsesCleared() {
		_spec.ClearField(agentrun.FieldResponses, field.TypeJSON)
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(agentrun.FieldInstanceID, field.TypeString, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(agentrun.FieldInstanceID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agentrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agentrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
