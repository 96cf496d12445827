// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentd-io/agentd/ent/predicate"
	"github.com/agentd-io/agentd/ent/triggereventlog"
)

// TriggerEventLogUpdate is the builder for updating TriggerEventLog entities.
type TriggerEventLogUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerEventLogMutation
}

// Where appends a list predicates to the TriggerEventLogUpdate builder.
func (_u *TriggerEventLogUpdate) Where(ps ...predicate.TriggerEventLog) *TriggerEventLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRawData sets the "raw_data" field.
func (_u *TriggerEventLogUpdate) SetRawData(v map[string]interface{}) *TriggerEventLogUpdate {
	_u.mutation.SetRawData(v)
	return _u
}

// ClearRawData clears the value of the "raw_data" field.
func (_u *TriggerEventLogUpdate) ClearRawData() *TriggerEventLogUpdate {
	_u.mutation.ClearRawData()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TriggerEventLogUpdate) SetSuccess(v bool) *TriggerEventLogUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TriggerEventLogUpdate) SetNillableSuccess(v *bool) *TriggerEventLogUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetShouldExecuteAgent sets the "should_execute_agent" field.
func (_u *TriggerEventLogUpdate) SetShouldExecuteAgent(v bool) *TriggerEventLogUpdate {
	_u.mutation.SetShouldExecuteAgent(v)
	return _u
}

// SetNillableShouldExecuteAgent sets the "should_execute_agent" field if the given value is not nil.
func (_u *TriggerEventLogUpdate) SetNillableShouldExecuteAgent(v *bool) *TriggerEventLogUpdate {
	if v != nil {
		_u.SetShouldExecuteAgent(*v)
	}
	return _u
}

// SetShouldExecuteWorkflow sets the "should_execute_workflow" field.
func (_u *TriggerEventLogUpdate) SetShouldExecuteWorkflow(v bool) *TriggerEventLogUpdate {
	_u.mutation.SetShouldExecuteWorkflow(v)
	return _u
}

// SetNillableShouldExecuteWorkflow sets the "should_execute_workflow" field if the given value is not nil.
func (_u *TriggerEventLogUpdate) SetNillableShouldExecuteWorkflow(v *bool) *TriggerEventLogUpdate {
	if v != nil {
		_u.SetShouldExecuteWorkflow(*v)
	}
	return _u
}

// SetAgentPrompt sets the "agent_prompt" field.
func (_u *TriggerEventLogUpdate) SetAgentPrompt(v string) *TriggerEventLogUpdate {
	_u.mutation.SetAgentPrompt(v)
	return _u
}

// SetNillableAgentPrompt sets the "agent_prompt" field if the given value is not nil.
func (_u *TriggerEventLogUpdate) SetNillableAgentPrompt(v *string) *TriggerEventLogUpdate {
	if v != nil {
		_u.SetAgentPrompt(*v)
	}
	return _u
}

// ClearAgentPrompt clears the value of the "agent_prompt" field.
func (_u *TriggerEventLogUpdate) ClearAgentPrompt() *TriggerEventLogUpdate {
	_u.mutation.ClearAgentPrompt()
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *TriggerEventLogUpdate) SetWorkflowID(v string) *TriggerEventLogUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *TriggerEventLogUpdate) SetNillableWorkflowID(v *string) *TriggerEventLogUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *TriggerEventLogUpdate) ClearWorkflowID() *TriggerEventLogUpdate {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *TriggerEventLogUpdate) SetRunID(v string) *TriggerEventLogUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *TriggerEventLogUpdate) SetNillableRunID(v *string) *TriggerEventLogUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *TriggerEventLogUpdate) ClearRunID() *TriggerEventLogUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TriggerEventLogUpdate) SetErrorMessage(v string) *TriggerEventLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TriggerEventLogUpdate) SetNillableErrorMessage(v *string) *TriggerEventLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TriggerEventLogUpdate) ClearErrorMessage() *TriggerEventLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the TriggerEventLogMutation object of the builder.
func (_u *TriggerEventLogUpdate) Mutation() *TriggerEventLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerEventLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerEventLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerEventLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerEventLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerEventLogUpdate) check() error {
	if _u.mutation.TriggerCleared() && len(_u.mutation.TriggerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TriggerEventLog.trigger"`)
	}
	return nil
}

func (_u *TriggerEventLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggereventlog.Table, triggereventlog.Columns, sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawData(); ok {
		_spec.SetField(triggereventlog.FieldRawData, field.TypeJSON, value)
	}
	if _u.mutation.RawDataCleared() {
		_spec.ClearField(triggereventlog.FieldRawData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(triggereventlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShouldExecuteAgent(); ok {
		_spec.SetField(triggereventlog.FieldShouldExecuteAgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShouldExecuteWorkflow(); ok {
		_spec.SetField(triggereventlog.FieldShouldExecuteWorkflow, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgentPrompt(); ok {
		_spec.SetField(triggereventlog.FieldAgentPrompt, field.TypeString, value)
	}
	if _u.mutation.AgentPromptCleared() {
		_spec.ClearField(triggereventlog.FieldAgentPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(triggereventlog.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(triggereventlog.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(triggereventlog.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(triggereventlog.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(triggereventlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(triggereventlog.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggereventlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerEventLogUpdateOne is the builder for updating a single TriggerEventLog entity.
type TriggerEventLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerEventLogMutation
}

// SetRawData sets the "raw_data" field.
func (_u *TriggerEventLogUpdateOne) SetRawData(v map[string]interface{}) *TriggerEventLogUpdateOne {
	_u.mutation.SetRawData(v)
	return _u
}

// ClearRawData clears the value of the "raw_data" field.
func (_u *TriggerEventLogUpdateOne) ClearRawData() *TriggerEventLogUpdateOne {
	_u.mutation.ClearRawData()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TriggerEventLogUpdateOne) SetSuccess(v bool) *TriggerEventLogUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TriggerEventLogUpdateOne) SetNillableSuccess(v *bool) *TriggerEventLogUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetShouldExecuteAgent sets the "should_execute_agent" field.
func (_u *TriggerEventLogUpdateOne) SetShouldExecuteAgent(v bool) *TriggerEventLogUpdateOne {
	_u.mutation.SetShouldExecuteAgent(v)
	return _u
}

// SetNillableShouldExecuteAgent sets the "should_execute_agent" field if the given value is not nil.
func (_u *TriggerEventLogUpdateOne) SetNillableShouldExecuteAgent(v *bool) *TriggerEventLogUpdateOne {
	if v != nil {
		_u.SetShouldExecuteAgent(*v)
	}
	return _u
}

// SetShouldExecuteWorkflow sets the "should_execute_workflow" field.
func (_u *TriggerEventLogUpdateOne) SetShouldExecuteWorkflow(v bool) *TriggerEventLogUpdateOne {
	_u.mutation.SetShouldExecuteWorkflow(v)
	return _u
}

// SetNillableShouldExecuteWorkflow sets the "should_execute_workflow" field if the given value is not nil.
func (_u *TriggerEventLogUpdateOne) SetNillableShouldExecuteWorkflow(v *bool) *TriggerEventLogUpdateOne {
	if v != nil {
		_u.SetShouldExecuteWorkflow(*v)
	}
	return _u
}

// SetAgentPrompt sets the "agent_prompt" field.
func (_u *TriggerEventLogUpdateOne) SetAgentPrompt(v string) *TriggerEventLogUpdateOne {
	_u.mutation.SetAgentPrompt(v)
	return _u
}

// SetNillableAgentPrompt sets the "agent_prompt" field if the given value is not nil.
func (_u *TriggerEventLogUpdateOne) SetNillableAgentPrompt(v *string) *TriggerEventLogUpdateOne {
	if v != nil {
		_u.SetAgentPrompt(*v)
	}
	return _u
}

// ClearAgentPrompt clears the value of the "agent_prompt" field.
func (_u *TriggerEventLogUpdateOne) ClearAgentPrompt() *TriggerEventLogUpdateOne {
	_u.mutation.ClearAgentPrompt()
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *TriggerEventLogUpdateOne) SetWorkflowID(v string) *TriggerEventLogUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *TriggerEventLogUpdateOne) SetNillableWorkflowID(v *string) *TriggerEventLogUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *TriggerEventLogUpdateOne) ClearWorkflowID() *TriggerEventLogUpdateOne {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *TriggerEventLogUpdateOne) SetRunID(v string) *TriggerEventLogUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *TriggerEventLogUpdateOne) SetNillableRunID(v *string) *TriggerEventLogUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *TriggerEventLogUpdateOne) ClearRunID() *TriggerEventLogUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TriggerEventLogUpdateOne) SetErrorMessage(v string) *TriggerEventLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TriggerEventLogUpdateOne) SetNillableErrorMessage(v *string) *TriggerEventLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TriggerEventLogUpdateOne) ClearErrorMessage() *TriggerEventLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the TriggerEventLogMutation object of the builder.
func (_u *TriggerEventLogUpdateOne) Mutation() *TriggerEventLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the TriggerEventLogUpdate builder.
func (_u *TriggerEventLogUpdateOne) Where(ps ...predicate.TriggerEventLog) *TriggerEventLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerEventLogUpdateOne) Select(field string, fields ...string) *TriggerEventLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriggerEventLog entity.
func (_u *TriggerEventLogUpdateOne) Save(ctx context.Context) (*TriggerEventLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerEventLogUpdateOne) SaveX(ctx context.Context) *TriggerEventLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerEventLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerEventLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerEventLogUpdateOne) check() error {
	if _u.mutation.TriggerCleared() && len(_u.mutation.TriggerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TriggerEventLog.trigger"`)
	}
	return nil
}

func (_u *TriggerEventLogUpdateOne) sqlSave(ctx context.Context) (_node *TriggerEventLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggereventlog.Table, triggereventlog.Columns, sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriggerEventLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triggereventlog.FieldID)
		for _, f := range fields {
			if !triggereventlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triggereventlog.FieldID {
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
	if value, ok := _u.mutation.RawData(); ok {
		_spec.SetField(triggereventlog.FieldRawData, field.TypeJSON, value)
	}
	if _u.mutation.RawDataCleared() {
		_spec.ClearField(triggereventlog.FieldRawData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(triggereventlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShouldExecuteAgent(); ok {
		_spec.SetField(triggereventlog.FieldShouldExecuteAgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShouldExecuteWorkflow(); ok {
		_spec.SetField(triggereventlog.FieldShouldExecuteWorkflow, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgentPrompt(); ok {
		_spec.SetField(triggereventlog.FieldAgentPrompt, field.TypeString, value)
	}
	if _u.mutation.AgentPromptCleared() {
		_spec.ClearField(triggereventlog.FieldAgentPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(triggereventlog.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(triggereventlog.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(triggereventlog.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(triggereventlog.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(triggereventlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(triggereventlog.FieldErrorMessage, field.TypeString)
	}
	_node = &TriggerEventLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggereventlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
