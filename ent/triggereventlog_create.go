// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentd-io/agentd/ent/trigger"
	"github.com/agentd-io/agentd/ent/triggereventlog"
)

// TriggerEventLogCreate is the builder for creating a TriggerEventLog entity.
type TriggerEventLogCreate struct {
	config
	mutation *TriggerEventLogMutation
	hooks    []Hook
}

// SetTriggerID sets the "trigger_id" field.
func (_c *TriggerEventLogCreate) SetTriggerID(v string) *TriggerEventLogCreate {
	_c.mutation.SetTriggerID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *TriggerEventLogCreate) SetAgentID(v string) *TriggerEventLogCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetRawData sets the "raw_data" field.
func (_c *TriggerEventLogCreate) SetRawData(v map[string]interface{}) *TriggerEventLogCreate {
	_c.mutation.SetRawData(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *TriggerEventLogCreate) SetSuccess(v bool) *TriggerEventLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *TriggerEventLogCreate) SetNillableSuccess(v *bool) *TriggerEventLogCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetShouldExecuteAgent sets the "should_execute_agent" field.
func (_c *TriggerEventLogCreate) SetShouldExecuteAgent(v bool) *TriggerEventLogCreate {
	_c.mutation.SetShouldExecuteAgent(v)
	return _c
}

// SetNillableShouldExecuteAgent sets the "should_execute_agent" field if the given value is not nil.
func (_c *TriggerEventLogCreate) SetNillableShouldExecuteAgent(v *bool) *TriggerEventLogCreate {
	if v != nil {
		_c.SetShouldExecuteAgent(*v)
	}
	return _c
}

// SetShouldExecuteWorkflow sets the "should_execute_workflow" field.
func (_c *TriggerEventLogCreate) SetShouldExecuteWorkflow(v bool) *TriggerEventLogCreate {
	_c.mutation.SetShouldExecuteWorkflow(v)
	return _c
}

// SetNillableShouldExecuteWorkflow sets the "should_execute_workflow" field if the given value is not nil.
func (_c *TriggerEventLogCreate) SetNillableShouldExecuteWorkflow(v *bool) *TriggerEventLogCreate {
	if v != nil {
		_c.SetShouldExecuteWorkflow(*v)
	}
	return _c
}

// SetAgentPrompt sets the "agent_prompt" field.
func (_c *TriggerEventLogCreate) SetAgentPrompt(v string) *TriggerEventLogCreate {
	_c.mutation.SetAgentPrompt(v)
	return _c
}

// SetNillableAgentPrompt sets the "agent_prompt" field if the given value is not nil.
func (_c *TriggerEventLogCreate) SetNillableAgentPrompt(v *string) *TriggerEventLogCreate {
	if v != nil {
		_c.SetAgentPrompt(*v)
	}
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *TriggerEventLogCreate) SetWorkflowID(v string) *TriggerEventLogCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_c *TriggerEventLogCreate) SetNillableWorkflowID(v *string) *TriggerEventLogCreate {
	if v != nil {
		_c.SetWorkflowID(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *TriggerEventLogCreate) SetRunID(v string) *TriggerEventLogCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *TriggerEventLogCreate) SetNillableRunID(v *string) *TriggerEventLogCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TriggerEventLogCreate) SetErrorMessage(v string) *TriggerEventLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TriggerEventLogCreate) SetNillableErrorMessage(v *string) *TriggerEventLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriggerEventLogCreate) SetCreatedAt(v time.Time) *TriggerEventLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriggerEventLogCreate) SetNillableCreatedAt(v *time.Time) *TriggerEventLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriggerEventLogCreate) SetID(v string) *TriggerEventLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTrigger sets the "trigger" edge to the Trigger entity.
func (_c *TriggerEventLogCreate) SetTrigger(v *Trigger) *TriggerEventLogCreate {
	return _c.SetTriggerID(v.ID)
}

// Mutation returns the TriggerEventLogMutation object of the builder.
func (_c *TriggerEventLogCreate) Mutation() *TriggerEventLogMutation {
	return _c.mutation
}

// Save creates the TriggerEventLog in the database.
func (_c *TriggerEventLogCreate) Save(ctx context.Context) (*TriggerEventLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriggerEventLogCreate) SaveX(ctx context.Context) *TriggerEventLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerEventLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerEventLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriggerEventLogCreate) defaults() {
	if _, ok := _c.mutation.Success(); !ok {
		v := triggereventlog.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.ShouldExecuteAgent(); !ok {
		v := triggereventlog.DefaultShouldExecuteAgent
		_c.mutation.SetShouldExecuteAgent(v)
	}
	if _, ok := _c.mutation.ShouldExecuteWorkflow(); !ok {
		v := triggereventlog.DefaultShouldExecuteWorkflow
		_c.mutation.SetShouldExecuteWorkflow(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triggereventlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriggerEventLogCreate) check() error {
	if _, ok := _c.mutation.TriggerID(); !ok {
		return &ValidationError{Name: "trigger_id", err: errors.New(`ent: missing required field "TriggerEventLog.trigger_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "TriggerEventLog.agent_id"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "TriggerEventLog.success"`)}
	}
	if _, ok := _c.mutation.ShouldExecuteAgent(); !ok {
		return &ValidationError{Name: "should_execute_agent", err: errors.New(`ent: missing required field "TriggerEventLog.should_execute_agent"`)}
	}
	if _, ok := _c.mutation.ShouldExecuteWorkflow(); !ok {
		return &ValidationError{Name: "should_execute_workflow", err: errors.New(`ent: missing required field "TriggerEventLog.should_execute_workflow"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TriggerEventLog.created_at"`)}
	}
	if len(_c.mutation.TriggerIDs()) == 0 {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required edge "TriggerEventLog.trigger"`)}
	}
	return nil
}

func (_c *TriggerEventLogCreate) sqlSave(ctx context.Context) (*TriggerEventLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TriggerEventLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriggerEventLogCreate) createSpec() (*TriggerEventLog, *sqlgraph.CreateSpec) {
	var (
		_node = &TriggerEventLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triggereventlog.Table, sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(triggereventlog.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.RawData(); ok {
		_spec.SetField(triggereventlog.FieldRawData, field.TypeJSON, value)
		_node.RawData = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(triggereventlog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ShouldExecuteAgent(); ok {
		_spec.SetField(triggereventlog.FieldShouldExecuteAgent, field.TypeBool, value)
		_node.ShouldExecuteAgent = value
	}
	if value, ok := _c.mutation.ShouldExecuteWorkflow(); ok {
		_spec.SetField(triggereventlog.FieldShouldExecuteWorkflow, field.TypeBool, value)
		_node.ShouldExecuteWorkflow = value
	}
	if value, ok := _c.mutation.AgentPrompt(); ok {
		_spec.SetField(triggereventlog.FieldAgentPrompt, field.TypeString, value)
		_node.AgentPrompt = &value
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(triggereventlog.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = &value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(triggereventlog.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(triggereventlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triggereventlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TriggerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   triggereventlog.TriggerTable,
			Columns: []string{triggereventlog.TriggerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trigger.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TriggerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TriggerEventLogCreateBulk is the builder for creating many TriggerEventLog entities in bulk.
type TriggerEventLogCreateBulk struct {
	config
	err      error
	builders []*TriggerEventLogCreate
}

// Save creates the TriggerEventLog entities in the database.
func (_c *TriggerEventLogCreateBulk) Save(ctx context.Context) ([]*TriggerEventLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriggerEventLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriggerEventLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TriggerEventLogCreateBulk) SaveX(ctx context.Context) []*TriggerEventLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerEventLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerEventLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
