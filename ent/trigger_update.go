// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentd-io/agentd/ent/predicate"
	"github.com/agentd-io/agentd/ent/trigger"
	"github.com/agentd-io/agentd/ent/triggereventlog"
)

// TriggerUpdate is the builder for updating Trigger entities.
type TriggerUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerMutation
}

// Where appends a list predicates to the TriggerUpdate builder.
func (_u *TriggerUpdate) Where(ps ...predicate.Trigger) *TriggerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *TriggerUpdate) SetProviderID(v string) *TriggerUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableProviderID(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *TriggerUpdate) SetTriggerType(v trigger.TriggerType) *TriggerUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableTriggerType(v *trigger.TriggerType) *TriggerUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TriggerUpdate) SetName(v string) *TriggerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableName(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TriggerUpdate) SetDescription(v string) *TriggerUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableDescription(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TriggerUpdate) ClearDescription() *TriggerUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TriggerUpdate) SetIsActive(v bool) *TriggerUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableIsActive(v *bool) *TriggerUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *TriggerUpdate) SetConsecutiveFailures(v int) *TriggerUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableConsecutiveFailures(v *int) *TriggerUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *TriggerUpdate) AddConsecutiveFailures(v int) *TriggerUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *TriggerUpdate) SetConfig(v map[string]interface{}) *TriggerUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TriggerUpdate) SetUpdatedAt(v time.Time) *TriggerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventLogIDs adds the "event_logs" edge to the TriggerEventLog entity by IDs.
func (_u *TriggerUpdate) AddEventLogIDs(ids ...string) *TriggerUpdate {
	_u.mutation.AddEventLogIDs(ids...)
	return _u
}

// AddEventLogs adds the "event_logs" edges to the TriggerEventLog entity.
func (_u *TriggerUpdate) AddEventLogs(v ...*TriggerEventLog) *TriggerUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLogIDs(ids...)
}

// Mutation returns the TriggerMutation object of the builder.
func (_u *TriggerUpdate) Mutation() *TriggerMutation {
	return _u.mutation
}

// ClearEventLogs clears all "event_logs" edges to the TriggerEventLog entity.
func (_u *TriggerUpdate) ClearEventLogs() *TriggerUpdate {
	_u.mutation.ClearEventLogs()
	return _u
}

// RemoveEventLogIDs removes the "event_logs" edge to TriggerEventLog entities by IDs.
func (_u *TriggerUpdate) RemoveEventLogIDs(ids ...string) *TriggerUpdate {
	_u.mutation.RemoveEventLogIDs(ids...)
	return _u
}

// RemoveEventLogs removes "event_logs" edges to TriggerEventLog entities.
func (_u *TriggerUpdate) RemoveEventLogs(v ...*TriggerEventLog) *TriggerUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TriggerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := trigger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerUpdate) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := trigger.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Trigger.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trigger.Table, trigger.Columns, sqlgraph.NewFieldSpec(trigger.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(trigger.FieldProviderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(trigger.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(trigger.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(trigger.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(trigger.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(trigger.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(trigger.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(trigger.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(trigger.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trigger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trigger.EventLogsTable,
			Columns: []string{trigger.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLogsIDs(); len(nodes) > 0 && !_u.mutation.EventLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trigger.EventLogsTable,
			Columns: []string{trigger.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trigger.EventLogsTable,
			Columns: []string{trigger.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trigger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerUpdateOne is the builder for updating a single Trigger entity.
type TriggerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerMutation
}

// SetProviderID sets the "provider_id" field.
func (_u *TriggerUpdateOne) SetProviderID(v string) *TriggerUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableProviderID(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *TriggerUpdateOne) SetTriggerType(v trigger.TriggerType) *TriggerUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableTriggerType(v *trigger.TriggerType) *TriggerUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TriggerUpdateOne) SetName(v string) *TriggerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableName(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TriggerUpdateOne) SetDescription(v string) *TriggerUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableDescription(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TriggerUpdateOne) ClearDescription() *TriggerUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TriggerUpdateOne) SetIsActive(v bool) *TriggerUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableIsActive(v *bool) *TriggerUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *TriggerUpdateOne) SetConsecutiveFailures(v int) *TriggerUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableConsecutiveFailures(v *int) *TriggerUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *TriggerUpdateOne) AddConsecutiveFailures(v int) *TriggerUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *TriggerUpdateOne) SetConfig(v map[string]interface{}) *TriggerUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TriggerUpdateOne) SetUpdatedAt(v time.Time) *TriggerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventLogIDs adds the "event_logs" edge to the TriggerEventLog entity by IDs.
func (_u *TriggerUpdateOne) AddEventLogIDs(ids ...string) *TriggerUpdateOne {
	_u.mutation.AddEventLogIDs(ids...)
	return _u
}

// AddEventLogs adds the "event_logs" edges to the TriggerEventLog entity.
func (_u *TriggerUpdateOne) AddEventLogs(v ...*TriggerEventLog) *TriggerUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLogIDs(ids...)
}

// Mutation returns the TriggerMutation object of the builder.
func (_u *TriggerUpdateOne) Mutation() *TriggerMutation {
	return _u.mutation
}

// ClearEventLogs clears all "event_logs" edges to the TriggerEventLog entity.
func (_u *TriggerUpdateOne) ClearEventLogs() *TriggerUpdateOne {
	_u.mutation.ClearEventLogs()
	return _u
}

// RemoveEventLogIDs removes the "event_logs" edge to TriggerEventLog entities by IDs.
func (_u *TriggerUpdateOne) RemoveEventLogIDs(ids ...string) *TriggerUpdateOne {
	_u.mutation.RemoveEventLogIDs(ids...)
	return _u
}

// RemoveEventLogs removes "event_logs" edges to TriggerEventLog entities.
func (_u *TriggerUpdateOne) RemoveEventLogs(v ...*TriggerEventLog) *TriggerUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLogIDs(ids...)
}

// Where appends a list predicates to the TriggerUpdate builder.
func (_u *TriggerUpdateOne) Where(ps ...predicate.Trigger) *TriggerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerUpdateOne) Select(field string, fields ...string) *TriggerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trigger entity.
func (_u *TriggerUpdateOne) Save(ctx context.Context) (*Trigger, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerUpdateOne) SaveX(ctx context.Context) *Trigger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TriggerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := trigger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerUpdateOne) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := trigger.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Trigger.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerUpdateOne) sqlSave(ctx context.Context) (_node *Trigger, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trigger.Table, trigger.Columns, sqlgraph.NewFieldSpec(trigger.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trigger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trigger.FieldID)
		for _, f := range fields {
			if !trigger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trigger.FieldID {
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
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(trigger.FieldProviderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(trigger.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(trigger.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(trigger.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(trigger.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(trigger.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(trigger.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(trigger.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(trigger.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trigger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trigger.EventLogsTable,
			Columns: []string{trigger.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLogsIDs(); len(nodes) > 0 && !_u.mutation.EventLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trigger.EventLogsTable,
			Columns: []string{trigger.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trigger.EventLogsTable,
			Columns: []string{trigger.EventLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Trigger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trigger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
