// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentd-io/agentd/ent/predicate"
	"github.com/agentd-io/agentd/ent/triggereventlog"
)

// TriggerEventLogDelete is the builder for deleting a TriggerEventLog entity.
type TriggerEventLogDelete struct {
	config
	hooks    []Hook
	mutation *TriggerEventLogMutation
}

// Where appends a list predicates to the TriggerEventLogDelete builder.
func (_d *TriggerEventLogDelete) Where(ps ...predicate.TriggerEventLog) *TriggerEventLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TriggerEventLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TriggerEventLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TriggerEventLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(triggereventlog.Table, sqlgraph.NewFieldSpec(triggereventlog.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TriggerEventLogDeleteOne is the builder for deleting a single TriggerEventLog entity.
type TriggerEventLogDeleteOne struct {
	_d *TriggerEventLogDelete
}

// Where appends a list predicates to the TriggerEventLogDelete builder.
func (_d *TriggerEventLogDeleteOne) Where(ps ...predicate.TriggerEventLog) *TriggerEventLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TriggerEventLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{triggereventlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TriggerEventLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
