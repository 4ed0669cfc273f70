// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jervis-ai/jervis-core/ent/graphcheckpoint"
	"github.com/jervis-ai/jervis-core/ent/predicate"
)

// GraphCheckpointDelete is the builder for deleting a GraphCheckpoint entity.
type GraphCheckpointDelete struct {
	config
	hooks    []Hook
	mutation *GraphCheckpointMutation
}

// Where appends a list predicates to the GraphCheckpointDelete builder.
func (_d *GraphCheckpointDelete) Where(ps ...predicate.GraphCheckpoint) *GraphCheckpointDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GraphCheckpointDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GraphCheckpointDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GraphCheckpointDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(graphcheckpoint.Table, sqlgraph.NewFieldSpec(graphcheckpoint.FieldID, field.TypeString))
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

// GraphCheckpointDeleteOne is the builder for deleting a single GraphCheckpoint entity.
type GraphCheckpointDeleteOne struct {
	_d *GraphCheckpointDelete
}

// Where appends a list predicates to the GraphCheckpointDelete builder.
func (_d *GraphCheckpointDeleteOne) Where(ps ...predicate.GraphCheckpoint) *GraphCheckpointDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GraphCheckpointDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{graphcheckpoint.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GraphCheckpointDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
