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
	"github.com/jervis-ai/jervis-core/ent/graphcheckpoint"
	"github.com/jervis-ai/jervis-core/ent/predicate"
)

// GraphCheckpointUpdate is the builder for updating GraphCheckpoint entities.
type GraphCheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *GraphCheckpointMutation
}

// Where appends a list predicates to the GraphCheckpointUpdate builder.
func (_u *GraphCheckpointUpdate) Where(ps ...predicate.GraphCheckpoint) *GraphCheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *GraphCheckpointUpdate) SetTaskID(v string) *GraphCheckpointUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *GraphCheckpointUpdate) SetNillableTaskID(v *string) *GraphCheckpointUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *GraphCheckpointUpdate) SetClientID(v string) *GraphCheckpointUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *GraphCheckpointUpdate) SetNillableClientID(v *string) *GraphCheckpointUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *GraphCheckpointUpdate) SetState(v map[string]interface{}) *GraphCheckpointUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetInterrupt sets the "interrupt" field.
func (_u *GraphCheckpointUpdate) SetInterrupt(v map[string]interface{}) *GraphCheckpointUpdate {
	_u.mutation.SetInterrupt(v)
	return _u
}

// ClearInterrupt clears the value of the "interrupt" field.
func (_u *GraphCheckpointUpdate) ClearInterrupt() *GraphCheckpointUpdate {
	_u.mutation.ClearInterrupt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GraphCheckpointUpdate) SetStatus(v graphcheckpoint.Status) *GraphCheckpointUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GraphCheckpointUpdate) SetNillableStatus(v *graphcheckpoint.Status) *GraphCheckpointUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GraphCheckpointUpdate) SetUpdatedAt(v time.Time) *GraphCheckpointUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GraphCheckpointMutation object of the builder.
func (_u *GraphCheckpointUpdate) Mutation() *GraphCheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphCheckpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphCheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphCheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphCheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GraphCheckpointUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := graphcheckpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphCheckpointUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := graphcheckpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GraphCheckpoint.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphCheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphcheckpoint.Table, graphcheckpoint.Columns, sqlgraph.NewFieldSpec(graphcheckpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(graphcheckpoint.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(graphcheckpoint.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(graphcheckpoint.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Interrupt(); ok {
		_spec.SetField(graphcheckpoint.FieldInterrupt, field.TypeJSON, value)
	}
	if _u.mutation.InterruptCleared() {
		_spec.ClearField(graphcheckpoint.FieldInterrupt, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(graphcheckpoint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(graphcheckpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphcheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphCheckpointUpdateOne is the builder for updating a single GraphCheckpoint entity.
type GraphCheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphCheckpointMutation
}

// SetTaskID sets the "task_id" field.
func (_u *GraphCheckpointUpdateOne) SetTaskID(v string) *GraphCheckpointUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *GraphCheckpointUpdateOne) SetNillableTaskID(v *string) *GraphCheckpointUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *GraphCheckpointUpdateOne) SetClientID(v string) *GraphCheckpointUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *GraphCheckpointUpdateOne) SetNillableClientID(v *string) *GraphCheckpointUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *GraphCheckpointUpdateOne) SetState(v map[string]interface{}) *GraphCheckpointUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetInterrupt sets the "interrupt" field.
func (_u *GraphCheckpointUpdateOne) SetInterrupt(v map[string]interface{}) *GraphCheckpointUpdateOne {
	_u.mutation.SetInterrupt(v)
	return _u
}

// ClearInterrupt clears the value of the "interrupt" field.
func (_u *GraphCheckpointUpdateOne) ClearInterrupt() *GraphCheckpointUpdateOne {
	_u.mutation.ClearInterrupt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GraphCheckpointUpdateOne) SetStatus(v graphcheckpoint.Status) *GraphCheckpointUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GraphCheckpointUpdateOne) SetNillableStatus(v *graphcheckpoint.Status) *GraphCheckpointUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GraphCheckpointUpdateOne) SetUpdatedAt(v time.Time) *GraphCheckpointUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GraphCheckpointMutation object of the builder.
func (_u *GraphCheckpointUpdateOne) Mutation() *GraphCheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the GraphCheckpointUpdate builder.
func (_u *GraphCheckpointUpdateOne) Where(ps ...predicate.GraphCheckpoint) *GraphCheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphCheckpointUpdateOne) Select(field string, fields ...string) *GraphCheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphCheckpoint entity.
func (_u *GraphCheckpointUpdateOne) Save(ctx context.Context) (*GraphCheckpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphCheckpointUpdateOne) SaveX(ctx context.Context) *GraphCheckpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphCheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphCheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GraphCheckpointUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := graphcheckpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphCheckpointUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := graphcheckpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GraphCheckpoint.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphCheckpointUpdateOne) sqlSave(ctx context.Context) (_node *GraphCheckpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphcheckpoint.Table, graphcheckpoint.Columns, sqlgraph.NewFieldSpec(graphcheckpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphCheckpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphcheckpoint.FieldID)
		for _, f := range fields {
			if !graphcheckpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphcheckpoint.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(graphcheckpoint.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(graphcheckpoint.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(graphcheckpoint.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Interrupt(); ok {
		_spec.SetField(graphcheckpoint.FieldInterrupt, field.TypeJSON, value)
	}
	if _u.mutation.InterruptCleared() {
		_spec.ClearField(graphcheckpoint.FieldInterrupt, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(graphcheckpoint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(graphcheckpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GraphCheckpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphcheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
