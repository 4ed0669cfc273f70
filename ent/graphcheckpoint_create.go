// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jervis-ai/jervis-core/ent/graphcheckpoint"
)

// GraphCheckpointCreate is the builder for creating a GraphCheckpoint entity.
type GraphCheckpointCreate struct {
	config
	mutation *GraphCheckpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *GraphCheckpointCreate) SetTaskID(v string) *GraphCheckpointCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *GraphCheckpointCreate) SetClientID(v string) *GraphCheckpointCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *GraphCheckpointCreate) SetState(v map[string]interface{}) *GraphCheckpointCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetInterrupt sets the "interrupt" field.
func (_c *GraphCheckpointCreate) SetInterrupt(v map[string]interface{}) *GraphCheckpointCreate {
	_c.mutation.SetInterrupt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GraphCheckpointCreate) SetStatus(v graphcheckpoint.Status) *GraphCheckpointCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GraphCheckpointCreate) SetNillableStatus(v *graphcheckpoint.Status) *GraphCheckpointCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GraphCheckpointCreate) SetCreatedAt(v time.Time) *GraphCheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GraphCheckpointCreate) SetNillableCreatedAt(v *time.Time) *GraphCheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GraphCheckpointCreate) SetUpdatedAt(v time.Time) *GraphCheckpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GraphCheckpointCreate) SetNillableUpdatedAt(v *time.Time) *GraphCheckpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GraphCheckpointCreate) SetID(v string) *GraphCheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GraphCheckpointMutation object of the builder.
func (_c *GraphCheckpointCreate) Mutation() *GraphCheckpointMutation {
	return _c.mutation
}

// Save creates the GraphCheckpoint in the database.
func (_c *GraphCheckpointCreate) Save(ctx context.Context) (*GraphCheckpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphCheckpointCreate) SaveX(ctx context.Context) *GraphCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphCheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphCheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphCheckpointCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := graphcheckpoint.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := graphcheckpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := graphcheckpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphCheckpointCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "GraphCheckpoint.task_id"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "GraphCheckpoint.client_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "GraphCheckpoint.state"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GraphCheckpoint.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := graphcheckpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GraphCheckpoint.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GraphCheckpoint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GraphCheckpoint.updated_at"`)}
	}
	return nil
}

func (_c *GraphCheckpointCreate) sqlSave(ctx context.Context) (*GraphCheckpoint, error) {
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
			return nil, fmt.Errorf("unexpected GraphCheckpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GraphCheckpointCreate) createSpec() (*GraphCheckpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphCheckpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphcheckpoint.Table, sqlgraph.NewFieldSpec(graphcheckpoint.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(graphcheckpoint.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(graphcheckpoint.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(graphcheckpoint.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Interrupt(); ok {
		_spec.SetField(graphcheckpoint.FieldInterrupt, field.TypeJSON, value)
		_node.Interrupt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(graphcheckpoint.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graphcheckpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(graphcheckpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GraphCheckpoint.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GraphCheckpointUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *GraphCheckpointCreate) OnConflict(opts ...sql.ConflictOption) *GraphCheckpointUpsertOne {
	_c.conflict = opts
	return &GraphCheckpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GraphCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GraphCheckpointCreate) OnConflictColumns(columns ...string) *GraphCheckpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GraphCheckpointUpsertOne{
		create: _c,
	}
}

type (
	// GraphCheckpointUpsertOne is the builder for "upsert"-ing
	//  one GraphCheckpoint node.
	GraphCheckpointUpsertOne struct {
		create *GraphCheckpointCreate
	}

	// GraphCheckpointUpsert is the "OnConflict" setter.
	GraphCheckpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *GraphCheckpointUpsert) SetTaskID(v string) *GraphCheckpointUpsert {
	u.Set(graphcheckpoint.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *GraphCheckpointUpsert) UpdateTaskID() *GraphCheckpointUpsert {
	u.SetExcluded(graphcheckpoint.FieldTaskID)
	return u
}

// SetClientID sets the "client_id" field.
func (u *GraphCheckpointUpsert) SetClientID(v string) *GraphCheckpointUpsert {
	u.Set(graphcheckpoint.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *GraphCheckpointUpsert) UpdateClientID() *GraphCheckpointUpsert {
	u.SetExcluded(graphcheckpoint.FieldClientID)
	return u
}

// SetState sets the "state" field.
func (u *GraphCheckpointUpsert) SetState(v map[string]interface{}) *GraphCheckpointUpsert {
	u.Set(graphcheckpoint.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *GraphCheckpointUpsert) UpdateState() *GraphCheckpointUpsert {
	u.SetExcluded(graphcheckpoint.FieldState)
	return u
}

// SetInterrupt sets the "interrupt" field.
func (u *GraphCheckpointUpsert) SetInterrupt(v map[string]interface{}) *GraphCheckpointUpsert {
	u.Set(graphcheckpoint.FieldInterrupt, v)
	return u
}

// UpdateInterrupt sets the "interrupt" field to the value that was provided on create.
func (u *GraphCheckpointUpsert) UpdateInterrupt() *GraphCheckpointUpsert {
	u.SetExcluded(graphcheckpoint.FieldInterrupt)
	return u
}

// ClearInterrupt clears the value of the "interrupt" field.
func (u *GraphCheckpointUpsert) ClearInterrupt() *GraphCheckpointUpsert {
	u.SetNull(graphcheckpoint.FieldInterrupt)
	return u
}

// SetStatus sets the "status" field.
func (u *GraphCheckpointUpsert) SetStatus(v graphcheckpoint.Status) *GraphCheckpointUpsert {
	u.Set(graphcheckpoint.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GraphCheckpointUpsert) UpdateStatus() *GraphCheckpointUpsert {
	u.SetExcluded(graphcheckpoint.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GraphCheckpointUpsert) SetUpdatedAt(v time.Time) *GraphCheckpointUpsert {
	u.Set(graphcheckpoint.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GraphCheckpointUpsert) UpdateUpdatedAt() *GraphCheckpointUpsert {
	u.SetExcluded(graphcheckpoint.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GraphCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(graphcheckpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GraphCheckpointUpsertOne) UpdateNewValues() *GraphCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(graphcheckpoint.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(graphcheckpoint.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GraphCheckpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GraphCheckpointUpsertOne) Ignore() *GraphCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GraphCheckpointUpsertOne) DoNothing() *GraphCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GraphCheckpointCreate.OnConflict
// documentation for more info.
func (u *GraphCheckpointUpsertOne) Update(set func(*GraphCheckpointUpsert)) *GraphCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GraphCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *GraphCheckpointUpsertOne) SetTaskID(v string) *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *GraphCheckpointUpsertOne) UpdateTaskID() *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateTaskID()
	})
}

// SetClientID sets the "client_id" field.
func (u *GraphCheckpointUpsertOne) SetClientID(v string) *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *GraphCheckpointUpsertOne) UpdateClientID() *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateClientID()
	})
}

// SetState sets the "state" field.
func (u *GraphCheckpointUpsertOne) SetState(v map[string]interface{}) *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *GraphCheckpointUpsertOne) UpdateState() *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateState()
	})
}

// SetInterrupt sets the "interrupt" field.
func (u *GraphCheckpointUpsertOne) SetInterrupt(v map[string]interface{}) *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetInterrupt(v)
	})
}

// UpdateInterrupt sets the "interrupt" field to the value that was provided on create.
func (u *GraphCheckpointUpsertOne) UpdateInterrupt() *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateInterrupt()
	})
}

// ClearInterrupt clears the value of the "interrupt" field.
func (u *GraphCheckpointUpsertOne) ClearInterrupt() *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.ClearInterrupt()
	})
}

// SetStatus sets the "status" field.
func (u *GraphCheckpointUpsertOne) SetStatus(v graphcheckpoint.Status) *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GraphCheckpointUpsertOne) UpdateStatus() *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GraphCheckpointUpsertOne) SetUpdatedAt(v time.Time) *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GraphCheckpointUpsertOne) UpdateUpdatedAt() *GraphCheckpointUpsertOne {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GraphCheckpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GraphCheckpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GraphCheckpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GraphCheckpointUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GraphCheckpointUpsertOne.ID is not supported by MySQL driver. Use GraphCheckpointUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GraphCheckpointUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GraphCheckpointCreateBulk is the builder for creating many GraphCheckpoint entities in bulk.
type GraphCheckpointCreateBulk struct {
	config
	err      error
	builders []*GraphCheckpointCreate
	conflict []sql.ConflictOption
}

// Save creates the GraphCheckpoint entities in the database.
func (_c *GraphCheckpointCreateBulk) Save(ctx context.Context) ([]*GraphCheckpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphCheckpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphCheckpointMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *GraphCheckpointCreateBulk) SaveX(ctx context.Context) []*GraphCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphCheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphCheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GraphCheckpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GraphCheckpointUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *GraphCheckpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *GraphCheckpointUpsertBulk {
	_c.conflict = opts
	return &GraphCheckpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GraphCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GraphCheckpointCreateBulk) OnConflictColumns(columns ...string) *GraphCheckpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GraphCheckpointUpsertBulk{
		create: _c,
	}
}

// GraphCheckpointUpsertBulk is the builder for "upsert"-ing
// a bulk of GraphCheckpoint nodes.
type GraphCheckpointUpsertBulk struct {
	create *GraphCheckpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GraphCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(graphcheckpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GraphCheckpointUpsertBulk) UpdateNewValues() *GraphCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(graphcheckpoint.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(graphcheckpoint.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GraphCheckpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GraphCheckpointUpsertBulk) Ignore() *GraphCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GraphCheckpointUpsertBulk) DoNothing() *GraphCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GraphCheckpointCreateBulk.OnConflict
// documentation for more info.
func (u *GraphCheckpointUpsertBulk) Update(set func(*GraphCheckpointUpsert)) *GraphCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GraphCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *GraphCheckpointUpsertBulk) SetTaskID(v string) *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *GraphCheckpointUpsertBulk) UpdateTaskID() *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateTaskID()
	})
}

// SetClientID sets the "client_id" field.
func (u *GraphCheckpointUpsertBulk) SetClientID(v string) *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *GraphCheckpointUpsertBulk) UpdateClientID() *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateClientID()
	})
}

// SetState sets the "state" field.
func (u *GraphCheckpointUpsertBulk) SetState(v map[string]interface{}) *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *GraphCheckpointUpsertBulk) UpdateState() *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateState()
	})
}

// SetInterrupt sets the "interrupt" field.
func (u *GraphCheckpointUpsertBulk) SetInterrupt(v map[string]interface{}) *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetInterrupt(v)
	})
}

// UpdateInterrupt sets the "interrupt" field to the value that was provided on create.
func (u *GraphCheckpointUpsertBulk) UpdateInterrupt() *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateInterrupt()
	})
}

// ClearInterrupt clears the value of the "interrupt" field.
func (u *GraphCheckpointUpsertBulk) ClearInterrupt() *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.ClearInterrupt()
	})
}

// SetStatus sets the "status" field.
func (u *GraphCheckpointUpsertBulk) SetStatus(v graphcheckpoint.Status) *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GraphCheckpointUpsertBulk) UpdateStatus() *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GraphCheckpointUpsertBulk) SetUpdatedAt(v time.Time) *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GraphCheckpointUpsertBulk) UpdateUpdatedAt() *GraphCheckpointUpsertBulk {
	return u.Update(func(s *GraphCheckpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GraphCheckpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GraphCheckpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GraphCheckpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GraphCheckpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
