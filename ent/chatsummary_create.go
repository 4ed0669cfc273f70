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
	"github.com/jervis-ai/jervis-core/ent/chatsummary"
)

// ChatSummaryCreate is the builder for creating a ChatSummary entity.
type ChatSummaryCreate struct {
	config
	mutation *ChatSummaryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *ChatSummaryCreate) SetTaskID(v string) *ChatSummaryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSequenceStart sets the "sequence_start" field.
func (_c *ChatSummaryCreate) SetSequenceStart(v int) *ChatSummaryCreate {
	_c.mutation.SetSequenceStart(v)
	return _c
}

// SetSequenceEnd sets the "sequence_end" field.
func (_c *ChatSummaryCreate) SetSequenceEnd(v int) *ChatSummaryCreate {
	_c.mutation.SetSequenceEnd(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ChatSummaryCreate) SetSummary(v string) *ChatSummaryCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetKeyDecisions sets the "key_decisions" field.
func (_c *ChatSummaryCreate) SetKeyDecisions(v []string) *ChatSummaryCreate {
	_c.mutation.SetKeyDecisions(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *ChatSummaryCreate) SetTopics(v []string) *ChatSummaryCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetIsCheckpoint sets the "is_checkpoint" field.
func (_c *ChatSummaryCreate) SetIsCheckpoint(v bool) *ChatSummaryCreate {
	_c.mutation.SetIsCheckpoint(v)
	return _c
}

// SetNillableIsCheckpoint sets the "is_checkpoint" field if the given value is not nil.
func (_c *ChatSummaryCreate) SetNillableIsCheckpoint(v *bool) *ChatSummaryCreate {
	if v != nil {
		_c.SetIsCheckpoint(*v)
	}
	return _c
}

// SetCheckpointReason sets the "checkpoint_reason" field.
func (_c *ChatSummaryCreate) SetCheckpointReason(v string) *ChatSummaryCreate {
	_c.mutation.SetCheckpointReason(v)
	return _c
}

// SetNillableCheckpointReason sets the "checkpoint_reason" field if the given value is not nil.
func (_c *ChatSummaryCreate) SetNillableCheckpointReason(v *string) *ChatSummaryCreate {
	if v != nil {
		_c.SetCheckpointReason(*v)
	}
	return _c
}

// SetMessageCount sets the "message_count" field.
func (_c *ChatSummaryCreate) SetMessageCount(v int) *ChatSummaryCreate {
	_c.mutation.SetMessageCount(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatSummaryCreate) SetCreatedAt(v time.Time) *ChatSummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatSummaryCreate) SetNillableCreatedAt(v *time.Time) *ChatSummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatSummaryCreate) SetID(v string) *ChatSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChatSummaryMutation object of the builder.
func (_c *ChatSummaryCreate) Mutation() *ChatSummaryMutation {
	return _c.mutation
}

// Save creates the ChatSummary in the database.
func (_c *ChatSummaryCreate) Save(ctx context.Context) (*ChatSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatSummaryCreate) SaveX(ctx context.Context) *ChatSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatSummaryCreate) defaults() {
	if _, ok := _c.mutation.IsCheckpoint(); !ok {
		v := chatsummary.DefaultIsCheckpoint
		_c.mutation.SetIsCheckpoint(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatsummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatSummaryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ChatSummary.task_id"`)}
	}
	if _, ok := _c.mutation.SequenceStart(); !ok {
		return &ValidationError{Name: "sequence_start", err: errors.New(`ent: missing required field "ChatSummary.sequence_start"`)}
	}
	if _, ok := _c.mutation.SequenceEnd(); !ok {
		return &ValidationError{Name: "sequence_end", err: errors.New(`ent: missing required field "ChatSummary.sequence_end"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "ChatSummary.summary"`)}
	}
	if _, ok := _c.mutation.IsCheckpoint(); !ok {
		return &ValidationError{Name: "is_checkpoint", err: errors.New(`ent: missing required field "ChatSummary.is_checkpoint"`)}
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		return &ValidationError{Name: "message_count", err: errors.New(`ent: missing required field "ChatSummary.message_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatSummary.created_at"`)}
	}
	return nil
}

func (_c *ChatSummaryCreate) sqlSave(ctx context.Context) (*ChatSummary, error) {
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
			return nil, fmt.Errorf("unexpected ChatSummary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatSummaryCreate) createSpec() (*ChatSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatsummary.Table, sqlgraph.NewFieldSpec(chatsummary.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(chatsummary.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.SequenceStart(); ok {
		_spec.SetField(chatsummary.FieldSequenceStart, field.TypeInt, value)
		_node.SequenceStart = value
	}
	if value, ok := _c.mutation.SequenceEnd(); ok {
		_spec.SetField(chatsummary.FieldSequenceEnd, field.TypeInt, value)
		_node.SequenceEnd = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(chatsummary.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.KeyDecisions(); ok {
		_spec.SetField(chatsummary.FieldKeyDecisions, field.TypeJSON, value)
		_node.KeyDecisions = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(chatsummary.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.IsCheckpoint(); ok {
		_spec.SetField(chatsummary.FieldIsCheckpoint, field.TypeBool, value)
		_node.IsCheckpoint = value
	}
	if value, ok := _c.mutation.CheckpointReason(); ok {
		_spec.SetField(chatsummary.FieldCheckpointReason, field.TypeString, value)
		_node.CheckpointReason = &value
	}
	if value, ok := _c.mutation.MessageCount(); ok {
		_spec.SetField(chatsummary.FieldMessageCount, field.TypeInt, value)
		_node.MessageCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatsummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatSummary.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatSummaryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatSummaryCreate) OnConflict(opts ...sql.ConflictOption) *ChatSummaryUpsertOne {
	_c.conflict = opts
	return &ChatSummaryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatSummaryCreate) OnConflictColumns(columns ...string) *ChatSummaryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatSummaryUpsertOne{
		create: _c,
	}
}

type (
	// ChatSummaryUpsertOne is the builder for "upsert"-ing
	//  one ChatSummary node.
	ChatSummaryUpsertOne struct {
		create *ChatSummaryCreate
	}

	// ChatSummaryUpsert is the "OnConflict" setter.
	ChatSummaryUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *ChatSummaryUpsert) SetTaskID(v string) *ChatSummaryUpsert {
	u.Set(chatsummary.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ChatSummaryUpsert) UpdateTaskID() *ChatSummaryUpsert {
	u.SetExcluded(chatsummary.FieldTaskID)
	return u
}

// SetSequenceStart sets the "sequence_start" field.
func (u *ChatSummaryUpsert) SetSequenceStart(v int) *ChatSummaryUpsert {
	u.Set(chatsummary.FieldSequenceStart, v)
	return u
}

// UpdateSequenceStart sets the "sequence_start" field to the value that was provided on create.
func (u *ChatSummaryUpsert) UpdateSequenceStart() *ChatSummaryUpsert {
	u.SetExcluded(chatsummary.FieldSequenceStart)
	return u
}

// AddSequenceStart adds v to the "sequence_start" field.
func (u *ChatSummaryUpsert) AddSequenceStart(v int) *ChatSummaryUpsert {
	u.Add(chatsummary.FieldSequenceStart, v)
	return u
}

// SetSequenceEnd sets the "sequence_end" field.
func (u *ChatSummaryUpsert) SetSequenceEnd(v int) *ChatSummaryUpsert {
	u.Set(chatsummary.FieldSequenceEnd, v)
	return u
}

// UpdateSequenceEnd sets the "sequence_end" field to the value that was provided on create.
func (u *ChatSummaryUpsert) UpdateSequenceEnd() *ChatSummaryUpsert {
	u.SetExcluded(chatsummary.FieldSequenceEnd)
	return u
}

// AddSequenceEnd adds v to the "sequence_end" field.
func (u *ChatSummaryUpsert) AddSequenceEnd(v int) *ChatSummaryUpsert {
	u.Add(chatsummary.FieldSequenceEnd, v)
	return u
}

// SetSummary sets the "summary" field.
func (u *ChatSummaryUpsert) SetSummary(v string) *ChatSummaryUpsert {
	u.Set(chatsummary.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ChatSummaryUpsert) UpdateSummary() *ChatSummaryUpsert {
	u.SetExcluded(chatsummary.FieldSummary)
	return u
}

// SetKeyDecisions sets the "key_decisions" field.
func (u *ChatSummaryUpsert) SetKeyDecisions(v []string) *ChatSummaryUpsert {
	u.Set(chatsummary.FieldKeyDecisions, v)
	return u
}

// UpdateKeyDecisions sets the "key_decisions" field to the value that was provided on create.
func (u *ChatSummaryUpsert) UpdateKeyDecisions() *ChatSummaryUpsert {
	u.SetExcluded(chatsummary.FieldKeyDecisions)
	return u
}

// ClearKeyDecisions clears the value of the "key_decisions" field.
func (u *ChatSummaryUpsert) ClearKeyDecisions() *ChatSummaryUpsert {
	u.SetNull(chatsummary.FieldKeyDecisions)
	return u
}

// SetTopics sets the "topics" field.
func (u *ChatSummaryUpsert) SetTopics(v []string) *ChatSummaryUpsert {
	u.Set(chatsummary.FieldTopics, v)
	return u
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *ChatSummaryUpsert) UpdateTopics() *ChatSummaryUpsert {
	u.SetExcluded(chatsummary.FieldTopics)
	return u
}

// ClearTopics clears the value of the "topics" field.
func (u *ChatSummaryUpsert) ClearTopics() *ChatSummaryUpsert {
	u.SetNull(chatsummary.FieldTopics)
	return u
}

// SetIsCheckpoint sets the "is_checkpoint" field.
func (u *ChatSummaryUpsert) SetIsCheckpoint(v bool) *ChatSummaryUpsert {
	u.Set(chatsummary.FieldIsCheckpoint, v)
	return u
}

// UpdateIsCheckpoint sets the "is_checkpoint" field to the value that was provided on create.
func (u *ChatSummaryUpsert) UpdateIsCheckpoint() *ChatSummaryUpsert {
	u.SetExcluded(chatsummary.FieldIsCheckpoint)
	return u
}

// SetCheckpointReason sets the "checkpoint_reason" field.
func (u *ChatSummaryUpsert) SetCheckpointReason(v string) *ChatSummaryUpsert {
	u.Set(chatsummary.FieldCheckpointReason, v)
	return u
}

// UpdateCheckpointReason sets the "checkpoint_reason" field to the value that was provided on create.
func (u *ChatSummaryUpsert) UpdateCheckpointReason() *ChatSummaryUpsert {
	u.SetExcluded(chatsummary.FieldCheckpointReason)
	return u
}

// ClearCheckpointReason clears the value of the "checkpoint_reason" field.
func (u *ChatSummaryUpsert) ClearCheckpointReason() *ChatSummaryUpsert {
	u.SetNull(chatsummary.FieldCheckpointReason)
	return u
}

// SetMessageCount sets the "message_count" field.
func (u *ChatSummaryUpsert) SetMessageCount(v int) *ChatSummaryUpsert {
	u.Set(chatsummary.FieldMessageCount, v)
	return u
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *ChatSummaryUpsert) UpdateMessageCount() *ChatSummaryUpsert {
	u.SetExcluded(chatsummary.FieldMessageCount)
	return u
}

// AddMessageCount adds v to the "message_count" field.
func (u *ChatSummaryUpsert) AddMessageCount(v int) *ChatSummaryUpsert {
	u.Add(chatsummary.FieldMessageCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChatSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatsummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatSummaryUpsertOne) UpdateNewValues() *ChatSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chatsummary.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatsummary.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatSummary.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatSummaryUpsertOne) Ignore() *ChatSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatSummaryUpsertOne) DoNothing() *ChatSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatSummaryCreate.OnConflict
// documentation for more info.
func (u *ChatSummaryUpsertOne) Update(set func(*ChatSummaryUpsert)) *ChatSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *ChatSummaryUpsertOne) SetTaskID(v string) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ChatSummaryUpsertOne) UpdateTaskID() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateTaskID()
	})
}

// SetSequenceStart sets the "sequence_start" field.
func (u *ChatSummaryUpsertOne) SetSequenceStart(v int) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetSequenceStart(v)
	})
}

// AddSequenceStart adds v to the "sequence_start" field.
func (u *ChatSummaryUpsertOne) AddSequenceStart(v int) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.AddSequenceStart(v)
	})
}

// UpdateSequenceStart sets the "sequence_start" field to the value that was provided on create.
func (u *ChatSummaryUpsertOne) UpdateSequenceStart() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateSequenceStart()
	})
}

// SetSequenceEnd sets the "sequence_end" field.
func (u *ChatSummaryUpsertOne) SetSequenceEnd(v int) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetSequenceEnd(v)
	})
}

// AddSequenceEnd adds v to the "sequence_end" field.
func (u *ChatSummaryUpsertOne) AddSequenceEnd(v int) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.AddSequenceEnd(v)
	})
}

// UpdateSequenceEnd sets the "sequence_end" field to the value that was provided on create.
func (u *ChatSummaryUpsertOne) UpdateSequenceEnd() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateSequenceEnd()
	})
}

// SetSummary sets the "summary" field.
func (u *ChatSummaryUpsertOne) SetSummary(v string) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ChatSummaryUpsertOne) UpdateSummary() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateSummary()
	})
}

// SetKeyDecisions sets the "key_decisions" field.
func (u *ChatSummaryUpsertOne) SetKeyDecisions(v []string) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetKeyDecisions(v)
	})
}

// UpdateKeyDecisions sets the "key_decisions" field to the value that was provided on create.
func (u *ChatSummaryUpsertOne) UpdateKeyDecisions() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateKeyDecisions()
	})
}

// ClearKeyDecisions clears the value of the "key_decisions" field.
func (u *ChatSummaryUpsertOne) ClearKeyDecisions() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.ClearKeyDecisions()
	})
}

// SetTopics sets the "topics" field.
func (u *ChatSummaryUpsertOne) SetTopics(v []string) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetTopics(v)
	})
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *ChatSummaryUpsertOne) UpdateTopics() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateTopics()
	})
}

// ClearTopics clears the value of the "topics" field.
func (u *ChatSummaryUpsertOne) ClearTopics() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.ClearTopics()
	})
}

// SetIsCheckpoint sets the "is_checkpoint" field.
func (u *ChatSummaryUpsertOne) SetIsCheckpoint(v bool) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetIsCheckpoint(v)
	})
}

// UpdateIsCheckpoint sets the "is_checkpoint" field to the value that was provided on create.
func (u *ChatSummaryUpsertOne) UpdateIsCheckpoint() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateIsCheckpoint()
	})
}

// SetCheckpointReason sets the "checkpoint_reason" field.
func (u *ChatSummaryUpsertOne) SetCheckpointReason(v string) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetCheckpointReason(v)
	})
}

// UpdateCheckpointReason sets the "checkpoint_reason" field to the value that was provided on create.
func (u *ChatSummaryUpsertOne) UpdateCheckpointReason() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateCheckpointReason()
	})
}

// ClearCheckpointReason clears the value of the "checkpoint_reason" field.
func (u *ChatSummaryUpsertOne) ClearCheckpointReason() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.ClearCheckpointReason()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *ChatSummaryUpsertOne) SetMessageCount(v int) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *ChatSummaryUpsertOne) AddMessageCount(v int) *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *ChatSummaryUpsertOne) UpdateMessageCount() *ChatSummaryUpsertOne {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateMessageCount()
	})
}

// Exec executes the query.
func (u *ChatSummaryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatSummaryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatSummaryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatSummaryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChatSummaryUpsertOne.ID is not supported by MySQL driver. Use ChatSummaryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatSummaryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatSummaryCreateBulk is the builder for creating many ChatSummary entities in bulk.
type ChatSummaryCreateBulk struct {
	config
	err      error
	builders []*ChatSummaryCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatSummary entities in the database.
func (_c *ChatSummaryCreateBulk) Save(ctx context.Context) ([]*ChatSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatSummaryMutation)
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
func (_c *ChatSummaryCreateBulk) SaveX(ctx context.Context) []*ChatSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatSummary.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatSummaryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatSummaryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatSummaryUpsertBulk {
	_c.conflict = opts
	return &ChatSummaryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatSummaryCreateBulk) OnConflictColumns(columns ...string) *ChatSummaryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatSummaryUpsertBulk{
		create: _c,
	}
}

// ChatSummaryUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatSummary nodes.
type ChatSummaryUpsertBulk struct {
	create *ChatSummaryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatsummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatSummaryUpsertBulk) UpdateNewValues() *ChatSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chatsummary.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatsummary.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatSummary.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatSummaryUpsertBulk) Ignore() *ChatSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatSummaryUpsertBulk) DoNothing() *ChatSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatSummaryCreateBulk.OnConflict
// documentation for more info.
func (u *ChatSummaryUpsertBulk) Update(set func(*ChatSummaryUpsert)) *ChatSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *ChatSummaryUpsertBulk) SetTaskID(v string) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ChatSummaryUpsertBulk) UpdateTaskID() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateTaskID()
	})
}

// SetSequenceStart sets the "sequence_start" field.
func (u *ChatSummaryUpsertBulk) SetSequenceStart(v int) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetSequenceStart(v)
	})
}

// AddSequenceStart adds v to the "sequence_start" field.
func (u *ChatSummaryUpsertBulk) AddSequenceStart(v int) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.AddSequenceStart(v)
	})
}

// UpdateSequenceStart sets the "sequence_start" field to the value that was provided on create.
func (u *ChatSummaryUpsertBulk) UpdateSequenceStart() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateSequenceStart()
	})
}

// SetSequenceEnd sets the "sequence_end" field.
func (u *ChatSummaryUpsertBulk) SetSequenceEnd(v int) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetSequenceEnd(v)
	})
}

// AddSequenceEnd adds v to the "sequence_end" field.
func (u *ChatSummaryUpsertBulk) AddSequenceEnd(v int) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.AddSequenceEnd(v)
	})
}

// UpdateSequenceEnd sets the "sequence_end" field to the value that was provided on create.
func (u *ChatSummaryUpsertBulk) UpdateSequenceEnd() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateSequenceEnd()
	})
}

// SetSummary sets the "summary" field.
func (u *ChatSummaryUpsertBulk) SetSummary(v string) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ChatSummaryUpsertBulk) UpdateSummary() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateSummary()
	})
}

// SetKeyDecisions sets the "key_decisions" field.
func (u *ChatSummaryUpsertBulk) SetKeyDecisions(v []string) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetKeyDecisions(v)
	})
}

// UpdateKeyDecisions sets the "key_decisions" field to the value that was provided on create.
func (u *ChatSummaryUpsertBulk) UpdateKeyDecisions() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateKeyDecisions()
	})
}

// ClearKeyDecisions clears the value of the "key_decisions" field.
func (u *ChatSummaryUpsertBulk) ClearKeyDecisions() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.ClearKeyDecisions()
	})
}

// SetTopics sets the "topics" field.
func (u *ChatSummaryUpsertBulk) SetTopics(v []string) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetTopics(v)
	})
}

// UpdateTopics sets the "topics" field to the value that was provided on create.
func (u *ChatSummaryUpsertBulk) UpdateTopics() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateTopics()
	})
}

// ClearTopics clears the value of the "topics" field.
func (u *ChatSummaryUpsertBulk) ClearTopics() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.ClearTopics()
	})
}

// SetIsCheckpoint sets the "is_checkpoint" field.
func (u *ChatSummaryUpsertBulk) SetIsCheckpoint(v bool) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetIsCheckpoint(v)
	})
}

// UpdateIsCheckpoint sets the "is_checkpoint" field to the value that was provided on create.
func (u *ChatSummaryUpsertBulk) UpdateIsCheckpoint() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateIsCheckpoint()
	})
}

// SetCheckpointReason sets the "checkpoint_reason" field.
func (u *ChatSummaryUpsertBulk) SetCheckpointReason(v string) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetCheckpointReason(v)
	})
}

// UpdateCheckpointReason sets the "checkpoint_reason" field to the value that was provided on create.
func (u *ChatSummaryUpsertBulk) UpdateCheckpointReason() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateCheckpointReason()
	})
}

// ClearCheckpointReason clears the value of the "checkpoint_reason" field.
func (u *ChatSummaryUpsertBulk) ClearCheckpointReason() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.ClearCheckpointReason()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *ChatSummaryUpsertBulk) SetMessageCount(v int) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *ChatSummaryUpsertBulk) AddMessageCount(v int) *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *ChatSummaryUpsertBulk) UpdateMessageCount() *ChatSummaryUpsertBulk {
	return u.Update(func(s *ChatSummaryUpsert) {
		s.UpdateMessageCount()
	})
}

// Exec executes the query.
func (u *ChatSummaryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatSummaryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatSummaryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatSummaryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
