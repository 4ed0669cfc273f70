// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jervis-ai/jervis-core/ent/chatsummary"
	"github.com/jervis-ai/jervis-core/ent/predicate"
)

// ChatSummaryUpdate is the builder for updating ChatSummary entities.
type ChatSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSummaryMutation
}

// Where appends a list predicates to the ChatSummaryUpdate builder.
func (_u *ChatSummaryUpdate) Where(ps ...predicate.ChatSummary) *ChatSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ChatSummaryUpdate) SetTaskID(v string) *ChatSummaryUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ChatSummaryUpdate) SetNillableTaskID(v *string) *ChatSummaryUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSequenceStart sets the "sequence_start" field.
func (_u *ChatSummaryUpdate) SetSequenceStart(v int) *ChatSummaryUpdate {
	_u.mutation.ResetSequenceStart()
	_u.mutation.SetSequenceStart(v)
	return _u
}

// SetNillableSequenceStart sets the "sequence_start" field if the given value is not nil.
func (_u *ChatSummaryUpdate) SetNillableSequenceStart(v *int) *ChatSummaryUpdate {
	if v != nil {
		_u.SetSequenceStart(*v)
	}
	return _u
}

// AddSequenceStart adds value to the "sequence_start" field.
func (_u *ChatSummaryUpdate) AddSequenceStart(v int) *ChatSummaryUpdate {
	_u.mutation.AddSequenceStart(v)
	return _u
}

// SetSequenceEnd sets the "sequence_end" field.
func (_u *ChatSummaryUpdate) SetSequenceEnd(v int) *ChatSummaryUpdate {
	_u.mutation.ResetSequenceEnd()
	_u.mutation.SetSequenceEnd(v)
	return _u
}

// SetNillableSequenceEnd sets the "sequence_end" field if the given value is not nil.
func (_u *ChatSummaryUpdate) SetNillableSequenceEnd(v *int) *ChatSummaryUpdate {
	if v != nil {
		_u.SetSequenceEnd(*v)
	}
	return _u
}

// AddSequenceEnd adds value to the "sequence_end" field.
func (_u *ChatSummaryUpdate) AddSequenceEnd(v int) *ChatSummaryUpdate {
	_u.mutation.AddSequenceEnd(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ChatSummaryUpdate) SetSummary(v string) *ChatSummaryUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ChatSummaryUpdate) SetNillableSummary(v *string) *ChatSummaryUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetKeyDecisions sets the "key_decisions" field.
func (_u *ChatSummaryUpdate) SetKeyDecisions(v []string) *ChatSummaryUpdate {
	_u.mutation.SetKeyDecisions(v)
	return _u
}

// AppendKeyDecisions appends value to the "key_decisions" field.
func (_u *ChatSummaryUpdate) AppendKeyDecisions(v []string) *ChatSummaryUpdate {
	_u.mutation.AppendKeyDecisions(v)
	return _u
}

// ClearKeyDecisions clears the value of the "key_decisions" field.
func (_u *ChatSummaryUpdate) ClearKeyDecisions() *ChatSummaryUpdate {
	_u.mutation.ClearKeyDecisions()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *ChatSummaryUpdate) SetTopics(v []string) *ChatSummaryUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *ChatSummaryUpdate) AppendTopics(v []string) *ChatSummaryUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *ChatSummaryUpdate) ClearTopics() *ChatSummaryUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetIsCheckpoint sets the "is_checkpoint" field.
func (_u *ChatSummaryUpdate) SetIsCheckpoint(v bool) *ChatSummaryUpdate {
	_u.mutation.SetIsCheckpoint(v)
	return _u
}

// SetNillableIsCheckpoint sets the "is_checkpoint" field if the given value is not nil.
func (_u *ChatSummaryUpdate) SetNillableIsCheckpoint(v *bool) *ChatSummaryUpdate {
	if v != nil {
		_u.SetIsCheckpoint(*v)
	}
	return _u
}

// SetCheckpointReason sets the "checkpoint_reason" field.
func (_u *ChatSummaryUpdate) SetCheckpointReason(v string) *ChatSummaryUpdate {
	_u.mutation.SetCheckpointReason(v)
	return _u
}

// SetNillableCheckpointReason sets the "checkpoint_reason" field if the given value is not nil.
func (_u *ChatSummaryUpdate) SetNillableCheckpointReason(v *string) *ChatSummaryUpdate {
	if v != nil {
		_u.SetCheckpointReason(*v)
	}
	return _u
}

// ClearCheckpointReason clears the value of the "checkpoint_reason" field.
func (_u *ChatSummaryUpdate) ClearCheckpointReason() *ChatSummaryUpdate {
	_u.mutation.ClearCheckpointReason()
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *ChatSummaryUpdate) SetMessageCount(v int) *ChatSummaryUpdate {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *ChatSummaryUpdate) SetNillableMessageCount(v *int) *ChatSummaryUpdate {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *ChatSummaryUpdate) AddMessageCount(v int) *ChatSummaryUpdate {
	_u.mutation.AddMessageCount(v)
	return _u
}

// Mutation returns the ChatSummaryMutation object of the builder.
func (_u *ChatSummaryUpdate) Mutation() *ChatSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsummary.Table, chatsummary.Columns, sqlgraph.NewFieldSpec(chatsummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(chatsummary.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceStart(); ok {
		_spec.SetField(chatsummary.FieldSequenceStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceStart(); ok {
		_spec.AddField(chatsummary.FieldSequenceStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SequenceEnd(); ok {
		_spec.SetField(chatsummary.FieldSequenceEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceEnd(); ok {
		_spec.AddField(chatsummary.FieldSequenceEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(chatsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyDecisions(); ok {
		_spec.SetField(chatsummary.FieldKeyDecisions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyDecisions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsummary.FieldKeyDecisions, value)
		})
	}
	if _u.mutation.KeyDecisionsCleared() {
		_spec.ClearField(chatsummary.FieldKeyDecisions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(chatsummary.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsummary.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(chatsummary.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsCheckpoint(); ok {
		_spec.SetField(chatsummary.FieldIsCheckpoint, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CheckpointReason(); ok {
		_spec.SetField(chatsummary.FieldCheckpointReason, field.TypeString, value)
	}
	if _u.mutation.CheckpointReasonCleared() {
		_spec.ClearField(chatsummary.FieldCheckpointReason, field.TypeString)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(chatsummary.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(chatsummary.FieldMessageCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSummaryUpdateOne is the builder for updating a single ChatSummary entity.
type ChatSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSummaryMutation
}

// SetTaskID sets the "task_id" field.
func (_u *ChatSummaryUpdateOne) SetTaskID(v string) *ChatSummaryUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ChatSummaryUpdateOne) SetNillableTaskID(v *string) *ChatSummaryUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSequenceStart sets the "sequence_start" field.
func (_u *ChatSummaryUpdateOne) SetSequenceStart(v int) *ChatSummaryUpdateOne {
	_u.mutation.ResetSequenceStart()
	_u.mutation.SetSequenceStart(v)
	return _u
}

// SetNillableSequenceStart sets the "sequence_start" field if the given value is not nil.
func (_u *ChatSummaryUpdateOne) SetNillableSequenceStart(v *int) *ChatSummaryUpdateOne {
	if v != nil {
		_u.SetSequenceStart(*v)
	}
	return _u
}

// AddSequenceStart adds value to the "sequence_start" field.
func (_u *ChatSummaryUpdateOne) AddSequenceStart(v int) *ChatSummaryUpdateOne {
	_u.mutation.AddSequenceStart(v)
	return _u
}

// SetSequenceEnd sets the "sequence_end" field.
func (_u *ChatSummaryUpdateOne) SetSequenceEnd(v int) *ChatSummaryUpdateOne {
	_u.mutation.ResetSequenceEnd()
	_u.mutation.SetSequenceEnd(v)
	return _u
}

// SetNillableSequenceEnd sets the "sequence_end" field if the given value is not nil.
func (_u *ChatSummaryUpdateOne) SetNillableSequenceEnd(v *int) *ChatSummaryUpdateOne {
	if v != nil {
		_u.SetSequenceEnd(*v)
	}
	return _u
}

// AddSequenceEnd adds value to the "sequence_end" field.
func (_u *ChatSummaryUpdateOne) AddSequenceEnd(v int) *ChatSummaryUpdateOne {
	_u.mutation.AddSequenceEnd(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ChatSummaryUpdateOne) SetSummary(v string) *ChatSummaryUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ChatSummaryUpdateOne) SetNillableSummary(v *string) *ChatSummaryUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetKeyDecisions sets the "key_decisions" field.
func (_u *ChatSummaryUpdateOne) SetKeyDecisions(v []string) *ChatSummaryUpdateOne {
	_u.mutation.SetKeyDecisions(v)
	return _u
}

// AppendKeyDecisions appends value to the "key_decisions" field.
func (_u *ChatSummaryUpdateOne) AppendKeyDecisions(v []string) *ChatSummaryUpdateOne {
	_u.mutation.AppendKeyDecisions(v)
	return _u
}

// ClearKeyDecisions clears the value of the "key_decisions" field.
func (_u *ChatSummaryUpdateOne) ClearKeyDecisions() *ChatSummaryUpdateOne {
	_u.mutation.ClearKeyDecisions()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *ChatSummaryUpdateOne) SetTopics(v []string) *ChatSummaryUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *ChatSummaryUpdateOne) AppendTopics(v []string) *ChatSummaryUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *ChatSummaryUpdateOne) ClearTopics() *ChatSummaryUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetIsCheckpoint sets the "is_checkpoint" field.
func (_u *ChatSummaryUpdateOne) SetIsCheckpoint(v bool) *ChatSummaryUpdateOne {
	_u.mutation.SetIsCheckpoint(v)
	return _u
}

// SetNillableIsCheckpoint sets the "is_checkpoint" field if the given value is not nil.
func (_u *ChatSummaryUpdateOne) SetNillableIsCheckpoint(v *bool) *ChatSummaryUpdateOne {
	if v != nil {
		_u.SetIsCheckpoint(*v)
	}
	return _u
}

// SetCheckpointReason sets the "checkpoint_reason" field.
func (_u *ChatSummaryUpdateOne) SetCheckpointReason(v string) *ChatSummaryUpdateOne {
	_u.mutation.SetCheckpointReason(v)
	return _u
}

// SetNillableCheckpointReason sets the "checkpoint_reason" field if the given value is not nil.
func (_u *ChatSummaryUpdateOne) SetNillableCheckpointReason(v *string) *ChatSummaryUpdateOne {
	if v != nil {
		_u.SetCheckpointReason(*v)
	}
	return _u
}

// ClearCheckpointReason clears the value of the "checkpoint_reason" field.
func (_u *ChatSummaryUpdateOne) ClearCheckpointReason() *ChatSummaryUpdateOne {
	_u.mutation.ClearCheckpointReason()
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *ChatSummaryUpdateOne) SetMessageCount(v int) *ChatSummaryUpdateOne {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *ChatSummaryUpdateOne) SetNillableMessageCount(v *int) *ChatSummaryUpdateOne {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *ChatSummaryUpdateOne) AddMessageCount(v int) *ChatSummaryUpdateOne {
	_u.mutation.AddMessageCount(v)
	return _u
}

// Mutation returns the ChatSummaryMutation object of the builder.
func (_u *ChatSummaryUpdateOne) Mutation() *ChatSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatSummaryUpdate builder.
func (_u *ChatSummaryUpdateOne) Where(ps ...predicate.ChatSummary) *ChatSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSummaryUpdateOne) Select(field string, fields ...string) *ChatSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSummary entity.
func (_u *ChatSummaryUpdateOne) Save(ctx context.Context) (*ChatSummary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSummaryUpdateOne) SaveX(ctx context.Context) *ChatSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatSummaryUpdateOne) sqlSave(ctx context.Context) (_node *ChatSummary, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsummary.Table, chatsummary.Columns, sqlgraph.NewFieldSpec(chatsummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsummary.FieldID)
		for _, f := range fields {
			if !chatsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsummary.FieldID {
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
		_spec.SetField(chatsummary.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceStart(); ok {
		_spec.SetField(chatsummary.FieldSequenceStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceStart(); ok {
		_spec.AddField(chatsummary.FieldSequenceStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SequenceEnd(); ok {
		_spec.SetField(chatsummary.FieldSequenceEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceEnd(); ok {
		_spec.AddField(chatsummary.FieldSequenceEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(chatsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyDecisions(); ok {
		_spec.SetField(chatsummary.FieldKeyDecisions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyDecisions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsummary.FieldKeyDecisions, value)
		})
	}
	if _u.mutation.KeyDecisionsCleared() {
		_spec.ClearField(chatsummary.FieldKeyDecisions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(chatsummary.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsummary.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(chatsummary.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsCheckpoint(); ok {
		_spec.SetField(chatsummary.FieldIsCheckpoint, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CheckpointReason(); ok {
		_spec.SetField(chatsummary.FieldCheckpointReason, field.TypeString, value)
	}
	if _u.mutation.CheckpointReasonCleared() {
		_spec.ClearField(chatsummary.FieldCheckpointReason, field.TypeString)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(chatsummary.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(chatsummary.FieldMessageCount, field.TypeInt, value)
	}
	_node = &ChatSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
