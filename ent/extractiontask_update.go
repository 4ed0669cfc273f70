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
	"github.com/jervis-ai/jervis-core/ent/extractiontask"
	"github.com/jervis-ai/jervis-core/ent/predicate"
)

// ExtractionTaskUpdate is the builder for updating ExtractionTask entities.
type ExtractionTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionTaskMutation
}

// Where appends a list predicates to the ExtractionTaskUpdate builder.
func (_u *ExtractionTaskUpdate) Where(ps ...predicate.ExtractionTask) *ExtractionTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceUrn sets the "source_urn" field.
func (_u *ExtractionTaskUpdate) SetSourceUrn(v string) *ExtractionTaskUpdate {
	_u.mutation.SetSourceUrn(v)
	return _u
}

// SetNillableSourceUrn sets the "source_urn" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableSourceUrn(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetSourceUrn(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ExtractionTaskUpdate) SetContent(v string) *ExtractionTaskUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableContent(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ExtractionTaskUpdate) SetClientID(v string) *ExtractionTaskUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableClientID(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ExtractionTaskUpdate) SetProjectID(v string) *ExtractionTaskUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableProjectID(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ExtractionTaskUpdate) ClearProjectID() *ExtractionTaskUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ExtractionTaskUpdate) SetKind(v string) *ExtractionTaskUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableKind(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// ClearKind clears the value of the "kind" field.
func (_u *ExtractionTaskUpdate) ClearKind() *ExtractionTaskUpdate {
	_u.mutation.ClearKind()
	return _u
}

// SetChunkIds sets the "chunk_ids" field.
func (_u *ExtractionTaskUpdate) SetChunkIds(v []string) *ExtractionTaskUpdate {
	_u.mutation.SetChunkIds(v)
	return _u
}

// AppendChunkIds appends value to the "chunk_ids" field.
func (_u *ExtractionTaskUpdate) AppendChunkIds(v []string) *ExtractionTaskUpdate {
	_u.mutation.AppendChunkIds(v)
	return _u
}

// ClearChunkIds clears the value of the "chunk_ids" field.
func (_u *ExtractionTaskUpdate) ClearChunkIds() *ExtractionTaskUpdate {
	_u.mutation.ClearChunkIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionTaskUpdate) SetStatus(v extractiontask.Status) *ExtractionTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableStatus(v *extractiontask.Status) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ExtractionTaskUpdate) SetAttempts(v int) *ExtractionTaskUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableAttempts(v *int) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ExtractionTaskUpdate) AddAttempts(v int) *ExtractionTaskUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *ExtractionTaskUpdate) SetLastAttemptAt(v time.Time) *ExtractionTaskUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableLastAttemptAt(v *time.Time) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *ExtractionTaskUpdate) ClearLastAttemptAt() *ExtractionTaskUpdate {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *ExtractionTaskUpdate) SetWorkerID(v string) *ExtractionTaskUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableWorkerID(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *ExtractionTaskUpdate) ClearWorkerID() *ExtractionTaskUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionTaskUpdate) SetErrorMessage(v string) *ExtractionTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableErrorMessage(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionTaskUpdate) ClearErrorMessage() *ExtractionTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ExtractionTaskMutation object of the builder.
func (_u *ExtractionTaskUpdate) Mutation() *ExtractionTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractiontask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractiontask.Table, extractiontask.Columns, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceUrn(); ok {
		_spec.SetField(extractiontask.FieldSourceUrn, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(extractiontask.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(extractiontask.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(extractiontask.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(extractiontask.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(extractiontask.FieldKind, field.TypeString, value)
	}
	if _u.mutation.KindCleared() {
		_spec.ClearField(extractiontask.FieldKind, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkIds(); ok {
		_spec.SetField(extractiontask.FieldChunkIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChunkIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiontask.FieldChunkIds, value)
		})
	}
	if _u.mutation.ChunkIdsCleared() {
		_spec.ClearField(extractiontask.FieldChunkIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractiontask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(extractiontask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(extractiontask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(extractiontask.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(extractiontask.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(extractiontask.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(extractiontask.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractiontask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractiontask.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractiontask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionTaskUpdateOne is the builder for updating a single ExtractionTask entity.
type ExtractionTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionTaskMutation
}

// SetSourceUrn sets the "source_urn" field.
func (_u *ExtractionTaskUpdateOne) SetSourceUrn(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetSourceUrn(v)
	return _u
}

// SetNillableSourceUrn sets the "source_urn" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableSourceUrn(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetSourceUrn(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ExtractionTaskUpdateOne) SetContent(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableContent(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ExtractionTaskUpdateOne) SetClientID(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableClientID(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ExtractionTaskUpdateOne) SetProjectID(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableProjectID(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ExtractionTaskUpdateOne) ClearProjectID() *ExtractionTaskUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ExtractionTaskUpdateOne) SetKind(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableKind(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// ClearKind clears the value of the "kind" field.
func (_u *ExtractionTaskUpdateOne) ClearKind() *ExtractionTaskUpdateOne {
	_u.mutation.ClearKind()
	return _u
}

// SetChunkIds sets the "chunk_ids" field.
func (_u *ExtractionTaskUpdateOne) SetChunkIds(v []string) *ExtractionTaskUpdateOne {
	_u.mutation.SetChunkIds(v)
	return _u
}

// AppendChunkIds appends value to the "chunk_ids" field.
func (_u *ExtractionTaskUpdateOne) AppendChunkIds(v []string) *ExtractionTaskUpdateOne {
	_u.mutation.AppendChunkIds(v)
	return _u
}

// ClearChunkIds clears the value of the "chunk_ids" field.
func (_u *ExtractionTaskUpdateOne) ClearChunkIds() *ExtractionTaskUpdateOne {
	_u.mutation.ClearChunkIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionTaskUpdateOne) SetStatus(v extractiontask.Status) *ExtractionTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableStatus(v *extractiontask.Status) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ExtractionTaskUpdateOne) SetAttempts(v int) *ExtractionTaskUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableAttempts(v *int) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ExtractionTaskUpdateOne) AddAttempts(v int) *ExtractionTaskUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *ExtractionTaskUpdateOne) SetLastAttemptAt(v time.Time) *ExtractionTaskUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableLastAttemptAt(v *time.Time) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *ExtractionTaskUpdateOne) ClearLastAttemptAt() *ExtractionTaskUpdateOne {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *ExtractionTaskUpdateOne) SetWorkerID(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableWorkerID(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *ExtractionTaskUpdateOne) ClearWorkerID() *ExtractionTaskUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionTaskUpdateOne) SetErrorMessage(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableErrorMessage(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionTaskUpdateOne) ClearErrorMessage() *ExtractionTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ExtractionTaskMutation object of the builder.
func (_u *ExtractionTaskUpdateOne) Mutation() *ExtractionTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionTaskUpdate builder.
func (_u *ExtractionTaskUpdateOne) Where(ps ...predicate.ExtractionTask) *ExtractionTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionTaskUpdateOne) Select(field string, fields ...string) *ExtractionTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionTask entity.
func (_u *ExtractionTaskUpdateOne) Save(ctx context.Context) (*ExtractionTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionTaskUpdateOne) SaveX(ctx context.Context) *ExtractionTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractiontask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionTaskUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractiontask.Table, extractiontask.Columns, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractiontask.FieldID)
		for _, f := range fields {
			if !extractiontask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractiontask.FieldID {
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
	if value, ok := _u.mutation.SourceUrn(); ok {
		_spec.SetField(extractiontask.FieldSourceUrn, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(extractiontask.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(extractiontask.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(extractiontask.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(extractiontask.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(extractiontask.FieldKind, field.TypeString, value)
	}
	if _u.mutation.KindCleared() {
		_spec.ClearField(extractiontask.FieldKind, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkIds(); ok {
		_spec.SetField(extractiontask.FieldChunkIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChunkIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiontask.FieldChunkIds, value)
		})
	}
	if _u.mutation.ChunkIdsCleared() {
		_spec.ClearField(extractiontask.FieldChunkIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractiontask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(extractiontask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(extractiontask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(extractiontask.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(extractiontask.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(extractiontask.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(extractiontask.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractiontask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractiontask.FieldErrorMessage, field.TypeString)
	}
	_node = &ExtractionTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractiontask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
