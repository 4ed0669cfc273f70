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
	"github.com/jervis-ai/jervis-core/ent/extractiontask"
)

// ExtractionTaskCreate is the builder for creating a ExtractionTask entity.
type ExtractionTaskCreate struct {
	config
	mutation *ExtractionTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceUrn sets the "source_urn" field.
func (_c *ExtractionTaskCreate) SetSourceUrn(v string) *ExtractionTaskCreate {
	_c.mutation.SetSourceUrn(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ExtractionTaskCreate) SetContent(v string) *ExtractionTaskCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ExtractionTaskCreate) SetClientID(v string) *ExtractionTaskCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *ExtractionTaskCreate) SetProjectID(v string) *ExtractionTaskCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableProjectID(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ExtractionTaskCreate) SetKind(v string) *ExtractionTaskCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableKind(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetChunkIds sets the "chunk_ids" field.
func (_c *ExtractionTaskCreate) SetChunkIds(v []string) *ExtractionTaskCreate {
	_c.mutation.SetChunkIds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionTaskCreate) SetStatus(v extractiontask.Status) *ExtractionTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableStatus(v *extractiontask.Status) *ExtractionTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ExtractionTaskCreate) SetAttempts(v int) *ExtractionTaskCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableAttempts(v *int) *ExtractionTaskCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *ExtractionTaskCreate) SetLastAttemptAt(v time.Time) *ExtractionTaskCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableLastAttemptAt(v *time.Time) *ExtractionTaskCreate {
	if v != nil {
		_c.SetLastAttemptAt(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *ExtractionTaskCreate) SetWorkerID(v string) *ExtractionTaskCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableWorkerID(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionTaskCreate) SetErrorMessage(v string) *ExtractionTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableErrorMessage(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionTaskCreate) SetCreatedAt(v time.Time) *ExtractionTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableCreatedAt(v *time.Time) *ExtractionTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionTaskCreate) SetID(v string) *ExtractionTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExtractionTaskMutation object of the builder.
func (_c *ExtractionTaskCreate) Mutation() *ExtractionTaskMutation {
	return _c.mutation
}

// Save creates the ExtractionTask in the database.
func (_c *ExtractionTaskCreate) Save(ctx context.Context) (*ExtractionTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionTaskCreate) SaveX(ctx context.Context) *ExtractionTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extractiontask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := extractiontask.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractiontask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionTaskCreate) check() error {
	if _, ok := _c.mutation.SourceUrn(); !ok {
		return &ValidationError{Name: "source_urn", err: errors.New(`ent: missing required field "ExtractionTask.source_urn"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ExtractionTask.content"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "ExtractionTask.client_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractiontask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ExtractionTask.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionTask.created_at"`)}
	}
	return nil
}

func (_c *ExtractionTaskCreate) sqlSave(ctx context.Context) (*ExtractionTask, error) {
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
			return nil, fmt.Errorf("unexpected ExtractionTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionTaskCreate) createSpec() (*ExtractionTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractiontask.Table, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceUrn(); ok {
		_spec.SetField(extractiontask.FieldSourceUrn, field.TypeString, value)
		_node.SourceUrn = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(extractiontask.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(extractiontask.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(extractiontask.FieldProjectID, field.TypeString, value)
		_node.ProjectID = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(extractiontask.FieldKind, field.TypeString, value)
		_node.Kind = &value
	}
	if value, ok := _c.mutation.ChunkIds(); ok {
		_spec.SetField(extractiontask.FieldChunkIds, field.TypeJSON, value)
		_node.ChunkIds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractiontask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(extractiontask.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(extractiontask.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(extractiontask.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractiontask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractiontask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionTask.Create().
//		SetSourceUrn(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionTaskUpsert) {
//			SetSourceUrn(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionTaskCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionTaskUpsertOne {
	_c.conflict = opts
	return &ExtractionTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionTaskCreate) OnConflictColumns(columns ...string) *ExtractionTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionTaskUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionTaskUpsertOne is the builder for "upsert"-ing
	//  one ExtractionTask node.
	ExtractionTaskUpsertOne struct {
		create *ExtractionTaskCreate
	}

	// ExtractionTaskUpsert is the "OnConflict" setter.
	ExtractionTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceUrn sets the "source_urn" field.
func (u *ExtractionTaskUpsert) SetSourceUrn(v string) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldSourceUrn, v)
	return u
}

// UpdateSourceUrn sets the "source_urn" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateSourceUrn() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldSourceUrn)
	return u
}

// SetContent sets the "content" field.
func (u *ExtractionTaskUpsert) SetContent(v string) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateContent() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldContent)
	return u
}

// SetClientID sets the "client_id" field.
func (u *ExtractionTaskUpsert) SetClientID(v string) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateClientID() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldClientID)
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ExtractionTaskUpsert) SetProjectID(v string) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateProjectID() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldProjectID)
	return u
}

// ClearProjectID clears the value of the "project_id" field.
func (u *ExtractionTaskUpsert) ClearProjectID() *ExtractionTaskUpsert {
	u.SetNull(extractiontask.FieldProjectID)
	return u
}

// SetKind sets the "kind" field.
func (u *ExtractionTaskUpsert) SetKind(v string) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateKind() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldKind)
	return u
}

// ClearKind clears the value of the "kind" field.
func (u *ExtractionTaskUpsert) ClearKind() *ExtractionTaskUpsert {
	u.SetNull(extractiontask.FieldKind)
	return u
}

// SetChunkIds sets the "chunk_ids" field.
func (u *ExtractionTaskUpsert) SetChunkIds(v []string) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldChunkIds, v)
	return u
}

// UpdateChunkIds sets the "chunk_ids" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateChunkIds() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldChunkIds)
	return u
}

// ClearChunkIds clears the value of the "chunk_ids" field.
func (u *ExtractionTaskUpsert) ClearChunkIds() *ExtractionTaskUpsert {
	u.SetNull(extractiontask.FieldChunkIds)
	return u
}

// SetStatus sets the "status" field.
func (u *ExtractionTaskUpsert) SetStatus(v extractiontask.Status) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateStatus() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *ExtractionTaskUpsert) SetAttempts(v int) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateAttempts() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *ExtractionTaskUpsert) AddAttempts(v int) *ExtractionTaskUpsert {
	u.Add(extractiontask.FieldAttempts, v)
	return u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *ExtractionTaskUpsert) SetLastAttemptAt(v time.Time) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldLastAttemptAt, v)
	return u
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateLastAttemptAt() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldLastAttemptAt)
	return u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (u *ExtractionTaskUpsert) ClearLastAttemptAt() *ExtractionTaskUpsert {
	u.SetNull(extractiontask.FieldLastAttemptAt)
	return u
}

// SetWorkerID sets the "worker_id" field.
func (u *ExtractionTaskUpsert) SetWorkerID(v string) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldWorkerID, v)
	return u
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateWorkerID() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldWorkerID)
	return u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *ExtractionTaskUpsert) ClearWorkerID() *ExtractionTaskUpsert {
	u.SetNull(extractiontask.FieldWorkerID)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractionTaskUpsert) SetErrorMessage(v string) *ExtractionTaskUpsert {
	u.Set(extractiontask.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractionTaskUpsert) UpdateErrorMessage() *ExtractionTaskUpsert {
	u.SetExcluded(extractiontask.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractionTaskUpsert) ClearErrorMessage() *ExtractionTaskUpsert {
	u.SetNull(extractiontask.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractionTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractiontask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionTaskUpsertOne) UpdateNewValues() *ExtractionTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extractiontask.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(extractiontask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionTaskUpsertOne) Ignore() *ExtractionTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionTaskUpsertOne) DoNothing() *ExtractionTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionTaskCreate.OnConflict
// documentation for more info.
func (u *ExtractionTaskUpsertOne) Update(set func(*ExtractionTaskUpsert)) *ExtractionTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceUrn sets the "source_urn" field.
func (u *ExtractionTaskUpsertOne) SetSourceUrn(v string) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetSourceUrn(v)
	})
}

// UpdateSourceUrn sets the "source_urn" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateSourceUrn() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateSourceUrn()
	})
}

// SetContent sets the "content" field.
func (u *ExtractionTaskUpsertOne) SetContent(v string) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateContent() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateContent()
	})
}

// SetClientID sets the "client_id" field.
func (u *ExtractionTaskUpsertOne) SetClientID(v string) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateClientID() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateClientID()
	})
}

// SetProjectID sets the "project_id" field.
func (u *ExtractionTaskUpsertOne) SetProjectID(v string) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateProjectID() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *ExtractionTaskUpsertOne) ClearProjectID() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearProjectID()
	})
}

// SetKind sets the "kind" field.
func (u *ExtractionTaskUpsertOne) SetKind(v string) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateKind() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateKind()
	})
}

// ClearKind clears the value of the "kind" field.
func (u *ExtractionTaskUpsertOne) ClearKind() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearKind()
	})
}

// SetChunkIds sets the "chunk_ids" field.
func (u *ExtractionTaskUpsertOne) SetChunkIds(v []string) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetChunkIds(v)
	})
}

// UpdateChunkIds sets the "chunk_ids" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateChunkIds() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateChunkIds()
	})
}

// ClearChunkIds clears the value of the "chunk_ids" field.
func (u *ExtractionTaskUpsertOne) ClearChunkIds() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearChunkIds()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionTaskUpsertOne) SetStatus(v extractiontask.Status) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateStatus() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ExtractionTaskUpsertOne) SetAttempts(v int) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ExtractionTaskUpsertOne) AddAttempts(v int) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateAttempts() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *ExtractionTaskUpsertOne) SetLastAttemptAt(v time.Time) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateLastAttemptAt() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (u *ExtractionTaskUpsertOne) ClearLastAttemptAt() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearLastAttemptAt()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *ExtractionTaskUpsertOne) SetWorkerID(v string) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateWorkerID() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *ExtractionTaskUpsertOne) ClearWorkerID() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearWorkerID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractionTaskUpsertOne) SetErrorMessage(v string) *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractionTaskUpsertOne) UpdateErrorMessage() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractionTaskUpsertOne) ClearErrorMessage() *ExtractionTaskUpsertOne {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ExtractionTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractionTaskUpsertOne.ID is not supported by MySQL driver. Use ExtractionTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionTaskCreateBulk is the builder for creating many ExtractionTask entities in bulk.
type ExtractionTaskCreateBulk struct {
	config
	err      error
	builders []*ExtractionTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractionTask entities in the database.
func (_c *ExtractionTaskCreateBulk) Save(ctx context.Context) ([]*ExtractionTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionTaskMutation)
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
func (_c *ExtractionTaskCreateBulk) SaveX(ctx context.Context) []*ExtractionTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionTaskUpsert) {
//			SetSourceUrn(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionTaskUpsertBulk {
	_c.conflict = opts
	return &ExtractionTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionTaskCreateBulk) OnConflictColumns(columns ...string) *ExtractionTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionTaskUpsertBulk{
		create: _c,
	}
}

// ExtractionTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractionTask nodes.
type ExtractionTaskUpsertBulk struct {
	create *ExtractionTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractionTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractiontask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionTaskUpsertBulk) UpdateNewValues() *ExtractionTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extractiontask.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(extractiontask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionTaskUpsertBulk) Ignore() *ExtractionTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionTaskUpsertBulk) DoNothing() *ExtractionTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionTaskCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionTaskUpsertBulk) Update(set func(*ExtractionTaskUpsert)) *ExtractionTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceUrn sets the "source_urn" field.
func (u *ExtractionTaskUpsertBulk) SetSourceUrn(v string) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetSourceUrn(v)
	})
}

// UpdateSourceUrn sets the "source_urn" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateSourceUrn() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateSourceUrn()
	})
}

// SetContent sets the "content" field.
func (u *ExtractionTaskUpsertBulk) SetContent(v string) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateContent() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateContent()
	})
}

// SetClientID sets the "client_id" field.
func (u *ExtractionTaskUpsertBulk) SetClientID(v string) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateClientID() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateClientID()
	})
}

// SetProjectID sets the "project_id" field.
func (u *ExtractionTaskUpsertBulk) SetProjectID(v string) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateProjectID() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *ExtractionTaskUpsertBulk) ClearProjectID() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearProjectID()
	})
}

// SetKind sets the "kind" field.
func (u *ExtractionTaskUpsertBulk) SetKind(v string) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateKind() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateKind()
	})
}

// ClearKind clears the value of the "kind" field.
func (u *ExtractionTaskUpsertBulk) ClearKind() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearKind()
	})
}

// SetChunkIds sets the "chunk_ids" field.
func (u *ExtractionTaskUpsertBulk) SetChunkIds(v []string) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetChunkIds(v)
	})
}

// UpdateChunkIds sets the "chunk_ids" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateChunkIds() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateChunkIds()
	})
}

// ClearChunkIds clears the value of the "chunk_ids" field.
func (u *ExtractionTaskUpsertBulk) ClearChunkIds() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearChunkIds()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionTaskUpsertBulk) SetStatus(v extractiontask.Status) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateStatus() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ExtractionTaskUpsertBulk) SetAttempts(v int) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ExtractionTaskUpsertBulk) AddAttempts(v int) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateAttempts() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *ExtractionTaskUpsertBulk) SetLastAttemptAt(v time.Time) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateLastAttemptAt() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (u *ExtractionTaskUpsertBulk) ClearLastAttemptAt() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearLastAttemptAt()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *ExtractionTaskUpsertBulk) SetWorkerID(v string) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateWorkerID() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *ExtractionTaskUpsertBulk) ClearWorkerID() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearWorkerID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractionTaskUpsertBulk) SetErrorMessage(v string) *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractionTaskUpsertBulk) UpdateErrorMessage() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractionTaskUpsertBulk) ClearErrorMessage() *ExtractionTaskUpsertBulk {
	return u.Update(func(s *ExtractionTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ExtractionTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
