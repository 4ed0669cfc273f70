// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jervis-ai/jervis-core/ent/chatmessage"
	"github.com/jervis-ai/jervis-core/ent/chatsummary"
	"github.com/jervis-ai/jervis-core/ent/extractiontask"
	"github.com/jervis-ai/jervis-core/ent/graphcheckpoint"
	"github.com/jervis-ai/jervis-core/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage     = "ChatMessage"
	TypeChatSummary     = "ChatSummary"
	TypeExtractionTask  = "ExtractionTask"
	TypeGraphCheckpoint = "GraphCheckpoint"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	task_id       *string
	role          *chatmessage.Role
	content       *string
	sequence      *int
	addsequence   *int
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChatMessage, error)
	predicates    []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ChatMessageMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ChatMessageMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ChatMessageMutation) ResetTaskID() {
	m.task_id = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetSequence sets the "sequence" field.
func (m *ChatMessageMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ChatMessageMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ChatMessageMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ChatMessageMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ChatMessageMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetMetadata sets the "metadata" field.
func (m *ChatMessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ChatMessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ChatMessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[chatmessage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ChatMessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ChatMessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, chatmessage.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task_id != nil {
		fields = append(fields, chatmessage.FieldTaskID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.sequence != nil {
		fields = append(fields, chatmessage.FieldSequence)
	}
	if m.metadata != nil {
		fields = append(fields, chatmessage.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldTaskID:
		return m.TaskID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldSequence:
		return m.Sequence()
	case chatmessage.FieldMetadata:
		return m.Metadata()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldTaskID:
		return m.OldTaskID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldSequence:
		return m.OldSequence(ctx)
	case chatmessage.FieldMetadata:
		return m.OldMetadata(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case chatmessage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, chatmessage.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldMetadata) {
		fields = append(fields, chatmessage.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldTaskID:
		m.ResetTaskID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldSequence:
		m.ResetSequence()
		return nil
	case chatmessage.FieldMetadata:
		m.ResetMetadata()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ChatSummaryMutation represents an operation that mutates the ChatSummary nodes in the graph.
type ChatSummaryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	task_id             *string
	sequence_start      *int
	addsequence_start   *int
	sequence_end        *int
	addsequence_end     *int
	summary             *string
	key_decisions       *[]string
	appendkey_decisions []string
	topics              *[]string
	appendtopics        []string
	is_checkpoint       *bool
	checkpoint_reason   *string
	message_count       *int
	addmessage_count    *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ChatSummary, error)
	predicates          []predicate.ChatSummary
}

var _ ent.Mutation = (*ChatSummaryMutation)(nil)

// chatsummaryOption allows management of the mutation configuration using functional options.
type chatsummaryOption func(*ChatSummaryMutation)

// newChatSummaryMutation creates new mutation for the ChatSummary entity.
func newChatSummaryMutation(c config, op Op, opts ...chatsummaryOption) *ChatSummaryMutation {
	m := &ChatSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSummaryID sets the ID field of the mutation.
func withChatSummaryID(id string) chatsummaryOption {
	return func(m *ChatSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSummary
		)
		m.oldValue = func(ctx context.Context) (*ChatSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSummary sets the old ChatSummary of the mutation.
func withChatSummary(node *ChatSummary) chatsummaryOption {
	return func(m *ChatSummaryMutation) {
		m.oldValue = func(context.Context) (*ChatSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSummary entities.
func (m *ChatSummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ChatSummaryMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ChatSummaryMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ChatSummaryMutation) ResetTaskID() {
	m.task_id = nil
}

// SetSequenceStart sets the "sequence_start" field.
func (m *ChatSummaryMutation) SetSequenceStart(i int) {
	m.sequence_start = &i
	m.addsequence_start = nil
}

// SequenceStart returns the value of the "sequence_start" field in the mutation.
func (m *ChatSummaryMutation) SequenceStart() (r int, exists bool) {
	v := m.sequence_start
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceStart returns the old "sequence_start" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldSequenceStart(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceStart: %w", err)
	}
	return oldValue.SequenceStart, nil
}

// AddSequenceStart adds i to the "sequence_start" field.
func (m *ChatSummaryMutation) AddSequenceStart(i int) {
	if m.addsequence_start != nil {
		*m.addsequence_start += i
	} else {
		m.addsequence_start = &i
	}
}

// AddedSequenceStart returns the value that was added to the "sequence_start" field in this mutation.
func (m *ChatSummaryMutation) AddedSequenceStart() (r int, exists bool) {
	v := m.addsequence_start
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceStart resets all changes to the "sequence_start" field.
func (m *ChatSummaryMutation) ResetSequenceStart() {
	m.sequence_start = nil
	m.addsequence_start = nil
}

// SetSequenceEnd sets the "sequence_end" field.
func (m *ChatSummaryMutation) SetSequenceEnd(i int) {
	m.sequence_end = &i
	m.addsequence_end = nil
}

// SequenceEnd returns the value of the "sequence_end" field in the mutation.
func (m *ChatSummaryMutation) SequenceEnd() (r int, exists bool) {
	v := m.sequence_end
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceEnd returns the old "sequence_end" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldSequenceEnd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceEnd: %w", err)
	}
	return oldValue.SequenceEnd, nil
}

// AddSequenceEnd adds i to the "sequence_end" field.
func (m *ChatSummaryMutation) AddSequenceEnd(i int) {
	if m.addsequence_end != nil {
		*m.addsequence_end += i
	} else {
		m.addsequence_end = &i
	}
}

// AddedSequenceEnd returns the value that was added to the "sequence_end" field in this mutation.
func (m *ChatSummaryMutation) AddedSequenceEnd() (r int, exists bool) {
	v := m.addsequence_end
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceEnd resets all changes to the "sequence_end" field.
func (m *ChatSummaryMutation) ResetSequenceEnd() {
	m.sequence_end = nil
	m.addsequence_end = nil
}

// SetSummary sets the "summary" field.
func (m *ChatSummaryMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ChatSummaryMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *ChatSummaryMutation) ResetSummary() {
	m.summary = nil
}

// SetKeyDecisions sets the "key_decisions" field.
func (m *ChatSummaryMutation) SetKeyDecisions(s []string) {
	m.key_decisions = &s
	m.appendkey_decisions = nil
}

// KeyDecisions returns the value of the "key_decisions" field in the mutation.
func (m *ChatSummaryMutation) KeyDecisions() (r []string, exists bool) {
	v := m.key_decisions
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyDecisions returns the old "key_decisions" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldKeyDecisions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyDecisions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyDecisions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyDecisions: %w", err)
	}
	return oldValue.KeyDecisions, nil
}

// AppendKeyDecisions adds s to the "key_decisions" field.
func (m *ChatSummaryMutation) AppendKeyDecisions(s []string) {
	m.appendkey_decisions = append(m.appendkey_decisions, s...)
}

// AppendedKeyDecisions returns the list of values that were appended to the "key_decisions" field in this mutation.
func (m *ChatSummaryMutation) AppendedKeyDecisions() ([]string, bool) {
	if len(m.appendkey_decisions) == 0 {
		return nil, false
	}
	return m.appendkey_decisions, true
}

// ClearKeyDecisions clears the value of the "key_decisions" field.
func (m *ChatSummaryMutation) ClearKeyDecisions() {
	m.key_decisions = nil
	m.appendkey_decisions = nil
	m.clearedFields[chatsummary.FieldKeyDecisions] = struct{}{}
}

// KeyDecisionsCleared returns if the "key_decisions" field was cleared in this mutation.
func (m *ChatSummaryMutation) KeyDecisionsCleared() bool {
	_, ok := m.clearedFields[chatsummary.FieldKeyDecisions]
	return ok
}

// ResetKeyDecisions resets all changes to the "key_decisions" field.
func (m *ChatSummaryMutation) ResetKeyDecisions() {
	m.key_decisions = nil
	m.appendkey_decisions = nil
	delete(m.clearedFields, chatsummary.FieldKeyDecisions)
}

// SetTopics sets the "topics" field.
func (m *ChatSummaryMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *ChatSummaryMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *ChatSummaryMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *ChatSummaryMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *ChatSummaryMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[chatsummary.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *ChatSummaryMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[chatsummary.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *ChatSummaryMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, chatsummary.FieldTopics)
}

// SetIsCheckpoint sets the "is_checkpoint" field.
func (m *ChatSummaryMutation) SetIsCheckpoint(b bool) {
	m.is_checkpoint = &b
}

// IsCheckpoint returns the value of the "is_checkpoint" field in the mutation.
func (m *ChatSummaryMutation) IsCheckpoint() (r bool, exists bool) {
	v := m.is_checkpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCheckpoint returns the old "is_checkpoint" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldIsCheckpoint(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCheckpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCheckpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCheckpoint: %w", err)
	}
	return oldValue.IsCheckpoint, nil
}

// ResetIsCheckpoint resets all changes to the "is_checkpoint" field.
func (m *ChatSummaryMutation) ResetIsCheckpoint() {
	m.is_checkpoint = nil
}

// SetCheckpointReason sets the "checkpoint_reason" field.
func (m *ChatSummaryMutation) SetCheckpointReason(s string) {
	m.checkpoint_reason = &s
}

// CheckpointReason returns the value of the "checkpoint_reason" field in the mutation.
func (m *ChatSummaryMutation) CheckpointReason() (r string, exists bool) {
	v := m.checkpoint_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointReason returns the old "checkpoint_reason" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldCheckpointReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointReason: %w", err)
	}
	return oldValue.CheckpointReason, nil
}

// ClearCheckpointReason clears the value of the "checkpoint_reason" field.
func (m *ChatSummaryMutation) ClearCheckpointReason() {
	m.checkpoint_reason = nil
	m.clearedFields[chatsummary.FieldCheckpointReason] = struct{}{}
}

// CheckpointReasonCleared returns if the "checkpoint_reason" field was cleared in this mutation.
func (m *ChatSummaryMutation) CheckpointReasonCleared() bool {
	_, ok := m.clearedFields[chatsummary.FieldCheckpointReason]
	return ok
}

// ResetCheckpointReason resets all changes to the "checkpoint_reason" field.
func (m *ChatSummaryMutation) ResetCheckpointReason() {
	m.checkpoint_reason = nil
	delete(m.clearedFields, chatsummary.FieldCheckpointReason)
}

// SetMessageCount sets the "message_count" field.
func (m *ChatSummaryMutation) SetMessageCount(i int) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *ChatSummaryMutation) MessageCount() (r int, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *ChatSummaryMutation) AddMessageCount(i int) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *ChatSummaryMutation) AddedMessageCount() (r int, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *ChatSummaryMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSummary entity.
// If the ChatSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ChatSummaryMutation builder.
func (m *ChatSummaryMutation) Where(ps ...predicate.ChatSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSummary).
func (m *ChatSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSummaryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task_id != nil {
		fields = append(fields, chatsummary.FieldTaskID)
	}
	if m.sequence_start != nil {
		fields = append(fields, chatsummary.FieldSequenceStart)
	}
	if m.sequence_end != nil {
		fields = append(fields, chatsummary.FieldSequenceEnd)
	}
	if m.summary != nil {
		fields = append(fields, chatsummary.FieldSummary)
	}
	if m.key_decisions != nil {
		fields = append(fields, chatsummary.FieldKeyDecisions)
	}
	if m.topics != nil {
		fields = append(fields, chatsummary.FieldTopics)
	}
	if m.is_checkpoint != nil {
		fields = append(fields, chatsummary.FieldIsCheckpoint)
	}
	if m.checkpoint_reason != nil {
		fields = append(fields, chatsummary.FieldCheckpointReason)
	}
	if m.message_count != nil {
		fields = append(fields, chatsummary.FieldMessageCount)
	}
	if m.created_at != nil {
		fields = append(fields, chatsummary.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsummary.FieldTaskID:
		return m.TaskID()
	case chatsummary.FieldSequenceStart:
		return m.SequenceStart()
	case chatsummary.FieldSequenceEnd:
		return m.SequenceEnd()
	case chatsummary.FieldSummary:
		return m.Summary()
	case chatsummary.FieldKeyDecisions:
		return m.KeyDecisions()
	case chatsummary.FieldTopics:
		return m.Topics()
	case chatsummary.FieldIsCheckpoint:
		return m.IsCheckpoint()
	case chatsummary.FieldCheckpointReason:
		return m.CheckpointReason()
	case chatsummary.FieldMessageCount:
		return m.MessageCount()
	case chatsummary.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsummary.FieldTaskID:
		return m.OldTaskID(ctx)
	case chatsummary.FieldSequenceStart:
		return m.OldSequenceStart(ctx)
	case chatsummary.FieldSequenceEnd:
		return m.OldSequenceEnd(ctx)
	case chatsummary.FieldSummary:
		return m.OldSummary(ctx)
	case chatsummary.FieldKeyDecisions:
		return m.OldKeyDecisions(ctx)
	case chatsummary.FieldTopics:
		return m.OldTopics(ctx)
	case chatsummary.FieldIsCheckpoint:
		return m.OldIsCheckpoint(ctx)
	case chatsummary.FieldCheckpointReason:
		return m.OldCheckpointReason(ctx)
	case chatsummary.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case chatsummary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsummary.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case chatsummary.FieldSequenceStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceStart(v)
		return nil
	case chatsummary.FieldSequenceEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceEnd(v)
		return nil
	case chatsummary.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case chatsummary.FieldKeyDecisions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyDecisions(v)
		return nil
	case chatsummary.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case chatsummary.FieldIsCheckpoint:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCheckpoint(v)
		return nil
	case chatsummary.FieldCheckpointReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointReason(v)
		return nil
	case chatsummary.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case chatsummary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_start != nil {
		fields = append(fields, chatsummary.FieldSequenceStart)
	}
	if m.addsequence_end != nil {
		fields = append(fields, chatsummary.FieldSequenceEnd)
	}
	if m.addmessage_count != nil {
		fields = append(fields, chatsummary.FieldMessageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatsummary.FieldSequenceStart:
		return m.AddedSequenceStart()
	case chatsummary.FieldSequenceEnd:
		return m.AddedSequenceEnd()
	case chatsummary.FieldMessageCount:
		return m.AddedMessageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatsummary.FieldSequenceStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceStart(v)
		return nil
	case chatsummary.FieldSequenceEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceEnd(v)
		return nil
	case chatsummary.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatsummary.FieldKeyDecisions) {
		fields = append(fields, chatsummary.FieldKeyDecisions)
	}
	if m.FieldCleared(chatsummary.FieldTopics) {
		fields = append(fields, chatsummary.FieldTopics)
	}
	if m.FieldCleared(chatsummary.FieldCheckpointReason) {
		fields = append(fields, chatsummary.FieldCheckpointReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSummaryMutation) ClearField(name string) error {
	switch name {
	case chatsummary.FieldKeyDecisions:
		m.ClearKeyDecisions()
		return nil
	case chatsummary.FieldTopics:
		m.ClearTopics()
		return nil
	case chatsummary.FieldCheckpointReason:
		m.ClearCheckpointReason()
		return nil
	}
	return fmt.Errorf("unknown ChatSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSummaryMutation) ResetField(name string) error {
	switch name {
	case chatsummary.FieldTaskID:
		m.ResetTaskID()
		return nil
	case chatsummary.FieldSequenceStart:
		m.ResetSequenceStart()
		return nil
	case chatsummary.FieldSequenceEnd:
		m.ResetSequenceEnd()
		return nil
	case chatsummary.FieldSummary:
		m.ResetSummary()
		return nil
	case chatsummary.FieldKeyDecisions:
		m.ResetKeyDecisions()
		return nil
	case chatsummary.FieldTopics:
		m.ResetTopics()
		return nil
	case chatsummary.FieldIsCheckpoint:
		m.ResetIsCheckpoint()
		return nil
	case chatsummary.FieldCheckpointReason:
		m.ResetCheckpointReason()
		return nil
	case chatsummary.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case chatsummary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSummaryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSummaryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSummaryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChatSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSummaryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChatSummary edge %s", name)
}

// ExtractionTaskMutation represents an operation that mutates the ExtractionTask nodes in the graph.
type ExtractionTaskMutation struct {
	config
	op              Op
	typ             string
	id              *string
	source_urn      *string
	content         *string
	client_id       *string
	project_id      *string
	kind            *string
	chunk_ids       *[]string
	appendchunk_ids []string
	status          *extractiontask.Status
	attempts        *int
	addattempts     *int
	last_attempt_at *time.Time
	worker_id       *string
	error_message   *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ExtractionTask, error)
	predicates      []predicate.ExtractionTask
}

var _ ent.Mutation = (*ExtractionTaskMutation)(nil)

// extractiontaskOption allows management of the mutation configuration using functional options.
type extractiontaskOption func(*ExtractionTaskMutation)

// newExtractionTaskMutation creates new mutation for the ExtractionTask entity.
func newExtractionTaskMutation(c config, op Op, opts ...extractiontaskOption) *ExtractionTaskMutation {
	m := &ExtractionTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionTaskID sets the ID field of the mutation.
func withExtractionTaskID(id string) extractiontaskOption {
	return func(m *ExtractionTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionTask
		)
		m.oldValue = func(ctx context.Context) (*ExtractionTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionTask sets the old ExtractionTask of the mutation.
func withExtractionTask(node *ExtractionTask) extractiontaskOption {
	return func(m *ExtractionTaskMutation) {
		m.oldValue = func(context.Context) (*ExtractionTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionTask entities.
func (m *ExtractionTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceUrn sets the "source_urn" field.
func (m *ExtractionTaskMutation) SetSourceUrn(s string) {
	m.source_urn = &s
}

// SourceUrn returns the value of the "source_urn" field in the mutation.
func (m *ExtractionTaskMutation) SourceUrn() (r string, exists bool) {
	v := m.source_urn
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceUrn returns the old "source_urn" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldSourceUrn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceUrn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceUrn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceUrn: %w", err)
	}
	return oldValue.SourceUrn, nil
}

// ResetSourceUrn resets all changes to the "source_urn" field.
func (m *ExtractionTaskMutation) ResetSourceUrn() {
	m.source_urn = nil
}

// SetContent sets the "content" field.
func (m *ExtractionTaskMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ExtractionTaskMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ExtractionTaskMutation) ResetContent() {
	m.content = nil
}

// SetClientID sets the "client_id" field.
func (m *ExtractionTaskMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ExtractionTaskMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ExtractionTaskMutation) ResetClientID() {
	m.client_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *ExtractionTaskMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ExtractionTaskMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *ExtractionTaskMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[extractiontask.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *ExtractionTaskMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ExtractionTaskMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, extractiontask.FieldProjectID)
}

// SetKind sets the "kind" field.
func (m *ExtractionTaskMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ExtractionTaskMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ClearKind clears the value of the "kind" field.
func (m *ExtractionTaskMutation) ClearKind() {
	m.kind = nil
	m.clearedFields[extractiontask.FieldKind] = struct{}{}
}

// KindCleared returns if the "kind" field was cleared in this mutation.
func (m *ExtractionTaskMutation) KindCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldKind]
	return ok
}

// ResetKind resets all changes to the "kind" field.
func (m *ExtractionTaskMutation) ResetKind() {
	m.kind = nil
	delete(m.clearedFields, extractiontask.FieldKind)
}

// SetChunkIds sets the "chunk_ids" field.
func (m *ExtractionTaskMutation) SetChunkIds(s []string) {
	m.chunk_ids = &s
	m.appendchunk_ids = nil
}

// ChunkIds returns the value of the "chunk_ids" field in the mutation.
func (m *ExtractionTaskMutation) ChunkIds() (r []string, exists bool) {
	v := m.chunk_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIds returns the old "chunk_ids" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldChunkIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIds: %w", err)
	}
	return oldValue.ChunkIds, nil
}

// AppendChunkIds adds s to the "chunk_ids" field.
func (m *ExtractionTaskMutation) AppendChunkIds(s []string) {
	m.appendchunk_ids = append(m.appendchunk_ids, s...)
}

// AppendedChunkIds returns the list of values that were appended to the "chunk_ids" field in this mutation.
func (m *ExtractionTaskMutation) AppendedChunkIds() ([]string, bool) {
	if len(m.appendchunk_ids) == 0 {
		return nil, false
	}
	return m.appendchunk_ids, true
}

// ClearChunkIds clears the value of the "chunk_ids" field.
func (m *ExtractionTaskMutation) ClearChunkIds() {
	m.chunk_ids = nil
	m.appendchunk_ids = nil
	m.clearedFields[extractiontask.FieldChunkIds] = struct{}{}
}

// ChunkIdsCleared returns if the "chunk_ids" field was cleared in this mutation.
func (m *ExtractionTaskMutation) ChunkIdsCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldChunkIds]
	return ok
}

// ResetChunkIds resets all changes to the "chunk_ids" field.
func (m *ExtractionTaskMutation) ResetChunkIds() {
	m.chunk_ids = nil
	m.appendchunk_ids = nil
	delete(m.clearedFields, extractiontask.FieldChunkIds)
}

// SetStatus sets the "status" field.
func (m *ExtractionTaskMutation) SetStatus(e extractiontask.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionTaskMutation) Status() (r extractiontask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldStatus(ctx context.Context) (v extractiontask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionTaskMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *ExtractionTaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ExtractionTaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ExtractionTaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ExtractionTaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ExtractionTaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *ExtractionTaskMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *ExtractionTaskMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldLastAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (m *ExtractionTaskMutation) ClearLastAttemptAt() {
	m.last_attempt_at = nil
	m.clearedFields[extractiontask.FieldLastAttemptAt] = struct{}{}
}

// LastAttemptAtCleared returns if the "last_attempt_at" field was cleared in this mutation.
func (m *ExtractionTaskMutation) LastAttemptAtCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldLastAttemptAt]
	return ok
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *ExtractionTaskMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
	delete(m.clearedFields, extractiontask.FieldLastAttemptAt)
}

// SetWorkerID sets the "worker_id" field.
func (m *ExtractionTaskMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *ExtractionTaskMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *ExtractionTaskMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[extractiontask.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *ExtractionTaskMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *ExtractionTaskMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, extractiontask.FieldWorkerID)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractiontask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractiontask.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractionTaskMutation builder.
func (m *ExtractionTaskMutation) Where(ps ...predicate.ExtractionTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionTask).
func (m *ExtractionTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionTaskMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.source_urn != nil {
		fields = append(fields, extractiontask.FieldSourceUrn)
	}
	if m.content != nil {
		fields = append(fields, extractiontask.FieldContent)
	}
	if m.client_id != nil {
		fields = append(fields, extractiontask.FieldClientID)
	}
	if m.project_id != nil {
		fields = append(fields, extractiontask.FieldProjectID)
	}
	if m.kind != nil {
		fields = append(fields, extractiontask.FieldKind)
	}
	if m.chunk_ids != nil {
		fields = append(fields, extractiontask.FieldChunkIds)
	}
	if m.status != nil {
		fields = append(fields, extractiontask.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, extractiontask.FieldAttempts)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, extractiontask.FieldLastAttemptAt)
	}
	if m.worker_id != nil {
		fields = append(fields, extractiontask.FieldWorkerID)
	}
	if m.error_message != nil {
		fields = append(fields, extractiontask.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, extractiontask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractiontask.FieldSourceUrn:
		return m.SourceUrn()
	case extractiontask.FieldContent:
		return m.Content()
	case extractiontask.FieldClientID:
		return m.ClientID()
	case extractiontask.FieldProjectID:
		return m.ProjectID()
	case extractiontask.FieldKind:
		return m.Kind()
	case extractiontask.FieldChunkIds:
		return m.ChunkIds()
	case extractiontask.FieldStatus:
		return m.Status()
	case extractiontask.FieldAttempts:
		return m.Attempts()
	case extractiontask.FieldLastAttemptAt:
		return m.LastAttemptAt()
	case extractiontask.FieldWorkerID:
		return m.WorkerID()
	case extractiontask.FieldErrorMessage:
		return m.ErrorMessage()
	case extractiontask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractiontask.FieldSourceUrn:
		return m.OldSourceUrn(ctx)
	case extractiontask.FieldContent:
		return m.OldContent(ctx)
	case extractiontask.FieldClientID:
		return m.OldClientID(ctx)
	case extractiontask.FieldProjectID:
		return m.OldProjectID(ctx)
	case extractiontask.FieldKind:
		return m.OldKind(ctx)
	case extractiontask.FieldChunkIds:
		return m.OldChunkIds(ctx)
	case extractiontask.FieldStatus:
		return m.OldStatus(ctx)
	case extractiontask.FieldAttempts:
		return m.OldAttempts(ctx)
	case extractiontask.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	case extractiontask.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case extractiontask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractiontask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractiontask.FieldSourceUrn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceUrn(v)
		return nil
	case extractiontask.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case extractiontask.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case extractiontask.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case extractiontask.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case extractiontask.FieldChunkIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIds(v)
		return nil
	case extractiontask.FieldStatus:
		v, ok := value.(extractiontask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractiontask.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case extractiontask.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	case extractiontask.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case extractiontask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractiontask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionTaskMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, extractiontask.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractiontask.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractiontask.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractiontask.FieldProjectID) {
		fields = append(fields, extractiontask.FieldProjectID)
	}
	if m.FieldCleared(extractiontask.FieldKind) {
		fields = append(fields, extractiontask.FieldKind)
	}
	if m.FieldCleared(extractiontask.FieldChunkIds) {
		fields = append(fields, extractiontask.FieldChunkIds)
	}
	if m.FieldCleared(extractiontask.FieldLastAttemptAt) {
		fields = append(fields, extractiontask.FieldLastAttemptAt)
	}
	if m.FieldCleared(extractiontask.FieldWorkerID) {
		fields = append(fields, extractiontask.FieldWorkerID)
	}
	if m.FieldCleared(extractiontask.FieldErrorMessage) {
		fields = append(fields, extractiontask.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionTaskMutation) ClearField(name string) error {
	switch name {
	case extractiontask.FieldProjectID:
		m.ClearProjectID()
		return nil
	case extractiontask.FieldKind:
		m.ClearKind()
		return nil
	case extractiontask.FieldChunkIds:
		m.ClearChunkIds()
		return nil
	case extractiontask.FieldLastAttemptAt:
		m.ClearLastAttemptAt()
		return nil
	case extractiontask.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case extractiontask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionTaskMutation) ResetField(name string) error {
	switch name {
	case extractiontask.FieldSourceUrn:
		m.ResetSourceUrn()
		return nil
	case extractiontask.FieldContent:
		m.ResetContent()
		return nil
	case extractiontask.FieldClientID:
		m.ResetClientID()
		return nil
	case extractiontask.FieldProjectID:
		m.ResetProjectID()
		return nil
	case extractiontask.FieldKind:
		m.ResetKind()
		return nil
	case extractiontask.FieldChunkIds:
		m.ResetChunkIds()
		return nil
	case extractiontask.FieldStatus:
		m.ResetStatus()
		return nil
	case extractiontask.FieldAttempts:
		m.ResetAttempts()
		return nil
	case extractiontask.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	case extractiontask.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case extractiontask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractiontask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractionTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractionTask edge %s", name)
}

// GraphCheckpointMutation represents an operation that mutates the GraphCheckpoint nodes in the graph.
type GraphCheckpointMutation struct {
	config
	op            Op
	typ           string
	id            *string
	task_id       *string
	client_id     *string
	state         *map[string]interface{}
	interrupt     *map[string]interface{}
	status        *graphcheckpoint.Status
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GraphCheckpoint, error)
	predicates    []predicate.GraphCheckpoint
}

var _ ent.Mutation = (*GraphCheckpointMutation)(nil)

// graphcheckpointOption allows management of the mutation configuration using functional options.
type graphcheckpointOption func(*GraphCheckpointMutation)

// newGraphCheckpointMutation creates new mutation for the GraphCheckpoint entity.
func newGraphCheckpointMutation(c config, op Op, opts ...graphcheckpointOption) *GraphCheckpointMutation {
	m := &GraphCheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphCheckpointID sets the ID field of the mutation.
func withGraphCheckpointID(id string) graphcheckpointOption {
	return func(m *GraphCheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphCheckpoint
		)
		m.oldValue = func(ctx context.Context) (*GraphCheckpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphCheckpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphCheckpoint sets the old GraphCheckpoint of the mutation.
func withGraphCheckpoint(node *GraphCheckpoint) graphcheckpointOption {
	return func(m *GraphCheckpointMutation) {
		m.oldValue = func(context.Context) (*GraphCheckpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphCheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphCheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GraphCheckpoint entities.
func (m *GraphCheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphCheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphCheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphCheckpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *GraphCheckpointMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *GraphCheckpointMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the GraphCheckpoint entity.
// If the GraphCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphCheckpointMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *GraphCheckpointMutation) ResetTaskID() {
	m.task_id = nil
}

// SetClientID sets the "client_id" field.
func (m *GraphCheckpointMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *GraphCheckpointMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the GraphCheckpoint entity.
// If the GraphCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphCheckpointMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *GraphCheckpointMutation) ResetClientID() {
	m.client_id = nil
}

// SetState sets the "state" field.
func (m *GraphCheckpointMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *GraphCheckpointMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the GraphCheckpoint entity.
// If the GraphCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphCheckpointMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *GraphCheckpointMutation) ResetState() {
	m.state = nil
}

// SetInterrupt sets the "interrupt" field.
func (m *GraphCheckpointMutation) SetInterrupt(value map[string]interface{}) {
	m.interrupt = &value
}

// Interrupt returns the value of the "interrupt" field in the mutation.
func (m *GraphCheckpointMutation) Interrupt() (r map[string]interface{}, exists bool) {
	v := m.interrupt
	if v == nil {
		return
	}
	return *v, true
}

// OldInterrupt returns the old "interrupt" field's value of the GraphCheckpoint entity.
// If the GraphCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphCheckpointMutation) OldInterrupt(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterrupt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterrupt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterrupt: %w", err)
	}
	return oldValue.Interrupt, nil
}

// ClearInterrupt clears the value of the "interrupt" field.
func (m *GraphCheckpointMutation) ClearInterrupt() {
	m.interrupt = nil
	m.clearedFields[graphcheckpoint.FieldInterrupt] = struct{}{}
}

// InterruptCleared returns if the "interrupt" field was cleared in this mutation.
func (m *GraphCheckpointMutation) InterruptCleared() bool {
	_, ok := m.clearedFields[graphcheckpoint.FieldInterrupt]
	return ok
}

// ResetInterrupt resets all changes to the "interrupt" field.
func (m *GraphCheckpointMutation) ResetInterrupt() {
	m.interrupt = nil
	delete(m.clearedFields, graphcheckpoint.FieldInterrupt)
}

// SetStatus sets the "status" field.
func (m *GraphCheckpointMutation) SetStatus(gr graphcheckpoint.Status) {
	m.status = &gr
}

// Status returns the value of the "status" field in the mutation.
func (m *GraphCheckpointMutation) Status() (r graphcheckpoint.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GraphCheckpoint entity.
// If the GraphCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphCheckpointMutation) OldStatus(ctx context.Context) (v graphcheckpoint.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GraphCheckpointMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GraphCheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GraphCheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GraphCheckpoint entity.
// If the GraphCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphCheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GraphCheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GraphCheckpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GraphCheckpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GraphCheckpoint entity.
// If the GraphCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphCheckpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GraphCheckpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GraphCheckpointMutation builder.
func (m *GraphCheckpointMutation) Where(ps ...predicate.GraphCheckpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphCheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphCheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphCheckpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphCheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphCheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphCheckpoint).
func (m *GraphCheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphCheckpointMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task_id != nil {
		fields = append(fields, graphcheckpoint.FieldTaskID)
	}
	if m.client_id != nil {
		fields = append(fields, graphcheckpoint.FieldClientID)
	}
	if m.state != nil {
		fields = append(fields, graphcheckpoint.FieldState)
	}
	if m.interrupt != nil {
		fields = append(fields, graphcheckpoint.FieldInterrupt)
	}
	if m.status != nil {
		fields = append(fields, graphcheckpoint.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, graphcheckpoint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, graphcheckpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphCheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphcheckpoint.FieldTaskID:
		return m.TaskID()
	case graphcheckpoint.FieldClientID:
		return m.ClientID()
	case graphcheckpoint.FieldState:
		return m.State()
	case graphcheckpoint.FieldInterrupt:
		return m.Interrupt()
	case graphcheckpoint.FieldStatus:
		return m.Status()
	case graphcheckpoint.FieldCreatedAt:
		return m.CreatedAt()
	case graphcheckpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphCheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphcheckpoint.FieldTaskID:
		return m.OldTaskID(ctx)
	case graphcheckpoint.FieldClientID:
		return m.OldClientID(ctx)
	case graphcheckpoint.FieldState:
		return m.OldState(ctx)
	case graphcheckpoint.FieldInterrupt:
		return m.OldInterrupt(ctx)
	case graphcheckpoint.FieldStatus:
		return m.OldStatus(ctx)
	case graphcheckpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case graphcheckpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GraphCheckpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphCheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphcheckpoint.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case graphcheckpoint.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case graphcheckpoint.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case graphcheckpoint.FieldInterrupt:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterrupt(v)
		return nil
	case graphcheckpoint.FieldStatus:
		v, ok := value.(graphcheckpoint.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case graphcheckpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case graphcheckpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GraphCheckpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphCheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphCheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphCheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GraphCheckpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphCheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(graphcheckpoint.FieldInterrupt) {
		fields = append(fields, graphcheckpoint.FieldInterrupt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphCheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphCheckpointMutation) ClearField(name string) error {
	switch name {
	case graphcheckpoint.FieldInterrupt:
		m.ClearInterrupt()
		return nil
	}
	return fmt.Errorf("unknown GraphCheckpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphCheckpointMutation) ResetField(name string) error {
	switch name {
	case graphcheckpoint.FieldTaskID:
		m.ResetTaskID()
		return nil
	case graphcheckpoint.FieldClientID:
		m.ResetClientID()
		return nil
	case graphcheckpoint.FieldState:
		m.ResetState()
		return nil
	case graphcheckpoint.FieldInterrupt:
		m.ResetInterrupt()
		return nil
	case graphcheckpoint.FieldStatus:
		m.ResetStatus()
		return nil
	case graphcheckpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case graphcheckpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GraphCheckpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphCheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphCheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphCheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphCheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphCheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphCheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphCheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GraphCheckpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphCheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GraphCheckpoint edge %s", name)
}
