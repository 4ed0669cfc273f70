// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/jervis-ai/jervis-core/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/jervis-ai/jervis-core/ent/chatmessage"
	"github.com/jervis-ai/jervis-core/ent/chatsummary"
	"github.com/jervis-ai/jervis-core/ent/extractiontask"
	"github.com/jervis-ai/jervis-core/ent/graphcheckpoint"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// ChatSummary is the client for interacting with the ChatSummary builders.
	ChatSummary *ChatSummaryClient
	// ExtractionTask is the client for interacting with the ExtractionTask builders.
	ExtractionTask *ExtractionTaskClient
	// GraphCheckpoint is the client for interacting with the GraphCheckpoint builders.
	GraphCheckpoint *GraphCheckpointClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.ChatSummary = NewChatSummaryClient(c.config)
	c.ExtractionTask = NewExtractionTaskClient(c.config)
	c.GraphCheckpoint = NewGraphCheckpointClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		ChatMessage:     NewChatMessageClient(cfg),
		ChatSummary:     NewChatSummaryClient(cfg),
		ExtractionTask:  NewExtractionTaskClient(cfg),
		GraphCheckpoint: NewGraphCheckpointClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		ChatMessage:     NewChatMessageClient(cfg),
		ChatSummary:     NewChatSummaryClient(cfg),
		ExtractionTask:  NewExtractionTaskClient(cfg),
		GraphCheckpoint: NewGraphCheckpointClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatMessage.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ChatMessage.Use(hooks...)
	c.ChatSummary.Use(hooks...)
	c.ExtractionTask.Use(hooks...)
	c.GraphCheckpoint.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChatMessage.Intercept(interceptors...)
	c.ChatSummary.Intercept(interceptors...)
	c.ExtractionTask.Intercept(interceptors...)
	c.GraphCheckpoint.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *ChatSummaryMutation:
		return c.ChatSummary.mutate(ctx, m)
	case *ExtractionTaskMutation:
		return c.ExtractionTask.mutate(ctx, m)
	case *GraphCheckpointMutation:
		return c.GraphCheckpoint.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id string) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id string) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id string) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id string) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// ChatSummaryClient is a client for the ChatSummary schema.
type ChatSummaryClient struct {
	config
}

// NewChatSummaryClient returns a client for the ChatSummary from the given config.
func NewChatSummaryClient(c config) *ChatSummaryClient {
	return &ChatSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatsummary.Hooks(f(g(h())))`.
func (c *ChatSummaryClient) Use(hooks ...Hook) {
	c.hooks.ChatSummary = append(c.hooks.ChatSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatsummary.Intercept(f(g(h())))`.
func (c *ChatSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatSummary = append(c.inters.ChatSummary, interceptors...)
}

// Create returns a builder for creating a ChatSummary entity.
func (c *ChatSummaryClient) Create() *ChatSummaryCreate {
	mutation := newChatSummaryMutation(c.config, OpCreate)
	return &ChatSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatSummary entities.
func (c *ChatSummaryClient) CreateBulk(builders ...*ChatSummaryCreate) *ChatSummaryCreateBulk {
	return &ChatSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatSummaryClient) MapCreateBulk(slice any, setFunc func(*ChatSummaryCreate, int)) *ChatSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatSummaryCreateBulk{err: fmt.Errorf("calling to ChatSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatSummary.
func (c *ChatSummaryClient) Update() *ChatSummaryUpdate {
	mutation := newChatSummaryMutation(c.config, OpUpdate)
	return &ChatSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatSummaryClient) UpdateOne(_m *ChatSummary) *ChatSummaryUpdateOne {
	mutation := newChatSummaryMutation(c.config, OpUpdateOne, withChatSummary(_m))
	return &ChatSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatSummaryClient) UpdateOneID(id string) *ChatSummaryUpdateOne {
	mutation := newChatSummaryMutation(c.config, OpUpdateOne, withChatSummaryID(id))
	return &ChatSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatSummary.
func (c *ChatSummaryClient) Delete() *ChatSummaryDelete {
	mutation := newChatSummaryMutation(c.config, OpDelete)
	return &ChatSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatSummaryClient) DeleteOne(_m *ChatSummary) *ChatSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatSummaryClient) DeleteOneID(id string) *ChatSummaryDeleteOne {
	builder := c.Delete().Where(chatsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatSummaryDeleteOne{builder}
}

// Query returns a query builder for ChatSummary.
func (c *ChatSummaryClient) Query() *ChatSummaryQuery {
	return &ChatSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatSummary entity by its id.
func (c *ChatSummaryClient) Get(ctx context.Context, id string) (*ChatSummary, error) {
	return c.Query().Where(chatsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatSummaryClient) GetX(ctx context.Context, id string) *ChatSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatSummaryClient) Hooks() []Hook {
	return c.hooks.ChatSummary
}

// Interceptors returns the client interceptors.
func (c *ChatSummaryClient) Interceptors() []Interceptor {
	return c.inters.ChatSummary
}

func (c *ChatSummaryClient) mutate(ctx context.Context, m *ChatSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatSummary mutation op: %q", m.Op())
	}
}

// ExtractionTaskClient is a client for the ExtractionTask schema.
type ExtractionTaskClient struct {
	config
}

// NewExtractionTaskClient returns a client for the ExtractionTask from the given config.
func NewExtractionTaskClient(c config) *ExtractionTaskClient {
	return &ExtractionTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractiontask.Hooks(f(g(h())))`.
func (c *ExtractionTaskClient) Use(hooks ...Hook) {
	c.hooks.ExtractionTask = append(c.hooks.ExtractionTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractiontask.Intercept(f(g(h())))`.
func (c *ExtractionTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionTask = append(c.inters.ExtractionTask, interceptors...)
}

// Create returns a builder for creating a ExtractionTask entity.
func (c *ExtractionTaskClient) Create() *ExtractionTaskCreate {
	mutation := newExtractionTaskMutation(c.config, OpCreate)
	return &ExtractionTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionTask entities.
func (c *ExtractionTaskClient) CreateBulk(builders ...*ExtractionTaskCreate) *ExtractionTaskCreateBulk {
	return &ExtractionTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionTaskClient) MapCreateBulk(slice any, setFunc func(*ExtractionTaskCreate, int)) *ExtractionTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionTaskCreateBulk{err: fmt.Errorf("calling to ExtractionTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionTask.
func (c *ExtractionTaskClient) Update() *ExtractionTaskUpdate {
	mutation := newExtractionTaskMutation(c.config, OpUpdate)
	return &ExtractionTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionTaskClient) UpdateOne(_m *ExtractionTask) *ExtractionTaskUpdateOne {
	mutation := newExtractionTaskMutation(c.config, OpUpdateOne, withExtractionTask(_m))
	return &ExtractionTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionTaskClient) UpdateOneID(id string) *ExtractionTaskUpdateOne {
	mutation := newExtractionTaskMutation(c.config, OpUpdateOne, withExtractionTaskID(id))
	return &ExtractionTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionTask.
func (c *ExtractionTaskClient) Delete() *ExtractionTaskDelete {
	mutation := newExtractionTaskMutation(c.config, OpDelete)
	return &ExtractionTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionTaskClient) DeleteOne(_m *ExtractionTask) *ExtractionTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionTaskClient) DeleteOneID(id string) *ExtractionTaskDeleteOne {
	builder := c.Delete().Where(extractiontask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionTaskDeleteOne{builder}
}

// Query returns a query builder for ExtractionTask.
func (c *ExtractionTaskClient) Query() *ExtractionTaskQuery {
	return &ExtractionTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionTask entity by its id.
func (c *ExtractionTaskClient) Get(ctx context.Context, id string) (*ExtractionTask, error) {
	return c.Query().Where(extractiontask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionTaskClient) GetX(ctx context.Context, id string) *ExtractionTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractionTaskClient) Hooks() []Hook {
	return c.hooks.ExtractionTask
}

// Interceptors returns the client interceptors.
func (c *ExtractionTaskClient) Interceptors() []Interceptor {
	return c.inters.ExtractionTask
}

func (c *ExtractionTaskClient) mutate(ctx context.Context, m *ExtractionTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionTask mutation op: %q", m.Op())
	}
}

// GraphCheckpointClient is a client for the GraphCheckpoint schema.
type GraphCheckpointClient struct {
	config
}

// NewGraphCheckpointClient returns a client for the GraphCheckpoint from the given config.
func NewGraphCheckpointClient(c config) *GraphCheckpointClient {
	return &GraphCheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graphcheckpoint.Hooks(f(g(h())))`.
func (c *GraphCheckpointClient) Use(hooks ...Hook) {
	c.hooks.GraphCheckpoint = append(c.hooks.GraphCheckpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graphcheckpoint.Intercept(f(g(h())))`.
func (c *GraphCheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.GraphCheckpoint = append(c.inters.GraphCheckpoint, interceptors...)
}

// Create returns a builder for creating a GraphCheckpoint entity.
func (c *GraphCheckpointClient) Create() *GraphCheckpointCreate {
	mutation := newGraphCheckpointMutation(c.config, OpCreate)
	return &GraphCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GraphCheckpoint entities.
func (c *GraphCheckpointClient) CreateBulk(builders ...*GraphCheckpointCreate) *GraphCheckpointCreateBulk {
	return &GraphCheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraphCheckpointClient) MapCreateBulk(slice any, setFunc func(*GraphCheckpointCreate, int)) *GraphCheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraphCheckpointCreateBulk{err: fmt.Errorf("calling to GraphCheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraphCheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraphCheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GraphCheckpoint.
func (c *GraphCheckpointClient) Update() *GraphCheckpointUpdate {
	mutation := newGraphCheckpointMutation(c.config, OpUpdate)
	return &GraphCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraphCheckpointClient) UpdateOne(_m *GraphCheckpoint) *GraphCheckpointUpdateOne {
	mutation := newGraphCheckpointMutation(c.config, OpUpdateOne, withGraphCheckpoint(_m))
	return &GraphCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraphCheckpointClient) UpdateOneID(id string) *GraphCheckpointUpdateOne {
	mutation := newGraphCheckpointMutation(c.config, OpUpdateOne, withGraphCheckpointID(id))
	return &GraphCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GraphCheckpoint.
func (c *GraphCheckpointClient) Delete() *GraphCheckpointDelete {
	mutation := newGraphCheckpointMutation(c.config, OpDelete)
	return &GraphCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraphCheckpointClient) DeleteOne(_m *GraphCheckpoint) *GraphCheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraphCheckpointClient) DeleteOneID(id string) *GraphCheckpointDeleteOne {
	builder := c.Delete().Where(graphcheckpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraphCheckpointDeleteOne{builder}
}

// Query returns a query builder for GraphCheckpoint.
func (c *GraphCheckpointClient) Query() *GraphCheckpointQuery {
	return &GraphCheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGraphCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a GraphCheckpoint entity by its id.
func (c *GraphCheckpointClient) Get(ctx context.Context, id string) (*GraphCheckpoint, error) {
	return c.Query().Where(graphcheckpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraphCheckpointClient) GetX(ctx context.Context, id string) *GraphCheckpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GraphCheckpointClient) Hooks() []Hook {
	return c.hooks.GraphCheckpoint
}

// Interceptors returns the client interceptors.
func (c *GraphCheckpointClient) Interceptors() []Interceptor {
	return c.inters.GraphCheckpoint
}

func (c *GraphCheckpointClient) mutate(ctx context.Context, m *GraphCheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraphCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraphCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraphCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraphCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GraphCheckpoint mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatMessage, ChatSummary, ExtractionTask, GraphCheckpoint []ent.Hook
	}
	inters struct {
		ChatMessage, ChatSummary, ExtractionTask, GraphCheckpoint []ent.Interceptor
	}
)
