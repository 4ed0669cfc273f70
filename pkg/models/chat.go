package models

import "time"

// Chat roles stored in history and sent to the LLM.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ChatTurn is one message of a conversation as exchanged with the LLM.
type ChatTurn struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolName   string     `json:"tool_name,omitempty"`
}

// ToolCall is an LLM request to invoke a tool. Arguments stay as raw JSON
// until the dispatch layer decodes them.
type ToolCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatRequest is the inbound payload of POST /chat.
type ChatRequest struct {
	SessionID       string     `json:"session_id"`
	ActiveClientID  string     `json:"active_client_id"`
	ActiveProjectID string     `json:"active_project_id,omitempty"`
	Message         string     `json:"message"`
	MessageSequence int        `json:"message_sequence"`
	ContextTaskID   string     `json:"context_task_id,omitempty"`
	ChatHistory     []ChatTurn `json:"chat_history,omitempty"`
}

// OrchestrateRequest is the inbound payload of POST /orchestrate/stream.
type OrchestrateRequest struct {
	Task     CodingTask `json:"task"`
	ThreadID string     `json:"thread_id,omitempty"`
}

// StreamEventType classifies chat stream events.
type StreamEventType string

// Chat stream event types.
const (
	StreamEventThinking    StreamEventType = "thinking"
	StreamEventToolCall    StreamEventType = "tool_call"
	StreamEventToolResult  StreamEventType = "tool_result"
	StreamEventToken       StreamEventType = "token"
	StreamEventScopeChange StreamEventType = "scope_change"
	StreamEventDone        StreamEventType = "done"
	StreamEventError       StreamEventType = "error"
)

// StreamEvent is one event of the chat SSE stream.
type StreamEvent struct {
	Type     StreamEventType        `json:"type"`
	Content  string                 `json:"content,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// StoredMessage is a chat history row as returned to the engine.
type StoredMessage struct {
	ID        string                 `json:"id"`
	TaskID    string                 `json:"task_id"`
	Role      string                 `json:"role"`
	Content   string                 `json:"content"`
	Sequence  int                    `json:"sequence"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// SummaryBlock is a compressed span of chat history.
type SummaryBlock struct {
	ID               string    `json:"id"`
	TaskID           string    `json:"task_id"`
	SequenceStart    int       `json:"sequence_start"`
	SequenceEnd      int       `json:"sequence_end"`
	Summary          string    `json:"summary"`
	KeyDecisions     []string  `json:"key_decisions,omitempty"`
	Topics           []string  `json:"topics,omitempty"`
	IsCheckpoint     bool      `json:"is_checkpoint"`
	CheckpointReason string    `json:"checkpoint_reason,omitempty"`
	MessageCount     int       `json:"message_count"`
	CreatedAt        time.Time `json:"created_at"`
}
