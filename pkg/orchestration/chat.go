package orchestration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

const chatSystemPrompt = `You are Jervis, an engineering assistant with access to the client's knowledge base and project memory. Use tools when you need facts you do not have; answer directly when you do. Be concrete and concise.`

// MemorySession is the per-request memory surface the chat handler uses.
type MemorySession interface {
	MemorySearcher
	LoadSession(ctx context.Context) (*models.SessionContext, error)
	ComposeContext(maxTokens int) string
	FlushSession(ctx context.Context) (flushed, failed int)
}

// MemoryFactory builds a memory session scoped to one client/project.
type MemoryFactory func(clientID, projectID string) MemorySession

// StatusPusher is the coordinator surface the handlers depend on.
type StatusPusher interface {
	PushStatus(ctx context.Context, taskID, threadID, status string)
	PushProgress(ctx context.Context, taskID, threadID, message string)
}

// GPUReserver claims GPU capacity for a foreground session and gives it
// back when the exchange ends.
type GPUReserver interface {
	Announce(ctx context.Context, sessionID, model string) (bool, error)
	Release(sessionID string)
}

// ChatHandler serves the foreground streaming conversation.
type ChatHandler struct {
	loop        *Loop
	assembler   *Assembler
	history     *History
	compressor  *Compressor
	checkpoints *CheckpointStore
	coordinator StatusPusher
	gpu         GPUReserver
	llm         ChatLLM
	memFactory  MemoryFactory
	cfg         *config.OrchestrationConfig
}

// NewChatHandler wires the chat handler. gpu may be nil when no inference
// router is running.
func NewChatHandler(loop *Loop, assembler *Assembler, history *History, compressor *Compressor,
	checkpoints *CheckpointStore, coordinator StatusPusher, gpu GPUReserver, chatLLM ChatLLM,
	memFactory MemoryFactory, cfg *config.OrchestrationConfig) *ChatHandler {
	return &ChatHandler{
		loop:        loop,
		assembler:   assembler,
		history:     history,
		compressor:  compressor,
		checkpoints: checkpoints,
		coordinator: coordinator,
		gpu:         gpu,
		llm:         chatLLM,
		memFactory:  memFactory,
		cfg:         cfg,
	}
}

// Handle runs one chat exchange, emitting stream events until done or error.
// Cancellation of ctx (client disconnect) interrupts the loop and persists a
// partial marker message.
func (h *ChatHandler) Handle(ctx context.Context, req models.ChatRequest, emit func(models.StreamEvent)) {
	// 1. Foreground traffic announces itself so background inference yields.
	h.coordinator.PushStatus(ctx, req.SessionID, "", "foreground_active")
	defer h.coordinator.PushStatus(context.Background(), req.SessionID, "", "foreground_idle")

	if h.gpu != nil {
		if _, err := h.gpu.Announce(ctx, req.SessionID, ""); err != nil {
			slog.Warn("GPU reservation unavailable, continuing without it",
				"session_id", req.SessionID, "error", err)
		} else {
			defer h.gpu.Release(req.SessionID)
		}
	}

	mem := h.memFactory(req.ActiveClientID, req.ActiveProjectID)
	if _, err := mem.LoadSession(ctx); err != nil {
		slog.Warn("Memory session load failed, continuing without affair context",
			"session_id", req.SessionID, "error", err)
	}
	defer func() {
		if flushed, failed := mem.FlushSession(context.Background()); failed > 0 {
			slog.Warn("Session flush left writes buffered",
				"session_id", req.SessionID, "flushed", flushed, "failed", failed)
		}
	}()

	// 2. Assemble context within the lowest tier's budget.
	memoryContext := mem.ComposeContext(h.cfg.SystemReserveTokens / 2)
	systemPrompt := chatSystemPrompt
	if req.ContextTaskID != "" {
		systemPrompt += fmt.Sprintf(
			"\n\nThis conversation continues background task %s; its history is part of the context.",
			req.ContextTaskID)
	}
	messages, err := h.assembler.Assemble(ctx, AssembleInput{
		TaskID:        req.SessionID,
		SystemPrompt:  systemPrompt,
		MemoryContext: memoryContext,
		UserMessage:   req.Message,
		Model:         h.llm.ModelFor(0),
		ContextWindow: h.llm.ContextTokens(0),
		Seed:          req.ChatHistory,
	})
	if err != nil {
		emit(errorEvent(fmt.Errorf("context assembly failed: %w", err)))
		return
	}

	if _, err := h.history.Append(ctx, req.SessionID, models.RoleUser, req.Message, nil); err != nil {
		emit(errorEvent(fmt.Errorf("failed to persist user message: %w", err)))
		return
	}

	// 3. Run the tool loop with memory tools scoped to this client.
	tools := NewRegistry()
	tools.RegisterBuiltins(mem)
	outcome, err := h.loop.Run(ctx, LoopInput{
		Messages:      messages,
		Tier:          0,
		MaxIterations: h.cfg.MaxIterationsChat,
		Emit:          emit,
		Rules:         models.ProjectRules{AutoUseAnthropic: true, AutoUseOpenAI: true, AutoUseGemini: true},
		Tools:         tools,
	})
	if err != nil {
		h.recoverPartial(req.SessionID, outcome, emit, err)
		return
	}

	if outcome.Interrupted {
		partial := fmt.Sprintf("[Interrupted after %d operations]", outcome.ToolCalls)
		h.persistAssistant(req.SessionID, partial, map[string]interface{}{"interrupted": true})
		emit(models.StreamEvent{
			Type:     models.StreamEventDone,
			Metadata: map[string]interface{}{"interrupted": true},
		})
		return
	}

	// 4. ask_user suspends the exchange behind a checkpoint.
	if outcome.AskUser != nil {
		threadID := uuid.New().String()
		state := &models.GraphState{
			Task: models.CodingTask{
				ID:        req.SessionID,
				ClientID:  req.ActiveClientID,
				ProjectID: req.ActiveProjectID,
				Query:     req.Message,
			},
		}
		if err := h.checkpoints.Suspend(ctx, threadID, state, outcome.AskUser); err != nil {
			emit(errorEvent(fmt.Errorf("failed to suspend for question: %w", err)))
			return
		}
		emit(models.StreamEvent{
			Type:    models.StreamEventDone,
			Content: outcome.AskUser.Question,
			Metadata: map[string]interface{}{
				"awaiting_input": true,
				"thread_id":      threadID,
			},
		})
		return
	}

	// 5. Stream the answer in fixed-size chunks.
	h.streamAnswer(ctx, outcome.FinalAnswer, emit)
	h.persistAssistant(req.SessionID, outcome.FinalAnswer, nil)

	// Compression runs fire-and-forget; the exchange never waits on it.
	go h.compressor.MaybeCompress(context.Background(), req.SessionID)

	metadata := map[string]interface{}{"iterations": outcome.Iterations}
	if outcome.HitMaxIterations {
		metadata["max_iterations"] = true
	}
	emit(models.StreamEvent{Type: models.StreamEventDone, Metadata: metadata})
}

func (h *ChatHandler) streamAnswer(ctx context.Context, answer string, emit func(models.StreamEvent)) {
	size := h.cfg.StreamChunkChars
	for start := 0; start < len(answer); start += size {
		if ctx.Err() != nil {
			return
		}
		end := start + size
		if end > len(answer) {
			end = len(answer)
		}
		emit(models.StreamEvent{Type: models.StreamEventToken, Content: answer[start:end]})
		if end < len(answer) {
			time.Sleep(h.cfg.StreamChunkDelay)
		}
	}
}

// recoverPartial saves whatever the tools produced before the failure so the
// work is not lost, then emits the error.
func (h *ChatHandler) recoverPartial(sessionID string, outcome *LoopOutcome, emit func(models.StreamEvent), cause error) {
	slog.Error("Chat loop failed", "session_id", sessionID, "error", cause)
	if outcome != nil && len(outcome.ToolOutputs) > 0 {
		var b strings.Builder
		b.WriteString("I hit an error before finishing, but here is what I found:\n")
		for _, out := range outcome.ToolOutputs {
			fmt.Fprintf(&b, "\n%s\n", out)
		}
		h.persistAssistant(sessionID, b.String(), map[string]interface{}{"partial": true})
	}
	emit(errorEvent(cause))
}

func (h *ChatHandler) persistAssistant(sessionID, content string, metadata map[string]interface{}) {
	if content == "" {
		return
	}
	if _, err := h.history.Append(context.Background(), sessionID, models.RoleAssistant, content, metadata); err != nil {
		slog.Error("Failed to persist assistant message", "session_id", sessionID, "error", err)
	}
}

func errorEvent(err error) models.StreamEvent {
	return models.StreamEvent{Type: models.StreamEventError, Content: err.Error()}
}
