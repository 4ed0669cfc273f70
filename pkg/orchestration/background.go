package orchestration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/jervis-ai/jervis-core/pkg/agentpool"
	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/kubejob"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

const backgroundSystemPrompt = `You are Jervis working on a background task. Produce a complete, self-contained answer or work plan. You cannot ask the user anything; decide with the information available and state your assumptions.`

// AgentDispatcher runs one coding-agent job to completion.
type AgentDispatcher interface {
	Run(ctx context.Context, spec kubejob.DispatchSpec) (*kubejob.JobResult, error)
}

// SlotPool is the agent-pool surface the engine uses.
type SlotPool interface {
	Acquire(ctx context.Context, agentType models.AgentType, priority int) error
	Release(agentType models.AgentType)
	MarkStarted(jobName string, agentType models.AgentType, taskID, threadID string, timeout time.Duration)
	MarkCompleted(jobName, status string)
	TimeoutFor(agentType models.AgentType) time.Duration
}

// BackgroundEngine runs non-streaming orchestrations: the agentic loop with
// cloud escalation, optional coding-agent dispatch behind approval gates,
// and checkpoint-based suspend/resume.
type BackgroundEngine struct {
	loop        *Loop
	assembler   *Assembler
	history     *History
	checkpoints *CheckpointStore
	coordinator StatusPusher
	llm         ChatLLM
	memFactory  MemoryFactory
	pool        SlotPool
	dispatcher  AgentDispatcher
	cfg         *config.OrchestrationConfig
}

// NewBackgroundEngine wires the background engine.
func NewBackgroundEngine(loop *Loop, assembler *Assembler, history *History,
	checkpoints *CheckpointStore, coordinator StatusPusher, chatLLM ChatLLM,
	memFactory MemoryFactory, pool SlotPool, dispatcher AgentDispatcher,
	cfg *config.OrchestrationConfig) *BackgroundEngine {
	return &BackgroundEngine{
		loop:        loop,
		assembler:   assembler,
		history:     history,
		checkpoints: checkpoints,
		coordinator: coordinator,
		llm:         chatLLM,
		memFactory:  memFactory,
		pool:        pool,
		dispatcher:  dispatcher,
		cfg:         cfg,
	}
}

// Execute runs the task to completion, a paused checkpoint, or failure.
// The returned state's FinalResult holds the answer when the run finished.
func (e *BackgroundEngine) Execute(ctx context.Context, task models.CodingTask, threadID string) (*models.GraphState, error) {
	e.coordinator.PushStatus(ctx, task.ID, threadID, "intake")

	state := &models.GraphState{Task: task, Rules: task.Rules}

	answer, tier, err := e.runWithEscalation(ctx, task, threadID)
	if err != nil {
		state.Error = err.Error()
		e.finish(ctx, threadID, state, false)
		return state, err
	}
	state.FinalResult = answer
	slog.Info("Background loop produced answer",
		"task_id", task.ID, "thread_id", threadID, "tier", tier)

	if _, err := e.history.Append(ctx, task.ID, models.RoleAssistant, answer, nil); err != nil {
		slog.Error("Failed to persist background answer", "task_id", task.ID, "error", err)
	}

	// Tasks without an agent preference end at the answer.
	if task.AgentPreference == "" {
		e.finish(ctx, threadID, state, true)
		e.coordinator.PushStatus(ctx, task.ID, threadID, "completed")
		return state, nil
	}

	// Coding path: git-writing runs need approval before dispatch.
	if task.Rules.RequireCommitApproval || task.Rules.RequirePushApproval {
		interrupt := &models.InterruptRequest{
			Type:        "approval",
			Action:      "dispatch_coding_agent",
			Description: answer,
		}
		if err := e.checkpoints.Suspend(ctx, threadID, state, interrupt); err != nil {
			return state, fmt.Errorf("failed to suspend for approval: %w", err)
		}
		e.coordinator.PushStatus(ctx, task.ID, threadID, "awaiting_approval")
		return state, nil
	}

	return e.dispatch(ctx, state, threadID)
}

// Resume re-enters a paused run with the client's response. Approval
// interrupts take the verdict from in.Approved (a textual "approve"/"yes"
// value also counts); anything else rejects the pending action.
func (e *BackgroundEngine) Resume(ctx context.Context, threadID string, in models.ResumeInput) (*models.GraphState, error) {
	state, interrupt, err := e.checkpoints.Load(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if err := e.checkpoints.MarkResumed(ctx, threadID); err != nil {
		return nil, err
	}

	if interrupt == nil || interrupt.Type != "approval" {
		// Question interrupts hand the value back to the conversation layer.
		state.Environment = mergeEnv(state.Environment, map[string]string{"user_answer": in.Value})
		e.finish(ctx, threadID, state, true)
		return state, nil
	}

	if !in.Approved && !approved(in.Value) {
		state.Error = "rejected by user"
		if in.Reason != "" {
			state.Error = "rejected by user: " + in.Reason
		}
		e.finish(ctx, threadID, state, false)
		e.coordinator.PushStatus(ctx, state.Task.ID, threadID, "rejected")
		return state, nil
	}
	e.coordinator.PushStatus(ctx, state.Task.ID, threadID, "approved")
	return e.dispatch(ctx, state, threadID)
}

// dispatch acquires a pool slot and runs the coding agent, tracking the job
// for stuck detection.
func (e *BackgroundEngine) dispatch(ctx context.Context, state *models.GraphState, threadID string) (*models.GraphState, error) {
	task := state.Task
	agentType := task.AgentPreference

	e.coordinator.PushProgress(ctx, task.ID, threadID, fmt.Sprintf("Waiting for a %s slot", agentType))
	if err := e.pool.Acquire(ctx, agentType, agentpool.PriorityBackground); err != nil {
		state.Error = err.Error()
		e.finish(ctx, threadID, state, false)
		return state, fmt.Errorf("agent pool acquire failed: %w", err)
	}
	defer e.pool.Release(agentType)

	spec := kubejob.DispatchSpec{
		Task:         task,
		AgentType:    agentType,
		ThreadID:     threadID,
		Instructions: state.FinalResult,
		AllowGit:     !task.Rules.RequirePushApproval,
		Timeout:      int64(e.pool.TimeoutFor(agentType).Seconds()),
	}
	jobName := kubejob.JobName(spec)
	e.pool.MarkStarted(jobName, agentType, task.ID, threadID, e.pool.TimeoutFor(agentType))
	e.coordinator.PushStatus(ctx, task.ID, threadID, "execute")

	result, err := e.dispatcher.Run(ctx, spec)
	if err != nil {
		e.pool.MarkCompleted(jobName, "failed")
		state.Error = err.Error()
		e.finish(ctx, threadID, state, false)
		e.coordinator.PushStatus(ctx, task.ID, threadID, "failed")
		return state, err
	}
	e.pool.MarkCompleted(jobName, "succeeded")

	state.Branch = result.Branch
	state.Artifacts = result.ChangedFiles
	if result.Summary != "" {
		state.FinalResult = result.Summary
	}
	state.Evaluation = evaluateAgentResult(result, task.Rules)

	ok := state.Evaluation.Acceptable()
	if !ok {
		state.Error = "agent result failed evaluation"
	}
	e.finish(ctx, threadID, state, ok)
	if ok {
		e.coordinator.PushStatus(ctx, task.ID, threadID, "completed")
	} else {
		e.coordinator.PushStatus(ctx, task.ID, threadID, "failed")
	}
	return state, nil
}

// runWithEscalation runs the loop, escalating tiers on failure or on a
// quality signal, bounded by MaxEscalationRetries and gated by the project
// rules.
func (e *BackgroundEngine) runWithEscalation(ctx context.Context, task models.CodingTask, threadID string) (string, int, error) {
	mem := e.memFactory(task.ClientID, task.ProjectID)
	if _, err := mem.LoadSession(ctx); err != nil {
		slog.Warn("Memory session load failed for background task",
			"task_id", task.ID, "error", err)
	}
	defer mem.FlushSession(context.Background())

	tier := 0
	var lastErr error
	var lastAnswer string

	for attempt := 0; attempt <= e.cfg.MaxEscalationRetries; attempt++ {
		messages, err := e.assembler.Assemble(ctx, AssembleInput{
			TaskID:        task.ID,
			SystemPrompt:  backgroundSystemPrompt,
			MemoryContext: mem.ComposeContext(e.cfg.SystemReserveTokens / 2),
			UserMessage:   task.Query,
			Model:         e.llm.ModelFor(tier),
			ContextWindow: e.llm.ContextTokens(tier),
			Seed:          task.ChatHistory,
		})
		if err != nil {
			return "", tier, err
		}

		e.coordinator.PushProgress(ctx, task.ID, threadID,
			fmt.Sprintf("Running on tier %d (attempt %d)", tier, attempt+1))

		tools := NewRegistry()
		tools.RegisterBuiltins(mem)
		outcome, err := e.loop.Run(ctx, LoopInput{
			Messages:      messages,
			Tier:          tier,
			Background:    true,
			MaxIterations: e.cfg.MaxIterationsBackground,
			Rules:         task.Rules,
			Tools:         tools,
		})
		if err == nil && outcome.Interrupted {
			return "", tier, ctx.Err()
		}
		if err == nil {
			lastAnswer = outcome.FinalAnswer
			if e.answerAcceptable(outcome) {
				return outcome.FinalAnswer, tier, nil
			}
			lastErr = fmt.Errorf("quality check failed at tier %d", tier)
		} else {
			lastErr = err
		}

		next, ok := e.llm.NextTier(tier, task.Rules)
		if !ok {
			break
		}
		slog.Info("Escalating background task",
			"task_id", task.ID, "from_tier", tier, "to_tier", next, "cause", lastErr)
		tier = next
	}

	if lastAnswer != "" {
		// A weak answer beats none once escalation is exhausted.
		return lastAnswer, tier, nil
	}
	return "", tier, fmt.Errorf("background run failed after escalation: %w", lastErr)
}

// answerAcceptable applies the quality signals that trigger escalation.
func (e *BackgroundEngine) answerAcceptable(outcome *LoopOutcome) bool {
	if outcome.FinalAnswer == "" {
		return false
	}
	if len(outcome.FinalAnswer) < e.cfg.MinAnswerChars {
		return false
	}
	if outcome.HitMaxIterations {
		return false
	}
	attempts := outcome.ToolCalls + outcome.ToolParseFailures
	if attempts > 0 {
		ratio := float64(outcome.ToolParseFailures) / float64(attempts)
		if ratio > e.cfg.ToolParseFailureRatio {
			return false
		}
	}
	return true
}

func evaluateAgentResult(result *kubejob.JobResult, rules models.ProjectRules) *models.Evaluation {
	eval := &models.Evaluation{}
	add := func(name string, ok bool, detail string) {
		status := models.CheckStatusPassed
		if !ok {
			status = models.CheckStatusFailed
		}
		eval.Checks = append(eval.Checks, models.Check{Name: name, Status: status, Detail: detail})
	}

	add("agent_reported_success", result.Success, result.Error)
	if rules.MaxChangedFiles > 0 {
		add("changed_file_count", len(result.ChangedFiles) <= rules.MaxChangedFiles,
			fmt.Sprintf("%d files changed", len(result.ChangedFiles)))
	}
	for _, file := range result.ChangedFiles {
		for _, glob := range rules.ForbiddenFileGlobs {
			if matched, _ := filepath.Match(glob, file); matched {
				eval.Checks = append(eval.Checks, models.Check{
					Name:   "forbidden_file",
					Status: models.CheckStatusBlocked,
					Detail: file,
				})
			}
		}
	}
	return eval
}

func (e *BackgroundEngine) finish(ctx context.Context, threadID string, state *models.GraphState, ok bool) {
	if err := e.checkpoints.Finish(ctx, threadID, ok, state); err != nil && !errors.Is(err, ErrCheckpointNotFound) {
		slog.Warn("Failed to record terminal checkpoint", "thread_id", threadID, "error", err)
	}
}

func approved(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "approve", "approved", "yes", "true", "y", "ok":
		return true
	}
	return false
}

func mergeEnv(base, extra map[string]string) map[string]string {
	if base == nil {
		base = make(map[string]string, len(extra))
	}
	for k, v := range extra {
		base[k] = v
	}
	return base
}
