package orchestration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jervis-ai/jervis-core/ent"
	"github.com/jervis-ai/jervis-core/ent/graphcheckpoint"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// ErrCheckpointNotFound indicates no paused graph exists for the thread.
var ErrCheckpointNotFound = errors.New("checkpoint not found")

// CheckpointStore persists suspended graph state keyed by thread ID, so an
// approval can arrive after a process restart and still resume the run.
type CheckpointStore struct {
	client *ent.Client
}

// NewCheckpointStore creates a checkpoint store.
func NewCheckpointStore(client *ent.Client) *CheckpointStore {
	return &CheckpointStore{client: client}
}

// Suspend persists the full graph state plus the interrupt surfaced to the
// user. An existing checkpoint for the thread is overwritten.
func (s *CheckpointStore) Suspend(ctx context.Context, threadID string, state *models.GraphState, interrupt *models.InterruptRequest) error {
	stateMap, err := toJSONMap(state)
	if err != nil {
		return fmt.Errorf("failed to serialize graph state: %w", err)
	}
	interruptMap, err := toJSONMap(interrupt)
	if err != nil {
		return fmt.Errorf("failed to serialize interrupt: %w", err)
	}

	err = s.client.GraphCheckpoint.Create().
		SetID(threadID).
		SetTaskID(state.Task.ID).
		SetClientID(state.Task.ClientID).
		SetState(stateMap).
		SetInterrupt(interruptMap).
		SetStatus(graphcheckpoint.StatusPaused).
		OnConflictColumns(graphcheckpoint.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to suspend checkpoint %s: %w", threadID, err)
	}
	return nil
}

// Load returns the paused state and pending interrupt for a thread.
func (s *CheckpointStore) Load(ctx context.Context, threadID string) (*models.GraphState, *models.InterruptRequest, error) {
	row, err := s.client.GraphCheckpoint.Get(ctx, threadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrCheckpointNotFound
		}
		return nil, nil, fmt.Errorf("failed to load checkpoint %s: %w", threadID, err)
	}

	var state models.GraphState
	if err := fromJSONMap(row.State, &state); err != nil {
		return nil, nil, fmt.Errorf("failed to decode graph state %s: %w", threadID, err)
	}
	var interrupt *models.InterruptRequest
	if len(row.Interrupt) > 0 {
		interrupt = &models.InterruptRequest{}
		if err := fromJSONMap(row.Interrupt, interrupt); err != nil {
			return nil, nil, fmt.Errorf("failed to decode interrupt %s: %w", threadID, err)
		}
	}
	return &state, interrupt, nil
}

// Status returns the checkpoint status and interrupt for the status endpoint.
func (s *CheckpointStore) Status(ctx context.Context, threadID string) (string, *models.InterruptRequest, error) {
	row, err := s.client.GraphCheckpoint.Get(ctx, threadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil, ErrCheckpointNotFound
		}
		return "", nil, fmt.Errorf("failed to load checkpoint %s: %w", threadID, err)
	}
	var interrupt *models.InterruptRequest
	if len(row.Interrupt) > 0 && row.Status == graphcheckpoint.StatusPaused {
		interrupt = &models.InterruptRequest{}
		if err := fromJSONMap(row.Interrupt, interrupt); err != nil {
			return "", nil, fmt.Errorf("failed to decode interrupt %s: %w", threadID, err)
		}
	}
	return string(row.Status), interrupt, nil
}

// MarkResumed transitions a paused checkpoint to resumed. Fails when the
// thread is unknown or not paused, so double-approvals are rejected.
func (s *CheckpointStore) MarkResumed(ctx context.Context, threadID string) error {
	n, err := s.client.GraphCheckpoint.Update().
		Where(
			graphcheckpoint.IDEQ(threadID),
			graphcheckpoint.StatusEQ(graphcheckpoint.StatusPaused),
		).
		SetStatus(graphcheckpoint.StatusResumed).
		ClearInterrupt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume checkpoint %s: %w", threadID, err)
	}
	if n == 0 {
		return ErrCheckpointNotFound
	}
	return nil
}

// Finish records the terminal outcome of a resumed run.
func (s *CheckpointStore) Finish(ctx context.Context, threadID string, succeeded bool, state *models.GraphState) error {
	status := graphcheckpoint.StatusCompleted
	if !succeeded {
		status = graphcheckpoint.StatusFailed
	}
	stateMap, err := toJSONMap(state)
	if err != nil {
		return fmt.Errorf("failed to serialize graph state: %w", err)
	}
	// Upsert: runs that never suspended have no row yet.
	err = s.client.GraphCheckpoint.Create().
		SetID(threadID).
		SetTaskID(state.Task.ID).
		SetClientID(state.Task.ClientID).
		SetState(stateMap).
		SetStatus(status).
		OnConflictColumns(graphcheckpoint.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish checkpoint %s: %w", threadID, err)
	}
	return nil
}

func toJSONMap(v any) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONMap(m map[string]interface{}, dest any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
