package kubejob

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/jervis-ai/jervis-core/pkg/config"
)

// ErrJobFailed indicates the agent Job terminated without success.
var ErrJobFailed = errors.New("agent job failed")

// Dispatcher creates agent Jobs and waits for their outcome.
type Dispatcher struct {
	cfg           *config.KubernetesConfig
	client        kubernetes.Interface
	workspaceRoot string
}

// NewDispatcher creates a dispatcher. workspaceRoot is where the workspace
// PVC is mounted in the engine's own pod.
func NewDispatcher(cfg *config.KubernetesConfig, client kubernetes.Interface, workspaceRoot string) *Dispatcher {
	return &Dispatcher{cfg: cfg, client: client, workspaceRoot: workspaceRoot}
}

// Run prepares the workspace, submits the Job, polls until it finishes, and
// reads result.json. The context bounds the whole run; cancellation deletes
// the Job so a disconnected caller does not leave an agent running.
func (d *Dispatcher) Run(ctx context.Context, spec DispatchSpec) (*JobResult, error) {
	workspaceDir := filepath.Join(d.workspaceRoot, spec.Task.WorkspacePath)
	if err := PrepareWorkspace(workspaceDir, spec); err != nil {
		return nil, err
	}

	job, err := BuildJob(d.cfg, spec)
	if err != nil {
		return nil, err
	}

	jobs := d.client.BatchV1().Jobs(d.cfg.Namespace)
	created, err := jobs.Create(ctx, job, metav1.CreateOptions{})
	if err != nil {
		if apierrors.IsAlreadyExists(err) {
			return nil, fmt.Errorf("job %s already running for this task: %w", job.Name, err)
		}
		return nil, fmt.Errorf("failed to create agent job: %w", err)
	}
	slog.Info("Agent job created",
		"job_name", created.Name,
		"agent_type", spec.AgentType,
		"task_id", spec.Task.ID)

	status, err := d.awaitCompletion(ctx, created.Name)
	if err != nil {
		d.deleteJob(created.Name)
		return nil, err
	}

	if status.Failed > 0 {
		reason := failureReason(status)
		slog.Error("Agent job failed",
			"job_name", created.Name,
			"agent_type", spec.AgentType,
			"reason", reason)
		return nil, fmt.Errorf("%w: %s", ErrJobFailed, reason)
	}

	result, err := ReadResult(workspaceDir)
	if err != nil {
		return nil, fmt.Errorf("job %s succeeded but left no readable result: %w", created.Name, err)
	}
	slog.Info("Agent job completed",
		"job_name", created.Name,
		"agent_type", spec.AgentType,
		"success", result.Success)
	return result, nil
}

// awaitCompletion polls Job status until it reports success or failure.
func (d *Dispatcher) awaitCompletion(ctx context.Context, name string) (*batchStatus, error) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		job, err := d.client.BatchV1().Jobs(d.cfg.Namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to poll job %s: %w", name, err)
		}
		status := &batchStatus{
			Succeeded:  job.Status.Succeeded,
			Failed:     job.Status.Failed,
			Conditions: make([]string, 0, len(job.Status.Conditions)),
		}
		for _, cond := range job.Status.Conditions {
			status.Conditions = append(status.Conditions,
				fmt.Sprintf("%s=%s(%s)", cond.Type, cond.Status, cond.Reason))
		}
		if status.Succeeded > 0 || status.Failed > 0 {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (d *Dispatcher) deleteJob(name string) {
	policy := metav1.DeletePropagationBackground
	err := d.client.BatchV1().Jobs(d.cfg.Namespace).Delete(
		context.Background(), name, metav1.DeleteOptions{PropagationPolicy: &policy})
	if err != nil && !apierrors.IsNotFound(err) {
		slog.Warn("Failed to delete abandoned agent job", "job_name", name, "error", err)
	}
}

type batchStatus struct {
	Succeeded  int32
	Failed     int32
	Conditions []string
}

func failureReason(status *batchStatus) string {
	if len(status.Conditions) == 0 {
		return "pod failed"
	}
	return status.Conditions[len(status.Conditions)-1]
}
