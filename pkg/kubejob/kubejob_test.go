package kubejob

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/jervis-ai/jervis-core/pkg/config"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

func testKubeConfig() *config.KubernetesConfig {
	cfg := config.DefaultKubernetesConfig()
	cfg.PollInterval = 10 * time.Millisecond
	return cfg
}

func testSpec(agentType models.AgentType) DispatchSpec {
	return DispatchSpec{
		Task: models.CodingTask{
			ID:            "task-1234abcd",
			ClientID:      "client-1",
			WorkspacePath: "client-1/task-1234abcd",
			Query:         "add retry to the webhook sender",
			Rules: models.ProjectRules{
				BranchTemplate:     "jervis/{task_id}",
				ForbiddenFileGlobs: []string{"secrets/**"},
				MaxChangedFiles:    10,
			},
			Environment: map[string]string{"GIT_AUTHOR_NAME": "jervis"},
		},
		AgentType:    agentType,
		ThreadID:     "thread-1",
		Instructions: "Fix the webhook retry.",
		KBContext:    "Prior incidents: webhook drops on 502.",
		AllowGit:     true,
		Timeout:      1200,
	}
}

func TestPrepareWorkspaceWritesControlFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, PrepareWorkspace(dir, testSpec(models.AgentTypeOpenHands)))

	instructions, err := os.ReadFile(filepath.Join(dir, ".jervis", "instructions.md"))
	require.NoError(t, err)
	assert.Equal(t, "Fix the webhook retry.", string(instructions))

	var task models.CodingTask
	data, err := os.ReadFile(filepath.Join(dir, ".jervis", "task.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &task))
	assert.Equal(t, "task-1234abcd", task.ID)

	assert.FileExists(t, filepath.Join(dir, ".jervis", "kb-context.md"))
	assert.FileExists(t, filepath.Join(dir, ".jervis", "environment.json"))
}

func TestPrepareWorkspaceSkipsEmptyKBContext(t *testing.T) {
	dir := t.TempDir()
	spec := testSpec(models.AgentTypeOpenHands)
	spec.KBContext = ""
	require.NoError(t, PrepareWorkspace(dir, spec))
	assert.NoFileExists(t, filepath.Join(dir, ".jervis", "kb-context.md"))
}

func TestPrepareWorkspaceClearsStaleResult(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".jervis"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jervis", "result.json"), []byte(`{}`), 0o644))

	require.NoError(t, PrepareWorkspace(dir, testSpec(models.AgentTypeOpenHands)))
	assert.NoFileExists(t, filepath.Join(dir, ".jervis", "result.json"))
}

func TestClaudeAgentGetsMCPConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, PrepareWorkspace(dir, testSpec(models.AgentTypeClaude)))

	data, err := os.ReadFile(filepath.Join(dir, ".jervis", "mcp-config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "mcpServers")
}

func TestAiderConventionsFileIsReadOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, PrepareWorkspace(dir, testSpec(models.AgentTypeAider)))

	path := filepath.Join(dir, "CONVENTIONS.md")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o444), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "secrets/**")

	// A second prepare must be able to rewrite it.
	require.NoError(t, PrepareWorkspace(dir, testSpec(models.AgentTypeAider)))
}

func TestBuildJobManifest(t *testing.T) {
	cfg := testKubeConfig()
	spec := testSpec(models.AgentTypeAider)
	spec.SigningKey = "ssh-ed25519 AAAA"

	job, err := BuildJob(cfg, spec)
	require.NoError(t, err)

	assert.Equal(t, "jervis-aider-task-123", job.Name)
	assert.Equal(t, cfg.Namespace, job.Namespace)
	require.NotNil(t, job.Spec.BackoffLimit)
	assert.Equal(t, int32(0), *job.Spec.BackoffLimit)
	require.NotNil(t, job.Spec.ActiveDeadlineSeconds)
	assert.Equal(t, int64(1200), *job.Spec.ActiveDeadlineSeconds)
	require.NotNil(t, job.Spec.TTLSecondsAfterFinished)
	assert.Equal(t, cfg.TTLSecondsAfterFinished, *job.Spec.TTLSecondsAfterFinished)

	require.Len(t, job.Spec.Template.Spec.Containers, 1)
	container := job.Spec.Template.Spec.Containers[0]
	assert.Equal(t, cfg.AgentImages["aider"], container.Image)

	envByName := map[string]string{}
	for _, e := range container.Env {
		envByName[e.Name] = e.Value
	}
	assert.Equal(t, "task-1234abcd", envByName["JERVIS_TASK_ID"])
	assert.Equal(t, "true", envByName["JERVIS_ALLOW_GIT"])
	assert.Equal(t, cfg.WorkspaceMountPath, envByName["JERVIS_WORKSPACE"])
	assert.Contains(t, envByName, "JERVIS_GIT_SIGNING_KEY")

	require.Len(t, container.VolumeMounts, 1)
	assert.Equal(t, cfg.WorkspaceMountPath, container.VolumeMounts[0].MountPath)
	assert.Equal(t, spec.Task.WorkspacePath, container.VolumeMounts[0].SubPath)
}

func TestBuildJobUnknownAgentType(t *testing.T) {
	cfg := testKubeConfig()
	cfg.AgentImages = map[string]string{}
	_, err := BuildJob(cfg, testSpec(models.AgentTypeAider))
	require.Error(t, err)
}

func TestDispatcherRunSuccess(t *testing.T) {
	cfg := testKubeConfig()
	client := fake.NewSimpleClientset()
	root := t.TempDir()
	spec := testSpec(models.AgentTypeOpenHands)
	d := NewDispatcher(cfg, client, root)

	workspaceDir := filepath.Join(root, spec.Task.WorkspacePath)
	require.NoError(t, os.MkdirAll(workspaceDir, 0o755))

	type outcome struct {
		result *JobResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := d.Run(context.Background(), spec)
		done <- outcome{result, err}
	}()

	jobName := JobName(spec)
	require.Eventually(t, func() bool {
		_, err := client.BatchV1().Jobs(cfg.Namespace).Get(context.Background(), jobName, metav1.GetOptions{})
		return err == nil
	}, time.Second, 5*time.Millisecond)

	// Agent finishes: it writes result.json, then the Job reports success.
	resultJSON := `{"success":true,"summary":"retry added","branch":"jervis/task-1234abcd","changed_files":["sender.go"]}`
	require.NoError(t, os.WriteFile(
		filepath.Join(workspaceDir, ".jervis", "result.json"), []byte(resultJSON), 0o644))

	job, err := client.BatchV1().Jobs(cfg.Namespace).Get(context.Background(), jobName, metav1.GetOptions{})
	require.NoError(t, err)
	job.Status.Succeeded = 1
	_, err = client.BatchV1().Jobs(cfg.Namespace).UpdateStatus(context.Background(), job, metav1.UpdateOptions{})
	require.NoError(t, err)

	select {
	case out := <-done:
		require.NoError(t, out.err)
		require.NotNil(t, out.result)
		assert.True(t, out.result.Success)
		assert.Equal(t, "jervis/task-1234abcd", out.result.Branch)
		assert.Equal(t, []string{"sender.go"}, out.result.ChangedFiles)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not finish")
	}
}

func TestDispatcherRunJobFailure(t *testing.T) {
	cfg := testKubeConfig()
	client := fake.NewSimpleClientset()
	root := t.TempDir()
	spec := testSpec(models.AgentTypeOpenHands)
	d := NewDispatcher(cfg, client, root)

	done := make(chan error, 1)
	go func() {
		_, err := d.Run(context.Background(), spec)
		done <- err
	}()

	jobName := JobName(spec)
	require.Eventually(t, func() bool {
		_, err := client.BatchV1().Jobs(cfg.Namespace).Get(context.Background(), jobName, metav1.GetOptions{})
		return err == nil
	}, time.Second, 5*time.Millisecond)

	job, err := client.BatchV1().Jobs(cfg.Namespace).Get(context.Background(), jobName, metav1.GetOptions{})
	require.NoError(t, err)
	job.Status.Failed = 1
	_, err = client.BatchV1().Jobs(cfg.Namespace).UpdateStatus(context.Background(), job, metav1.UpdateOptions{})
	require.NoError(t, err)

	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrJobFailed)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not finish")
	}
}

func TestDispatcherRunCancelled(t *testing.T) {
	cfg := testKubeConfig()
	client := fake.NewSimpleClientset()
	spec := testSpec(models.AgentTypeOpenHands)
	d := NewDispatcher(cfg, client, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := d.Run(ctx, spec)
		done <- err
	}()

	jobName := JobName(spec)
	require.Eventually(t, func() bool {
		_, err := client.BatchV1().Jobs(cfg.Namespace).Get(context.Background(), jobName, metav1.GetOptions{})
		return err == nil
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not observe cancellation")
	}

	// The abandoned Job is cleaned up.
	require.Eventually(t, func() bool {
		_, err := client.BatchV1().Jobs(cfg.Namespace).Get(context.Background(), jobName, metav1.GetOptions{})
		return err != nil
	}, time.Second, 5*time.Millisecond)
}

func TestReadResultMissing(t *testing.T) {
	_, err := ReadResult(t.TempDir())
	require.Error(t, err)
}
