// Package kubejob dispatches coding agents as Kubernetes Jobs. The engine
// prepares the shared workspace, submits a one-container Job, polls until it
// finishes, and reads the structured outcome back from the workspace.
package kubejob

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jervis-ai/jervis-core/pkg/masking"
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// controlDir is the well-known directory the engine and the agent container
// exchange files through, relative to the task workspace.
const controlDir = ".jervis"

// resultFile is written by the agent container on success.
const resultFile = "result.json"

// DispatchSpec is everything needed to run one coding-agent Job.
type DispatchSpec struct {
	Task         models.CodingTask
	AgentType    models.AgentType
	ThreadID     string
	Instructions string
	KBContext    string
	AllowGit     bool
	Timeout      int64 // seconds, becomes the Job's active deadline
	SigningKey   string
}

// JobResult is the structured outcome the agent writes to result.json.
type JobResult struct {
	Success      bool     `json:"success"`
	Summary      string   `json:"summary,omitempty"`
	Branch       string   `json:"branch,omitempty"`
	ChangedFiles []string `json:"changed_files,omitempty"`
	Artifacts    []string `json:"artifacts,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// PrepareWorkspace writes the control files the agent container reads on
// startup: instructions, the task envelope, optional KB context, the
// environment map, and agent-family config files.
func PrepareWorkspace(workspaceDir string, spec DispatchSpec) error {
	dir := filepath.Join(workspaceDir, controlDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create control dir: %w", err)
	}

	// Stale result from a previous attempt must not be mistaken for this run's.
	_ = os.Remove(filepath.Join(dir, resultFile))

	if err := os.WriteFile(filepath.Join(dir, "instructions.md"), []byte(spec.Instructions), 0o644); err != nil {
		return fmt.Errorf("failed to write instructions: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, "task.json"), spec.Task); err != nil {
		return err
	}
	if spec.KBContext != "" {
		if err := os.WriteFile(filepath.Join(dir, "kb-context.md"), []byte(spec.KBContext), 0o644); err != nil {
			return fmt.Errorf("failed to write kb context: %w", err)
		}
	}
	env := spec.Task.Environment
	if env == nil {
		env = map[string]string{}
	}
	if err := writeJSON(filepath.Join(dir, "environment.json"), env); err != nil {
		return err
	}
	return writeAgentConfig(workspaceDir, dir, spec)
}

// writeAgentConfig writes the per-family config file. Claude-family agents
// read an MCP server config; aider reads a conventions file from the
// workspace root, kept read-only so the agent cannot rewrite its own rules.
func writeAgentConfig(workspaceDir, dir string, spec DispatchSpec) error {
	switch spec.AgentType {
	case models.AgentTypeClaude:
		mcp := map[string]any{
			"mcpServers": map[string]any{
				"jervis": map[string]any{
					"command": "jervis-mcp",
					"args":    []string{"--task-id", spec.Task.ID},
				},
			},
		}
		return writeJSON(filepath.Join(dir, "mcp-config.json"), mcp)
	case models.AgentTypeAider:
		conventions := conventionsFor(spec.Task.Rules)
		path := filepath.Join(workspaceDir, "CONVENTIONS.md")
		// Rewrite requires clearing the read-only bit from a prior run first.
		_ = os.Chmod(path, 0o644)
		if err := os.WriteFile(path, []byte(conventions), 0o644); err != nil {
			return fmt.Errorf("failed to write conventions: %w", err)
		}
		return os.Chmod(path, 0o444)
	default:
		return nil
	}
}

func conventionsFor(rules models.ProjectRules) string {
	out := "# Project conventions\n\n"
	if rules.BranchTemplate != "" {
		out += fmt.Sprintf("- Branch names follow `%s`.\n", rules.BranchTemplate)
	}
	if rules.CommitPrefixTemplate != "" {
		out += fmt.Sprintf("- Commit messages start with `%s`.\n", rules.CommitPrefixTemplate)
	}
	for _, glob := range rules.ForbiddenFileGlobs {
		out += fmt.Sprintf("- Never modify files matching `%s`.\n", glob)
	}
	if rules.MaxChangedFiles > 0 {
		out += fmt.Sprintf("- Keep the change under %d files.\n", rules.MaxChangedFiles)
	}
	return out
}

// ReadResult reads the agent's result.json from the workspace.
func ReadResult(workspaceDir string) (*JobResult, error) {
	data, err := os.ReadFile(filepath.Join(workspaceDir, controlDir, resultFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read job result: %w", err)
	}
	var result JobResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse job result: %w", err)
	}
	// Agent output is untrusted; scrub credentials before it reaches
	// chat history or LLM prompts.
	result.Summary = masking.Apply(result.Summary)
	result.Error = masking.Apply(result.Error)
	return &result, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
