package models

import "time"

// AgentType identifies a coding-agent family dispatched as a K8s Job.
type AgentType string

// Supported coding-agent types.
const (
	AgentTypeAider     AgentType = "aider"
	AgentTypeOpenHands AgentType = "openhands"
	AgentTypeClaude    AgentType = "claude"
	AgentTypeJunie     AgentType = "junie"
)

// AllAgentTypes lists every supported agent type in a stable order.
var AllAgentTypes = []AgentType{AgentTypeAider, AgentTypeOpenHands, AgentTypeClaude, AgentTypeJunie}

// ProjectRules constrains what an orchestration may do inside a project.
type ProjectRules struct {
	AllowedCloudProviders []string `json:"allowed_cloud_providers,omitempty"`
	ForbiddenFileGlobs    []string `json:"forbidden_file_globs,omitempty"`
	MaxChangedFiles       int      `json:"max_changed_files,omitempty"`
	RequireCommitApproval bool     `json:"require_commit_approval"`
	RequirePushApproval   bool     `json:"require_push_approval"`
	BranchTemplate        string   `json:"branch_template,omitempty"`
	CommitPrefixTemplate  string   `json:"commit_prefix_template,omitempty"`
	AutoUseAnthropic      bool     `json:"auto_use_anthropic"`
	AutoUseOpenAI         bool     `json:"auto_use_openai"`
	AutoUseGemini         bool     `json:"auto_use_gemini"`
}

// ProviderAllowed reports whether escalation into the named cloud provider
// is enabled, either by its auto-use flag or by an allowlist entry.
func (r ProjectRules) ProviderAllowed(provider string) bool {
	switch provider {
	case "anthropic":
		if r.AutoUseAnthropic {
			return true
		}
	case "openai":
		if r.AutoUseOpenAI {
			return true
		}
	case "gemini":
		if r.AutoUseGemini {
			return true
		}
	}
	for _, p := range r.AllowedCloudProviders {
		if p == provider {
			return true
		}
	}
	return false
}

// CodingTask is the request envelope for a background orchestration that may
// dispatch coding agents.
type CodingTask struct {
	ID              string            `json:"id"`
	ClientID        string            `json:"client_id"`
	ProjectID       string            `json:"project_id,omitempty"`
	WorkspacePath   string            `json:"workspace_path"`
	Query           string            `json:"query"`
	AgentPreference AgentType         `json:"agent_preference,omitempty"`
	Rules           ProjectRules      `json:"rules"`
	Environment     map[string]string `json:"environment,omitempty"`
	ChatHistory     []ChatTurn        `json:"chat_history,omitempty"`
}

// ResumeInput is the client's response to a pending interrupt. Approval
// interrupts read the verdict from Approved; question interrupts read the
// answer from Value.
type ResumeInput struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
	Value    string `json:"value,omitempty"`
}

// StepType classifies a plan step.
type StepType string

// Step types.
const (
	StepTypeRespond StepType = "RESPOND"
	StepTypeCode    StepType = "CODE"
	StepTypeTracker StepType = "TRACKER"
)

// Goal is one unit of the sequential execution record.
type Goal struct {
	Description string `json:"description"`
	Steps       []Step `json:"steps"`
}

// Step is a single planned action inside a goal.
type Step struct {
	Type         StepType `json:"type"`
	Instructions string   `json:"instructions"`
	Files        []string `json:"files,omitempty"`
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	StepIndex int    `json:"step_index"`
	Success   bool   `json:"success"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
}

// CheckStatus is the outcome of a single evaluation check.
type CheckStatus string

// Check statuses.
const (
	CheckStatusPassed  CheckStatus = "passed"
	CheckStatusFailed  CheckStatus = "failed"
	CheckStatusBlocked CheckStatus = "blocked"
)

// Check is one evaluation criterion applied to a step result.
type Check struct {
	Name   string      `json:"name"`
	Status CheckStatus `json:"status"`
	Detail string      `json:"detail,omitempty"`
}

// Evaluation is the judgement over a set of step results. It is acceptable
// iff no check failed and no check was blocked (forbidden-file hit or
// explicit failure).
type Evaluation struct {
	Checks []Check `json:"checks"`
}

// Acceptable reports whether the evaluation passed.
func (e Evaluation) Acceptable() bool {
	for _, c := range e.Checks {
		if c.Status == CheckStatusFailed || c.Status == CheckStatusBlocked {
			return false
		}
	}
	return true
}

// GraphState is the flat record persisted in a graph checkpoint. Affairs are
// referenced by ID and resolved through the LQM, never embedded.
type GraphState struct {
	Task             CodingTask        `json:"task"`
	Rules            ProjectRules      `json:"rules"`
	Goals            []Goal            `json:"goals,omitempty"`
	CurrentGoalIndex int               `json:"current_goal_index"`
	Steps            []Step            `json:"steps,omitempty"`
	CurrentStepIndex int               `json:"current_step_index"`
	StepResults      []StepResult      `json:"step_results,omitempty"`
	Branch           string            `json:"branch,omitempty"`
	FinalResult      string            `json:"final_result,omitempty"`
	Artifacts        []string          `json:"artifacts,omitempty"`
	Error            string            `json:"error,omitempty"`
	Evaluation       *Evaluation       `json:"evaluation,omitempty"`
	Environment      map[string]string `json:"environment,omitempty"`
}

// InterruptRequest is the unified shape surfaced to the user when a graph
// suspends, covering both approval gates and ask_user questions.
type InterruptRequest struct {
	Type         string   `json:"type"` // "approval" or "question"
	Action       string   `json:"action,omitempty"`
	Description  string   `json:"description,omitempty"`
	Branch       string   `json:"branch,omitempty"`
	ChangedFiles []string `json:"changed_files,omitempty"`
	Question     string   `json:"question,omitempty"`
}

// ActiveJob tracks a dispatched K8s coding-agent job for metrics and
// stuck-job detection.
type ActiveJob struct {
	JobName        string    `json:"job_name"`
	AgentType      AgentType `json:"agent_type"`
	TaskID         string    `json:"task_id"`
	ThreadID       string    `json:"thread_id"`
	StartedAt      time.Time `json:"started_at"`
	TimeoutSeconds int       `json:"timeout_seconds"`
}

// Stuck reports whether the job has exceeded its timeout by the given
// multiplier.
func (j ActiveJob) Stuck(now time.Time, multiplier float64) bool {
	limit := time.Duration(float64(j.TimeoutSeconds) * multiplier * float64(time.Second))
	return now.Sub(j.StartedAt) > limit
}
