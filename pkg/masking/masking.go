// Package masking scrubs credentials from text before it is persisted or
// shown to a model. Tool results and coding-agent output routinely carry
// kubectl dumps, env listings, and config fragments; masking runs on that
// boundary so secrets never land in chat history or LLM prompts.
package masking

import (
	"log/slog"
	"regexp"
	"sync"
)

// Pattern is a single masking rule supplied by configuration or code.
type Pattern struct {
	Name        string
	Pattern     string
	Replacement string
}

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns cover the credential shapes most commonly leaked by tool
// output. Order matters: more specific rules run before the generic sweep.
var builtinPatterns = []Pattern{
	{
		Name:        "ssh_private_key",
		Pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
		Replacement: "***MASKED_PRIVATE_KEY***",
	},
	{
		Name:        "aws_access_key",
		Pattern:     `\b(AKIA|ASIA)[0-9A-Z]{16}\b`,
		Replacement: "***MASKED_AWS_KEY***",
	},
	{
		Name:        "bearer_token",
		Pattern:     `(?i)(bearer\s+)[a-zA-Z0-9._~+/-]{16,}=*`,
		Replacement: "${1}***MASKED_TOKEN***",
	},
	{
		Name:        "api_key_assignment",
		Pattern:     `(?i)([a-z0-9_-]*(?:api[_-]?key|apikey|secret|token|password|passwd)[a-z0-9_-]*["']?\s*[:=]\s*["']?)[^\s"',;]{8,}`,
		Replacement: "${1}***MASKED***",
	},
	{
		Name:        "url_credentials",
		Pattern:     `(://[^/\s:@]+:)[^@/\s]+(@)`,
		Replacement: "${1}***MASKED***${2}",
	},
}

// Service applies masking rules to text. Created once at startup; thread-safe
// and stateless aside from compiled patterns.
type Service struct {
	patterns []*CompiledPattern
}

// NewService compiles the built-in rules plus any extra patterns. Invalid
// patterns are logged and skipped rather than failing startup.
func NewService(extra ...Pattern) *Service {
	s := &Service{}
	for _, p := range append(append([]Pattern{}, builtinPatterns...), extra...) {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.Name,
			Regex:       compiled,
			Replacement: p.Replacement,
		})
	}
	return s
}

// Mask applies every rule to content and returns the scrubbed text.
func (s *Service) Mask(content string) string {
	if content == "" {
		return content
	}
	masked := content
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

var (
	defaultService *Service
	defaultOnce    sync.Once
)

// Apply masks content with the built-in rules.
func Apply(content string) string {
	defaultOnce.Do(func() { defaultService = NewService() })
	return defaultService.Mask(content)
}
