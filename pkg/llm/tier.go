package llm

import (
	"github.com/jervis-ai/jervis-core/pkg/models"
)

// TierCount returns the number of configured tiers.
func (c *Client) TierCount() int {
	return len(c.cfg.Tiers)
}

// IsCloudTier reports whether the tier calls a cloud provider.
func (c *Client) IsCloudTier(tier int) bool {
	if tier < 0 || tier >= len(c.cfg.Tiers) {
		return false
	}
	return c.cfg.Tiers[tier].Provider != "local"
}

// ContextTokens returns the tier's context window size.
func (c *Client) ContextTokens(tier int) int {
	if tier < 0 || tier >= len(c.cfg.Tiers) {
		return 0
	}
	return c.cfg.Tiers[tier].ContextTokens
}

// ModelFor returns the tier's model name.
func (c *Client) ModelFor(tier int) string {
	if tier < 0 || tier >= len(c.cfg.Tiers) {
		return ""
	}
	return c.cfg.Tiers[tier].Model
}

// NextTier returns the tier to escalate to after an unacceptable answer.
// Each cloud tier is gated by the project rules for its own provider; tiers
// whose provider is not enabled are skipped.
func (c *Client) NextTier(current int, rules models.ProjectRules) (int, bool) {
	for next := current + 1; next < len(c.cfg.Tiers); next++ {
		provider := c.cfg.Tiers[next].Provider
		if provider == "local" || rules.ProviderAllowed(provider) {
			return next, true
		}
	}
	return current, false
}
