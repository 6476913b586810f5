package matching

import "fmt"

// Tier is a coarse match bucket derived from score thresholds.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
	// TierAll is not a classification result; it is accepted by filters to
	// keep every tier.
	TierAll Tier = "all"
)

// Tiers holds the score thresholds used to classify results. Boundaries are
// closed on the lower bound: a score equal to High classifies as high.
type Tiers struct {
	High   int
	Medium int
}

// DefaultTiers returns the standard 80/60 thresholds.
func DefaultTiers() Tiers {
	return Tiers{High: 80, Medium: 60}
}

// Classify maps a score to its tier.
func (t Tiers) Classify(score int) Tier {
	switch {
	case score >= t.High:
		return TierHigh
	case score >= t.Medium:
		return TierMedium
	default:
		return TierLow
	}
}

// ParseTier validates a tier name coming from flags or config.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierHigh, TierMedium, TierLow, TierAll:
		return Tier(s), nil
	case "":
		return TierAll, nil
	default:
		return "", fmt.Errorf("unknown tier %q: expected high, medium, low or all", s)
	}
}
