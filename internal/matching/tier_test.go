package matching

import "testing"

func TestTiersClassify(t *testing.T) {
	t.Parallel()

	tiers := DefaultTiers()

	tests := []struct {
		score  int
		expect Tier
	}{
		{score: 100, expect: TierHigh},
		{score: 80, expect: TierHigh},
		{score: 79, expect: TierMedium},
		{score: 60, expect: TierMedium},
		{score: 59, expect: TierLow},
		{score: 0, expect: TierLow},
	}

	for _, tt := range tests {
		if got := tiers.Classify(tt.score); got != tt.expect {
			t.Fatalf("Classify(%d) = %s, expected %s", tt.score, got, tt.expect)
		}
	}
}

func TestTiersClassifyCustomThresholds(t *testing.T) {
	t.Parallel()

	tiers := Tiers{High: 90, Medium: 50}

	if got := tiers.Classify(85); got != TierMedium {
		t.Fatalf("expected medium with raised threshold, got %s", got)
	}

	if got := tiers.Classify(90); got != TierHigh {
		t.Fatalf("expected high at the closed lower bound, got %s", got)
	}
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"high", "medium", "low", "all"} {
		tier, err := ParseTier(valid)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", valid, err)
		}
		if string(tier) != valid {
			t.Fatalf("expected %q, got %q", valid, tier)
		}
	}

	tier, err := ParseTier("")
	if err != nil {
		t.Fatalf("unexpected error for empty tier: %v", err)
	}
	if tier != TierAll {
		t.Fatalf("expected empty tier to mean all, got %q", tier)
	}

	if _, err := ParseTier("best"); err == nil {
		t.Fatalf("expected error for unknown tier")
	}
}
