package configs

// Campaign configures the causal assignment engine: arm split, per-arm
// conversion probabilities and the follow-up send schedule.
type Campaign struct {
	// ArmWeights maps arm labels to split weights. Weights must be
	// non-negative and sum to 1.
	ArmWeights map[string]float64 `env:"ARM_WEIGHTS" envDefault:"control:0.2,variant_a:0.4,variant_b:0.4"`

	// ArmProbs maps arm labels to flat conversion probabilities for the
	// initial send. The causal arm is exempt: it uses MatchedProb or
	// UnmatchedProb depending on the matching predicate.
	ArmProbs map[string]float64 `env:"ARM_PROBS" envDefault:"control:0.02,variant_a:0.05"`

	// CausalArm names the arm whose initial-send probability depends on
	// the posting-matching predicate. Empty disables causal matching and
	// every arm uses its flat probability.
	CausalArm     string  `env:"CAUSAL_ARM" envDefault:"variant_b"`
	MatchedProb   float64 `env:"MATCHED_PROB" envDefault:"0.15"`
	UnmatchedProb float64 `env:"UNMATCHED_PROB" envDefault:"0.03"`

	// FollowUpWeeks lists the week offsets of follow-up sends after the
	// initial one.
	FollowUpWeeks []int `env:"FOLLOWUP_WEEKS" envDefault:"1,2,4"`

	// FollowUpProbs maps arm labels to follow-up conversion
	// probabilities.
	FollowUpProbs map[string]float64 `env:"FOLLOWUP_PROBS" envDefault:"control:0.05,variant_a:0.1,variant_b:0.2"`

	// Boost multiplies the causal arm's follow-up probability when the
	// initial send converted.
	Boost float64 `env:"BOOST" envDefault:"1.5"`

	// RequirePushOptIn drops push-ineligible users from the target
	// audience before assignment.
	RequirePushOptIn bool `env:"REQUIRE_PUSH_OPTIN" envDefault:"true"`
}
