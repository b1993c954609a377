package inventory

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tier is a narration severity tier.
type Tier string

const (
	TierLight  Tier = "light"
	TierMedium Tier = "medium"
	TierHeavy  Tier = "heavy"
	// TierFatal is used only for lethal hits.
	TierFatal Tier = "fatal"
)

// ParseTier validates a tier name.
//
// Postcondition: Returns the Tier or an error for any name outside light/medium/heavy/fatal.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(s); t {
	case TierLight, TierMedium, TierHeavy, TierFatal:
		return t, nil
	default:
		return "", fmt.Errorf("inventory: unknown tier %q", s)
	}
}

// Parts maps a severity tier to an ordered list of phrase fragments.
type Parts map[Tier][]string

// UnmarshalYAML decodes a tier→phrases mapping, rejecting unknown tier keys.
func (p *Parts) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string][]string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	out := make(Parts, len(raw))
	for k, phrases := range raw {
		t, err := ParseTier(k)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		out[t] = phrases
	}
	*p = out
	return nil
}

// Phrases returns the phrases for t; nil when the tier is absent.
func (p Parts) Phrases(t Tier) []string {
	return p[t]
}

// Has reports whether t has at least one phrase.
func (p Parts) Has(t Tier) bool {
	return len(p[t]) > 0
}

// Validate checks that every required tier carries at least one phrase.
//
// Postcondition: Returns nil iff all required tiers are non-empty.
func (p Parts) Validate(required ...Tier) error {
	var missing []Tier
	for _, t := range required {
		if !p.Has(t) {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing or empty tier(s) %v", missing)
	}
	return nil
}
