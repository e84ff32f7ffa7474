package server

import (
	"fmt"
	"strings"

	"rdfpoker/internal/db"
)

// validateRules enforces the field constraints the store would otherwise
// reject: non-blank prompt, bounded hand size and chip allotment, positive
// timers and thresholds.
func validateRules(rules *db.Rules) error {
	if strings.TrimSpace(rules.Prompt) == "" {
		return fmt.Errorf("%w: prompt must not be blank", ErrInvalidRules)
	}
	if rules.MaxCardsInHand < 1 || rules.MaxCardsInHand > 6 {
		return fmt.Errorf("%w: maxCardsInHand must be between 1 and 6", ErrInvalidRules)
	}
	if rules.ChipsAllottedPerPlayer < 1 || rules.ChipsAllottedPerPlayer > 5 {
		return fmt.Errorf("%w: chipsAllottedPerPlayer must be between 1 and 5", ErrInvalidRules)
	}
	positives := map[string]int{
		"preparationTimerDuration":          rules.PreparationTimerDuration,
		"turnTimerDuration":                 rules.TurnTimerDuration,
		"bettingTimerDuration":              rules.BettingTimerDuration,
		"minChipsForCardPostGameDiscussion": rules.MinChipsForCardPostGameDiscussion,
		"minCardContribution":               rules.MinCardContribution,
	}
	for name, value := range positives {
		if value < 1 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidRules, name)
		}
	}
	return nil
}
