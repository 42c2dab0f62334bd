// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"strings"

	"github.com/danielhkuo/nm-draw-odds/models"
)

// ChoiceCount is the number of ranked choices on an application.
const ChoiceCount = 3

// OrderTolerance lets near-equal odds count as correctly ordered.
const OrderTolerance = 0.005

const (
	adviceNotOrdered        = "Your three hunts are not ordered from hardest to easiest to draw in your pool."
	adviceFirstBeatsSecond  = "Your first choice has better odds than your second choice, so in practical terms you will almost never see that second choice tag."
	adviceSecondBeatsThird  = "Your second choice has better odds than your third choice, so the third choice is not acting as a true safety hunt."
	adviceElkDreamUnits     = "For elk, it is totally reasonable to run a dream first choice in the Gila, Valle Vidal, or Valles Caldera and then stack easier hunts behind it. As long as one of your later choices is a true high odds tag, you are not hurting your overall chance of going hunting."
	adviceDeerDreamUnits    = "For deer, units like 2B and 23 Burro Mountains are classic dream draws. You can put one of those first and still use a high odds tag later in the list to protect your overall chances."
	adviceLogicallyOrdered  = "Your application is logically ordered: toughest hunt first, easiest last. In the real New Mexico system that is exactly what you want."
	adviceHighestOddsDrives = "Because the computer walks your choices in order for one random number, the hunt with the highest odds on your list is what really sets your overall chance of drawing something."
)

// dreamUnitAdvice holds species-specific suggestions for misordered plans.
var dreamUnitAdvice = map[string]string{
	"ELK": adviceElkDreamUnits,
	"DER": adviceDeerDreamUnits,
}

// ValidateChoices checks that exactly three hunt codes were submitted.
func ValidateChoices(choices []string) error {
	if len(choices) != ChoiceCount {
		return ErrChoiceCount
	}
	return nil
}

// IsLogicalOrder reports whether the choices run from hardest to easiest to
// draw: p1 <= p2+ε and p2 <= p3+ε, with every probability known.
func IsLogicalOrder(probs [ChoiceCount]*float64) bool {
	for _, p := range probs {
		if p == nil {
			return false
		}
	}
	p1, p2, p3 := *probs[0], *probs[1], *probs[2]
	return p1 <= p2+OrderTolerance && p2 <= p3+OrderTolerance
}

// ApplicationOdds approximates the chance of drawing any of the choices by
// the best single choice. This is the max of the known positive
// probabilities, not a sequential-draw model. Nil when none are known.
func ApplicationOdds(probs [ChoiceCount]*float64) *float64 {
	var best *float64
	for _, p := range probs {
		if p == nil || *p <= 0 {
			continue
		}
		if best == nil || *p > *best {
			v := *p
			best = &v
		}
	}
	return best
}

// PlanAdvice assembles the advisory text for a plan.
func PlanAdvice(speciesCode string, probs [ChoiceCount]*float64, logical bool) string {
	if logical {
		return adviceLogicallyOrdered + " " + adviceHighestOddsDrives
	}

	parts := []string{adviceNotOrdered}
	p1, p2, p3 := probs[0], probs[1], probs[2]
	if p1 != nil && p2 != nil && *p1 > *p2+OrderTolerance {
		parts = append(parts, adviceFirstBeatsSecond)
	}
	if p2 != nil && p3 != nil && *p2 > *p3+OrderTolerance {
		parts = append(parts, adviceSecondBeatsThird)
	}
	if s, ok := dreamUnitAdvice[speciesCode]; ok {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// EvaluatePlan combines the looked-up counts with the submitted choices into
// the full plan response. choices must already have passed ValidateChoices.
func EvaluatePlan(pool Pool, speciesCode string, choices []string, counts map[string]ChoiceCounts, speciesName *string) models.ApplicationPlanResponse {
	var probs [ChoiceCount]*float64
	details := make([]models.PlanChoice, 0, len(choices))

	for i, code := range choices {
		choice := models.PlanChoice{ChoiceNumber: i + 1, HuntCode: code}
		if c, ok := counts[code]; ok {
			choice.Applications = int64Ptr(c.Applications)
			choice.Licenses = int64Ptr(c.Licenses)
			if p, ok := Probability(c.Applications, c.Licenses); ok {
				choice.P = &p
			}
		}
		if i < ChoiceCount {
			probs[i] = choice.P
		}
		details = append(details, choice)
	}

	logical := IsLogicalOrder(probs)
	odds := ApplicationOdds(probs)

	var oneInN *int
	if odds != nil {
		if n, ok := OneInN(*odds); ok {
			oneInN = &n
		}
	}

	advice := PlanAdvice(speciesCode, probs, logical)

	return models.ApplicationPlanResponse{
		Pool:            string(pool),
		PoolLabel:       pool.Label(),
		SpeciesCode:     speciesCode,
		SpeciesName:     speciesName,
		Choices:         details,
		LogicalOrder:    logical,
		ApplicationOdds: odds,
		OneInN:          oneInN,
		Advice:          &advice,
	}
}
