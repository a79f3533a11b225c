// Package progression holds the pure advancement rules for ability scores
// and skills: experience requirement curves, roll-over application of
// earned experience, and derived modifiers.
package progression

import "maps"

const (
	// AbilityScoreCap is the maximum attainable ability score.
	AbilityScoreCap = 30

	// DefaultAbilityScore is assumed for any ability with no recorded value.
	DefaultAbilityScore = 10
)

// abilityBands maps the upper score bound of each band to the experience
// cost of advancing one point while inside it. This is a tuned product
// curve, not a formula.
var abilityBands = []struct {
	maxScore int
	cost     int
}{
	{2, 2},
	{4, 3},
	{6, 4},
	{8, 5},
	{10, 6},
	{12, 7},
	{14, 8},
	{16, 10},
	{18, 12},
	{20, 14},
	{22, 18},
	{24, 22},
	{26, 28},
	{28, 34},
	{30, 42},
}

// AbilityRequirement returns the experience needed to advance from score to
// score+1. The second return is false at or beyond the cap, meaning no
// further advancement is possible.
func AbilityRequirement(score int) (int, bool) {
	score = coerceScore(score)
	if score >= AbilityScoreCap {
		return 0, false
	}
	for _, band := range abilityBands {
		if score <= band.maxScore {
			return band.cost, true
		}
	}
	return 0, false
}

// AbilityModifier derives the standard modifier floor((score-10)/2).
// Missing or invalid scores are treated as the default 10.
func AbilityModifier(score int) int {
	score = coerceScore(score)
	diff := score - DefaultAbilityScore
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// SaveModifier is the ability modifier clamped to [0, 5], used for
// saving-throw bonuses.
func SaveModifier(score int) int {
	mod := AbilityModifier(score)
	if mod < 0 {
		return 0
	}
	if mod > 5 {
		return 5
	}
	return mod
}

// ApplyAbilityExperience adds earned experience to an ability, rolling
// progress over into score increases until the remainder is below the
// next requirement or the score caps. At the cap, progress is forced to
// zero and any remaining experience is discarded.
func ApplyAbilityExperience(score, progress, amount int) (int, int) {
	score = coerceScore(score)
	progress = max(progress, 0)
	if score >= AbilityScoreCap {
		return AbilityScoreCap, 0
	}
	if amount <= 0 {
		return score, progress
	}

	progress += amount
	for {
		req, ok := AbilityRequirement(score)
		if !ok {
			return AbilityScoreCap, 0
		}
		if progress < req {
			return score, progress
		}
		progress -= req
		score++
		if score >= AbilityScoreCap {
			return AbilityScoreCap, 0
		}
	}
}

// SkillRequirement returns the experience needed to advance a skill from
// level to level+1. Skills are unbounded above.
func SkillRequirement(level int) int {
	return max(2, level+2)
}

// skillPointTierSize is the number of skill levels per bonus-point tier.
const skillPointTierSize = 3

// ApplySkillExperience adds earned experience to a skill using the same
// roll-over algorithm as abilities, with no upper bound. One bonus skill
// point is granted per tier boundary (multiple of 3) crossed, which may be
// more than one in a single call.
func ApplySkillExperience(level, progress, amount int) (newLevel, newProgress, gainedPoints int) {
	level = max(level, 0)
	progress = max(progress, 0)
	if amount <= 0 {
		return level, progress, 0
	}

	startTier := level / skillPointTierSize
	progress += amount
	for progress >= SkillRequirement(level) {
		progress -= SkillRequirement(level)
		level++
	}
	return level, progress, level/skillPointTierSize - startTier
}

// SpendSkillPoint spends one point from the pool to raise an ability score
// by one, resetting that ability's progress. The spend is a no-op when the
// pool is empty or the ability is already capped. Input maps are not
// mutated; callers receive fresh copies.
func SpendSkillPoint(scores, progress map[string]int, points int, ability string) (map[string]int, map[string]int, int, bool) {
	score := DefaultAbilityScore
	if s, ok := scores[ability]; ok {
		score = coerceScore(s)
	}
	if points <= 0 || score >= AbilityScoreCap {
		return scores, progress, points, false
	}

	newScores := maps.Clone(scores)
	if newScores == nil {
		newScores = make(map[string]int)
	}
	newProgress := maps.Clone(progress)
	if newProgress == nil {
		newProgress = make(map[string]int)
	}
	newScores[ability] = score + 1
	newProgress[ability] = 0
	return newScores, newProgress, points - 1, true
}

// coerceScore normalizes an ability score: unset (zero or negative) values
// default to 10, and anything above the cap is clamped down.
func coerceScore(score int) int {
	if score <= 0 {
		return DefaultAbilityScore
	}
	if score > AbilityScoreCap {
		return AbilityScoreCap
	}
	return score
}
