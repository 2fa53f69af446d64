package ability

import (
	"regexp"
	"strconv"
)

// Only this exact phrasing is understood; the description is not a general
// natural-language format.
var (
	damageRangePattern     = regexp.MustCompile(`(?i)deal (\d+)-(\d+) damage`)
	healthThresholdPattern = regexp.MustCompile(`(?i)below (\d+)% health`)
)

// ParseConditionalDoubleDamage extracts the damage range and health threshold
// from a description such as
//
//	"Deal 60-90 damage. If enemy is below 40% health, deal double damage"
//
// It returns false when either clause is missing or its numbers are unusable.
func ParseConditionalDoubleDamage(description string) (ConditionalDoubleDamage, bool) {
	params, reason := parseConditionalDoubleDamage(description)
	return params, reason == ""
}

// parseConditionalDoubleDamage returns the parsed parameters, or a reason why
// they could not be read.
func parseConditionalDoubleDamage(description string) (ConditionalDoubleDamage, string) {
	damageMatch := damageRangePattern.FindStringSubmatch(description)
	thresholdMatch := healthThresholdPattern.FindStringSubmatch(description)

	switch {
	case damageMatch == nil && thresholdMatch == nil:
		return ConditionalDoubleDamage{}, "description has no damage range and no health threshold"
	case damageMatch == nil:
		return ConditionalDoubleDamage{}, "description has no \"deal X-Y damage\" clause"
	case thresholdMatch == nil:
		return ConditionalDoubleDamage{}, "description has no \"below N% health\" clause"
	}

	minDamage, err := strconv.Atoi(damageMatch[1])
	if err != nil {
		return ConditionalDoubleDamage{}, "minimum damage is not a number: " + damageMatch[1]
	}
	maxDamage, err := strconv.Atoi(damageMatch[2])
	if err != nil {
		return ConditionalDoubleDamage{}, "maximum damage is not a number: " + damageMatch[2]
	}
	threshold, err := strconv.Atoi(thresholdMatch[1])
	if err != nil {
		return ConditionalDoubleDamage{}, "health threshold is not a number: " + thresholdMatch[1]
	}

	params := ConditionalDoubleDamage{
		MinDamage: minDamage,
		MaxDamage: maxDamage,
		Threshold: threshold,
	}
	if err := params.Validate(); err != nil {
		return ConditionalDoubleDamage{}, err.Error()
	}

	return params, ""
}
