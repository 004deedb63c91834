package progress

// Skill scores live on a 0-100 scale.
const (
	SkillMin = 0
	SkillMax = 100
)

// Accrue applies skill deltas to the current score map and returns a new map.
// For every key in deltas the result is clamp(current+delta, 0, 100); a skill
// missing from current starts at 0. Keys absent from deltas pass through
// unchanged. Pure: neither input map is mutated.
func Accrue(current map[string]int, deltas map[string]int) map[string]int {
	result := make(map[string]int, len(current)+len(deltas))
	for name, score := range current {
		result[name] = score
	}
	for name, delta := range deltas {
		result[name] = clampSkill(result[name] + delta)
	}
	return result
}

func clampSkill(score int) int {
	if score < SkillMin {
		return SkillMin
	}
	if score > SkillMax {
		return SkillMax
	}
	return score
}
