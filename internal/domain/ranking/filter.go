package ranking

import "slices"

// FilterAll is the wildcard accepted for both gender and category filters.
const FilterAll = "all"

// AgeCategoryOf classifies an age using the original boundary comparisons.
// The generated roster never holds ages below 16, so sub-15 is unreachable
// by construction; the boundary is kept as specified rather than adjusted.
func AgeCategoryOf(age int) AgeCategory {
	switch {
	case age <= 15:
		return CategorySub15
	case age <= 17:
		return CategorySub17
	case age <= 20:
		return CategorySub20
	default:
		return CategoryProfissional
	}
}

// FilterByGenderAndAge returns the subset of roster matching both filters,
// re-sorted descending by overall rating. The input slice is not mutated.
// Pass FilterAll ("all") to leave either dimension unconstrained.
func FilterByGenderAndAge(roster []Player, genderFilter, ageFilter string) []Player {
	out := make([]Player, 0, len(roster))
	for _, p := range roster {
		if genderFilter != FilterAll && string(p.Gender) != genderFilter {
			continue
		}
		if ageFilter != FilterAll && string(AgeCategoryOf(p.Age)) != ageFilter {
			continue
		}
		out = append(out, p)
	}

	sortByRatingDesc(out)

	return out
}

// GroupByCategory buckets players by "<gender>-<category>" keys.
func GroupByCategory(roster []Player) map[string][]Player {
	out := make(map[string][]Player)
	for _, p := range roster {
		key := string(p.Gender) + "-" + string(AgeCategoryOf(p.Age))
		out[key] = append(out[key], p)
	}
	for key := range out {
		out[key] = slices.Clip(out[key])
	}

	return out
}
