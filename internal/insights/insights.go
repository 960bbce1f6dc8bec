// Package insights computes rule-based observations over a user's
// expenses. It is a pure reduction: no state, no I/O, no failure modes
// beyond well-formed input.
package insights

import (
	"fmt"
	"sort"
)

// Expense is the minimal expense view the engine needs.
type Expense struct {
	Category string
	Amount   float64
}

// Generate produces an ordered list of observations for the given
// expenses and optional per-category limits:
//
//  1. For each category with a configured limit whose total spend
//     strictly exceeds that limit, an over-limit observation. Emitted
//     in ascending category order.
//  2. One observation naming the highest-spending category. Ties are
//     broken alphabetically.
//
// A limit of zero means "no limit configured". An empty expense set
// yields no observations.
func Generate(expenses []Expense, limits map[string]float64) []string {
	if len(expenses) == 0 {
		return nil
	}

	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var observations []string
	for _, c := range categories {
		limit, ok := limits[c]
		if ok && limit > 0 && totals[c] > limit {
			observations = append(observations,
				fmt.Sprintf("%s spending exceeded its limit of %.2f", c, limit))
		}
	}

	top := categories[0]
	for _, c := range categories[1:] {
		if totals[c] > totals[top] {
			top = c
		}
	}
	observations = append(observations,
		fmt.Sprintf("Highest spending category: %s", top))

	return observations
}
