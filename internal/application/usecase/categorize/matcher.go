// Package categorize contains rule-matching and categorization use cases.
package categorize

import (
	"strings"

	"github.com/google/uuid"

	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// MatchCategory determines the best-matching category for a transaction
// description. It is a pure function of its inputs: the same description and
// the same category snapshot always yield the same result.
//
// Matching is case-insensitive. Every rule of every non-default category is
// considered; when several rules match, the longest pattern wins (the more
// specific rule), and remaining ties go to the category created earliest.
// The second result is false when no rule matches; callers fall back to the
// default category.
func MatchCategory(description string, categories []*entity.Category) (uuid.UUID, bool) {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return uuid.Nil, false
	}

	var (
		bestID  uuid.UUID
		bestLen = -1
		bestPos int
		found   bool
	)

	for _, category := range categories {
		// Rules on the default category are inert; assigning to the default
		// is the no-match outcome, never a match.
		if category.IsDefault {
			continue
		}

		for _, rule := range category.Rules {
			if rule.Pattern == "" {
				continue
			}

			matched := false
			if rule.Exact {
				matched = desc == rule.Pattern
			} else {
				matched = strings.Contains(desc, rule.Pattern)
			}
			if !matched {
				continue
			}

			if len(rule.Pattern) > bestLen ||
				(len(rule.Pattern) == bestLen && category.Position < bestPos) {
				bestID = category.ID
				bestLen = len(rule.Pattern)
				bestPos = category.Position
				found = true
			}
		}
	}

	return bestID, found
}
