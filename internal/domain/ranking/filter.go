// Package ranking implements the catalog discovery pipeline: filtering a
// set of listings by free-text query and category facet, then ordering
// them for a viewer at a known location. Both stages are pure functions;
// re-running them on input change is the caller's job.
package ranking

import (
	"strings"

	"descu/internal/domain/entity"
)

// LabelFunc resolves a category key to its localized display label for
// the active locale. The filter only compares the returned string; it
// does not interpret it.
type LabelFunc func(category entity.Category) string

// Filter reduces listings to those matching a free-text query and a
// category facet. Both predicates are optional and conjunctive: an
// empty or whitespace-only query means no text filter, and the
// entity.CategoryAll sentinel matches every category.
//
// The text predicate is a case-insensitive substring match against the
// listing title, description and raw category key. It additionally
// matches listings whose category's localized label (via label) contains
// the query, so a viewer can search by category name in their own
// language even though categories are stored as invariant keys.
func Filter(listings []entity.Listing, query, category string, label LabelFunc) []entity.Listing {
	query = strings.TrimSpace(query)

	matchedCategories := map[entity.Category]bool{}
	if query != "" && label != nil {
		lowerQ := strings.ToLower(query)
		for _, cat := range entity.Categories() {
			if strings.Contains(strings.ToLower(label(cat)), lowerQ) {
				matchedCategories[cat] = true
			}
		}
	}

	out := make([]entity.Listing, 0, len(listings))
	for _, listing := range listings {
		if !matchesQuery(listing, query, matchedCategories) {
			continue
		}
		if category != "" && category != entity.CategoryAll && listing.Category.String() != category {
			continue
		}
		out = append(out, listing)
	}

	return out
}

func matchesQuery(listing entity.Listing, query string, matchedCategories map[entity.Category]bool) bool {
	if query == "" {
		return true
	}

	lowerQ := strings.ToLower(query)

	if strings.Contains(strings.ToLower(listing.Title), lowerQ) {
		return true
	}
	if strings.Contains(strings.ToLower(listing.Description), lowerQ) {
		return true
	}
	if strings.Contains(listing.Category.String(), lowerQ) {
		return true
	}

	return matchedCategories[listing.Category]
}
