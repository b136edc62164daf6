package foods

import "strings"

// CategoryAll is the sentinel category selector that matches every item.
const CategoryAll = "all"

// Visible derives the subset of items the storefront should render. An item is
// included when the query is empty or is a case-insensitive substring of its
// name or description, AND the category selector is the "all" sentinel or
// equals the item's category exactly (case-sensitive).
//
// The query is matched verbatim; callers own the trimming policy. Result order
// preserves the source order.
func Visible(items []FoodDTO, query, category string) []FoodDTO {
	result := make([]FoodDTO, 0, len(items))
	lowered := strings.ToLower(query)
	for _, item := range items {
		matchesQuery := query == "" ||
			strings.Contains(strings.ToLower(item.Name), lowered) ||
			strings.Contains(strings.ToLower(item.Description), lowered)

		matchesCategory := category == CategoryAll || category == item.Category

		if matchesQuery && matchesCategory {
			result = append(result, item)
		}
	}
	return result
}
