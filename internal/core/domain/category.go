package domain

// CategoryPair maps a job category to one related category. The set of
// pairs forms the similarity graph used by the causal matching rule.
type CategoryPair struct {
	Original string
	Similar  string
}

// DefaultCategoryMap returns the built-in category similarity pairs. Order
// is fixed for reproducible output.
func DefaultCategoryMap() []CategoryPair {
	return []CategoryPair{
		{Original: "cafe", Similar: "barista"},
		{Original: "cafe", Similar: "serving"},
		{Original: "cafe", Similar: "bakery"},
		{Original: "restaurant", Similar: "kitchen_assist"},
		{Original: "restaurant", Similar: "serving"},
		{Original: "restaurant", Similar: "delivery"},
		{Original: "convenience_store", Similar: "sales"},
		{Original: "convenience_store", Similar: "stock"},
		{Original: "academy", Similar: "tutor_assist"},
		{Original: "academy", Similar: "admin"},
		{Original: "office_assist", Similar: "document"},
		{Original: "office_assist", Similar: "data_entry"},
		{Original: "delivery", Similar: "delivery"},
		{Original: "delivery", Similar: "logistics"},
		{Original: "it", Similar: "dev_assist"},
		{Original: "it", Similar: "testing"},
	}
}

// Categories returns the distinct categories appearing in the map, in
// first-seen order.
func Categories(pairs []CategoryPair) []string {
	seen := make(map[string]bool, len(pairs)*2)
	var out []string
	for _, p := range pairs {
		if !seen[p.Original] {
			seen[p.Original] = true
			out = append(out, p.Original)
		}
		if !seen[p.Similar] {
			seen[p.Similar] = true
			out = append(out, p.Similar)
		}
	}
	return out
}

// SimilarCategories returns the original category plus every category
// mapped as similar to it.
func SimilarCategories(pairs []CategoryPair, original string) []string {
	out := []string{original}
	for _, p := range pairs {
		if p.Original == original && p.Similar != original {
			out = append(out, p.Similar)
		}
	}
	return out
}
