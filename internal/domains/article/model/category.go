package model

// Category is one of the fixed blog sections
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

var categories = []Category{
	{Slug: "general", Name: "General"},
	{Slug: "legal-tips", Name: "Legal Tips"},
	{Slug: "business-law", Name: "Business Law"},
	{Slug: "family-law", Name: "Family Law"},
	{Slug: "real-estate", Name: "Real Estate"},
	{Slug: "litigation", Name: "Litigation"},
	{Slug: "news", Name: "Legal News"},
}

// Categories returns the categories in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryName returns the display name and whether slug is a known category
func CategoryName(slug string) (string, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c.Name, true
		}
	}
	return "", false
}

func categorySlugs() []interface{} {
	out := make([]interface{}, len(categories))
	for i, c := range categories {
		out[i] = c.Slug
	}
	return out
}
