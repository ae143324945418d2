package domain

// ProjectFilter contains filtering/pagination parameters for catalog listings.
type ProjectFilter struct {
	// Tiers restricts results to the given visibility tiers.
	// nil means unrestricted.
	Tiers []Visibility

	Category  *string
	Search    *string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
