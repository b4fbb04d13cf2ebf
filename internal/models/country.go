package models

// Country is a quiz item served by the country data source
type Country struct {
	// Name is the common English name of the country
	Name string

	// FlagURL points to a PNG rendering of the flag
	FlagURL string

	// Population is used to filter countries by difficulty tier
	Population int64
}
