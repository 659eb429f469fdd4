// Package types contains common types used across the application
package types

// DistributionEntry is one ranked, colored bucket of a distribution table.
type DistributionEntry struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"` // percentage of the dimension's valid records, one decimal
	Color string  `json:"color"`
}

// Distribution is a distribution table together with the counts a chart
// needs to label it.
type Distribution struct {
	Dimension string              `json:"dimension"`
	Total     int                 `json:"total"` // records considered
	Valid     int                 `json:"valid"` // records that answered this dimension
	Entries   []DistributionEntry `json:"entries"`
}

// Overview backs the dashboard summary cards and charts.
type Overview struct {
	Total         int            `json:"total"`
	Distributions []Distribution `json:"distributions"`
}
