// Package entity defines the domain models for the residence feature.
package entity

// Analysis is the structured result of counting residences in one image.
type Analysis struct {
	ResidenceCount int     // Number of residences found (never negative)
	Description    string  // Free-text description of the area, never absent
	Confidence     float64 // 0.0 = failure, 0.5 = offline or heuristic, 0.85 = extractable count
}

// ZoneAnalysis is an Analysis of a satellite capture taken around a risk zone.
type ZoneAnalysis struct {
	ZoneID int
	Lat    float64
	Lon    float64
	Analysis
}
