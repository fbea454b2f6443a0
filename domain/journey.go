package domain

import "time"

// Journey is one journey logged by the travel calculator.
type Journey struct {
	StartCity  string
	EndCity    string
	DistanceKm float64
	Emissions  map[string]float64 // transport mode -> kg CO2
	RecordedAt time.Time
}
