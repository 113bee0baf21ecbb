package model

import "time"

const (
	LabelBusy   = "BUSY"
	LabelNormal = "NORMAL"
	LabelQuiet  = "QUIET"

	// LocalModelName identifies the offline weekday-seasonal EMA model.
	LocalModelName = "weekday-ema-v1"

	BusyThreshold  = 0.6
	QuietThreshold = 0.4
)

// Point is the prediction for one future calendar day.
type Point struct {
	Date             time.Time
	ExpectedBookings float64
	BusyProbability  float64
	Label            string
}

// Forecast is the full horizon produced by one forecast call.
type Forecast struct {
	Points        []Point
	Model         string
	GeneratedAt   time.Time
	UsingFallback bool
	Notes         string
}

// Label buckets a busy probability into the three categories.
func Label(probability float64) string {
	switch {
	case probability >= BusyThreshold:
		return LabelBusy
	case probability <= QuietThreshold:
		return LabelQuiet
	default:
		return LabelNormal
	}
}
