// Package local implements the offline forecasting strategy: a
// weekday-seasonal baseline blended with an exponential moving average over
// the daily booking history. It is pure and does no I/O, so it always
// succeeds and serves as the fallback when the remote forecast service is
// unreachable.
package local

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	bookingModel "campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/forecast/model"
	"campusbook/shared/constant"
)

const (
	baselineWeight = 0.4
	emaWeight      = 0.6

	// Probabilities used when the history has zero variance.
	flatAboveMeanProbability = 0.65
	flatEmptyProbability     = 0.2
	flatDefaultProbability   = 0.45
)

// day truncates a timestamp to its UTC calendar day.
func day(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// buckets sums effective quantities per UTC day of start time, dropping
// canceled bookings and days after today so unrealized future bookings never
// leak into the history.
func buckets(records []bookingModel.DemandRecord, today time.Time) (dates []time.Time, values []float64) {
	byDay := map[time.Time]float64{}

	for _, r := range records {
		if r.Status == bookingModel.StatusCancel {
			continue
		}

		d := day(r.StartTime)
		if d.After(today) {
			continue
		}

		quantity := r.Quantity
		if quantity < 1 {
			quantity = 1
		}

		byDay[d] += float64(quantity)
	}

	dates = make([]time.Time, 0, len(byDay))
	for d := range byDay {
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	values = make([]float64, len(dates))
	for i, d := range dates {
		values[i] = byDay[d]
	}

	return dates, values
}

func meanAndStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}

	for _, v := range values {
		mean += v
	}

	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}

	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}

// weekdayAverages returns the mean bucket value per day of week, NaN where
// the weekday has no history.
func weekdayAverages(dates []time.Time, values []float64) [7]float64 {
	var sums, counts [7]float64

	for i, d := range dates {
		w := int(d.Weekday())
		sums[w] += values[i]
		counts[w]++
	}

	var averages [7]float64

	for w := range averages {
		if counts[w] == 0 {
			averages[w] = math.NaN()

			continue
		}

		averages[w] = sums[w] / counts[w]
	}

	return averages
}

// smooth computes the exponential moving average over the chronologically
// sorted bucket values and indexes it by date.
func smooth(dates []time.Time, values []float64, alpha float64) map[time.Time]float64 {
	ema := map[time.Time]float64{}

	var prev float64

	for i, d := range dates {
		if i == 0 {
			prev = values[0]
		} else {
			prev = alpha*values[i] + (1-alpha)*prev
		}

		ema[d] = prev
	}

	return ema
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))

	return math.Round(v*factor) / factor
}

// Compute runs the local algorithm: one point per future day at offsets
// 1..horizonDays from now's UTC day, in chronological order.
func Compute(records []bookingModel.DemandRecord, now time.Time, horizonDays int, alpha float64) model.Forecast {
	today := day(now)

	dates, values := buckets(records, today)
	mean, std := meanAndStd(values)
	averages := weekdayAverages(dates, values)
	ema := smooth(dates, values, alpha)

	threshold := mean + 0.5*std

	points := make([]model.Point, 0, horizonDays)

	for i := 1; i <= horizonDays; i++ {
		d := today.AddDate(0, 0, i)

		baseline := averages[int(d.Weekday())]
		if math.IsNaN(baseline) {
			baseline = mean
		}

		if lagged, ok := ema[d.AddDate(0, 0, -7)]; ok {
			baseline = baselineWeight*baseline + emaWeight*lagged
		}

		expected := baseline
		if math.IsNaN(expected) || math.IsInf(expected, 0) || expected < 0 {
			expected = 0
		}

		var probability float64

		if std == 0 {
			switch {
			case expected > mean:
				probability = flatAboveMeanProbability
			case expected == 0 && mean == 0:
				probability = flatEmptyProbability
			default:
				probability = flatDefaultProbability
			}
		} else {
			probability = sigmoid((expected - threshold) / std)
		}

		probability = math.Min(math.Max(probability, 0), 1)

		points = append(points, model.Point{
			Date:             d,
			ExpectedBookings: round(expected, 2),
			BusyProbability:  round(probability, 3),
			Label:            model.Label(probability),
		})
	}

	return model.Forecast{
		Points:      points,
		Model:       model.LocalModelName,
		GeneratedAt: now,
	}
}

// Signature fingerprints the booking set as sorted date:quantity pairs with
// canceled bookings excluded, so callers can skip recomputation when the
// data has not changed.
func Signature(records []bookingModel.DemandRecord) string {
	pairs := make([]string, 0, len(records))

	for _, r := range records {
		if r.Status == bookingModel.StatusCancel {
			continue
		}

		quantity := r.Quantity
		if quantity < 1 {
			quantity = 1
		}

		pairs = append(pairs, fmt.Sprintf("%s:%d", day(r.StartTime).Format(constant.DayFormat), quantity))
	}

	sort.Strings(pairs)

	sum := sha256.Sum256([]byte(strings.Join(pairs, ",")))

	return hex.EncodeToString(sum[:])
}
