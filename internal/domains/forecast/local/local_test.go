package local_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/forecast/local"
	"campusbook/internal/domains/forecast/model"
)

const alpha = 0.3

func record(t time.Time, quantity int, status string) bookingModel.DemandRecord {
	return bookingModel.DemandRecord{StartTime: t, Quantity: quantity, Status: status}
}

func utcDay(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 9, 0, 0, 0, time.UTC)
}

func TestCompute_EmptyHistory(t *testing.T) {
	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	forecast := local.Compute(nil, now, 14, alpha)

	assert.Len(t, forecast.Points, 14)
	assert.Equal(t, model.LocalModelName, forecast.Model)

	for _, p := range forecast.Points {
		assert.Equal(t, 0.0, p.ExpectedBookings)
		assert.Equal(t, 0.2, p.BusyProbability)
		assert.Equal(t, model.LabelQuiet, p.Label)
	}
}

// Four consecutive Mondays with one single-unit booking each: Monday keeps
// its weekday average and every other weekday falls back to the overall
// mean.
func TestCompute_MondayOnlyHistory(t *testing.T) {
	// 2026-08-10 is a Monday.
	mondays := []time.Time{
		utcDay(2026, time.August, 10),
		utcDay(2026, time.August, 17),
		utcDay(2026, time.August, 24),
		utcDay(2026, time.August, 31),
	}

	records := make([]bookingModel.DemandRecord, 0, len(mondays))
	for _, m := range mondays {
		records = append(records, record(m, 1, bookingModel.StatusRequest))
	}

	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	forecast := local.Compute(records, now, 14, alpha)

	assert.Len(t, forecast.Points, 14)

	// Every bucket value is 1, so the mean is 1 with zero deviation. The
	// Monday points blend the weekday average with the lagged EMA (both
	// 1), and the rest fall back to the mean (also 1).
	for _, p := range forecast.Points {
		assert.Equal(t, 1.0, p.ExpectedBookings, "date %s", p.Date)
		assert.Equal(t, 0.45, p.BusyProbability)
		assert.Equal(t, model.LabelNormal, p.Label)
	}

	firstMonday := forecast.Points[4]
	assert.Equal(t, time.Monday, firstMonday.Date.Weekday())
}

func TestCompute_SeasonalBlend(t *testing.T) {
	// Monday value 1, Tuesday value 3: mean 2, population std 1.
	records := []bookingModel.DemandRecord{
		record(utcDay(2026, time.August, 31), 1, bookingModel.StatusSuccess),
		record(utcDay(2026, time.September, 1), 3, bookingModel.StatusRequest),
	}

	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	forecast := local.Compute(records, now, 7, alpha)

	byWeekday := map[time.Weekday]model.Point{}
	for _, p := range forecast.Points {
		byWeekday[p.Date.Weekday()] = p
	}

	// Thursday has no weekday history and no EMA lag: pure mean,
	// sigmoid((2-2.5)/1).
	thursday := byWeekday[time.Thursday]
	assert.Equal(t, 2.0, thursday.ExpectedBookings)
	assert.Equal(t, 0.378, thursday.BusyProbability)
	assert.Equal(t, model.LabelQuiet, thursday.Label)

	// Monday blends its weekday average with the EMA seven days back:
	// 0.4*1 + 0.6*1 = 1.
	monday := byWeekday[time.Monday]
	assert.Equal(t, 1.0, monday.ExpectedBookings)
	assert.Equal(t, 0.182, monday.BusyProbability)
	assert.Equal(t, model.LabelQuiet, monday.Label)

	// Tuesday blends 3 with the smoothed series value 1.6:
	// 0.4*3 + 0.6*1.6 = 2.16.
	tuesday := byWeekday[time.Tuesday]
	assert.Equal(t, 2.16, tuesday.ExpectedBookings)
	assert.Equal(t, 0.416, tuesday.BusyProbability)
	assert.Equal(t, model.LabelNormal, tuesday.Label)
}

func TestCompute_ExcludesCanceledAndFuture(t *testing.T) {
	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	base := []bookingModel.DemandRecord{
		record(utcDay(2026, time.August, 31), 2, bookingModel.StatusSuccess),
		record(utcDay(2026, time.September, 1), 2, bookingModel.StatusOngoing),
	}

	polluted := append([]bookingModel.DemandRecord{}, base...)
	polluted = append(polluted,
		record(utcDay(2026, time.August, 31), 50, bookingModel.StatusCancel),
		record(utcDay(2026, time.September, 20), 99, bookingModel.StatusRequest),
	)

	clean := local.Compute(base, now, 14, alpha)
	dirty := local.Compute(polluted, now, 14, alpha)

	assert.Equal(t, clean.Points, dirty.Points)
}

func TestCompute_ZeroQuantityCountsAsOne(t *testing.T) {
	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	withZero := local.Compute([]bookingModel.DemandRecord{
		record(utcDay(2026, time.September, 1), 0, bookingModel.StatusRequest),
	}, now, 7, alpha)

	withOne := local.Compute([]bookingModel.DemandRecord{
		record(utcDay(2026, time.September, 1), 1, bookingModel.StatusRequest),
	}, now, 7, alpha)

	assert.Equal(t, withOne.Points, withZero.Points)
}

func TestCompute_Deterministic(t *testing.T) {
	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	records := []bookingModel.DemandRecord{
		record(utcDay(2026, time.August, 10), 1, bookingModel.StatusSuccess),
		record(utcDay(2026, time.August, 12), 4, bookingModel.StatusSuccess),
		record(utcDay(2026, time.August, 17), 2, bookingModel.StatusOngoing),
		record(utcDay(2026, time.August, 21), 7, bookingModel.StatusRequest),
		record(utcDay(2026, time.August, 24), 3, bookingModel.StatusSuccess),
	}

	first := local.Compute(records, now, 30, alpha)
	second := local.Compute(records, now, 30, alpha)

	assert.Equal(t, first, second)
}

func TestSignature(t *testing.T) {
	a := record(utcDay(2026, time.August, 10), 2, bookingModel.StatusRequest)
	b := record(utcDay(2026, time.August, 11), 3, bookingModel.StatusSuccess)
	canceled := record(utcDay(2026, time.August, 12), 5, bookingModel.StatusCancel)

	t.Run("order independent", func(t *testing.T) {
		assert.Equal(t,
			local.Signature([]bookingModel.DemandRecord{a, b}),
			local.Signature([]bookingModel.DemandRecord{b, a}),
		)
	})

	t.Run("canceled bookings excluded", func(t *testing.T) {
		assert.Equal(t,
			local.Signature([]bookingModel.DemandRecord{a, b}),
			local.Signature([]bookingModel.DemandRecord{a, b, canceled}),
		)
	})

	t.Run("quantity change alters signature", func(t *testing.T) {
		bumped := a
		bumped.Quantity = 9

		assert.NotEqual(t,
			local.Signature([]bookingModel.DemandRecord{a}),
			local.Signature([]bookingModel.DemandRecord{bumped}),
		)
	})
}
