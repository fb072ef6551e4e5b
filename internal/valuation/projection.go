package valuation

import "time"

// hoursPerDay for whole-day arithmetic on time.Time differences.
const hoursPerDay = 24

// daysBetween returns the number of whole days from start to end, clamped
// to zero when end precedes start.
func daysBetween(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / hoursPerDay)
	if days < 0 {
		return 0
	}
	return days
}

// ProjectWeight computes a herd's projected liveweight in kilograms at the
// evaluation date using a linear growth model with at most one rate change.
//
// When changeDate is nil, or falls on or after the evaluation date, the
// current rate applies for the whole elapsed period. Otherwise oldRate
// applies from start to the change date and newRate from the change date to
// the evaluation date. Elapsed periods are whole days and never negative.
//
// The result is not floored at zero: negative rates are rejected at the
// validation boundary, so stored data cannot drive the projection negative.
func ProjectWeight(initialKg float64, start time.Time, changeDate *time.Time, oldRate, newRate float64, at time.Time) float64 {
	if changeDate == nil || !changeDate.Before(at) {
		return initialKg + newRate*float64(daysBetween(start, at))
	}

	daysBefore := daysBetween(start, *changeDate)
	daysAfter := daysBetween(*changeDate, at)
	return initialKg + oldRate*float64(daysBefore) + newRate*float64(daysAfter)
}
