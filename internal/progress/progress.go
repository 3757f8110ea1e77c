package progress

import (
	"fmt"
	"time"
)

// maxStreakLookback bounds the backward walk of a consecutive streak.
// Streaks longer than a year are not supported.
const maxStreakLookback = 366

// DayKey identifies one local calendar day, e.g. "2024-01-31".
type DayKey string

const dayKeyLayout = "2006-01-02"

// Entry is a single logged measurement: grams of protein, a calorie
// count, a weight component - the engine does not care which.
type Entry struct {
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

// DateKey buckets a timestamp by its calendar date, using the
// location the timestamp carries (local calendar semantics, not UTC).
func DateKey(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// MakeDayKey builds a key directly from calendar components.
func MakeDayKey(year int, month time.Month, day int) DayKey {
	return DayKey(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
}

// BucketByDay sums entry values per local calendar date.
// Days with no entries are absent from the result.
func BucketByDay(entries []Entry) map[DayKey]float64 {
	totals := make(map[DayKey]float64, len(entries))
	for _, e := range entries {
		totals[DateKey(e.RecordedAt)] += e.Value
	}
	return totals
}

// DayTotal returns the bucketed total for a day, zero when absent.
func DayTotal(totals map[DayKey]float64, key DayKey) float64 {
	return totals[key]
}

// GoalMet reports whether a day total satisfies the goal threshold.
// Hitting the goal exactly counts as met.
func GoalMet(total, goal float64) bool {
	return total >= goal
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthMetCount counts the days of a calendar month whose bucketed total
// meets the goal. Every day of the month is evaluated by the same rule,
// future days included - a day without entries simply has total zero.
func MonthMetCount(totals map[DayKey]float64, year int, month time.Month, goal float64) int {
	count := 0
	for day := 1; day <= DaysInMonth(year, month); day++ {
		if GoalMet(DayTotal(totals, MakeDayKey(year, month, day)), goal) {
			count++
		}
	}
	return count
}

// ConsecutiveStreak counts goal-met days in a contiguous run ending at
// anchorDate, walking backward one calendar day at a time. The anchor day
// itself is lenient: when unmet it does not count, but it does not break
// the streak either - the day is still in progress. Any other unmet day
// ends the walk, as does crossing strictly before startDate.
func ConsecutiveStreak(totals map[DayKey]float64, goal float64, startDate, anchorDate time.Time) int {
	start := dayStart(startDate)
	day := dayStart(anchorDate)

	streak := 0
	for offset := 0; offset < maxStreakLookback; offset++ {
		if day.Before(start) {
			break
		}
		if GoalMet(DayTotal(totals, DateKey(day)), goal) {
			streak++
		} else if offset > 0 {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CumulativeCount counts goal-met days in [startDate, endDate] inclusive,
// stepping forward one day at a time. Contiguity does not matter.
func CumulativeCount(totals map[DayKey]float64, goal float64, startDate, endDate time.Time) int {
	end := dayStart(endDate)

	count := 0
	for day := dayStart(startDate); !day.After(end); day = day.AddDate(0, 0, 1) {
		if GoalMet(DayTotal(totals, DateKey(day)), goal) {
			count++
		}
	}
	return count
}

// PercentComplete is the progress toward targetDays, capped at 100.
func PercentComplete(current, targetDays int) float64 {
	if targetDays <= 0 {
		return 100
	}
	p := float64(current) * 100 / float64(targetDays)
	if p > 100 {
		return 100
	}
	return p
}

func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
