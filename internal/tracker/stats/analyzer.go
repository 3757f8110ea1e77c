package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/vprekovic/fitlog/internal/progress"
	"github.com/vprekovic/fitlog/internal/telemetry/tracing"
	"github.com/vprekovic/fitlog/internal/tracker/goals"
	"github.com/vprekovic/fitlog/internal/tracker/intake"

	"go.opentelemetry.io/otel/attribute"
)

// streakLookbackDays bounds how far back the streak window reaches
// when loading entries. Matches the engine's own walk limit.
const streakLookbackDays = 366

//go:generate mockgen -source=$GOFILE -destination=stats_mocks_test.go -package=stats_test

type entriesRepo interface {
	ListAll(ctx context.Context, params intake.EntryParams) ([]intake.Entry, error)
}

type goalsRepo interface {
	GetGoal(ctx context.Context, quantity string) (*goals.Goal, error)
}

type Analyzer struct {
	entries entriesRepo
	goals   goalsRepo
	engine  *progress.Engine
}

func NewAnalyzer(entries entriesRepo, goalsRepo goalsRepo, engine *progress.Engine) *Analyzer {
	return &Analyzer{
		entries: entries,
		goals:   goalsRepo,
		engine:  engine,
	}
}

// DayStat is one calendar day of a month view.
type DayStat struct {
	Total float64 `json:"total"`
	Met   bool    `json:"met"`
}

type CalendarMonthStats struct {
	Quantity    intake.Quantity             `json:"quantity"`
	Year        int                         `json:"year"`
	Month       time.Month                  `json:"month"`
	Goal        float64                     `json:"goal"`
	DaysInMonth int                         `json:"daysInMonth"`
	MetCount    int                         `json:"metCount"`
	Days        map[progress.DayKey]DayStat `json:"days"`
}

type StreakStats struct {
	Quantity   intake.Quantity `json:"quantity"`
	Goal       float64         `json:"goal"`
	Streak     int             `json:"streak"`
	TodayTotal float64         `json:"todayTotal"`
	TodayMet   bool            `json:"todayMet"`
}

// DailyTotals sums the logged values of a quantity per local calendar
// day. Days without entries are absent from the result.
func (a *Analyzer) DailyTotals(
	ctx context.Context,
	quantity intake.Quantity,
	from, to *time.Time,
) (_ map[progress.DayKey]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.dailyTotals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("quantity", string(quantity)))

	entries, err := a.entries.ListAll(ctx, intake.EntryParams{
		Quantity: quantity,
		From:     from,
		To:       to,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return progress.BucketByDay(toProgressEntries(entries)), nil
}

// CalendarMonth evaluates every day of a calendar month against the
// goal for the quantity. All days of the month appear in the result,
// future ones included, a day without entries simply has total zero.
func (a *Analyzer) CalendarMonth(
	ctx context.Context,
	quantity intake.Quantity,
	year int,
	month time.Month,
	goalOverride *float64,
) (_ *CalendarMonthStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.calendarMonth")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("quantity", string(quantity)),
		attribute.Int("year", year),
		attribute.Int("month", int(month)),
	)

	goal, err := a.goalThreshold(ctx, quantity, goalOverride)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)
	entries, err := a.entries.ListAll(ctx, intake.EntryParams{
		Quantity: quantity,
		From:     &monthStart,
		To:       &monthEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	totals := progress.BucketByDay(toProgressEntries(entries))
	daysInMonth := progress.DaysInMonth(year, month)

	days := make(map[progress.DayKey]DayStat, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		key := progress.MakeDayKey(year, month, day)
		total := progress.DayTotal(totals, key)
		days[key] = DayStat{
			Total: total,
			Met:   progress.GoalMet(total, goal),
		}
	}

	return &CalendarMonthStats{
		Quantity:    quantity,
		Year:        year,
		Month:       month,
		Goal:        goal,
		DaysInMonth: daysInMonth,
		MetCount:    progress.MonthMetCount(totals, year, month, goal),
		Days:        days,
	}, nil
}

// Streak counts the current run of goal-met days ending today. Today
// itself is still in progress, so an unmet today does not break the
// run, it just does not count yet.
func (a *Analyzer) Streak(
	ctx context.Context,
	quantity intake.Quantity,
	goalOverride *float64,
) (_ *StreakStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("quantity", string(quantity)))

	goal, err := a.goalThreshold(ctx, quantity, goalOverride)
	if err != nil {
		return nil, err
	}

	anchor := a.engine.Today()
	from := anchor.AddDate(0, 0, -streakLookbackDays)
	to := anchor.AddDate(0, 0, 1)
	entries, err := a.entries.ListAll(ctx, intake.EntryParams{
		Quantity: quantity,
		From:     &from,
		To:       &to,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	totals := progress.BucketByDay(toProgressEntries(entries))
	todayTotal := progress.DayTotal(totals, progress.DateKey(anchor))

	return &StreakStats{
		Quantity:   quantity,
		Goal:       goal,
		Streak:     progress.ConsecutiveStreak(totals, goal, from, anchor),
		TodayTotal: todayTotal,
		TodayMet:   progress.GoalMet(todayTotal, goal),
	}, nil
}

func (a *Analyzer) goalThreshold(
	ctx context.Context,
	quantity intake.Quantity,
	goalOverride *float64,
) (float64, error) {
	if goalOverride != nil {
		return *goalOverride, nil
	}
	goal, err := a.goals.GetGoal(ctx, string(quantity))
	if err != nil {
		return 0, fmt.Errorf("get goal: %w", err)
	}
	return goal.Threshold, nil
}

func toProgressEntries(entries []intake.Entry) []progress.Entry {
	progressEntries := make([]progress.Entry, 0, len(entries))
	for _, e := range entries {
		progressEntries = append(progressEntries, progress.Entry{
			Value:      e.Value,
			RecordedAt: e.RecordedAt,
		})
	}
	return progressEntries
}
