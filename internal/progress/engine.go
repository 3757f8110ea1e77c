package progress

import "time"

// StreakMode describes how progress toward a milestone is counted.
type StreakMode string

const (
	// StreakModeConsecutive requires a contiguous run of goal-met days
	// ending at the anchor date; any fully missed day resets it.
	StreakModeConsecutive StreakMode = "consecutive"
	// StreakModeCumulative counts all goal-met days since the start
	// date, regardless of gaps.
	StreakModeCumulative StreakMode = "cumulative"
)

func (m StreakMode) IsValid() bool {
	switch m {
	case StreakModeConsecutive, StreakModeCumulative:
		return true
	default:
		return false
	}
}

// StreakConfig describes how a tracked behavior is measured.
// AnchorDate is only relevant for consecutive mode: nil means "today",
// a fixed date is used once the milestone has been marked complete.
type StreakConfig struct {
	Mode       StreakMode `json:"mode"`
	TargetDays int        `json:"targetDays"`
	StartDate  time.Time  `json:"startDate"`
	AnchorDate *time.Time `json:"anchorDate,omitempty"`
}

// Progress is the derived state of a milestone. It is advisory only:
// recording a completion is the caller's job, the engine just reports
// whether the condition currently holds.
type Progress struct {
	Current    int     `json:"current"`
	Percentage float64 `json:"percentage"`
	Complete   bool    `json:"complete"`
}

// Engine evaluates streak configs against bucketed day totals.
// Its only dependency is a clock for "today".
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithNow injects the clock, for tests and fixed-date replays.
func NewEngineWithNow(now func() time.Time) *Engine {
	return &Engine{now: now}
}

func (e *Engine) Today() time.Time {
	return e.now()
}

// RewardProgress dispatches to the consecutive or cumulative counter and
// derives the completion state. Pure and idempotent: calling it twice
// with the same inputs yields the same result.
func (e *Engine) RewardProgress(totals map[DayKey]float64, goal float64, cfg StreakConfig) Progress {
	anchor := e.now()
	if cfg.AnchorDate != nil {
		anchor = *cfg.AnchorDate
	}

	var current int
	switch cfg.Mode {
	case StreakModeCumulative:
		current = CumulativeCount(totals, goal, cfg.StartDate, anchor)
	default:
		current = ConsecutiveStreak(totals, goal, cfg.StartDate, anchor)
	}

	return Progress{
		Current:    current,
		Percentage: PercentComplete(current, cfg.TargetDays),
		Complete:   current >= cfg.TargetDays,
	}
}
