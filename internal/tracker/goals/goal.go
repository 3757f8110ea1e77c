package goals

import (
	"time"

	"github.com/vprekovic/fitlog/internal/progress"
	"github.com/vprekovic/fitlog/internal/tracker/intake"
)

// Goal is a daily intake target, one per quantity. A day counts as
// "met" when the day total reaches the threshold.
type Goal struct {
	ID        int             `json:"id"`
	Quantity  intake.Quantity `json:"quantity"`
	Threshold float64         `json:"threshold"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Milestone is a reward tied to meeting a daily goal over a number of
// days, either consecutively or cumulatively. Completion is one-way:
// once CompletedAt is set it is never cleared, even if the underlying
// entries later change.
type Milestone struct {
	ID          int                 `json:"id"`
	Name        string              `json:"name"`
	Quantity    intake.Quantity     `json:"quantity"`
	Mode        progress.StreakMode `json:"mode"`
	TargetDays  int                 `json:"targetDays"`
	StartDate   time.Time           `json:"startDate"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}
