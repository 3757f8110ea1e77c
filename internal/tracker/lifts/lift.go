package lifts

import "time"

// Lift is a single recorded lift, used for tracking personal bests.
type Lift struct {
	ID         int       `json:"id"`
	Movement   string    `json:"movement"`
	Kilos      float64   `json:"kilos"`
	Reps       int       `json:"reps"`
	AchievedAt time.Time `json:"achievedAt"`
}
