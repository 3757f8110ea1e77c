package weighins

import (
	"time"

	"github.com/vprekovic/fitlog/internal/progress"
)

// WeighIn is the DB level type, weight is stored as total pounds.
type WeighIn struct {
	ID          int       `json:"id"`
	TotalPounds float64   `json:"totalPounds"`
	Note        string    `json:"note"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// WeighInView is the API level type, with the weight also broken
// down into stone+pounds and converted to kilograms.
type WeighInView struct {
	WeighIn
	Stone     int     `json:"stone"`
	Pounds    float64 `json:"pounds"`
	Kilograms float64 `json:"kilograms"`
}

func NewWeighInView(w WeighIn) WeighInView {
	sp := progress.StoneDisplay(w.TotalPounds)
	return WeighInView{
		WeighIn:   w,
		Stone:     sp.Stone,
		Pounds:    sp.Pounds,
		Kilograms: progress.PoundsToKilograms(w.TotalPounds),
	}
}

// AddWeighInRequest accepts the weight in any of the supported units.
// Exactly one of the representations has to be provided.
type AddWeighInRequest struct {
	TotalPounds *float64   `json:"totalPounds,omitempty"`
	Stone       *int       `json:"stone,omitempty"`
	Pounds      *float64   `json:"pounds,omitempty"`
	Kilograms   *float64   `json:"kilograms,omitempty"`
	Note        string     `json:"note"`
	RecordedAt  *time.Time `json:"recordedAt,omitempty"`
}
