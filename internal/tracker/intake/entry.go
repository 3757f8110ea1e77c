package intake

import "time"

// Quantity is the kind of intake being tracked.
type Quantity string

const (
	QuantityProtein  Quantity = "protein"
	QuantityCalories Quantity = "calories"
	QuantityWater    Quantity = "water"
)

func (q Quantity) IsValid() bool {
	switch q {
	case QuantityProtein, QuantityCalories, QuantityWater:
		return true
	default:
		return false
	}
}

type Entry struct {
	ID         int               `json:"id"`
	Quantity   Quantity          `json:"quantity"`
	Value      float64           `json:"value"`
	RecordedAt time.Time         `json:"recordedAt"`
	Metadata   map[string]string `json:"metadata"`
}
