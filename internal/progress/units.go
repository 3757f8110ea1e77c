package progress

import "math"

const (
	PoundsPerStone    = 14.0
	KilogramsPerPound = 0.453592
)

// StonePounds is the display form of a weight stored in total pounds.
type StonePounds struct {
	Stone  int     `json:"stone"`
	Pounds float64 `json:"pounds"`
}

// TotalPounds collapses a stone+pounds reading into total pounds.
// Callers pass 0 for a missing component.
func TotalPounds(stone, pounds float64) float64 {
	return stone*PoundsPerStone + pounds
}

// StoneDisplay splits total pounds back into whole stone and the
// remaining pounds. No rounding - formatting is a presentation concern.
func StoneDisplay(totalPounds float64) StonePounds {
	return StonePounds{
		Stone:  int(math.Floor(totalPounds / PoundsPerStone)),
		Pounds: math.Mod(totalPounds, PoundsPerStone),
	}
}

func PoundsToKilograms(totalPounds float64) float64 {
	return totalPounds * KilogramsPerPound
}

func KilogramsToPounds(kilos float64) float64 {
	return kilos / KilogramsPerPound
}
