package flipper

import "CoinStreak/internal/model"

// Flip draws once from src and returns Heads when the draw is at or below headsChance.
func Flip(src Source, headsChance float64) model.Outcome {
	if src.Float64() <= headsChance {
		return model.Heads
	}
	return model.Tails
}
