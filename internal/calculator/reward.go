package calculator

import (
	"errors"
	"fmt"
	"math"

	"CoinStreak/internal/model"
)

// ErrPrecisionLost means float64 can no longer track single cents at the current balance.
var ErrPrecisionLost = errors.New("cash is too large to track pennies")

// Reward computes the cash paid for the given heads streak.
// The combo power is rounded up before it is multiplied by the coin value.
func Reward(coin, comboBase float64, streak int) float64 {
	if streak < 1 || streak > model.TerminalStreak {
		panic(fmt.Sprintf("calculator: streak %d outside [1,%d]", streak, model.TerminalStreak))
	}
	return coin * math.Ceil(math.Pow(comboBase, float64(streak-1)))
}

// RoundToCent rounds a dollar amount to the nearest cent.
func RoundToCent(x float64) float64 {
	return math.Round(100*x) / 100
}

// CheckCentPrecision returns ErrPrecisionLost when the next representable
// float64 above cash is a cent or more away.
func CheckCentPrecision(cash float64) error {
	next := math.Nextafter(cash, math.Inf(1))
	if next-cash >= 0.01 {
		return fmt.Errorf("%w: cash=$%.2f", ErrPrecisionLost, cash)
	}
	return nil
}
