package upgrade

import "fmt"

// Track names used in events and history.
const (
	CoinTrack   = "coin"
	ChanceTrack = "chance"
	ComboTrack  = "combo"
)

// Coin is a coin denomination paid out per head.
type Coin struct {
	Name    string
	Dollars float64
}

func (c Coin) String() string { return c.Name }

// CoinTiers: cash unit per head.
var CoinTiers = []Tier[Coin]{
	{Value: Coin{"Penny", 0.01}, Cost: 0.25},
	{Value: Coin{"Nickel", 0.05}, Cost: 1.00},
	{Value: Coin{"Dime", 0.10}, Cost: 6.25},
	{Value: Coin{"Quarter", 0.25}, Cost: 100.00},
	{Value: Coin{"Dollar", 1.00}},
}

// ChanceTiers: probability of heads.
var ChanceTiers = []Tier[float64]{
	{Value: 0.20, Cost: 0.01},
	{Value: 0.25, Cost: 0.10},
	{Value: 0.30, Cost: 1},
	{Value: 0.35, Cost: 10},
	{Value: 0.40, Cost: 100},
	{Value: 0.45, Cost: 1_000},
	{Value: 0.50, Cost: 10_000},
	{Value: 0.55, Cost: 100_000},
	{Value: 0.60},
}

// ComboTiers: base of the per-streak reward growth.
var ComboTiers = []Tier[float64]{
	{Value: 1.0, Cost: 1},
	{Value: 1.5, Cost: 10},
	{Value: 2.0, Cost: 100},
	{Value: 2.5, Cost: 1_000},
	{Value: 3.0, Cost: 10_000},
	{Value: 3.5},
}

func NewCoinTrack() *Track[Coin]      { return NewTrack(CoinTrack, CoinTiers) }
func NewChanceTrack() *Track[float64] { return NewTrack(ChanceTrack, ChanceTiers) }
func NewComboTrack() *Track[float64]  { return NewTrack(ComboTrack, ComboTiers) }

// ChanceLabel formats a heads probability as a percentage.
func ChanceLabel(p float64) string { return fmt.Sprintf("%.0f%%", p*100) }

// ComboLabel formats a combo base as a multiplier.
func ComboLabel(b float64) string { return fmt.Sprintf("x%.1f", b) }
