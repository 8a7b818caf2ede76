package batch

import "CoinStreak/internal/model"

// Summary aggregates a batch of runs.
type Summary struct {
	Runs      int             `json:"runs"`
	MinFlips  int             `json:"min_flips"`
	MaxFlips  int             `json:"max_flips"`
	MeanFlips float64         `json:"mean_flips"`
	MeanCash  float64         `json:"mean_cash"`
	Histogram model.Histogram `json:"histogram"`
}

// Summarize combines the outcomes of a batch. An empty batch yields a zero Summary.
func Summarize(outcomes []*Outcome) Summary {
	var s Summary
	if len(outcomes) == 0 {
		return s
	}
	s.Runs = len(outcomes)
	s.MinFlips = outcomes[0].Result.TotalFlips

	totalFlips, totalCash := 0, 0.0
	for _, o := range outcomes {
		f := o.Result.TotalFlips
		totalFlips += f
		totalCash += o.Final.Cash
		if f < s.MinFlips {
			s.MinFlips = f
		}
		if f > s.MaxFlips {
			s.MaxFlips = f
		}
		for i, c := range o.Result.Histogram {
			s.Histogram[i] += c
		}
	}
	s.MeanFlips = float64(totalFlips) / float64(s.Runs)
	s.MeanCash = totalCash / float64(s.Runs)
	return s
}
