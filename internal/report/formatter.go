package report

import (
	"fmt"
	"math"
	"strings"

	"CoinStreak/internal/batch"
	"CoinStreak/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Dollars formats an amount as $1234.56.
func Dollars(x float64) string {
	return "$" + decimal.NewFromFloat(x).StringFixed(2)
}

// FormatRun formats the end-of-run summary for one outcome.
func FormatRun(o *batch.Outcome) string {
	var b strings.Builder
	f := o.Final

	b.WriteString(fmt.Sprintf("Got %d-Heads in %s flips:\n", model.TerminalStreak, humanize.Comma(int64(o.Result.TotalFlips))))
	b.WriteString(fmt.Sprintf("   Odds: %.2f%%\n", f.Chance.Value*100))
	b.WriteString(fmt.Sprintf("   Coin: %s\n", f.Coin.Label))
	b.WriteString(fmt.Sprintf("  Combo: %s\n", f.Combo.Label))
	b.WriteString(fmt.Sprintf("   Cash: %s\n", Dollars(f.Cash)))
	writeHistogram(&b, o.Result.Histogram)
	return b.String()
}

// FormatBatch formats the aggregate of a multi-run batch.
func FormatBatch(s batch.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Batch of %d runs:\n", s.Runs))
	b.WriteString(fmt.Sprintf("   Flips: min %s, mean %s, max %s\n",
		humanize.Comma(int64(s.MinFlips)),
		humanize.Comma(int64(math.Round(s.MeanFlips))),
		humanize.Comma(int64(s.MaxFlips))))
	b.WriteString(fmt.Sprintf("   Mean cash: %s\n", Dollars(s.MeanCash)))
	writeHistogram(&b, s.Histogram)
	return b.String()
}

func writeHistogram(b *strings.Builder, h model.Histogram) {
	for i, count := range h {
		if count == 0 {
			continue
		}
		if i == 0 {
			b.WriteString(fmt.Sprintf("     tails: %d time(s)\n", count))
		} else {
			b.WriteString(fmt.Sprintf("    %2d-run: %d time(s)\n", i, count))
		}
	}
}
