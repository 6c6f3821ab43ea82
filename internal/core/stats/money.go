package stats

import (
	"fmt"
	"math"
)

// FormatMoney renders a dollar amount in the dashboard's compact style:
// values >= 1,000,000 as $X.XM (one decimal), values >= 1,000 as $XK
// (nearest thousand), otherwise the literal dollar amount. Rounding is
// half away from zero.
func FormatMoney(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.1fM", math.Round(amount/100_000)/10)
	case amount >= 1_000:
		return fmt.Sprintf("$%dK", int(math.Round(amount/1_000)))
	default:
		return fmt.Sprintf("$%d", int(math.Round(amount)))
	}
}
