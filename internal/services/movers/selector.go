package movers

import (
	"sort"

	"github.com/bobmcallan/daybrief/internal/models"
)

// TopMovers sorts rows by percentage change descending and truncates to
// maxRows. Ties keep input order (stable sort). Rows with a nil change
// are excluded.
func TopMovers(rows []models.Row, maxRows int) []models.Row {
	valid := withChange(rows)

	sort.SliceStable(valid, func(i, j int) bool {
		return *valid[i].Change > *valid[j].Change
	})

	if maxRows >= 0 && len(valid) > maxRows {
		valid = valid[:maxRows]
	}
	return valid
}

// GainersLosers returns the top nEachSide gainers followed by the
// nEachSide worst losers, ordered so the worst loss is the final row.
// Rows with a nil change are excluded.
func GainersLosers(rows []models.Row, nEachSide int) []models.Row {
	valid := withChange(rows)

	sort.SliceStable(valid, func(i, j int) bool {
		return *valid[i].Change > *valid[j].Change
	})

	if nEachSide < 0 {
		nEachSide = 0
	}

	n := len(valid)
	gainers := valid[:min(nEachSide, n)]

	loserCount := min(nEachSide, n-len(gainers))
	losers := valid[n-loserCount:]

	out := make([]models.Row, 0, len(gainers)+loserCount)
	out = append(out, gainers...)
	out = append(out, losers...)
	return out
}

func withChange(rows []models.Row) []models.Row {
	valid := make([]models.Row, 0, len(rows))
	for _, r := range rows {
		if r.Change != nil {
			valid = append(valid, r)
		}
	}
	return valid
}
