package movers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/daybrief/internal/models"
)

func rowsOf(pairs ...any) []models.Row {
	rows := make([]models.Row, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		ticker := pairs[i].(string)
		change := pairs[i+1].(float64)
		rows = append(rows, models.Row{Ticker: ticker, Change: &change})
	}
	return rows
}

func tickersOf(rows []models.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Ticker
	}
	return out
}

func TestTopMovers_SortsDescendingAndTruncates(t *testing.T) {
	rows := rowsOf("A", 1.5, "B", -3.0, "C", 8.2, "D", 0.1, "E", 4.4)

	top := TopMovers(rows, 3)

	assert.Equal(t, []string{"C", "E", "A"}, tickersOf(top))
}

func TestTopMovers_FewerRowsThanLimit(t *testing.T) {
	rows := rowsOf("A", 1.0, "B", 2.0)

	top := TopMovers(rows, 12)

	assert.Equal(t, []string{"B", "A"}, tickersOf(top))
}

func TestTopMovers_StableTies(t *testing.T) {
	rows := rowsOf("A", 2.0, "B", 2.0, "C", 2.0)

	top := TopMovers(rows, 3)

	assert.Equal(t, []string{"A", "B", "C"}, tickersOf(top))
}

func TestTopMovers_ExcludesNilChange(t *testing.T) {
	change := 1.0
	rows := []models.Row{
		{Ticker: "A", Change: &change},
		{Ticker: "B"},
	}

	top := TopMovers(rows, 12)

	assert.Equal(t, []string{"A"}, tickersOf(top))
}

func TestGainersLosers_WorstLossLast(t *testing.T) {
	rows := rowsOf("A", 5.0, "B", -1.0, "C", 9.0, "D", -7.0, "E", 2.0, "F", -4.0)

	out := GainersLosers(rows, 2)

	require.Len(t, out, 4)
	assert.Equal(t, []string{"C", "A", "F", "D"}, tickersOf(out))
	assert.InDelta(t, -7.0, *out[3].Change, 1e-9)
}

func TestGainersLosers_SmallUniverse(t *testing.T) {
	rows := rowsOf("A", 3.0, "B", -2.0)

	out := GainersLosers(rows, 8)

	// Both sides drain the same pool without duplicating rows.
	assert.Equal(t, []string{"A", "B"}, tickersOf(out))
}
