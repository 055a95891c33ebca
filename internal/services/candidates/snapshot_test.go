package candidates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/models"
)

func TestSnapshotSource_ExcludesInvalidBars(t *testing.T) {
	market := &mockMarketClient{
		grouped: []models.Bar{
			{Ticker: "UP", Open: 100, Close: 110},
			{Ticker: "ZERO", Open: 0, Close: 50},  // open <= 0: no change
			{Ticker: "NOCLOSE", Open: 50},         // close missing: no change
			{Ticker: "DOWN", Open: 50, Close: 45},
		},
	}

	source := NewSnapshotSource(market, common.NewSilentLogger())
	assert.Equal(t, common.ModeSnapshot, source.Mode())

	cands, err := source.Candidates(context.Background(), time.Now())
	require.NoError(t, err)

	require.Len(t, cands, 2)
	assert.Equal(t, "UP", cands[0].Ticker)
	require.NotNil(t, cands[0].Change)
	assert.InDelta(t, 10.0, *cands[0].Change, 1e-9)
	assert.Equal(t, "DOWN", cands[1].Ticker)
	require.NotNil(t, cands[1].Change)
	assert.InDelta(t, -10.0, *cands[1].Change, 1e-9)
}

func TestSnapshotSource_BulkFailure(t *testing.T) {
	market := &mockMarketClient{groupedErr: errors.New("boom")}

	source := NewSnapshotSource(market, common.NewSilentLogger())

	cands, err := source.Candidates(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Empty(t, cands)
}
