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

func TestIndexSource_KeepsOnlyEarningsHeadlines(t *testing.T) {
	constituents := &mockConstituentsClient{tickers: []string{"AAA", "BBB", "CCC"}}
	market := &mockMarketClient{
		tickerNews: map[string][]*models.NewsItem{
			"AAA": {{Title: "AAA beats revenue estimates"}},
			"BBB": {{Title: "BBB opens new office"}}, // no keyword
			// CCC has no news at all
		},
	}

	source := NewIndexSource(constituents, market, 2, common.NewSilentLogger())
	assert.Equal(t, common.ModeIndex, source.Mode())

	cands, err := source.Candidates(context.Background(), time.Now())
	require.NoError(t, err)

	require.Len(t, cands, 1)
	assert.Equal(t, "AAA", cands[0].Ticker)
	assert.Equal(t, "AAA beats revenue estimates", cands[0].Headline)

	// Every constituent was checked once.
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, market.newsRequests)
}

func TestIndexSource_ConstituentsFailure(t *testing.T) {
	constituents := &mockConstituentsClient{err: errors.New("boom")}

	source := NewIndexSource(constituents, &mockMarketClient{}, 2, common.NewSilentLogger())

	cands, err := source.Candidates(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Empty(t, cands)
}

func TestIndexSource_NewsLookupFailureSkipsTicker(t *testing.T) {
	constituents := &mockConstituentsClient{tickers: []string{"AAA"}}
	market := &mockMarketClient{tickerErr: errors.New("rate limited")}

	source := NewIndexSource(constituents, market, 2, common.NewSilentLogger())

	cands, err := source.Candidates(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, cands)
}
