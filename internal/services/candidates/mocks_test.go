package candidates

import (
	"context"
	"time"

	"github.com/bobmcallan/daybrief/internal/models"
)

// --- Mocks ---

type mockMarketClient struct {
	bars         map[string]*models.Bar
	grouped      []models.Bar
	groupedErr   error
	details      map[string]*models.TickerDetails
	tickerNews   map[string][]*models.NewsItem
	marketNews   []*models.NewsItem
	marketErr    error
	tickerErr    error
	newsRequests []string
}

func (m *mockMarketClient) GetDailyBar(_ context.Context, ticker string, _ time.Time) (*models.Bar, error) {
	return m.bars[ticker], nil
}

func (m *mockMarketClient) GetGroupedDaily(_ context.Context, _ time.Time) ([]models.Bar, error) {
	return m.grouped, m.groupedErr
}

func (m *mockMarketClient) GetTickerDetails(_ context.Context, ticker string) (*models.TickerDetails, error) {
	return m.details[ticker], nil
}

func (m *mockMarketClient) ListTickerNews(_ context.Context, ticker string, _ int) ([]*models.NewsItem, error) {
	m.newsRequests = append(m.newsRequests, ticker)
	if m.tickerErr != nil {
		return nil, m.tickerErr
	}
	return m.tickerNews[ticker], nil
}

func (m *mockMarketClient) ListMarketNews(_ context.Context, _ int) ([]*models.NewsItem, error) {
	return m.marketNews, m.marketErr
}

type mockConstituentsClient struct {
	tickers []string
	err     error
}

func (m *mockConstituentsClient) ListConstituents(_ context.Context) ([]string, error) {
	return m.tickers, m.err
}
