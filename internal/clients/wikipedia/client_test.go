package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/daybrief/internal/common"
)

const constituentsPage = `<html><body>
<table id="constituents" class="wikitable">
<tbody>
<tr><th>Symbol</th><th>Security</th></tr>
<tr><td>MMM</td><td>3M</td></tr>
<tr><td>brk.b</td><td>Berkshire Hathaway</td></tr>
<tr><td> AOS </td><td>A. O. Smith</td></tr>
<tr><td>MMM</td><td>3M duplicate row</td></tr>
<tr><td></td><td>blank symbol</td></tr>
</tbody>
</table>
</body></html>`

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "BRK-B", NormalizeSymbol("BRK.B"))
	assert.Equal(t, "AAPL", NormalizeSymbol(" aapl "))
	assert.Equal(t, "BF-B", NormalizeSymbol("bf.b"))
	assert.Equal(t, "", NormalizeSymbol("  "))
}

func TestListConstituents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(constituentsPage))
	}))
	defer srv.Close()

	client := NewClient(WithURL(srv.URL), WithLogger(common.NewSilentLogger()))

	tickers, err := client.ListConstituents(context.Background())
	require.NoError(t, err)

	// Normalized, deduplicated, page order preserved.
	assert.Equal(t, []string{"MMM", "BRK-B", "AOS"}, tickers)
}

func TestListConstituents_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(WithURL(srv.URL), WithLogger(common.NewSilentLogger()))

	_, err := client.ListConstituents(context.Background())
	assert.Error(t, err)
}

func TestListConstituents_NoTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><p>nothing here</p></body></html>"))
	}))
	defer srv.Close()

	client := NewClient(WithURL(srv.URL), WithLogger(common.NewSilentLogger()))

	_, err := client.ListConstituents(context.Background())
	assert.Error(t, err)
}
