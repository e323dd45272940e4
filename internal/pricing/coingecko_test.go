package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuoteLive(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		w.Write([]byte(`{"bitcoin":{"usd":65432.1}}`))
	}))
	defer srv.Close()

	c := NewCoinGecko(srv.URL, time.Second, zap.NewNop())
	q := c.Quote(context.Background(), "BTC")

	require.True(t, q.Live)
	assert.True(t, q.Price.Equal(decimal.RequireFromString("65432.1")))
}

func TestQuoteFallbackOnUnreachableEndpoint(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewCoinGecko(srv.URL, time.Second, zap.NewNop())
	q := c.Quote(context.Background(), "BTC")

	assert.False(t, q.Live)
	assert.True(t, q.Price.Equal(decimal.NewFromInt(42000)))
}

func TestQuoteFallbackOnBadPayload(t *testing.T) {
	t.Parallel()

	cases := map[string]http.HandlerFunc{
		"malformed json": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"bitcoin":`))
		},
		"missing key": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ethereum":{"usd":1}}`))
		},
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	}

	for name, handler := range cases {
		handler := handler
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(handler)
			defer srv.Close()

			c := NewCoinGecko(srv.URL, time.Second, zap.NewNop())
			q := c.Quote(context.Background(), "BTC")

			assert.False(t, q.Live)
			assert.True(t, q.Price.Equal(decimal.NewFromInt(42000)))
		})
	}
}

func TestQuoteUnknownSymbol(t *testing.T) {
	t.Parallel()

	c := NewCoinGecko("http://127.0.0.1:0", time.Second, zap.NewNop())
	q := c.Quote(context.Background(), "Other")

	assert.False(t, q.Live)
	assert.True(t, q.Price.IsZero())
}
