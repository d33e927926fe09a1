package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProviderStartsOnDefault(t *testing.T) {
	p := NewProvider("", 10*time.Second, decimal.NewFromInt(40))
	assert.True(t, p.CurrentRate().Equal(decimal.NewFromInt(40)))
	assert.True(t, p.FetchedAt().IsZero())
}

func TestRefreshUpdatesRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rate": "36.5"}`))
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, 5*time.Second, decimal.NewFromInt(40))
	p.Refresh(context.Background())

	assert.True(t, p.CurrentRate().Equal(decimal.RequireFromString("36.5")))
	assert.False(t, p.FetchedAt().IsZero())
}

func TestRefreshKeepsLastKnownGoodOnFailure(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server_error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed_body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "non_positive_rate",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"rate": "0"}`))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			p := NewProvider(srv.URL, 5*time.Second, decimal.NewFromInt(40))
			p.Refresh(context.Background())

			assert.True(t, p.CurrentRate().Equal(decimal.NewFromInt(40)),
				"failed fetch must not disturb the cached rate")
		})
	}
}

func TestRefreshTimesOutWithoutBlockingCaller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"rate": "99"}`))
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, 50*time.Millisecond, decimal.NewFromInt(40))

	start := time.Now()
	p.Refresh(context.Background())
	assert.Less(t, time.Since(start), 250*time.Millisecond)
	assert.True(t, p.CurrentRate().Equal(decimal.NewFromInt(40)))
}

func TestOverride(t *testing.T) {
	p := NewProvider("", 10*time.Second, decimal.NewFromInt(40))

	err := p.Override(decimal.RequireFromString("42.25"))
	assert.NoError(t, err)
	assert.True(t, p.CurrentRate().Equal(decimal.RequireFromString("42.25")))

	err = p.Override(decimal.Zero)
	assert.Error(t, err)
	assert.True(t, p.CurrentRate().Equal(decimal.RequireFromString("42.25")))
}
