package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// Provider caches the Bs-per-USD exchange rate for the whole process.
// Readers always see the last committed value; only Refresh and Override
// write it, via an atomic swap. A failed or timed-out fetch keeps the
// last-known-good rate and never surfaces an error to sale entry.
type Provider struct {
	url     string
	timeout time.Duration
	client  *http.Client

	rate      atomic.Value // decimal.Decimal
	fetchedAt atomic.Value // time.Time
}

// rateResponse is the JSON shape of the rate endpoint.
type rateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// NewProvider creates a rate provider seeded with the configured default
// rate. url may be empty, in which case Refresh is a no-op.
func NewProvider(url string, timeout time.Duration, defaultRate decimal.Decimal) *Provider {
	p := &Provider{
		url:     url,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
	p.rate.Store(defaultRate)
	p.fetchedAt.Store(time.Time{})
	return p
}

// CurrentRate returns the last committed rate. Never blocks.
func (p *Provider) CurrentRate() decimal.Decimal {
	return p.rate.Load().(decimal.Decimal)
}

// FetchedAt returns when the rate was last successfully fetched or
// overridden; zero if still on the configured default.
func (p *Provider) FetchedAt() time.Time {
	return p.fetchedAt.Load().(time.Time)
}

// Refresh performs a single fetch attempt with the configured timeout.
// Any failure is logged and swallowed; the cached rate stands.
func (p *Provider) Refresh(ctx context.Context) {
	if p.url == "" {
		return
	}

	rate, err := p.fetch(ctx)
	if err != nil {
		log.Printf("exchange: rate fetch failed, keeping %s: %v", p.CurrentRate(), err)
		return
	}

	p.rate.Store(rate)
	p.fetchedAt.Store(time.Now())
	log.Printf("exchange: rate updated to %s", rate)
}

// Override replaces the cached rate with an operator-entered value.
func (p *Provider) Override(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return fmt.Errorf("exchange: override rate must be positive, got %s", rate)
	}
	p.rate.Store(rate)
	p.fetchedAt.Store(time.Now())
	return nil
}

func (p *Provider) fetch(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, err
	}
	if !body.Rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive rate %s", body.Rate)
	}
	return body.Rate, nil
}
