package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/ports"
)

const (
	defaultWebhookTimeout = 5 * time.Second
	defaultTripAfter      = 5
	defaultCooldown       = 30 * time.Second
)

// Webhook POSTs each message as JSON to a fixed URL. Any 2xx is a success.
// After tripAfter consecutive failures the breaker opens and sends fail fast
// until the cooldown elapses.
type Webhook struct {
	url     string
	client  *http.Client
	timeout time.Duration
	now     func() time.Time
	newID   func() uuid.UUID

	tripAfter uint32
	cooldown  time.Duration
	breaker   *gobreaker.CircuitBreaker
}

type WebhookOption func(*Webhook)

// WithTimeout bounds each delivery. Zero keeps the default.
func WithTimeout(d time.Duration) WebhookOption {
	return func(w *Webhook) {
		if d > 0 {
			w.timeout = d
		}
	}
}

// WithHTTPClient sets a custom client (useful for tests).
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *Webhook) { w.client = c }
}

// WithBreaker sets how many consecutive failures open the breaker and how long it
// stays open.
func WithBreaker(tripAfter uint32, cooldown time.Duration) WebhookOption {
	return func(w *Webhook) {
		if tripAfter > 0 {
			w.tripAfter = tripAfter
		}
		if cooldown > 0 {
			w.cooldown = cooldown
		}
	}
}

func NewWebhook(url string, opts ...WebhookOption) *Webhook {
	w := &Webhook{
		url:       url,
		timeout:   defaultWebhookTimeout,
		now:       time.Now,
		newID:     uuid.New,
		tripAfter: defaultTripAfter,
		cooldown:  defaultCooldown,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.client == nil {
		w.client = newClient(w.timeout)
	}
	w.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "webhook",
		Timeout: w.cooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= w.tripAfter
		},
	})
	return w
}

var _ ports.Notifier = (*Webhook)(nil)

func (w *Webhook) Send(ctx context.Context, recipient, message string) error {
	body, err := json.Marshal(newMessage(w.newID(), w.now(), recipient, message))
	if err != nil {
		return &domain.OpError{Op: "webhook.marshal", Kind: domain.KindExecution, Err: err}
	}

	_, err = w.breaker.Execute(func() (interface{}, error) {
		return nil, w.post(ctx, body)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &domain.OpError{
			Op:   "webhook.send",
			Kind: domain.KindExecution,
			Path: w.url,
			Err:  fmt.Errorf("receiver unavailable (circuit breaker open): %w", err),
		}
	}
	return err
}

func (w *Webhook) post(ctx context.Context, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return &domain.OpError{Op: "webhook.request", Kind: domain.KindInvalidConfig, Path: w.url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "bankcore-webhook/1.0")

	resp, err := w.client.Do(req)
	if err != nil {
		return &domain.OpError{Op: "webhook.send", Kind: domain.KindExecution, Path: w.url, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.OpError{
			Op:   "webhook.send",
			Kind: domain.KindExecution,
			Path: w.url,
			Err:  fmt.Errorf("receiver returned status %d", resp.StatusCode),
		}
	}
	return nil
}

func newClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          10,
		},
	}
}
