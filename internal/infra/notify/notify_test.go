package notify

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/bankcore/internal/domain"
)

func TestOutbox_AppendsJSONLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outbox")
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	o := NewOutbox(dir, WithClock(func() time.Time { return at }))

	require.NoError(t, o.Send(context.Background(), "Ana", "deposit of 10.00 applied"))
	require.NoError(t, o.Send(context.Background(), "Bia", "loan granted"))

	f, err := os.Open(o.Path())
	require.NoError(t, err)
	defer f.Close()

	var msgs []Message
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m Message
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		msgs = append(msgs, m)
	}

	require.Len(t, msgs, 2)
	assert.Equal(t, "Ana", msgs[0].Recipient)
	assert.Equal(t, "deposit of 10.00 applied", msgs[0].Body)
	assert.True(t, msgs[0].SentAt.Equal(at))
	assert.NotEqual(t, msgs[0].ID, msgs[1].ID)
}

func TestWebhook_PostsJSON(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	require.NoError(t, NewWebhook(srv.URL).Send(context.Background(), "Ana", "hello"))
	assert.Equal(t, "Ana", got.Recipient)
	assert.Equal(t, "hello", got.Body)
}

func TestWebhook_Non2xxIsExecutionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhook(srv.URL).Send(context.Background(), "Ana", "hello")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
	assert.Contains(t, err.Error(), "502")
}

func TestWebhook_Timeout(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	err := NewWebhook(srv.URL, WithTimeout(50*time.Millisecond)).Send(context.Background(), "Ana", "slow")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, int32(1), hits.Load())
}

func TestNew_PicksChannelFromConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	_, isOutbox := New(t.TempDir(), cfg).(*Outbox)
	assert.True(t, isOutbox)

	cfg.Notifier.WebhookURL = "http://localhost:9/hook"
	_, isWebhook := New(t.TempDir(), cfg).(*Webhook)
	assert.True(t, isWebhook)
}

func TestWebhook_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, WithBreaker(2, time.Minute))
	for i := 0; i < 2; i++ {
		err := hook.Send(context.Background(), "Ana", "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	}

	err := hook.Send(context.Background(), "Ana", "hello")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
	assert.Contains(t, err.Error(), "circuit breaker open")
	assert.Equal(t, int32(2), hits.Load(), "open breaker must not reach the receiver")
}
