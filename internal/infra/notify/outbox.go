package notify

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/ports"
)

// Outbox appends messages to <dir>/messages.jsonl.
type Outbox struct {
	dir   string
	now   func() time.Time
	newID func() uuid.UUID

	mu sync.Mutex
}

type OutboxOption func(*Outbox)

// WithClock is useful for tests.
func WithClock(now func() time.Time) OutboxOption {
	return func(o *Outbox) { o.now = now }
}

func NewOutbox(dir string, opts ...OutboxOption) *Outbox {
	o := &Outbox{dir: dir, now: time.Now, newID: uuid.New}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ ports.Notifier = (*Outbox)(nil)

func (o *Outbox) Path() string {
	return filepath.Join(o.dir, "messages.jsonl")
}

func (o *Outbox) Send(ctx context.Context, recipient, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(newMessage(o.newID(), o.now(), recipient, message))
	if err != nil {
		return &domain.OpError{Op: "outbox.marshal", Kind: domain.KindExecution, Err: err}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return &domain.OpError{Op: "outbox.mkdir", Kind: domain.KindExecution, Path: o.dir, Err: err}
	}

	path := o.Path()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return &domain.OpError{Op: "outbox.open", Kind: domain.KindExecution, Path: path, Err: err}
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return &domain.OpError{Op: "outbox.write", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}
