// Package notify delivers account notifications, either to a local JSONL outbox or
// to an HTTP webhook.
package notify

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/ports"
)

const defaultOutboxDir = "outbox"

// Message is what every channel delivers.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Recipient string    `json:"recipient"`
	Body      string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

// New picks the channel from configuration: a webhook when a URL is set, the
// workspace outbox otherwise.
func New(root string, cfg domain.Config) ports.Notifier {
	if url := strings.TrimSpace(cfg.Notifier.WebhookURL); url != "" {
		return NewWebhook(url, WithTimeout(cfg.Notifier.Timeout))
	}

	dir := cfg.Paths.OutboxDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultOutboxDir
	}
	return NewOutbox(filepath.Join(root, dir))
}

func newMessage(id uuid.UUID, now time.Time, recipient, body string) Message {
	return Message{ID: id, Recipient: recipient, Body: body, SentAt: now.UTC()}
}
