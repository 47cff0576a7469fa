// Package events publishes reconcile-completed events to NATS.
package events

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const (
	// JSONDataContentType is the content type of every event payload.
	JSONDataContentType = "application/json"

	// ReconcileCompletedType is the type of reconcile completion events.
	ReconcileCompletedType = "meraki.rm.reconcile.completed"
	// Source identifies this producer.
	Source = "meraki-rm"
)

// Event is a CloudEvents-style envelope.
type Event struct {
	ID              string          `json:"id"`
	Source          string          `json:"source"`
	Type            string          `json:"type"`
	Subject         string          `json:"subject,omitempty"`
	Time            time.Time       `json:"time"`
	DataContentType string          `json:"datacontenttype"`
	Data            json.RawMessage `json:"data"`
}

// ReconcileCompleted is the payload of a ReconcileCompletedType event.
type ReconcileCompleted struct {
	RequestID  string         `json:"requestId,omitempty"`
	Resource   string         `json:"resource"`
	State      string         `json:"state"`
	Scope      string         `json:"scope"`
	CheckMode  bool           `json:"checkMode"`
	Changed    bool           `json:"changed"`
	Outcome    string         `json:"outcome"`
	Operations map[string]int `json:"operations"`
	Error      string         `json:"error,omitempty"`
	DurationMS int64          `json:"durationMs"`
}

// NewReconcileCompleted wraps payload in an event addressed to its resource.
func NewReconcileCompleted(payload ReconcileCompleted) (Event, error) {
	resource := strings.TrimSpace(payload.Resource)
	if resource == "" {
		return Event{}, fmt.Errorf("resource is required")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshaling reconcile payload: %w", err)
	}
	return Event{
		ID:              "evt-" + uuid.NewString(),
		Source:          Source,
		Type:            ReconcileCompletedType,
		Subject:         resource,
		Time:            time.Now().UTC(),
		DataContentType: JSONDataContentType,
		Data:            data,
	}, nil
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Noop discards every event.
type Noop struct{}

// Publish implements Publisher.
func (Noop) Publish(context.Context, Event) error { return nil }

// Close implements Publisher.
func (Noop) Close() error { return nil }

// Config configures the NATS publisher.
type Config struct {
	URL string
	// Subject is the prefix; events go to <Subject>.<resource>.
	Subject string
	Name    string
	Timeout time.Duration
}

// NATSPublisher publishes events as core NATS messages.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	logger  zerolog.Logger

	closeOnce sync.Once
}

// NewNATSPublisher connects to the NATS server at cfg.URL.
func NewNATSPublisher(cfg Config, logger zerolog.Logger) (*NATSPublisher, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil, fmt.Errorf("nats url is required")
	}
	subject := strings.Trim(strings.TrimSpace(cfg.Subject), ".")
	if subject == "" {
		return nil, fmt.Errorf("nats subject is required")
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = Source
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	log := logger.With().Str("component", "events").Logger()
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(timeout),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}
	return &NATSPublisher{conn: conn, subject: subject, logger: log}, nil
}

// SubjectFor returns the subject an event is published on.
func SubjectFor(prefix string, event Event) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if event.Subject == "" {
		return prefix
	}
	return prefix + "." + event.Subject
}

// Publish implements Publisher.
func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	msg := nats.NewMsg(SubjectFor(p.subject, event))
	msg.Header.Set("Nats-Msg-Id", event.ID)
	msg.Header.Set("Content-Type", JSONDataContentType)
	msg.Data = data
	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publishing event %s: %w", event.ID, err)
	}
	p.logger.Debug().Str("event_id", event.ID).Str("subject", msg.Subject).Msg("event published")
	return nil
}

// Close drains the connection.
func (p *NATSPublisher) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.conn.Drain()
	})
	return err
}
