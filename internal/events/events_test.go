package events

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReconcileCompleted(t *testing.T) {
	t.Parallel()

	event, err := NewReconcileCompleted(ReconcileCompleted{
		RequestID:  "req-1",
		Resource:   "vlan",
		State:      "merged",
		Scope:      "N_1",
		Changed:    true,
		Outcome:    "completed",
		Operations: map[string]int{"create": 1},
		DurationMS: 12,
	})
	require.NoError(t, err)

	assert.Contains(t, event.ID, "evt-")
	assert.Equal(t, Source, event.Source)
	assert.Equal(t, ReconcileCompletedType, event.Type)
	assert.Equal(t, "vlan", event.Subject)
	assert.Equal(t, JSONDataContentType, event.DataContentType)
	assert.WithinDuration(t, time.Now(), event.Time, time.Minute)

	var payload ReconcileCompleted
	require.NoError(t, json.Unmarshal(event.Data, &payload))
	assert.Equal(t, "N_1", payload.Scope)
	assert.Equal(t, 1, payload.Operations["create"])

	other, err := NewReconcileCompleted(ReconcileCompleted{Resource: "vlan"})
	require.NoError(t, err)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestNewReconcileCompletedRequiresResource(t *testing.T) {
	t.Parallel()

	_, err := NewReconcileCompleted(ReconcileCompleted{Resource: "  "})
	require.Error(t, err)
}

func TestSubjectFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "meraki.rm.events.vlan", SubjectFor("meraki.rm.events.", Event{Subject: "vlan"}))
	assert.Equal(t, "meraki.rm.events", SubjectFor(" meraki.rm.events ", Event{}))
}

func TestNewNATSPublisherValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := NewNATSPublisher(Config{Subject: "x"}, zerolog.Nop())
	require.ErrorContains(t, err, "url is required")

	_, err = NewNATSPublisher(Config{URL: "nats://127.0.0.1:4222", Subject: "."}, zerolog.Nop())
	require.ErrorContains(t, err, "subject is required")
}

func TestNewNATSPublisherUnreachable(t *testing.T) {
	t.Parallel()

	_, err := NewNATSPublisher(Config{
		URL:     "nats://127.0.0.1:1",
		Subject: "meraki.rm.events",
		Timeout: 200 * time.Millisecond,
	}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to nats")
}

func TestNoop(t *testing.T) {
	t.Parallel()

	var p Publisher = Noop{}
	require.NoError(t, p.Publish(context.Background(), Event{}))
	require.NoError(t, p.Close())
}
