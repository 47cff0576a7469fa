package runner

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/internal/audit"
	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/events"
	"github.com/ansible-network/meraki-rm-sub001/internal/metrics"
	"github.com/ansible-network/meraki-rm-sub001/internal/mockapi"
	"github.com/ansible-network/meraki-rm-sub001/internal/policy"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/task"
	"github.com/ansible-network/meraki-rm-sub001/pkg/dashboard"
)

type capturePublisher struct {
	mu        sync.Mutex
	published []events.Event
	publishFn func(events.Event) error
}

func (p *capturePublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, event)
	if p.publishFn != nil {
		return p.publishFn(event)
	}
	return nil
}

func (p *capturePublisher) Close() error { return nil }

type fixture struct {
	mock      *mockapi.Server
	executor  *Executor
	auditBuf  *bytes.Buffer
	metrics   *metrics.Metrics
	publisher *capturePublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mock := mockapi.New(nil)
	srv := httptest.NewServer(mock.Router())
	t.Cleanup(srv.Close)

	client, err := dashboard.New(dashboard.Config{
		BaseURL:        srv.URL + mockapi.APIPrefix,
		APIKey:         "test-key",
		RetryBaseDelay: time.Millisecond,
	})
	require.NoError(t, err)

	f := &fixture{
		mock:      mock,
		auditBuf:  &bytes.Buffer{},
		metrics:   metrics.New(),
		publisher: &capturePublisher{},
	}
	f.executor = NewExecutor(reconcile.New(client, nil, zerolog.Nop()), zerolog.Nop(),
		WithAudit(audit.NewLogger(zerolog.New(f.auditBuf))),
		WithMetrics(f.metrics),
		WithPublisher(f.publisher),
		WithFacts(client),
		WithMode(policy.ModeReadWrite),
	)
	return f
}

func (f *fixture) auditEntries(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(f.auditBuf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestExecuteRecordsSideEffects(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	res, err := f.executor.Execute(context.Background(), Request{
		Invocation: reconcile.Invocation{
			Resource: "vlan",
			State:    catalog.Merged,
			Scope:    "N_1",
			Config:   []map[string]any{{"vlan_id": "10", "name": "data", "subnet": "10.0.10.0/24"}},
		},
		RequestID: "req-1",
		Transport: "cli",
	})
	require.NoError(t, err)
	assert.True(t, res.Changed)

	entries := f.auditEntries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.Equal(t, "vlan", entries[0]["resource"])
	assert.Equal(t, "read-write", entries[0]["mode"])
	assert.Equal(t, reconcile.PhaseCompleted, entries[0]["outcome"])
	assert.Equal(t, []any{"10"}, entries[0]["targets"])

	require.Len(t, f.publisher.published, 1)
	event := f.publisher.published[0]
	assert.Equal(t, events.ReconcileCompletedType, event.Type)
	var payload events.ReconcileCompleted
	require.NoError(t, json.Unmarshal(event.Data, &payload))
	assert.Equal(t, "req-1", payload.RequestID)
	assert.True(t, payload.Changed)
	assert.Equal(t, 1, payload.Operations["create"])

	count, err := testutil.GatherAndCount(f.metrics.Registry(), "meraki_rm_reconciles_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExecuteRecordsFailures(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	res, err := f.executor.Execute(context.Background(), Request{
		Invocation: reconcile.Invocation{
			Resource: "vlan",
			State:    catalog.Merged,
			Scope:    "N_1",
			Config:   []map[string]any{{"vlan_id": "10", "bogus": true}},
		},
	})
	require.Error(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Failed)

	entries := f.auditEntries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, string(reconcile.KindValidation), entries[0]["error_kind"])
	assert.Equal(t, float64(400), entries[0]["status_code"])

	require.Len(t, f.publisher.published, 1)
	var payload events.ReconcileCompleted
	require.NoError(t, json.Unmarshal(f.publisher.published[0].Data, &payload))
	assert.Equal(t, reconcile.PhaseFailed, payload.Outcome)
	assert.NotEmpty(t, payload.Error)
}

func TestExecuteIgnoresPublishFailures(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.publisher.publishFn = func(events.Event) error { return errors.New("broker down") }

	res, err := f.executor.Execute(context.Background(), Request{
		Invocation: reconcile.Invocation{Resource: "vlan", State: catalog.Gathered, Scope: "N_1"},
	})
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestNewExecutorWithoutSideEffects(t *testing.T) {
	t.Parallel()

	mock := mockapi.New(nil)
	srv := httptest.NewServer(mock.Router())
	t.Cleanup(srv.Close)
	client, err := dashboard.New(dashboard.Config{BaseURL: srv.URL + mockapi.APIPrefix, APIKey: "k"})
	require.NoError(t, err)

	executor := NewExecutor(reconcile.New(client, nil, zerolog.Nop()), zerolog.Nop())
	res, err := executor.Execute(context.Background(), Request{
		Invocation: reconcile.Invocation{Resource: "vlan", State: catalog.Gathered, Scope: "N_1"},
	})
	require.NoError(t, err)
	assert.Equal(t, reconcile.PhaseCompleted, res.Outcome)
}

func loadTasks(t *testing.T, doc string) []task.Task {
	t.Helper()
	tasks, err := task.LoadPlaybook(strings.NewReader(doc))
	require.NoError(t, err)
	return tasks
}

func TestRunPlaybookGroupsAndFailures(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tasks := loadTasks(t, `
- name: bad vlan
  meraki_appliance_vlans:
    network_id: N_1
    config:
      - vlan_id: "10"
        bogus: true
- name: skipped vlan
  meraki_appliance_vlans:
    network_id: N_1
    config:
      - vlan_id: "20"
        name: voice
        subnet: 10.0.20.0/24
- name: other network
  cisco.meraki_rm.meraki_appliance_vlans:
    network_id: N_2
    config:
      - vlan_id: "30"
        name: guest
        subnet: 10.0.30.0/24
- name: unknown module
  meraki_nope:
    network_id: N_1
- name: facts
  meraki_facts:
    organization_id: O_100
    gather_subset: [networks]
`)

	outcomes := f.executor.RunPlaybook(context.Background(), tasks, RunOptions{Concurrency: 2, Transport: "cli"})
	require.Len(t, outcomes, 5)

	assert.Equal(t, reconcile.KindValidation, reconcile.KindOf(outcomes[0].Err))
	assert.True(t, outcomes[0].Failed())
	assert.True(t, outcomes[1].Skipped)
	assert.Nil(t, outcomes[1].Result)

	require.NoError(t, outcomes[2].Err)
	assert.True(t, outcomes[2].Changed())
	assert.Equal(t, "N_2", outcomes[2].Result.Scope)

	require.Error(t, outcomes[3].Err)
	assert.Contains(t, outcomes[3].Err.Error(), "meraki_nope")

	require.NoError(t, outcomes[4].Err)
	networks := outcomes[4].Facts["meraki_networks"].([]map[string]any)
	assert.Len(t, networks, 2)

	assert.Equal(t, Recap{OK: 2, Changed: 1, Failed: 2, Skipped: 1}, Summarize(outcomes))
}

func TestRunPlaybookIgnoreErrorsContinuesGroup(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tasks := loadTasks(t, `
- meraki_appliance_vlans:
    network_id: N_1
    config:
      - vlan_id: "10"
        bogus: true
  ignore_errors: true
- meraki_appliance_vlans:
    network_id: N_1
    config:
      - vlan_id: "20"
        name: voice
        subnet: 10.0.20.0/24
`)

	outcomes := f.executor.RunPlaybook(context.Background(), tasks, RunOptions{})
	require.Len(t, outcomes, 2)
	assert.Error(t, outcomes[0].Err)
	assert.False(t, outcomes[0].Failed())
	require.NoError(t, outcomes[1].Err)
	assert.True(t, outcomes[1].Changed())
	assert.Positive(t, outcomes[1].Duration)
	assert.Equal(t, Recap{OK: 1, Changed: 1, Ignored: 1}, Summarize(outcomes))
}

func TestRunPlaybookCheckModeAndPolicy(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	guard, err := policy.NewGuard(policy.ModeReadOnly, false)
	require.NoError(t, err)
	pol := &policy.Policy{Guard: guard}

	tasks := loadTasks(t, `
- meraki_appliance_vlans:
    network_id: N_1
    config:
      - vlan_id: "10"
        name: data
        subnet: 10.0.10.0/24
- meraki_appliance_vlans:
    network_id: N_2
    config:
      - vlan_id: "10"
        name: data
        subnet: 10.0.10.0/24
  check_mode: true
`)

	outcomes := f.executor.RunPlaybook(context.Background(), tasks, RunOptions{Policy: pol})
	require.Len(t, outcomes, 2)
	assert.True(t, policy.IsDenied(outcomes[0].Err))

	require.NoError(t, outcomes[1].Err)
	assert.True(t, outcomes[1].Result.CheckMode)
	assert.True(t, outcomes[1].Changed())
	assert.Empty(t, f.mock.Mutations())
}

func TestDecodeFactsRequest(t *testing.T) {
	t.Parallel()

	req, err := decodeFactsRequest(map[string]any{"organization_id": " O_1 "})
	require.NoError(t, err)
	assert.Equal(t, "O_1", req.OrganizationID)
	assert.Equal(t, []string{"all"}, req.GatherSubset)

	_, err = decodeFactsRequest(map[string]any{"org": "O_1"})
	assert.Equal(t, reconcile.KindValidation, reconcile.KindOf(err))

	_, err = decodeFactsRequest(map[string]any{"gather_subset": []any{"clients"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown subset")
}
