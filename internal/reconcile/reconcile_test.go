package reconcile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/mockapi"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
	"github.com/ansible-network/meraki-rm-sub001/pkg/dashboard"
)

type harness struct {
	mock   *mockapi.Server
	client *dashboard.Client
	rec    *Reconciler
}

func newHarness(t *testing.T) *harness {
	return newHarnessWith(t, nil)
}

// newHarnessWith serves the mock behind wrap, when set.
func newHarnessWith(t *testing.T, wrap func(http.Handler) http.Handler) *harness {
	t.Helper()
	mock := mockapi.New(nil)
	var handler http.Handler = mock.Router()
	if wrap != nil {
		handler = wrap(handler)
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := dashboard.New(dashboard.Config{
		BaseURL:        srv.URL + mockapi.APIPrefix,
		APIKey:         "test-key",
		MaxRetries:     2,
		RetryBaseDelay: time.Millisecond,
	})
	require.NoError(t, err)

	return &harness{mock: mock, client: client, rec: New(client, nil, zerolog.Nop())}
}

func (h *harness) seed(t *testing.T, path string, records ...map[string]any) {
	t.Helper()
	require.NoError(t, h.mock.Seed(path, records...))
	h.mock.ResetRequests()
}

func vlanInvocation(state catalog.State, config ...map[string]any) Invocation {
	return Invocation{Resource: "vlan", State: state, Scope: "N_CHECK", Config: config}
}

const vlansPath = "/networks/N_CHECK/appliance/vlans"

func TestMergedCreate(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	res, err := h.rec.Reconcile(context.Background(), vlanInvocation(catalog.Merged,
		map[string]any{"vlan_id": "100", "name": "Test", "subnet": "192.168.128.0/24"},
	), TaskContext{})
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Empty(t, res.Before)
	require.Len(t, res.Plan, 1)
	assert.Equal(t, catalog.OpCreate, res.Plan[0].Kind)
	require.Len(t, res.After, 1)
	assert.Equal(t, "100", res.After[0]["vlan_id"])
	assert.Equal(t, "Test", res.After[0]["name"])
	assert.Equal(t, "192.168.128.0/24", res.After[0]["subnet"])
	assert.Equal(t, res.After, res.Config)
	assert.Equal(t, PhaseCompleted, res.Outcome)
	assert.False(t, res.Failed)

	mutations := h.mock.Mutations()
	require.Len(t, mutations, 1)
	assert.Equal(t, http.MethodPost, mutations[0].Method)
	assert.Equal(t, vlansPath, mutations[0].Path)
	assert.Equal(t, transform.Record{"id": "100", "name": "Test", "subnet": "192.168.128.0/24"}, mutations[0].Body)
}

func TestMergedNoOp(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t, vlansPath, map[string]any{"id": "100", "name": "Test", "subnet": "192.168.128.0/24", "applianceIp": "192.168.128.1"})

	res, err := h.rec.Reconcile(context.Background(), vlanInvocation(catalog.Merged,
		map[string]any{"vlan_id": "100", "name": "Test", "subnet": "192.168.128.0/24"},
	), TaskContext{})
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Empty(t, res.Plan)
	assert.Equal(t, res.Before, res.After)
	assert.Empty(t, h.mock.Mutations())
}

func TestReplacedOverwrite(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t, vlansPath, map[string]any{"id": "100", "name": "Old", "subnet": "10.0.0.0/24"})

	res, err := h.rec.Reconcile(context.Background(), vlanInvocation(catalog.Replaced,
		map[string]any{"vlan_id": "100", "name": "New"},
	), TaskContext{})
	require.NoError(t, err)

	assert.True(t, res.Changed)
	mutations := h.mock.Mutations()
	require.Len(t, mutations, 1)
	assert.Equal(t, http.MethodPut, mutations[0].Method)
	assert.Equal(t, vlansPath+"/100", mutations[0].Path)
	assert.Equal(t, transform.Record{"name": "New"}, mutations[0].Body)
	require.Len(t, res.After, 1)
	assert.Equal(t, "New", res.After[0]["name"])
}

func TestMergedUpdateSendsUnion(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t, vlansPath, map[string]any{"id": "100", "name": "Old", "subnet": "10.0.0.0/24"})

	_, err := h.rec.Reconcile(context.Background(), vlanInvocation(catalog.Merged,
		map[string]any{"vlan_id": "100", "name": "New"},
	), TaskContext{})
	require.NoError(t, err)

	mutations := h.mock.Mutations()
	require.Len(t, mutations, 1)
	assert.Equal(t, transform.Record{"name": "New", "subnet": "10.0.0.0/24"}, mutations[0].Body)
}

func TestOverriddenDeletesSurplus(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t, vlansPath,
		map[string]any{"id": "100", "name": "A"},
		map[string]any{"id": "200", "name": "B"},
		map[string]any{"id": "300", "name": "C"},
	)

	res, err := h.rec.Reconcile(context.Background(), vlanInvocation(catalog.Overridden,
		map[string]any{"vlan_id": "100", "name": "A"},
		map[string]any{"vlan_id": "200", "name": "B2"},
	), TaskContext{})
	require.NoError(t, err)

	assert.True(t, res.Changed)
	mutations := h.mock.Mutations()
	require.Len(t, mutations, 2)
	assert.Equal(t, http.MethodPut, mutations[0].Method)
	assert.Equal(t, vlansPath+"/200", mutations[0].Path)
	assert.Equal(t, http.MethodDelete, mutations[1].Method)
	assert.Equal(t, vlansPath+"/300", mutations[1].Path)

	ids := make([]string, 0, len(res.After))
	for _, v := range res.After {
		ids = append(ids, transform.KeyString(v["vlan_id"]))
	}
	assert.ElementsMatch(t, []string{"100", "200"}, ids)
}

func TestOverriddenCreatesBeforeDeletes(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t, vlansPath,
		map[string]any{"id": "100", "name": "A"},
		map[string]any{"id": "300", "name": "C"},
	)

	res, err := h.rec.Reconcile(context.Background(), vlanInvocation(catalog.Overridden,
		map[string]any{"vlan_id": "100", "name": "A"},
		map[string]any{"vlan_id": "400", "name": "D", "subnet": "10.4.0.0/24"},
	), TaskContext{})
	require.NoError(t, err)

	assert.True(t, res.Changed)
	require.Len(t, res.Plan, 2)
	assert.Equal(t, catalog.OpCreate, res.Plan[0].Kind)
	assert.Equal(t, catalog.OpDelete, res.Plan[1].Kind)

	mutations := h.mock.Mutations()
	require.Len(t, mutations, 2)
	assert.Equal(t, http.MethodPost, mutations[0].Method)
	assert.Equal(t, vlansPath, mutations[0].Path)
	assert.Equal(t, http.MethodDelete, mutations[1].Method)
	assert.Equal(t, vlansPath+"/300", mutations[1].Path)

	ids := make([]string, 0, len(res.After))
	for _, v := range res.After {
		ids = append(ids, transform.KeyString(v["vlan_id"]))
	}
	assert.ElementsMatch(t, []string{"100", "400"}, ids)
}

func TestReorderedRulesAreUpdated(t *testing.T) {
	t.Parallel()

	const firewallPath = "/networks/N_FW/appliance/firewall/l3FirewallRules"
	ruleA := map[string]any{"comment": "A", "policy": "allow", "protocol": "tcp", "destCidr": "10.0.0.0/8"}
	ruleB := map[string]any{"comment": "B", "policy": "deny", "protocol": "any", "destCidr": "Any"}

	for _, state := range []catalog.State{catalog.Merged, catalog.Replaced} {
		state := state
		t.Run(string(state), func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			require.NoError(t, h.mock.SeedSingleton(firewallPath, map[string]any{"rules": []any{ruleA, ruleB}}))
			h.mock.ResetRequests()

			inv := Invocation{
				Resource: "firewall",
				State:    state,
				Scope:    "N_FW",
				Config:   []map[string]any{{"rules": []any{ruleB, ruleA}}},
			}
			res, err := h.rec.Reconcile(context.Background(), inv, TaskContext{})
			require.NoError(t, err)

			assert.True(t, res.Changed)
			require.Len(t, res.Plan, 1)
			assert.Equal(t, catalog.OpUpdate, res.Plan[0].Kind)

			mutations := h.mock.Mutations()
			require.Len(t, mutations, 1)
			assert.Equal(t, http.MethodPut, mutations[0].Method)
			rules, ok := mutations[0].Body["rules"].([]any)
			require.True(t, ok)
			require.Len(t, rules, 2)
			assert.Equal(t, "B", rules[0].(map[string]any)["comment"])

			h.mock.ResetRequests()
			again, err := h.rec.Reconcile(context.Background(), inv, TaskContext{})
			require.NoError(t, err)
			assert.False(t, again.Changed)
			assert.Empty(t, h.mock.Mutations())
		})
	}
}

func TestCanonicalKeyResolution(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t, "/organizations/O_1/policyObjects",
		map[string]any{"id": "PO_42", "name": "BlockList", "category": "network", "type": "cidr", "cidr": "1.2.3.0/24"})

	res, err := h.rec.Reconcile(context.Background(), Invocation{
		Resource: "policy_object",
		State:    catalog.Merged,
		Scope:    "O_1",
		Config:   []map[string]any{{"name": "BlockList", "cidr": "1.2.3.0/25"}},
	}, TaskContext{})
	require.NoError(t, err)

	require.Len(t, res.Plan, 1)
	assert.Equal(t, catalog.OpUpdate, res.Plan[0].Kind)
	assert.Equal(t, "PO_42", res.Plan[0].ID)

	mutations := h.mock.Mutations()
	require.Len(t, mutations, 1)
	assert.Equal(t, "/organizations/O_1/policyObjects/PO_42", mutations[0].Path)
	require.Len(t, res.After, 1)
	assert.Equal(t, "1.2.3.0/25", res.After[0]["cidr"])
	assert.Equal(t, "PO_42", res.After[0]["policy_object_id"])
}

func TestGatherFirstCreateThenNoOp(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	rule := map[string]any{
		"type":  "block",
		"match": map[string]any{"type": "bssid", "string": "00:11:22:33:44:55"},
	}
	inv := Invocation{Resource: "air_marshal", State: catalog.Merged, Scope: "N_1", Config: []map[string]any{rule}}

	first, err := h.rec.Reconcile(context.Background(), inv, TaskContext{})
	require.NoError(t, err)
	require.Len(t, first.Plan, 1)
	assert.Equal(t, catalog.OpCreate, first.Plan[0].Kind)
	require.Len(t, first.After, 1)
	ruleID, _ := first.After[0]["rule_id"].(string)
	require.NotEmpty(t, ruleID)

	h.mock.ResetRequests()
	keyed := map[string]any{"rule_id": ruleID}
	for k, v := range rule {
		keyed[k] = v
	}
	inv.Config = []map[string]any{keyed}

	second, err := h.rec.Reconcile(context.Background(), inv, TaskContext{})
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Empty(t, second.Plan)
	assert.Empty(t, h.mock.Mutations())
}

func TestAmbiguityRefusal(t *testing.T) {
	t.Parallel()

	for _, state := range []catalog.State{catalog.Merged, catalog.Replaced, catalog.Overridden, catalog.Deleted} {
		t.Run(string(state), func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			h.seed(t, "/organizations/O_1/policyObjects",
				map[string]any{"id": "PO_1", "name": "dup", "cidr": "10.0.0.0/24"},
				map[string]any{"id": "PO_2", "name": "dup", "cidr": "10.0.1.0/24"},
			)

			res, err := h.rec.Reconcile(context.Background(), Invocation{
				Resource: "policy_object",
				State:    state,
				Scope:    "O_1",
				Config:   []map[string]any{{"name": "dup"}},
			}, TaskContext{})
			require.Error(t, err)

			var rErr *Error
			require.ErrorAs(t, err, &rErr)
			assert.Equal(t, KindAmbiguous, rErr.Kind)
			assert.ElementsMatch(t, []string{"PO_1", "PO_2"}, rErr.Candidates)
			assert.Equal(t, http.StatusConflict, rErr.StatusCode())
			assert.True(t, res.Failed)
			assert.Equal(t, KindAmbiguous, res.Kind)
			assert.Equal(t, PhaseFailed, res.Outcome)
			assert.Empty(t, h.mock.Mutations())
		})
	}

	h := newHarness(t)
	h.seed(t, "/organizations/O_1/policyObjects",
		map[string]any{"id": "PO_1", "name": "dup"},
		map[string]any{"id": "PO_2", "name": "dup"},
	)
	res, err := h.rec.Reconcile(context.Background(), Invocation{Resource: "policy_object", State: catalog.Gathered, Scope: "O_1"}, TaskContext{})
	require.NoError(t, err)
	assert.Len(t, res.Gathered, 2)
}

func TestPreviewSafety(t *testing.T) {
	t.Parallel()

	seeded := []map[string]any{
		{"id": "100", "name": "A", "subnet": "10.0.1.0/24"},
		{"id": "200", "name": "B", "subnet": "10.0.2.0/24"},
		{"id": "300", "name": "C", "subnet": "10.0.3.0/24"},
	}
	cases := []struct {
		name   string
		state  catalog.State
		config []map[string]any
	}{
		{"merged create and update", catalog.Merged, []map[string]any{
			{"vlan_id": "100", "name": "A2"},
			{"vlan_id": "400", "name": "D", "subnet": "10.0.4.0/24"},
		}},
		{"replaced", catalog.Replaced, []map[string]any{{"vlan_id": "200", "name": "B2"}}},
		{"overridden", catalog.Overridden, []map[string]any{{"vlan_id": "100", "name": "A"}, {"vlan_id": "500", "name": "E"}}},
		{"deleted", catalog.Deleted, []map[string]any{{"vlan_id": "300"}, {"vlan_id": "999"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			h.seed(t, vlansPath, seeded...)
			inv := vlanInvocation(tc.state, tc.config...)

			preview, err := h.rec.Reconcile(context.Background(), inv, TaskContext{CheckMode: true})
			require.NoError(t, err)
			assert.Empty(t, h.mock.Mutations())
			assert.Equal(t, PhasePreviewed, preview.Outcome)
			assert.True(t, preview.CheckMode)

			live, err := h.rec.Reconcile(context.Background(), inv, TaskContext{})
			require.NoError(t, err)
			assert.NotEmpty(t, h.mock.Mutations())

			assert.Equal(t, live.After, preview.After)
			assert.Equal(t, live.Changed, preview.Changed)
			assert.Equal(t, live.Plan, preview.Plan)
		})
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	inv := vlanInvocation(catalog.Overridden,
		map[string]any{"vlan_id": "10", "name": "data", "subnet": "10.0.10.0/24", "dhcp_lease_time": "1 day"},
		map[string]any{"vlan_id": "20", "name": "voice", "subnet": "10.0.20.0/24"},
	)
	h.seed(t, vlansPath, map[string]any{"id": "30", "name": "legacy"})

	first, err := h.rec.Reconcile(context.Background(), inv, TaskContext{})
	require.NoError(t, err)
	assert.True(t, first.Changed)

	h.mock.ResetRequests()
	second, err := h.rec.Reconcile(context.Background(), inv, TaskContext{})
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Empty(t, second.Plan)
	assert.Equal(t, first.After, second.After)
	assert.Empty(t, h.mock.Mutations())
}

func TestFixedPopulationUpdate(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	res, err := h.rec.Reconcile(context.Background(), Invocation{
		Resource: "ssid",
		State:    catalog.Merged,
		Scope:    "N_1",
		Config:   []map[string]any{{"number": 3, "name": "Corp", "enabled": true}},
	}, TaskContext{})
	require.NoError(t, err)

	assert.True(t, res.Changed)
	mutations := h.mock.Mutations()
	require.Len(t, mutations, 1)
	assert.Equal(t, http.MethodPut, mutations[0].Method)
	assert.Equal(t, "/networks/N_1/wireless/ssids/3", mutations[0].Path)
	assert.Len(t, res.After, 15)

	_, err = h.rec.Reconcile(context.Background(), Invocation{
		Resource: "ssid",
		State:    catalog.Merged,
		Scope:    "N_1",
		Config:   []map[string]any{{"name": "Corp"}},
	}, TaskContext{})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestSingletonMerged(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	inv := Invocation{
		Resource: "switch_settings",
		State:    catalog.Merged,
		Scope:    "N_1",
		Config:   []map[string]any{{"use_combined_power": true, "vlan_id": 10}},
	}

	res, err := h.rec.Reconcile(context.Background(), inv, TaskContext{})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	require.Len(t, res.After, 1)
	assert.Equal(t, true, res.After[0]["use_combined_power"])
	assert.Equal(t, float64(10), res.After[0]["vlan_id"])

	again, err := h.rec.Reconcile(context.Background(), inv, TaskContext{})
	require.NoError(t, err)
	assert.False(t, again.Changed)
}

func TestUnsupportedState(t *testing.T) {
	t.Parallel()

	cases := []struct {
		resource string
		state    catalog.State
	}{
		{"switch_settings", catalog.Deleted},
		{"switch_settings", catalog.Overridden},
		{"ssid", catalog.Deleted},
		{"air_marshal", catalog.Overridden},
	}
	for _, tc := range cases {
		t.Run(tc.resource+"/"+string(tc.state), func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			res, err := h.rec.Reconcile(context.Background(), Invocation{
				Resource: tc.resource,
				State:    tc.state,
				Scope:    "N_1",
				Config:   []map[string]any{{}},
			}, TaskContext{})
			require.Error(t, err)
			assert.Equal(t, KindUnsupported, KindOf(err))
			assert.Contains(t, err.Error(), string(tc.state))
			assert.True(t, res.Failed)
			assert.Empty(t, h.mock.Requests())
		})
	}
}

func TestUpdateWithoutUpdateOperation(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t, "/networks/N_1/switch/stacks", map[string]any{"id": "S1", "name": "core", "serials": []any{"A", "B"}})

	res, err := h.rec.Reconcile(context.Background(), Invocation{
		Resource: "switch_stack",
		State:    catalog.Merged,
		Scope:    "N_1",
		Config:   []map[string]any{{"switch_stack_id": "S1", "name": "renamed"}},
	}, TaskContext{})
	require.Error(t, err)
	assert.Equal(t, KindUnsupported, KindOf(err))
	assert.True(t, res.Failed)
	assert.Empty(t, h.mock.Mutations())
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		inv  Invocation
		path string
	}{
		{
			name: "unknown field",
			inv:  vlanInvocation(catalog.Merged, map[string]any{"vlan_id": "1", "bogus": true}),
			path: "config[0].bogus",
		},
		{
			name: "enum violation",
			inv:  vlanInvocation(catalog.Merged, map[string]any{"vlan_id": "1", "dhcp_lease_time": "2 days"}),
			path: "config[0].dhcp_lease_time",
		},
		{
			name: "type mismatch",
			inv:  vlanInvocation(catalog.Merged, map[string]any{"vlan_id": "1", "mask": "wide"}),
			path: "config[0]",
		},
		{
			name: "scope mismatch",
			inv:  vlanInvocation(catalog.Merged, map[string]any{"vlan_id": "1", "network_id": "N_OTHER"}),
			path: "config[0].network_id",
		},
		{
			name: "missing scope",
			inv:  Invocation{Resource: "vlan", State: catalog.Merged, Config: []map[string]any{{"vlan_id": "1"}}},
			path: "network_id",
		},
		{
			name: "unknown resource",
			inv:  Invocation{Resource: "nope", State: catalog.Merged, Scope: "N_1"},
			path: "resource",
		},
		{
			name: "singleton with two entries",
			inv: Invocation{Resource: "switch_settings", State: catalog.Merged, Scope: "N_1", Config: []map[string]any{
				{"vlan_id": 1}, {"vlan_id": 2},
			}},
			path: "config",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			res, err := h.rec.Reconcile(context.Background(), tc.inv, TaskContext{})
			require.Error(t, err)

			var rErr *Error
			require.ErrorAs(t, err, &rErr)
			assert.Equal(t, KindValidation, rErr.Kind)
			assert.Contains(t, rErr.Path, tc.path)
			assert.Equal(t, http.StatusBadRequest, rErr.StatusCode())
			assert.True(t, res.Failed)
			assert.Empty(t, h.mock.Mutations())
		})
	}
}

func TestTransportErrorReportsPartialAfter(t *testing.T) {
	t.Parallel()

	var posts atomic.Int32
	h := newHarnessWith(t, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && posts.Add(1) == 2 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"errors":["upstream exploded"]}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	res, err := h.rec.Reconcile(context.Background(), vlanInvocation(catalog.Merged,
		map[string]any{"vlan_id": "10", "name": "a"},
		map[string]any{"vlan_id": "20", "name": "b"},
	), TaskContext{})
	require.Error(t, err)

	var rErr *Error
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, KindTransport, rErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, rErr.Status)
	require.NotNil(t, rErr.Step)
	assert.Equal(t, catalog.OpCreate, rErr.Step.Kind)
	assert.Contains(t, err.Error(), "upstream exploded")

	assert.True(t, res.Failed)
	assert.Equal(t, PhaseFailed, res.Outcome)
	require.Len(t, res.After, 1)
	assert.Equal(t, "10", res.After[0]["vlan_id"])
	assert.True(t, res.Changed)
}

func TestRateLimitedReadIsRetried(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.mock.InjectRateLimit(2)

	res, err := h.rec.Reconcile(context.Background(), vlanInvocation(catalog.Gathered), TaskContext{})
	require.NoError(t, err)
	assert.Empty(t, res.Gathered)
	assert.Len(t, h.mock.Requests(), 3)
}

// cancellingClient cancels the invocation after its first mutation.
type cancellingClient struct {
	DashboardClient
	cancel context.CancelFunc
}

func (c cancellingClient) Request(ctx context.Context, method, path string, params map[string]string, body any) (*dashboard.Response, error) {
	resp, err := c.DashboardClient.Request(ctx, method, path, params, body)
	if method != http.MethodGet {
		c.cancel()
	}
	return resp, err
}

func TestCancellationMidPlan(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := New(cancellingClient{DashboardClient: h.client, cancel: cancel}, nil, zerolog.Nop())

	res, err := rec.Reconcile(ctx, vlanInvocation(catalog.Merged,
		map[string]any{"vlan_id": "10", "name": "a"},
		map[string]any{"vlan_id": "20", "name": "b"},
	), TaskContext{})
	require.Error(t, err)
	assert.Equal(t, KindCancelled, KindOf(err))
	assert.Contains(t, err.Error(), "stopped after 1 of 2")
	assert.True(t, res.Failed)
	assert.Equal(t, PhaseCancelled, res.Outcome)
	require.Len(t, res.After, 1)
	assert.Len(t, h.mock.Mutations(), 1)
}

func TestCancelledBeforeStart(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := h.rec.Reconcile(ctx, vlanInvocation(catalog.Merged, map[string]any{"vlan_id": "10"}), TaskContext{TolerateCancel: true})
	require.Error(t, err)
	assert.Equal(t, KindCancelled, KindOf(err))
	assert.False(t, res.Failed)
	assert.Equal(t, PhaseCancelled, res.Outcome)
	assert.Equal(t, http.StatusRequestTimeout, err.(*Error).StatusCode())
}

func TestDiffMode(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	inv := vlanInvocation(catalog.Merged, map[string]any{"vlan_id": "100", "name": "Test"})

	res, err := h.rec.Reconcile(context.Background(), inv, TaskContext{DiffMode: true, CheckMode: true})
	require.NoError(t, err)
	require.NotNil(t, res.Diff)
	assert.Contains(t, res.Diff.Prepared, "vlan (after)")
	assert.Contains(t, res.Diff.Prepared, "+- name: Test")
	assert.Empty(t, res.Diff.Before)

	res, err = h.rec.Reconcile(context.Background(), inv, TaskContext{})
	require.NoError(t, err)
	assert.Empty(t, res.Diff.Prepared)
	assert.Equal(t, res.After, res.Diff.After)
}

func TestGathered(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t, vlansPath, map[string]any{"id": "100", "name": "A", "dhcpHandling": "Run a DHCP server"})

	res, err := h.rec.Reconcile(context.Background(), vlanInvocation(catalog.Gathered), TaskContext{})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Empty(t, res.Plan)
	require.Len(t, res.Gathered, 1)
	assert.Equal(t, "Run a DHCP server", res.Gathered[0]["dhcp_handling"])
	assert.Equal(t, res.Gathered, res.Config)
	assert.Equal(t, res.Before, res.After)
	assert.Equal(t, PhaseCompleted, res.Outcome)
	assert.Empty(t, h.mock.Mutations())
}

func TestLookupByModuleName(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	res, err := h.rec.Reconcile(context.Background(), Invocation{
		Resource: "cisco.meraki_rm.meraki_appliance_vlans",
		State:    catalog.Gathered,
		Scope:    "N_1",
	}, TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, "vlan", res.Resource)
}
