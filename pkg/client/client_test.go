package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/h2non/gock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/internal/config"
	"github.com/ansible-network/meraki-rm-sub001/internal/mockapi"
	"github.com/ansible-network/meraki-rm-sub001/internal/policy"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/runner"
	"github.com/ansible-network/meraki-rm-sub001/internal/server"
	"github.com/ansible-network/meraki-rm-sub001/pkg/dashboard"
	"github.com/ansible-network/meraki-rm-sub001/pkg/types"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, cfg Config) *Client {
	t.Helper()
	if cfg.RetryBaseDelay == 0 {
		cfg.RetryBaseDelay = time.Millisecond
	}
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires base url", func(t *testing.T) {
		t.Parallel()
		_, err := New(Config{BaseURL: "  "})
		require.EqualError(t, err, "client: BaseURL is required")
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()
		c, err := New(Config{BaseURL: "http://localhost:8080/"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", c.baseURL)
		assert.Equal(t, defaultTimeout, c.cfg.Timeout)
		assert.Equal(t, defaultMaxRetries, c.cfg.MaxRetries)
	})
}

func TestArgumentValidation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, Config{BaseURL: "http://localhost:1"})
	_, err := c.GetResource(context.Background(), " ")
	require.Error(t, err)
	_, err = c.Reconcile(context.Background(), "", types.ReconcileRequest{Scope: "N_1"})
	require.Error(t, err)
	_, err = c.Reconcile(context.Background(), "vlan", types.ReconcileRequest{})
	require.EqualError(t, err, "scope is required")
}

func TestReconcileDoesNotRetryGatewayErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		respondJSON(w, http.StatusGatewayTimeout, map[string]any{"detail": "upstream timed out"})
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, Config{BaseURL: srv.URL})
	_, err := c.Reconcile(context.Background(), "vlan", types.ReconcileRequest{Scope: "N_1"})
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusGatewayTimeout))
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetriesTransientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			respondJSON(w, http.StatusServiceUnavailable, map[string]any{"detail": "warming up"})
			return
		}
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		respondJSON(w, http.StatusOK, types.ResourceList[types.ResourceType]{
			Kind:       types.KindResourceType,
			APIVersion: types.APIVersion,
			Items:      []types.Resource[types.ResourceType]{{Spec: types.ResourceType{Name: "vlan"}}},
			Total:      1,
		})
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, Config{BaseURL: srv.URL, Token: "tok"})
	list, err := c.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, list.Items, 1)
	assert.Equal(t, "vlan", list.Items[0].Spec.Name)
}

func TestDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		respondJSON(w, http.StatusNotFound, map[string]any{"status": 404, "detail": `unknown resource "nope"`, "requestId": "r-1"})
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, Config{BaseURL: srv.URL})
	_, err := c.GetResource(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, IsStatus(err, http.StatusNotFound))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "r-1", apiErr.RequestID)
	assert.Contains(t, err.Error(), `getting resource "nope"`)
}

func TestFactsWithGock(t *testing.T) {
	defer gock.Off()

	gock.New("http://meraki-rm.test").
		Post("/v1/facts").
		MatchHeader("Authorization", "^Bearer gock$").
		MatchType("json").
		JSON(map[string]any{"organization_id": "O_1", "gather_subset": []string{"networks"}}).
		Reply(http.StatusOK).
		JSON(map[string]any{
			"kind":       types.KindFacts,
			"apiVersion": types.APIVersion,
			"metadata":   map[string]any{"id": "f-1"},
			"spec":       map[string]any{"meraki_networks": []any{map[string]any{"id": "N_1"}}},
		})

	httpClient := &http.Client{}
	gock.InterceptClient(httpClient)
	defer gock.RestoreClient(httpClient)

	c := newTestClient(t, Config{BaseURL: "http://meraki-rm.test", Token: "gock", HTTPClient: httpClient})
	out, err := c.Facts(context.Background(), types.FactsRequest{OrganizationID: "O_1", GatherSubset: []string{"networks"}})
	require.NoError(t, err)
	require.Len(t, out.Spec.Networks, 1)
	assert.Equal(t, "N_1", out.Spec.Networks[0]["id"])
	assert.True(t, gock.IsDone())
}

func TestAgainstServer(t *testing.T) {
	t.Parallel()

	mock := mockapi.New(nil)
	upstream := httptest.NewServer(mock.Router())
	t.Cleanup(upstream.Close)
	dash, err := dashboard.New(dashboard.Config{BaseURL: upstream.URL + mockapi.APIPrefix, APIKey: "k", RetryBaseDelay: time.Millisecond})
	require.NoError(t, err)

	guard, err := policy.NewGuard(policy.ModeReadWrite, true)
	require.NoError(t, err)
	executor := runner.NewExecutor(reconcile.New(dash, nil, zerolog.Nop()), zerolog.Nop())
	srv := server.New(config.Config{APIToken: "tok"}, nil, "v1", "abc", "now",
		server.WithExecutor(executor),
		server.WithFacts(dash),
		server.WithPolicy(policy.Policy{Guard: guard}),
	)
	api := httptest.NewServer(srv.Router())
	t.Cleanup(api.Close)

	c := newTestClient(t, Config{BaseURL: api.URL, Token: "tok"})

	resource, err := c.GetResource(context.Background(), "vlan")
	require.NoError(t, err)
	assert.Equal(t, "network_id", resource.Spec.ScopeParam)

	req := types.ReconcileRequest{
		Scope:  "N_1",
		Config: []map[string]any{{"vlan_id": "10", "name": "data", "subnet": "10.0.10.0/24"}},
	}
	first, err := c.Reconcile(context.Background(), "vlan", req)
	require.NoError(t, err)
	assert.True(t, first.Spec.Changed)

	second, err := c.Reconcile(context.Background(), "vlan", req)
	require.NoError(t, err)
	assert.False(t, second.Spec.Changed)
	assert.Empty(t, second.Spec.Plan)

	_, err = c.Reconcile(context.Background(), "vlan", types.ReconcileRequest{Scope: "N_1", State: "sideways"})
	assert.True(t, IsStatus(err, http.StatusBadRequest))

	facts, err := c.Facts(context.Background(), types.FactsRequest{OrganizationID: "O_100", GatherSubset: []string{"networks"}})
	require.NoError(t, err)
	assert.Len(t, facts.Spec.Networks, 2)
}
