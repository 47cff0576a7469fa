package facts

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/internal/mockapi"
	"github.com/ansible-network/meraki-rm-sub001/pkg/dashboard"
)

func newClient(t *testing.T) (*mockapi.Server, *dashboard.Client) {
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
	return mock, client
}

func TestGatherAll(t *testing.T) {
	t.Parallel()

	_, client := newClient(t)
	got, err := Gather(context.Background(), client, Request{OrganizationID: "O_100"})
	require.NoError(t, err)

	assert.Len(t, got.Organizations, 1)
	assert.Len(t, got.Networks, 2)
	assert.Len(t, got.Devices, 3)
	assert.Len(t, got.Inventory, 3)
}

func TestGatherFiltersByNetwork(t *testing.T) {
	t.Parallel()

	_, client := newClient(t)
	got, err := Gather(context.Background(), client, Request{
		GatherSubset:   []string{"networks", "devices"},
		OrganizationID: "O_100",
		NetworkID:      "N_1",
	})
	require.NoError(t, err)

	assert.Nil(t, got.Organizations)
	assert.Nil(t, got.Inventory)
	require.Len(t, got.Networks, 1)
	assert.Equal(t, "N_1", got.Networks[0]["id"])
	require.Len(t, got.Devices, 2)
	for _, d := range got.Devices {
		assert.Equal(t, "N_1", d["networkId"])
	}
}

func TestGatherWithoutOrganization(t *testing.T) {
	t.Parallel()

	mock, client := newClient(t)
	got, err := Gather(context.Background(), client, Request{GatherSubset: []string{"all"}})
	require.NoError(t, err)

	assert.Len(t, got.Organizations, 1)
	assert.Nil(t, got.Networks)
	assert.Len(t, mock.Requests(), 1)

	rendered := got.AnsibleFacts()
	assert.Equal(t, []map[string]any{}, rendered["meraki_networks"])
	assert.Len(t, rendered["meraki_organizations"], 1)
}

func TestValidateSubsets(t *testing.T) {
	t.Parallel()

	req := Request{GatherSubset: []string{" Devices ", "devices", ""}}
	require.NoError(t, req.Validate())
	assert.Equal(t, []string{"devices"}, req.GatherSubset)

	empty := Request{}
	require.NoError(t, empty.Validate())
	assert.Equal(t, []string{"all"}, empty.GatherSubset)

	bad := Request{GatherSubset: []string{"ports"}}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown subset "ports"`)
}

func TestGatherTransportError(t *testing.T) {
	t.Parallel()

	mock, client := newClient(t)
	mock.InjectRateLimit(100)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := Gather(ctx, client, Request{GatherSubset: []string{"organizations"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gathering /organizations")
}
