package policy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
)

func TestNewGuard_DefaultReadOnly(t *testing.T) {
	guard, err := NewGuard("", false)
	require.NoError(t, err)
	require.Equal(t, ModeReadOnly, guard.Mode())
}

func TestNewGuard_ReadWriteRequiresEnableFlag(t *testing.T) {
	_, err := NewGuard(ModeReadWrite, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "MERAKI_RM_ENABLE_WRITE=true")

	guard, err := NewGuard(" Read-Write ", true)
	require.NoError(t, err)
	require.Equal(t, ModeReadWrite, guard.Mode())
}

func TestNewGuard_InvalidMode(t *testing.T) {
	_, err := NewGuard("admin", true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid mode")
}

func TestAuthorizeTool_UnknownCapability(t *testing.T) {
	guard, err := NewGuard(ModeReadOnly, false)
	require.NoError(t, err)

	require.NoError(t, guard.AuthorizeTool("describe_tools", "read"))
	require.NoError(t, guard.AuthorizeTool("meraki_vlan", "write"))
	err = guard.AuthorizeTool("x", "admin")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown capability")
}

func TestAuthorizeState(t *testing.T) {
	readOnly, err := NewGuard(ModeReadOnly, false)
	require.NoError(t, err)
	readWrite, err := NewGuard(ModeReadWrite, true)
	require.NoError(t, err)

	require.NoError(t, readOnly.AuthorizeState("vlan", catalog.Gathered, false))
	require.NoError(t, readOnly.AuthorizeState("vlan", catalog.Merged, true))
	err = readOnly.AuthorizeState("vlan", catalog.Merged, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "requires read-write mode")

	require.NoError(t, readWrite.AuthorizeState("vlan", catalog.Deleted, false))

	var nilGuard *Guard
	require.Error(t, nilGuard.AuthorizeState("vlan", catalog.Replaced, false))
}

func TestRequireConfirmation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		state    catalog.State
		enforced bool
		args     map[string]any
		wantErr  string
	}{
		{name: "merged never needs confirmation", state: catalog.Merged, enforced: true},
		{name: "deleted requires confirmation", state: catalog.Deleted, enforced: true, wantErr: "requires confirm=true"},
		{name: "overridden requires confirmation", state: catalog.Overridden, enforced: true, args: map[string]any{}, wantErr: "requires confirm=true"},
		{name: "confirm true accepted", state: catalog.Overridden, enforced: true, args: map[string]any{"confirm": true}},
		{name: "confirm must be boolean", state: catalog.Deleted, enforced: true, args: map[string]any{"confirm": "true"}, wantErr: "requires confirm=true"},
		{name: "check mode is exempt", state: catalog.Deleted, enforced: true, args: map[string]any{"check_mode": true}},
		{name: "not enforced", state: catalog.Deleted},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := RequireConfirmation("vlan", tc.state, tc.enforced, tc.args)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRequireScope(t *testing.T) {
	require.NoError(t, RequireScope("vlan", catalog.Merged, "N_1", nil))
	require.NoError(t, RequireScope("vlan", catalog.Merged, "N_1", []string{" N_1 ", "N_1"}))
	require.NoError(t, RequireScope("vlan", catalog.Merged, "N_9", []string{"*"}))
	require.NoError(t, RequireScope("vlan", catalog.Gathered, "N_9", []string{"N_1"}))

	err := RequireScope("vlan", catalog.Replaced, "N_9", []string{"N_1", "", "O_2"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `scope "N_9" is not allowed (allowed: N_1, O_2)`)
}

func TestPolicyCheck(t *testing.T) {
	guard, err := NewGuard(ModeReadWrite, true)
	require.NoError(t, err)
	p := Policy{Guard: guard, RequireConfirmation: true, AllowedScopes: []string{"N_1"}}

	require.NoError(t, p.Check("vlan", catalog.Merged, "N_1", false, nil))
	require.NoError(t, p.Check("vlan", catalog.Deleted, "N_1", true, nil))

	err = p.Check("vlan", catalog.Deleted, "N_1", false, nil)
	require.Error(t, err)
	require.True(t, IsDenied(err))
	require.Equal(t, http.StatusBadRequest, err.(*DeniedError).StatusCode())

	err = p.Check("vlan", catalog.Merged, "N_2", false, nil)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, err.(*DeniedError).StatusCode())

	readOnly := Policy{}
	err = readOnly.Check("vlan", catalog.Merged, "N_1", false, nil)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, err.(*DeniedError).StatusCode())
	require.NoError(t, readOnly.Check("vlan", catalog.Gathered, "N_1", false, nil))
}
