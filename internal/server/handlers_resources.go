package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/facts"
	"github.com/ansible-network/meraki-rm-sub001/internal/httputil"
	"github.com/ansible-network/meraki-rm-sub001/internal/model"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/runner"
	"github.com/ansible-network/meraki-rm-sub001/internal/task"
	"github.com/ansible-network/meraki-rm-sub001/pkg/types"
)

func (s *Server) handleListResources(w http.ResponseWriter, _ *http.Request) {
	all := s.catalog.All()
	items := make([]types.Resource[types.ResourceType], 0, len(all))
	for _, d := range all {
		items = append(items, resourceEnvelope(d, false))
	}
	httputil.RespondJSON(w, http.StatusOK, types.ResourceList[types.ResourceType]{
		Kind:       types.KindResourceType,
		APIVersion: types.APIVersion,
		Items:      items,
		Total:      len(items),
	})
}

func (s *Server) handleGetResource(w http.ResponseWriter, r *http.Request) {
	d, ok := s.catalog.Lookup(chi.URLParam(r, "name"))
	if !ok {
		httputil.RespondProblemf(w, r, http.StatusNotFound, "unknown resource %q", chi.URLParam(r, "name"))
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resourceEnvelope(d, true))
}

func resourceEnvelope(d *catalog.Descriptor, withSchema bool) types.Resource[types.ResourceType] {
	states := d.ValidStates()
	names := make([]string, 0, len(states))
	for _, st := range states {
		names = append(names, string(st))
	}
	spec := types.ResourceType{
		Name:           d.Name,
		Module:         task.FQCN(d),
		Description:    d.Description,
		Shape:          d.Shape.String(),
		ScopeParam:     string(d.ScopeParam),
		CanonicalKey:   d.CanonicalKey,
		SystemKey:      d.SystemKey,
		SupportsDelete: d.SupportsDelete(),
		ValidStates:    names,
	}
	if withSchema {
		if schema, ok := model.InputSchema(d.Name); ok {
			spec.ConfigSchema = schema
		}
	}
	return types.Resource[types.ResourceType]{
		Kind:       types.KindResourceType,
		APIVersion: types.APIVersion,
		Metadata:   types.Metadata{ID: d.Name},
		Spec:       spec,
	}
}

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	if s.executor == nil {
		httputil.RespondProblem(w, r, http.StatusServiceUnavailable, errDashboardUnavailable.Error())
		return
	}
	d, ok := s.catalog.Lookup(chi.URLParam(r, "name"))
	if !ok {
		httputil.RespondProblemf(w, r, http.StatusNotFound, "unknown resource %q", chi.URLParam(r, "name"))
		return
	}

	var req types.ReconcileRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondProblemf(w, r, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	state := catalog.Merged
	if strings.TrimSpace(req.State) != "" {
		parsed, err := catalog.ParseState(req.State)
		if err != nil {
			httputil.RespondProblem(w, r, http.StatusBadRequest, err.Error())
			return
		}
		state = parsed
	}
	inv := reconcile.Invocation{
		Resource: d.Name,
		State:    state,
		Scope:    strings.TrimSpace(req.Scope),
		Config:   req.Config,
	}

	flags := map[string]any{task.ArgCheckMode: req.CheckMode, task.ArgConfirm: req.Confirm}
	if err := s.policy.Check(d.Name, inv.State, inv.Scope, req.CheckMode, flags); err != nil {
		httputil.RespondProblem(w, r, toolErrorStatus(err), err.Error())
		return
	}

	requestID := strings.TrimSpace(req.RequestID)
	if requestID == "" {
		requestID = middleware.GetReqID(r.Context())
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	res, err := s.executor.Execute(r.Context(), runner.Request{
		Invocation: inv,
		Task:       task.Options{CheckMode: req.CheckMode, Diff: req.Diff}.TaskContext(),
		RequestID:  requestID,
		Transport:  "http",
		Caller:     PrincipalFromContext(r.Context()).Subject,
	})
	if err != nil {
		httputil.RespondProblem(w, r, toolErrorStatus(err), err.Error())
		return
	}

	spec, err := toReconcileResult(res)
	if err != nil {
		httputil.RespondProblem(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.RespondJSON(w, http.StatusOK, types.Resource[types.ReconcileResult]{
		Kind:       types.KindReconcileResult,
		APIVersion: types.APIVersion,
		Metadata:   types.Metadata{ID: requestID, CreatedAt: time.Now().UTC()},
		Spec:       spec,
	})
}

func toReconcileResult(res *reconcile.Result) (types.ReconcileResult, error) {
	var out types.ReconcileResult
	encoded, err := json.Marshal(res)
	if err != nil {
		return out, fmt.Errorf("encoding reconcile result: %w", err)
	}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return out, fmt.Errorf("decoding reconcile result: %w", err)
	}
	return out, nil
}

func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	if s.facts == nil {
		httputil.RespondProblem(w, r, http.StatusServiceUnavailable, errDashboardUnavailable.Error())
		return
	}

	var req types.FactsRequest
	if r.ContentLength != 0 {
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.RespondProblemf(w, r, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}
	}
	freq := facts.Request{
		GatherSubset:   req.GatherSubset,
		OrganizationID: req.OrganizationID,
		NetworkID:      req.NetworkID,
	}
	if err := freq.Validate(); err != nil {
		httputil.RespondProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	gathered, err := facts.Gather(r.Context(), s.facts, freq)
	if err != nil {
		status := http.StatusBadGateway
		var coded statusCoder
		if errors.As(err, &coded) && coded.StatusCode() >= 400 {
			status = coded.StatusCode()
		}
		httputil.RespondProblem(w, r, status, err.Error())
		return
	}

	httputil.RespondJSON(w, http.StatusOK, types.Resource[types.Facts]{
		Kind:       types.KindFacts,
		APIVersion: types.APIVersion,
		Metadata:   types.Metadata{ID: middleware.GetReqID(r.Context()), CreatedAt: time.Now().UTC()},
		Spec: types.Facts{
			Organizations: orEmpty(gathered.Organizations),
			Networks:      orEmpty(gathered.Networks),
			Devices:       orEmpty(gathered.Devices),
			Inventory:     orEmpty(gathered.Inventory),
		},
	})
}

func orEmpty(records []map[string]any) []map[string]any {
	if records == nil {
		return []map[string]any{}
	}
	return records
}
