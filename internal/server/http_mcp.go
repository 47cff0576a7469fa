package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ansible-network/meraki-rm-sub001/internal/httputil"
	"github.com/ansible-network/meraki-rm-sub001/internal/tools"
)

// handleMCP answers one JSON-RPC request posted to /mcp. Notifications are
// acknowledged with 202 and no body.
func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, rpcResponse{
			JSONRPC: "2.0",
			Error: &rpcError{
				Code:    rpcCodeInvalidRequest,
				Message: fmt.Sprintf("invalid json-rpc payload: %v", err),
			},
		})
		return
	}

	requestID := middleware.GetReqID(r.Context())
	if requestID == "" {
		requestID = uuid.NewString()
	}
	meta := tools.CallMeta{
		RequestID: requestID,
		Transport: "mcp-http",
		Caller:    PrincipalFromContext(r.Context()).Subject,
	}

	resp, reply := s.mcp.handle(r.Context(), req, meta)
	if !reply {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}
