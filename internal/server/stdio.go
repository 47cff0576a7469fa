package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ansible-network/meraki-rm-sub001/internal/tools"
)

const (
	rpcCodeInvalidRequest = -32600
	rpcCodeMethodNotFound = -32601
	rpcCodeInvalidParams  = -32602
	rpcCodeInternalError  = -32603
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id,omitempty"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type initializeResult struct {
	ProtocolVersion string `json:"protocolVersion"`
	ServerInfo      struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"serverInfo"`
	Capabilities struct {
		Tools struct {
			ListChanged bool `json:"listChanged"`
		} `json:"tools"`
	} `json:"capabilities"`
}

type listToolsResult struct {
	Tools []toolDescriptor `json:"tools"`
}

type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"inputSchema,omitempty"`
}

type callToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

type callToolResult struct {
	Content           []contentBlock `json:"content"`
	IsError           bool           `json:"isError"`
	StructuredContent map[string]any `json:"structuredContent,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// MCP carries what the JSON-RPC handlers need to answer requests.
type MCP struct {
	Registry   *ToolRegistry
	Authorizer ToolAuthorizer
	Caller     ToolCaller
	Version    string
	Logger     zerolog.Logger
}

// RunStdio handles MCP requests over stdin/stdout using JSON-RPC line-delimited messages.
func RunStdio(ctx context.Context, in io.Reader, out io.Writer, mcp MCP) error {
	scanner := bufio.NewScanner(in)
	// Allow larger requests in stdio mode (up to 4 MiB per message).
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req rpcRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			if writeErr := writeRPC(writer, rpcResponse{
				JSONRPC: "2.0",
				Error: &rpcError{
					Code:    rpcCodeInvalidRequest,
					Message: fmt.Sprintf("invalid json-rpc payload: %v", err),
				},
			}); writeErr != nil {
				return writeErr
			}
			continue
		}

		meta := tools.CallMeta{RequestID: uuid.NewString(), Transport: "stdio"}
		resp, reply := mcp.handle(ctx, req, meta)
		if !reply {
			continue
		}
		if err := writeRPC(writer, resp); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdio request: %w", err)
	}
	return nil
}

func writeRPC(w *bufio.Writer, resp rpcResponse) error {
	encoded, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encoding rpc response: %w", err)
	}
	if _, err := w.Write(encoded); err != nil {
		return fmt.Errorf("writing rpc response: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing rpc newline: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing rpc response: %w", err)
	}
	return nil
}

// isNotification reports whether req expects no response.
func isNotification(req rpcRequest) bool {
	return req.ID == nil && strings.HasPrefix(strings.TrimSpace(req.Method), "notifications/")
}

// handle answers one request. The boolean is false for notifications.
func (m MCP) handle(ctx context.Context, req rpcRequest, meta tools.CallMeta) (rpcResponse, bool) {
	response := rpcResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
	}

	if strings.TrimSpace(req.JSONRPC) != "2.0" {
		response.Error = &rpcError{
			Code:    rpcCodeInvalidRequest,
			Message: "jsonrpc must be 2.0",
		}
		return response, true
	}
	if isNotification(req) {
		return response, false
	}

	switch strings.TrimSpace(req.Method) {
	case "initialize":
		result := initializeResult{ProtocolVersion: defaultProtocolVersion}
		result.ServerInfo.Name = defaultServerName
		result.ServerInfo.Version = strings.TrimSpace(m.Version)
		result.Capabilities.Tools.ListChanged = false
		response.Result = result
		return response, true

	case "ping":
		response.Result = map[string]any{}
		return response, true

	case "tools/list":
		items := make([]toolDescriptor, 0, len(m.Registry.List()))
		for _, tool := range m.Registry.List() {
			items = append(items, toolDescriptor{
				Name:        tool.Name,
				Description: tool.Description,
				InputSchema: tool.InputSchema,
			})
		}
		response.Result = listToolsResult{Tools: items}
		return response, true

	case "tools/call":
		var params callToolParams
		if len(req.Params) == 0 {
			response.Error = &rpcError{
				Code:    rpcCodeInvalidParams,
				Message: "missing params",
			}
			return response, true
		}
		if err := json.Unmarshal(req.Params, &params); err != nil {
			response.Error = &rpcError{
				Code:    rpcCodeInvalidParams,
				Message: fmt.Sprintf("invalid tools/call params: %v", err),
			}
			return response, true
		}
		name := strings.TrimSpace(params.Name)
		tool, ok := m.Registry.Lookup(name)
		if !ok {
			response.Error = &rpcError{
				Code:    rpcCodeInvalidParams,
				Message: fmt.Sprintf("unknown tool: %s", name),
			}
			return response, true
		}
		mode := m.authorizer().Mode()
		if err := m.authorize(tool); err != nil {
			m.Logger.Warn().Err(err).Str("tool", tool.Name).Str("request_id", meta.RequestID).Msg("tool call denied")
			response.Result = toolCallResultFromError(tool.Name, mode, err)
			return response, true
		}
		m.Logger.Info().Str("transport", meta.Transport).Str("tool", tool.Name).Str("request_id", meta.RequestID).Msg("received tool call")
		if m.Caller == nil {
			response.Error = &rpcError{
				Code:    rpcCodeInternalError,
				Message: fmt.Sprintf("tool %s has no caller configured", tool.Name),
			}
			return response, true
		}

		payload, err := m.Caller.Call(tools.WithCallMeta(ctx, meta), tool.Name, params.Arguments)
		if err != nil {
			m.Logger.Warn().Err(err).Str("tool", tool.Name).Int("status", toolErrorStatus(err)).Msg("tool call failed")
			response.Result = toolCallResultFromError(tool.Name, mode, err)
			return response, true
		}
		response.Result = toolCallResultFromExecution(tool.Name, mode, payload)
		return response, true

	default:
		response.Error = &rpcError{
			Code:    rpcCodeMethodNotFound,
			Message: fmt.Sprintf("unknown method: %s", strings.TrimSpace(req.Method)),
		}
		return response, true
	}
}
