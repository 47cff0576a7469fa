// Package api embeds the HTTP API and MCP tool contracts.
package api

import _ "embed"

// OpenAPISpec contains the raw OpenAPI 3.0 YAML specification.
//
//go:embed openapi.yaml
var OpenAPISpec []byte

// ToolsContract lists the static MCP tools. Resource tools are generated
// from the catalog at startup.
//
//go:embed tools.yaml
var ToolsContract []byte
