package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ansible-network/meraki-rm-sub001/api"
	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/config"
	"github.com/ansible-network/meraki-rm-sub001/internal/facts"
	"github.com/ansible-network/meraki-rm-sub001/internal/mockapi"
	"github.com/ansible-network/meraki-rm-sub001/internal/policy"
	"github.com/ansible-network/meraki-rm-sub001/internal/server"
	"github.com/ansible-network/meraki-rm-sub001/internal/tools"
)

const shutdownTimeout = 15 * time.Second

// newMCP builds the tool runner and registry. rt is required in live mode
// and ignored in task mode, which never contacts the Dashboard.
func newMCP(env *environment, cat *catalog.Catalog, mode string, pol policy.Policy, rt *liveRuntime) (server.MCP, error) {
	var executor tools.Executor
	var factsClient facts.Client
	if mode == config.MCPModeLive && rt != nil {
		executor = rt.executor
		factsClient = rt.client
	}

	toolRunner, err := tools.NewRunner(cat, tools.Config{Mode: mode, Policy: pol}, executor, factsClient)
	if err != nil {
		return server.MCP{}, err
	}
	registry, err := server.NewToolRegistry(api.ToolsContract, cat, toolRunner.Mode())
	if err != nil {
		return server.MCP{}, fmt.Errorf("parsing MCP tool contract: %w", err)
	}
	return server.MCP{
		Registry:   registry,
		Authorizer: pol.Guard,
		Caller:     toolRunner,
		Version:    version,
		Logger:     componentLogger(env, "mcp"),
	}, nil
}

func runMCP(ctx context.Context, env *environment, args []string) error {
	fs := env.newFlagSet("mcp")
	mode := fs.String("mode", env.cfg.MCPMode, "tool mode (task|live)")
	if err := env.parse(fs, args); err != nil {
		return err
	}

	cat := catalog.Default()
	var rt *liveRuntime
	if *mode == config.MCPModeLive {
		var err error
		if rt, err = newLiveRuntime(env, cat); err != nil {
			return err
		}
		defer rt.Close()
	}

	pol, err := newPolicy(env)
	if err != nil {
		return err
	}
	mcp, err := newMCP(env, cat, *mode, pol, rt)
	if err != nil {
		return err
	}

	env.logger.Info().Str("transport", "stdio").Str("tool_mode", *mode).Int("tools", len(mcp.Registry.List())).Msg("starting MCP server")
	if err := server.RunStdio(ctx, env.stdin, env.stdout, mcp); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio runtime stopped: %w", err)
	}
	env.logger.Info().Msg("stdio runtime stopped")
	return nil
}

func runServe(ctx context.Context, env *environment, args []string) error {
	fs := env.newFlagSet("serve")
	listen := fs.String("listen", env.cfg.ListenAddr, "listen address")
	mode := fs.String("mcp-mode", env.cfg.MCPMode, "tool mode of POST /mcp (task|live)")
	if err := env.parse(fs, args); err != nil {
		return err
	}
	if env.cfg.APIToken == "" {
		env.logger.Warn().Msg("MERAKI_RM_API_TOKEN is not set; /v1 and /mcp will reject every request")
	}

	cat := catalog.Default()
	pol, err := newPolicy(env)
	if err != nil {
		return err
	}
	opts := []server.Option{
		server.WithOpenAPISpec(api.OpenAPISpec),
		server.WithToolContract(api.ToolsContract),
		server.WithPolicy(pol),
		server.WithLogger(componentLogger(env, "http")),
	}

	rt, err := newLiveRuntime(env, cat)
	switch {
	case err == nil:
		defer rt.Close()
		opts = append(opts,
			server.WithExecutor(rt.executor),
			server.WithFacts(rt.client),
			server.WithMetrics(rt.metrics),
		)
	case *mode == config.MCPModeLive:
		return err
	default:
		env.logger.Warn().Err(err).Msg("dashboard unavailable; reconcile endpoints return 503")
	}

	mcp, err := newMCP(env, cat, *mode, pol, rt)
	if err != nil {
		return err
	}
	opts = append(opts, server.WithMCP(mcp))

	srv := server.New(env.cfg, cat, version, commit, buildDate, opts...)
	return serveHTTP(ctx, env, *listen, srv.Router())
}

func runMock(ctx context.Context, env *environment, args []string) error {
	fs := env.newFlagSet("mock")
	listen := fs.String("listen", env.cfg.ListenAddr, "listen address")
	if err := env.parse(fs, args); err != nil {
		return err
	}

	mock := mockapi.New(catalog.Default(), mockapi.WithLogger(componentLogger(env, "mockapi")))
	return serveHTTP(ctx, env, *listen, mock.Router())
}

// serveHTTP runs handler until ctx is cancelled, then shuts down gracefully.
func serveHTTP(ctx context.Context, env *environment, addr string, handler http.Handler) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		env.logger.Info().Str("addr", listener.Addr().String()).Msg("HTTP server listening")
		if serveErr := srv.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
		env.logger.Info().Msg("received shutdown signal")
	case serveErr := <-errCh:
		return fmt.Errorf("HTTP server error: %w", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	env.logger.Info().Msg("server stopped gracefully")
	return nil
}
