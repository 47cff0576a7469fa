package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ansible-network/meraki-rm-sub001/internal/audit"
	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/events"
	"github.com/ansible-network/meraki-rm-sub001/internal/metrics"
	"github.com/ansible-network/meraki-rm-sub001/internal/policy"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/runner"
	"github.com/ansible-network/meraki-rm-sub001/pkg/dashboard"
)

// liveRuntime holds the Dashboard client and the executor built on it.
type liveRuntime struct {
	client    *dashboard.Client
	executor  *runner.Executor
	metrics   *metrics.Metrics
	publisher events.Publisher
}

func (rt *liveRuntime) Close() {
	if rt == nil || rt.publisher == nil {
		return
	}
	_ = rt.publisher.Close()
}

// newLiveRuntime connects the reconcile stack to the Dashboard. The NATS
// publisher is optional; a broker that cannot be reached is logged and
// replaced by a no-op publisher.
func newLiveRuntime(env *environment, cat *catalog.Catalog) (*liveRuntime, error) {
	if err := env.cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	m := metrics.New()
	client, err := dashboard.New(dashboard.Config{
		BaseURL:    env.cfg.DashboardURL,
		APIKey:     env.cfg.APIKey,
		Timeout:    env.cfg.Timeout,
		MaxRetries: env.cfg.MaxRetries,
		UserAgent:  "meraki-rm/" + version,
		Observer:   m.ObserveDashboard,
	})
	if err != nil {
		return nil, fmt.Errorf("creating dashboard client: %w", err)
	}

	var publisher events.Publisher = events.Noop{}
	if env.cfg.NATSURL != "" {
		nats, natsErr := events.NewNATSPublisher(events.Config{URL: env.cfg.NATSURL, Subject: env.cfg.NATSSubject}, env.logger)
		if natsErr != nil {
			env.logger.Warn().Err(natsErr).Str("url", env.cfg.NATSURL).Msg("event publishing disabled")
		} else {
			publisher = nats
		}
	}

	logger := env.logger.With().Str("component", "reconcile").Logger()
	executor := runner.NewExecutor(reconcile.New(client, cat, logger), env.logger,
		runner.WithAudit(audit.NewLogger(env.logger.With().Str("component", "audit").Logger())),
		runner.WithMetrics(m),
		runner.WithPublisher(publisher),
		runner.WithFacts(client),
		runner.WithMode(env.cfg.Mode),
	)
	return &liveRuntime{client: client, executor: executor, metrics: m, publisher: publisher}, nil
}

// newPolicy builds the gates applied to MCP and HTTP requests.
func newPolicy(env *environment) (policy.Policy, error) {
	guard, err := policy.NewGuard(env.cfg.Mode, env.cfg.EnableWrite)
	if err != nil {
		return policy.Policy{}, err
	}
	env.logger.Info().
		Str("mode", guard.Mode()).
		Bool("require_confirmation", env.cfg.RequireConfirmation).
		Strs("allowed_scopes", env.cfg.AllowedScopes).
		Msg("execution policy initialized")
	return policy.Policy{
		Guard:               guard,
		RequireConfirmation: env.cfg.RequireConfirmation,
		AllowedScopes:       env.cfg.AllowedScopes,
	}, nil
}

func componentLogger(env *environment, name string) zerolog.Logger {
	return env.logger.With().Str("component", name).Logger()
}
