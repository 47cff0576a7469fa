// Package main is the entry point for the meraki-rm command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/ansible-network/meraki-rm-sub001/internal/config"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// errSilent marks a failure that was already reported on stdout.
var errSilent = errors.New("failed")

type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, env *environment, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{name: "apply", usage: "apply <resource> <state> --scope ID [--config FILE | --set key=value ...]", summary: "Reconcile one resource", run: runApply},
		{name: "run", usage: "run <playbook.yaml>", summary: "Run the tasks of a playbook", run: runPlaybook},
		{name: "resources", usage: "resources", summary: "List managed resources", run: runResources},
		{name: "describe", usage: "describe <resource>", summary: "Show a resource's arguments and states", run: runDescribe},
		{name: "facts", usage: "facts [--organization-id ID] [--network-id ID] [--gather-subset ...]", summary: "Gather Dashboard inventory", run: runFacts},
		{name: "mcp", usage: "mcp [--mode task|live]", summary: "Serve MCP over stdio", run: runMCP},
		{name: "serve", usage: "serve [--listen ADDR]", summary: "Serve the HTTP API", run: runServe},
		{name: "mock", usage: "mock [--listen ADDR]", summary: "Serve an in-memory Dashboard API", run: runMock},
		{name: "version", usage: "version", summary: "Print build information", run: runVersion},
	}
}

// environment is what every subcommand receives.
type environment struct {
	cfg       config.Config
	logger    zerolog.Logger
	stdout    io.Writer
	stderr    io.Writer
	stdin     io.Reader
	logLevel  string
	logFormat string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || isHelp(args[0]) {
		printUsage(stderr)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	cmd, ok := lookupCommand(args[0])
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	env := &environment{
		cfg:      cfg,
		stdout:   stdout,
		stderr:   stderr,
		stdin:    stdin,
		logLevel: cfg.LogLevel,
		logger:   newLogger(stderr, cfg.LogLevel, "json"),
	}
	if err := cmd.run(ctx, env, args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errSilent) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: meraki-rm <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	sorted := append([]command(nil), commands...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })
	for _, c := range sorted {
		fmt.Fprintf(tw, "  %s\t%s\n", c.name, c.summary)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'meraki-rm <command> --help' for command flags.")
}

// newFlagSet returns a flag set carrying the logging and Dashboard flags
// shared by every subcommand.
func (e *environment) newFlagSet(cmd string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.StringVar(&e.logLevel, "log-level", e.cfg.LogLevel, "log level (trace|debug|info|warn|error)")
	fs.StringVar(&e.logFormat, "log-format", "json", "log format (json|console)")
	fs.StringVar(&e.cfg.DashboardURL, "dashboard-url", e.cfg.DashboardURL, "Dashboard API base URL")
	fs.StringVar(&e.cfg.APIKey, "api-key", e.cfg.APIKey, "Dashboard API key (default $MERAKI_API_KEY)")
	fs.DurationVar(&e.cfg.Timeout, "timeout", e.cfg.Timeout, "per-request timeout")
	fs.IntVar(&e.cfg.MaxRetries, "max-retries", e.cfg.MaxRetries, "retries for rate-limited requests")
	if usage, ok := lookupCommand(cmd); ok {
		fs.Usage = func() {
			fmt.Fprintf(e.stderr, "Usage: meraki-rm %s\n\n%s.\n\nFlags:\n", usage.usage, usage.summary)
			fs.PrintDefaults()
		}
	}
	return fs
}

// parse parses args and rebuilds the logger from the resolved flags.
func (e *environment) parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	e.logger = newLogger(e.stderr, e.logLevel, e.logFormat)
	return nil
}

func newLogger(w io.Writer, level, format string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	out := w
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(parsed).With().Timestamp().Str("service", "meraki-rm").Str("version", version).Logger()
}

func runVersion(_ context.Context, env *environment, args []string) error {
	fs := env.newFlagSet("version")
	if err := env.parse(fs, args); err != nil {
		return err
	}
	fmt.Fprintf(env.stdout, "meraki-rm %s (commit %s, built %s)\n", version, commit, buildDate)
	return nil
}
