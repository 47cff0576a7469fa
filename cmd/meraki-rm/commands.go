package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/facts"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/runner"
	"github.com/ansible-network/meraki-rm-sub001/internal/task"
	"github.com/ansible-network/meraki-rm-sub001/internal/tools"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func runApply(ctx context.Context, env *environment, args []string) error {
	fs := env.newFlagSet("apply")
	scope := fs.String("scope", "", "network id, organization id or device serial")
	configFile := fs.StringP("config", "c", "", "YAML or JSON file holding the config list ('-' reads stdin)")
	sets := fs.StringArray("set", nil, "key=value of a single config entry (repeatable)")
	check := fs.Bool("check", false, "plan and preview without changing the Dashboard")
	diff := fs.Bool("diff", false, "print a unified diff of before and after")
	output := fs.StringP("output", "o", outputYAML, "result format (json|yaml)")
	if err := env.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("apply takes <resource> <state>")
	}

	cat := catalog.Default()
	d, ok := cat.Lookup(fs.Arg(0))
	if !ok {
		return fmt.Errorf("unknown resource %q", fs.Arg(0))
	}
	state, err := catalog.ParseState(fs.Arg(1))
	if err != nil {
		return err
	}

	entries, err := loadConfig(env.stdin, *configFile, *sets)
	if err != nil {
		return err
	}

	rt, err := newLiveRuntime(env, cat)
	if err != nil {
		return err
	}
	defer rt.Close()

	res, execErr := rt.executor.Execute(ctx, runner.Request{
		Invocation: reconcile.Invocation{
			Resource: d.Name,
			State:    state,
			Scope:    strings.TrimSpace(*scope),
			Config:   entries,
		},
		Task:      task.Options{CheckMode: *check, Diff: *diff}.TaskContext(),
		RequestID: uuid.NewString(),
		Transport: "cli",
		Caller:    currentUser(),
	})
	if err := writeOutput(env.stdout, *output, res); err != nil {
		return err
	}
	if *diff && res != nil && res.Diff != nil && res.Diff.Prepared != "" {
		fmt.Fprint(env.stderr, res.Diff.Prepared)
	}
	if execErr != nil {
		return errSilent
	}
	return nil
}

// loadConfig reads the config list from a file or builds one entry from
// --set pairs. Values of --set are parsed as YAML scalars.
func loadConfig(stdin io.Reader, path string, sets []string) ([]map[string]any, error) {
	if path != "" && len(sets) > 0 {
		return nil, fmt.Errorf("--config and --set are mutually exclusive")
	}

	if path != "" {
		var raw []byte
		var err error
		if path == "-" {
			raw, err = io.ReadAll(stdin)
		} else {
			raw, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		return decodeConfigDocument(raw)
	}

	if len(sets) == 0 {
		return nil, nil
	}
	entry := make(map[string]any, len(sets))
	for _, pair := range sets {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", pair)
		}
		var parsed any
		if err := yaml.Unmarshal([]byte(value), &parsed); err != nil || parsed == nil {
			parsed = value
		}
		entry[key] = parsed
	}
	return []map[string]any{entry}, nil
}

// decodeConfigDocument accepts a list of entries, a single entry or a
// mapping with a config key.
func decodeConfigDocument(raw []byte) ([]map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if m, ok := doc.(map[string]any); ok {
		if inner, has := m[task.ArgConfig]; has && len(m) == 1 {
			doc = inner
		} else {
			doc = []any{m}
		}
	}
	if doc == nil {
		return nil, nil
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("decoding config: expected a list of mappings")
	}
	out := make([]map[string]any, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("decoding config: entry %d is not a mapping", i)
		}
		out = append(out, entry)
	}
	return out, nil
}

func runPlaybook(ctx context.Context, env *environment, args []string) error {
	fs := env.newFlagSet("run")
	check := fs.Bool("check", false, "run every task in check mode")
	diff := fs.Bool("diff", false, "print diffs of changed tasks")
	concurrency := fs.Int("concurrency", env.cfg.Concurrency, "resource/scope groups run at once")
	if err := env.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("run takes exactly one playbook")
	}

	f, err := openInput(env.stdin, fs.Arg(0))
	if err != nil {
		return err
	}
	tasks, err := task.LoadPlaybook(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	rt, err := newLiveRuntime(env, catalog.Default())
	if err != nil {
		return err
	}
	defer rt.Close()

	started := time.Now()
	outcomes := rt.executor.RunPlaybook(ctx, tasks, runner.RunOptions{
		Concurrency: *concurrency,
		CheckMode:   *check,
		Diff:        *diff,
		Transport:   "cli",
	})
	printOutcomes(env.stdout, outcomes)
	recap := runner.Summarize(outcomes)
	fmt.Fprintf(env.stdout, "\nRECAP ok=%d changed=%d failed=%d skipped=%d ignored=%d elapsed=%s\n",
		recap.OK, recap.Changed, recap.Failed, recap.Skipped, recap.Ignored, time.Since(started).Round(time.Millisecond))
	if recap.Failed > 0 {
		return errSilent
	}
	return nil
}

func openInput(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening playbook: %w", err)
	}
	return f, nil
}

func printOutcomes(w io.Writer, outcomes []runner.Outcome) {
	for _, o := range outcomes {
		label := o.Task.Label()
		switch {
		case o.Skipped:
			fmt.Fprintf(w, "skipping: [%s]\n", label)
		case o.Err != nil && o.Task.IgnoreErrors:
			fmt.Fprintf(w, "failed: [%s] => %v (ignored)\n", label, o.Err)
		case o.Err != nil:
			fmt.Fprintf(w, "failed: [%s] => %v\n", label, o.Err)
		case o.Changed():
			fmt.Fprintf(w, "changed: [%s]\n", label)
		default:
			fmt.Fprintf(w, "ok: [%s]\n", label)
		}
		if o.Result != nil && o.Result.Diff != nil && o.Result.Diff.Prepared != "" && o.Changed() {
			fmt.Fprint(w, o.Result.Diff.Prepared)
		}
	}
}

func runResources(_ context.Context, env *environment, args []string) error {
	fs := env.newFlagSet("resources")
	if err := env.parse(fs, args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMODULE\tSHAPE\tSCOPE\tSTATES")
	for _, d := range catalog.Default().All() {
		states := make([]string, 0, len(d.ValidStates()))
		for _, s := range d.ValidStates() {
			states = append(states, string(s))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Name, task.FQCN(d), d.Shape, d.ScopeParam, strings.Join(states, ","))
	}
	return tw.Flush()
}

func runDescribe(_ context.Context, env *environment, args []string) error {
	fs := env.newFlagSet("describe")
	output := fs.StringP("output", "o", outputYAML, "format (json|yaml)")
	if err := env.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("describe takes exactly one resource")
	}

	describer, err := tools.NewRunner(nil, tools.Config{}, nil, nil)
	if err != nil {
		return err
	}
	name := fs.Arg(0)
	if d, ok := describer.Catalog().Lookup(name); ok {
		name = tools.ToolName(d)
	}
	detail, err := describer.Call(context.Background(), tools.DescribeToolsName, map[string]any{"name": name})
	if err != nil {
		return err
	}
	return writeOutput(env.stdout, *output, detail)
}

func runFacts(ctx context.Context, env *environment, args []string) error {
	fs := env.newFlagSet("facts")
	org := fs.String("organization-id", "", "organization to gather networks, devices and inventory of")
	network := fs.String("network-id", "", "restrict networks to this id")
	subsets := fs.StringSlice("gather-subset", []string{facts.SubsetAll}, "subsets to gather")
	output := fs.StringP("output", "o", outputJSON, "format (json|yaml)")
	if err := env.parse(fs, args); err != nil {
		return err
	}

	req := facts.Request{GatherSubset: *subsets, OrganizationID: *org, NetworkID: *network}
	if err := req.Validate(); err != nil {
		return err
	}

	rt, err := newLiveRuntime(env, catalog.Default())
	if err != nil {
		return err
	}
	defer rt.Close()

	gathered, err := facts.Gather(ctx, rt.client, req)
	if err != nil {
		return err
	}
	return writeOutput(env.stdout, *output, gathered.AnsibleFacts())
}

// writeOutput prints v as indented JSON or as YAML.
func writeOutput(w io.Writer, format string, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case outputJSON:
		_, err = fmt.Fprintln(w, string(encoded))
		return err
	case outputYAML, "":
		var generic any
		if err := json.Unmarshal(encoded, &generic); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q (allowed: %s|%s)", format, outputJSON, outputYAML)
	}
}

func currentUser() string {
	if u := strings.TrimSpace(os.Getenv("USER")); u != "" {
		return u
	}
	return "cli"
}
