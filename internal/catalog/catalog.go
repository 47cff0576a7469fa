// Package catalog describes every managed resource class: its shape, scope,
// identity keys, field map and the endpoint table for its operations.
package catalog

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
	"github.com/ansible-network/meraki-rm-sub001/internal/wire"
)

// Shape is the instance cardinality of a resource class.
type Shape int

const (
	// Collection holds zero or more instances per scope.
	Collection Shape = iota
	// Singleton holds exactly one instance per scope.
	Singleton
	// FixedPopulation holds a fixed set of instances addressed by index.
	FixedPopulation
)

func (s Shape) String() string {
	switch s {
	case Collection:
		return "collection"
	case Singleton:
		return "singleton"
	case FixedPopulation:
		return "fixed_population"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Scope names the presentation field holding the parent identifier.
type Scope string

const (
	ScopeNetwork      Scope = "network_id"
	ScopeOrganization Scope = "organization_id"
	ScopeDevice       Scope = "serial"
)

// State selects the reconcile algorithm.
type State string

const (
	Merged     State = "merged"
	Replaced   State = "replaced"
	Overridden State = "overridden"
	Deleted    State = "deleted"
	Gathered   State = "gathered"
)

// AllStates lists every state in presentation order.
var AllStates = []State{Merged, Replaced, Overridden, Deleted, Gathered}

// ParseState validates a state name.
func ParseState(value string) (State, error) {
	s := State(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range AllStates {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown state %q", value)
}

// Mutating reports whether the state may issue POST, PUT or DELETE.
func (s State) Mutating() bool {
	return s != Gathered
}

// Destructive reports whether the state may delete instances.
func (s State) Destructive() bool {
	return s == Overridden || s == Deleted
}

// OpKind names one endpoint of a resource.
type OpKind string

const (
	OpCreate  OpKind = "create"
	OpFind    OpKind = "find"
	OpFindAll OpKind = "find_all"
	OpUpdate  OpKind = "update"
	OpDelete  OpKind = "delete"
)

// Operation is one endpoint: method, path template, ordered path
// parameters and the body allowlist.
type Operation struct {
	Method     string   `json:"method"`
	Path       string   `json:"path"`
	PathParams []string `json:"path_params,omitempty"`
	// Fields restricts the request body. Nil leaves the body unrestricted.
	Fields []string `json:"fields,omitempty"`
}

// Descriptor groups everything the reconciler needs to know about a class.
type Descriptor struct {
	Name         string
	Module       string
	Description  string
	Shape        Shape
	ScopeParam   Scope
	CanonicalKey string
	SystemKey    string
	// States overrides the states derived from Shape and Operations.
	States []State
	// Aliases maps a path placeholder to the presentation fields able to
	// supply its value.
	Aliases    map[string][]string
	FieldMap   map[string]string
	Operations map[OpKind]Operation

	transformer *transform.Transformer
	schema      *wire.Schema
}

// Operation returns the endpoint for kind.
func (d *Descriptor) Operation(kind OpKind) (Operation, bool) {
	op, ok := d.Operations[kind]
	return op, ok
}

// Supports reports whether kind is declared.
func (d *Descriptor) Supports(kind OpKind) bool {
	_, ok := d.Operations[kind]
	return ok
}

// SupportsDelete reports whether instances can be removed.
func (d *Descriptor) SupportsDelete() bool {
	return d.Shape == Collection && d.Supports(OpDelete)
}

// ValidStates returns the states the class accepts.
func (d *Descriptor) ValidStates() []State {
	if len(d.States) > 0 {
		return d.States
	}
	states := []State{Merged, Replaced}
	if d.SupportsDelete() {
		states = append(states, Overridden, Deleted)
	}
	return append(states, Gathered)
}

// AcceptsState reports whether s is one of ValidStates.
func (d *Descriptor) AcceptsState(s State) bool {
	for _, valid := range d.ValidStates() {
		if valid == s {
			return true
		}
	}
	return false
}

// KeyField is the presentation field whose value addresses an instance in
// paths: the system key when declared, else the canonical key.
func (d *Descriptor) KeyField() string {
	if d.SystemKey != "" {
		return d.SystemKey
	}
	return d.CanonicalKey
}

// GatherFirst reports whether the class has no human key.
func (d *Descriptor) GatherFirst() bool {
	return d.Shape == Collection && d.CanonicalKey == ""
}

// ScopePathParam returns the placeholder bound from the scope field.
func (d *Descriptor) ScopePathParam() string {
	for param, aliases := range d.Aliases {
		for _, alias := range aliases {
			if alias == string(d.ScopeParam) {
				return param
			}
		}
	}
	return ""
}

// Transformer returns the field-map transformer of the class.
func (d *Descriptor) Transformer() *transform.Transformer {
	return d.transformer
}

// Schema returns the wire schema of the class.
func (d *Descriptor) Schema() *wire.Schema {
	return d.schema
}

// Catalog is an immutable, validated set of descriptors.
type Catalog struct {
	byName   map[string]*Descriptor
	byModule map[string]*Descriptor
	names    []string
}

var placeholderRE = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// New validates descriptors against their wire schemas and returns a catalog.
func New(descriptors []Descriptor) (*Catalog, error) {
	c := &Catalog{
		byName:   make(map[string]*Descriptor, len(descriptors)),
		byModule: make(map[string]*Descriptor, len(descriptors)),
		names:    make([]string, 0, len(descriptors)),
	}

	for i := range descriptors {
		d := descriptors[i]
		if err := c.add(&d); err != nil {
			return nil, err
		}
	}
	sort.Strings(c.names)
	return c, nil
}

func (c *Catalog) add(d *Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("catalog: descriptor without name")
	}
	if _, dup := c.byName[d.Name]; dup {
		return fmt.Errorf("catalog: duplicate resource %q", d.Name)
	}
	if d.ScopeParam == "" {
		d.ScopeParam = ScopeNetwork
	}

	schema, ok := wire.Lookup(d.Name)
	if !ok {
		return fmt.Errorf("catalog: %s: no wire schema", d.Name)
	}
	d.schema = schema

	tr, err := transform.New(d.Name, d.FieldMap, schema.Has)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	d.transformer = tr

	if err := validateDescriptor(d); err != nil {
		return err
	}

	c.byName[d.Name] = d
	if d.Module != "" {
		c.byModule[d.Module] = d
	}
	c.names = append(c.names, d.Name)
	return nil
}

func validateDescriptor(d *Descriptor) error {
	if !d.Supports(OpFind) && !d.Supports(OpFindAll) {
		return fmt.Errorf("catalog: %s: no find or find_all operation", d.Name)
	}
	if d.Shape != Collection && (d.Supports(OpCreate) || d.Supports(OpDelete)) {
		return fmt.Errorf("catalog: %s: %s cannot declare create or delete", d.Name, d.Shape)
	}
	if d.Shape == FixedPopulation && d.SystemKey == "" {
		return fmt.Errorf("catalog: %s: fixed population requires an index key", d.Name)
	}
	for _, key := range []string{d.SystemKey, d.CanonicalKey} {
		if key == "" {
			continue
		}
		if _, ok := d.transformer.WireName(key); !ok {
			return fmt.Errorf("catalog: %s: key %q is not mapped", d.Name, key)
		}
	}
	if d.ScopePathParam() == "" {
		return fmt.Errorf("catalog: %s: no path parameter binds %s", d.Name, d.ScopeParam)
	}
	for _, s := range d.States {
		if s.Destructive() && !d.SupportsDelete() {
			return fmt.Errorf("catalog: %s: state %s requires delete", d.Name, s)
		}
	}

	kinds := make([]string, 0, len(d.Operations))
	for kind := range d.Operations {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		if err := validateOperation(d, OpKind(kind), d.Operations[OpKind(kind)]); err != nil {
			return err
		}
	}
	return nil
}

func validateOperation(d *Descriptor, kind OpKind, op Operation) error {
	where := fmt.Sprintf("catalog: %s %s", d.Name, kind)
	if strings.TrimSpace(op.Path) == "" {
		return fmt.Errorf("%s: empty path", where)
	}
	if !allowedMethods[op.Method] {
		return fmt.Errorf("%s: method %q not allowed", where, op.Method)
	}

	params := make(map[string]bool, len(op.PathParams))
	for _, p := range op.PathParams {
		params[p] = true
		if len(d.Aliases[p]) == 0 {
			return fmt.Errorf("%s: path parameter %q has no alias", where, p)
		}
	}
	for _, m := range placeholderRE.FindAllStringSubmatch(op.Path, -1) {
		if !params[m[1]] {
			return fmt.Errorf("%s: placeholder {%s} missing from path parameters", where, m[1])
		}
	}
	for _, field := range op.Fields {
		if !d.schema.Has(field) {
			return fmt.Errorf("%s: allowlist field %q not in wire schema", where, field)
		}
	}
	return nil
}

// Lookup returns a descriptor by resource name or module name.
func (c *Catalog) Lookup(name string) (*Descriptor, bool) {
	name = strings.TrimSpace(name)
	if d, ok := c.byName[name]; ok {
		return d, true
	}
	if d, ok := c.byModule[name]; ok {
		return d, true
	}
	if short := name[strings.LastIndex(name, ".")+1:]; short != name {
		return c.Lookup(short)
	}
	return nil, false
}

// Names returns every resource name in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// All returns every descriptor sorted by name.
func (c *Catalog) All() []*Descriptor {
	out := make([]*Descriptor, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}

func builtin() []Descriptor {
	var all []Descriptor
	all = append(all, applianceResources()...)
	all = append(all, cameraResources()...)
	all = append(all, devicesResources()...)
	all = append(all, networksResources()...)
	all = append(all, organizationsResources()...)
	all = append(all, sensorResources()...)
	all = append(all, switchResources()...)
	all = append(all, wirelessResources()...)
	return all
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return New(builtin())
})

// Default returns the built-in catalog. It panics if the built-in tables
// are inconsistent, which the package tests rule out.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}
