package lint

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/depgraph"
	"github.com/specialistvlad/variantgrid/internal/variant"
)

// Category groups rules in reports.
type Category string

const (
	CategoryCorrectness      Category = "Correctness"
	CategorySecurity         Category = "Security"
	CategoryPerformance      Category = "Performance"
	CategoryInteroperability Category = "Interoperability"
	CategoryLint             Category = "Lint"
)

// Input is everything a rule may inspect.
type Input struct {
	Model       *config.Model
	Variants    []*variant.Resolved
	Resolutions []*depgraph.Resolution

	registry *Registry
}

// Issue is what a check reports before policy is applied.
type Issue struct {
	Message  string
	Location config.Location
}

// Rule is one registered check. At least one of the check functions is set.
// Rules with a Dependency check only run when the policy enables
// check_dependencies.
type Rule struct {
	ID               string
	Category         Category
	Severity         config.Severity
	EnabledByDefault bool
	Summary          string
	Explanation      string

	Project    func(in *Input) []Issue
	Variant    func(in *Input, v *variant.Resolved) []Issue
	Dependency func(in *Input, r *depgraph.Resolution) []Issue
}

// Registry holds the known rules and the source-level issue ids that are
// accepted in a policy without a config-level check.
type Registry struct {
	rules []*Rule
	byID  map[string]*Rule
	known map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Rule), known: make(map[string]bool)}
}

// DefaultRegistry returns a registry holding every built-in rule and the
// known source-level issue ids.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, r := range builtinRules() {
		reg.Register(r)
	}
	reg.Know(sourceLevelIssues...)
	return reg
}

// Register adds a rule. It panics on a duplicate id, which is a programming
// error.
func (reg *Registry) Register(r *Rule) {
	if _, exists := reg.byID[r.ID]; exists {
		panic(fmt.Sprintf("lint rule with id '%s' already registered", r.ID))
	}
	if r.Project == nil && r.Variant == nil && r.Dependency == nil {
		panic(fmt.Sprintf("lint rule '%s' has no check function", r.ID))
	}
	reg.rules = append(reg.rules, r)
	reg.byID[r.ID] = r
}

// Know marks ids as valid policy entries that have no config-level check.
func (reg *Registry) Know(ids ...string) {
	for _, id := range ids {
		reg.known[id] = true
	}
}

// IsKnown reports whether id names a rule or a known source-level issue.
func (reg *Registry) IsKnown(id string) bool {
	_, ok := reg.byID[id]
	return ok || reg.known[id]
}

// Rules returns the registered rules ordered by id.
func (reg *Registry) Rules() []*Rule {
	out := make([]*Rule, len(reg.rules))
	copy(out, reg.rules)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
