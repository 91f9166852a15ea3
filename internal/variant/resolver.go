package variant

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/ctxlog"
	"github.com/specialistvlad/variantgrid/internal/dag"
)

// ErrUnknownVariant is returned when a variant that was never declared is
// requested.
var ErrUnknownVariant = errors.New("unknown variant")

// Resolved is the effective attribute set of one variant after inheritance.
type Resolved struct {
	Name string
	// Chain lists the inheritance chain from the root ancestor to Name.
	Chain             []string
	MinifyEnabled     bool
	ShrinkResources   bool
	Debuggable        bool
	ProguardFiles     []string
	MatchingFallbacks []string
	// Dependencies are the variant's own declarations; they are not inherited.
	Dependencies []*config.DependencyDeclaration
	Location     config.Location
}

// Resolver resolves variants of one model.
type Resolver struct {
	model *config.Model
	graph *dag.Graph
}

// NewResolver builds the inheritance graph for every declared variant.
func NewResolver(ctx context.Context, model *config.Model) (*Resolver, error) {
	logger := ctxlog.FromContext(ctx)
	g := dag.New()
	for _, name := range model.VariantOrder {
		g.AddNode(name)
	}
	for _, name := range model.VariantOrder {
		v := model.Variants[name]
		if v.InitWith == "" {
			continue
		}
		if err := g.AddEdge(v.InitWith, name); err != nil {
			return nil, fmt.Errorf("%w: variant %q: %w", config.ErrMalformedConfig, name, err)
		}
	}
	logger.Debug("Variant inheritance graph built.", "variant_count", len(model.VariantOrder))
	return &Resolver{model: model, graph: g}, nil
}

// Resolve returns the effective attributes of the named variant. Parent
// attributes are copied first, then each descendant's overrides are applied
// in order down to the requested variant.
func (r *Resolver) Resolve(ctx context.Context, name string) (*Resolved, error) {
	_, logger := ctxlog.With(ctx, "variant", name)
	if !r.graph.Has(name) {
		return nil, fmt.Errorf("%w: %q (declared: %s)", ErrUnknownVariant, name, strings.Join(r.graph.Nodes(), ", "))
	}

	chain, err := r.chain(name)
	if err != nil {
		return nil, err
	}

	res := &Resolved{
		Name:     name,
		Chain:    chain,
		Location: r.model.Variants[name].Location,
	}
	// The built-in debug build type is debuggable unless told otherwise.
	if chain[0] == "debug" {
		res.Debuggable = true
	}
	for _, ancestor := range chain {
		apply(res, r.model.Variants[ancestor])
	}
	res.Dependencies = slices.Clone(r.model.Variants[name].Dependencies)

	logger.Debug("Variant resolved.",
		"chain", strings.Join(chain, " -> "),
		"minify", res.MinifyEnabled,
		"shrink", res.ShrinkResources,
		"debuggable", res.Debuggable,
	)
	return res, nil
}

// ResolveAll checks the whole inheritance graph for cycles and resolves
// every variant. Parents come before their children; otherwise declaration
// order is kept.
func (r *Resolver) ResolveAll(ctx context.Context) ([]*Resolved, error) {
	order, err := r.graph.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrCyclicVariantInheritance, err)
	}
	resolved := make([]*Resolved, 0, len(order))
	for _, name := range order {
		v, err := r.Resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, v)
	}
	return resolved, nil
}

// chain walks parent links from name to its root ancestor and returns the
// chain root first. A revisited variant means the chain is cyclic.
func (r *Resolver) chain(name string) ([]string, error) {
	visited := make(map[string]bool)
	var walk []string
	for cur := name; cur != ""; {
		if visited[cur] {
			path := append(slices.Clone(walk), cur)
			slices.Reverse(path)
			return nil, fmt.Errorf("%w: %s", config.ErrCyclicVariantInheritance, strings.Join(path, " -> "))
		}
		visited[cur] = true
		walk = append(walk, cur)

		parents, err := r.graph.Dependencies(cur)
		if err != nil {
			return nil, err
		}
		cur = ""
		if len(parents) > 0 {
			cur = parents[0]
		}
	}
	slices.Reverse(walk)
	return walk, nil
}

func apply(res *Resolved, v *config.BuildVariant) {
	if v.MinifyEnabled != nil {
		res.MinifyEnabled = *v.MinifyEnabled
	}
	if v.ShrinkResources != nil {
		res.ShrinkResources = *v.ShrinkResources
	}
	if v.Debuggable != nil {
		res.Debuggable = *v.Debuggable
	}
	res.ProguardFiles = appendUnique(res.ProguardFiles, v.ProguardFiles...)
	res.MatchingFallbacks = appendUnique(res.MatchingFallbacks, v.MatchingFallbacks...)
}

// appendUnique returns a new slice so resolved variants never share backing
// arrays with the model or with each other.
func appendUnique(dst []string, values ...string) []string {
	out := slices.Clone(dst)
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
