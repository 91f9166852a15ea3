package depgraph

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/coordinate"
	"github.com/specialistvlad/variantgrid/internal/ctxlog"
	"github.com/specialistvlad/variantgrid/internal/variant"
)

// Request is one occurrence of a module in the graph.
type Request struct {
	Version string
	Scope   config.Scope
	// RequiredBy is the coordinate that pulled this request in, or "" for a
	// direct declaration.
	RequiredBy string
	Location   config.Location
}

// Module is one resolved group:artifact.
type Module struct {
	Module   string
	Version  string
	Requests []Request
	Direct   bool
	Pinned   bool
}

// Coordinate returns the resolved coordinate.
func (m *Module) Coordinate() string {
	return m.Module + ":" + m.Version
}

// RequestedVersions returns the distinct requested versions, lowest first.
func (m *Module) RequestedVersions() []string {
	var out []string
	for _, r := range m.Requests {
		if !slices.Contains(out, r.Version) {
			out = append(out, r.Version)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return coordinate.Compare(out[i], out[j]) < 0 })
	return out
}

// Resolution is the flat dependency set of one variant and classpath.
type Resolution struct {
	Variant   string
	Classpath Classpath
	Modules   []*Module // sorted by Module
}

// Lookup finds a resolved module by its group:artifact key.
func (r *Resolution) Lookup(module string) (*Module, bool) {
	i, found := sort.Find(len(r.Modules), func(i int) int { return strings.Compare(module, r.Modules[i].Module) })
	if !found {
		return nil, false
	}
	return r.Modules[i], true
}

// Build resolves the classpath for a variant. The variant may be nil, in
// which case only project-level declarations are considered. Build does not
// modify the model and returns equal results for equal inputs.
func Build(ctx context.Context, model *config.Model, v *variant.Resolved, cp Classpath) (*Resolution, error) {
	variantName := ""
	declared := slices.Clone(model.Dependencies)
	if v != nil {
		variantName = v.Name
		declared = append(declared, v.Dependencies...)
	}
	_, logger := ctxlog.With(ctx, "variant", variantName, "classpath", string(cp))

	grouped := make(map[string]*Module)
	add := func(c config.Coordinate, r Request, direct bool) {
		m, ok := grouped[c.Module()]
		if !ok {
			m = &Module{Module: c.Module()}
			grouped[c.Module()] = m
		}
		m.Requests = append(m.Requests, r)
		m.Direct = m.Direct || direct
	}

	var queue []config.Coordinate
	visited := make(map[string]bool)
	for _, d := range declared {
		if !cp.Includes(d.Scope) {
			continue
		}
		add(d.Coordinate, Request{Version: d.Coordinate.Version, Scope: d.Scope, Location: d.Location}, true)
		if !visited[d.Coordinate.String()] {
			visited[d.Coordinate.String()] = true
			queue = append(queue, d.Coordinate)
		}
	}
	logger.Debug("Collected direct declarations.", "count", len(queue))

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		art, ok := model.Artifacts[c.String()]
		if !ok {
			continue
		}
		for _, req := range art.Requires {
			add(req, Request{Version: req.Version, RequiredBy: c.String()}, false)
			if !visited[req.String()] {
				visited[req.String()] = true
				queue = append(queue, req)
			}
		}
	}

	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := &Resolution{Variant: variantName, Classpath: cp}
	var errs []error
	for _, k := range keys {
		m := grouped[k]
		if err := pick(m, model.Constraints[k]); err != nil {
			errs = append(errs, err)
			continue
		}
		res.Modules = append(res.Modules, m)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	logger.Debug("Dependency graph resolved.", "modules", len(res.Modules))
	return res, nil
}

// pick chooses the version of one module.
func pick(m *Module, pin *config.Constraint) error {
	versions := m.RequestedVersions()
	if pin != nil {
		m.Version = pin.Version
		m.Pinned = true
		return nil
	}

	majors := make(map[string]bool)
	for _, v := range versions {
		majors[coordinate.Major(v)] = true
	}
	if len(majors) > 1 {
		var from []string
		for _, r := range m.Requests {
			src := "declared"
			if r.RequiredBy != "" {
				src = "required by " + r.RequiredBy
			} else if r.Location.File != "" {
				src = "declared at " + r.Location.String()
			}
			from = append(from, fmt.Sprintf("%s (%s)", r.Version, src))
		}
		return fmt.Errorf("%w: %s requested with incompatible major versions %s; add a constraint to pin one",
			config.ErrUnresolvedConflict, m.Module, strings.Join(from, ", "))
	}

	m.Version = coordinate.Highest(versions...)
	return nil
}
