package domain

import "slices"

type edgeSet map[PathKey]struct{}

// DependencyGraph tracks which files import which, in both directions.
// The forward and reverse maps are kept symmetric: B is a dependency of A
// exactly when A is a dependent of B.
//
// A DependencyGraph is not safe for concurrent use; the owning session serializes access.
type DependencyGraph struct {
	forward map[PathKey]edgeSet
	reverse map[PathKey]edgeSet
}

// NewDependencyGraph creates an empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		forward: make(map[PathKey]edgeSet),
		reverse: make(map[PathKey]edgeSet),
	}
}

// SetDependencies replaces the dependencies of from with deps.
// Reverse edges of dependencies that are no longer imported are dropped.
func (g *DependencyGraph) SetDependencies(from string, deps []string) {
	a := KeyOf(from)
	for old := range g.forward[a] {
		unlink(g.reverse, old, a)
	}
	delete(g.forward, a)
	for _, dep := range deps {
		b := KeyOf(dep)
		link(g.forward, a, b)
		link(g.reverse, b, a)
	}
}

// Dependencies returns the sorted files that path depends on.
func (g *DependencyGraph) Dependencies(path string) []string {
	return sorted(g.forward[KeyOf(path)])
}

// Dependents returns the sorted files that depend on path.
func (g *DependencyGraph) Dependents(path string) []string {
	return sorted(g.reverse[KeyOf(path)])
}

// TransitiveDependents returns every file that reaches any of paths through
// reverse edges, excluding paths themselves. The result is sorted.
func (g *DependencyGraph) TransitiveDependents(paths ...string) []string {
	seen := make(map[PathKey]struct{}, len(paths))
	queue := make([]PathKey, 0, len(paths))
	for _, p := range paths {
		h := KeyOf(p)
		seen[h] = struct{}{}
		queue = append(queue, h)
	}

	var out []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for dependent := range g.reverse[cur] {
			if _, ok := seen[dependent]; ok {
				continue
			}
			seen[dependent] = struct{}{}
			out = append(out, dependent.String())
			queue = append(queue, dependent)
		}
	}
	slices.Sort(out)
	return out
}

func link(m map[PathKey]edgeSet, from, to PathKey) {
	set, ok := m[from]
	if !ok {
		set = make(edgeSet)
		m[from] = set
	}
	set[to] = struct{}{}
}

func unlink(m map[PathKey]edgeSet, from, to PathKey) {
	set, ok := m[from]
	if !ok {
		return
	}
	delete(set, to)
	if len(set) == 0 {
		delete(m, from)
	}
}

func sorted(set edgeSet) []string {
	out := make([]string, 0, len(set))
	for h := range set {
		out = append(out, h.String())
	}
	slices.Sort(out)
	return out
}
