package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsload/internal/core/domain"
)

func TestDependencyGraph_Symmetric(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.SetDependencies("/p/a.ts", []string{"/p/b.ts", "/p/c.ts"})
	g.SetDependencies("/p/d.ts", []string{"/p/b.ts"})

	assert.Equal(t, []string{"/p/b.ts", "/p/c.ts"}, g.Dependencies("/p/a.ts"))
	assert.Equal(t, []string{"/p/a.ts", "/p/d.ts"}, g.Dependents("/p/b.ts"))
	assert.Equal(t, []string{"/p/a.ts"}, g.Dependents("/p/c.ts"))
}

func TestDependencyGraph_SetDependenciesDropsStaleReverseEdges(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.SetDependencies("/p/a.ts", []string{"/p/b.ts", "/p/c.ts"})
	g.SetDependencies("/p/a.ts", []string{"/p/c.ts"})

	assert.Equal(t, []string{"/p/c.ts"}, g.Dependencies("/p/a.ts"))
	assert.Empty(t, g.Dependents("/p/b.ts"))
	assert.Equal(t, []string{"/p/a.ts"}, g.Dependents("/p/c.ts"))
}

func TestDependencyGraph_TransitiveDependents(t *testing.T) {
	g := domain.NewDependencyGraph()
	// app -> page -> util, test -> util, util -> app (cycle)
	g.SetDependencies("/p/app.ts", []string{"/p/page.ts"})
	g.SetDependencies("/p/page.ts", []string{"/p/util.ts"})
	g.SetDependencies("/p/test.ts", []string{"/p/util.ts"})
	g.SetDependencies("/p/util.ts", []string{"/p/app.ts"})

	assert.Equal(t,
		[]string{"/p/app.ts", "/p/page.ts", "/p/test.ts"},
		g.TransitiveDependents("/p/util.ts"),
	)
	assert.Empty(t, g.TransitiveDependents("/p/unrelated.ts"))
}

func TestDependencyGraph_PathsAreNormalized(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.SetDependencies("/p/src/../a.ts", []string{"/p/./b.ts"})

	assert.Equal(t, []string{"/p/a.ts"}, g.Dependents("/p/b.ts"))
}
