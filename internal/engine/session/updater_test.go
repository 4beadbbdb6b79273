package session_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/core/ports/mocks"
	"go.trai.ch/tsload/internal/engine/session"
	"go.uber.org/mock/gomock"
)

// newPullSession bootstraps a pull-driven session over files and returns the host handed to the toolchain.
func newPullSession(t *testing.T, files fstest.MapFS, names ...string) (*session.Session, ports.ScriptHost, sessionTestMocks) {
	t.Helper()
	manager, m := setupSessionTest(t, files)
	m.expectConfig(domain.CompilerOptions{}, names...)

	var host ports.ScriptHost
	m.expectPullDriven(mocks.NewMockLanguageService(m.ctrl), &host)
	m.registrar.EXPECT().Register("test", gomock.Any())

	s, err := manager.Session(t.Context(), pullOptions())
	require.NoError(t, err)
	return s, host, m
}

func TestSession_ApplyDelta_Idempotent(t *testing.T) {
	s, _, _ := newPullSession(t, fstest.MapFS{"a.ts": file("let x = 0")}, "/project/a.ts")
	delta := []domain.FileChange{domain.WriteChange("/project/a.ts", "x")}

	s.ApplyDelta(t.Context(), delta)
	first, ok := s.File("/project/a.ts")
	require.True(t, ok)
	versionAfterFirst := s.Version()

	s.ApplyDelta(t.Context(), delta)
	second, ok := s.File("/project/a.ts")
	require.True(t, ok)

	assert.Equal(t, "x", first.Text)
	assert.GreaterOrEqual(t, first.Version, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, versionAfterFirst, s.Version())
}

func TestSession_ApplyDelta_NormalizesPaths(t *testing.T) {
	s, _, _ := newPullSession(t, fstest.MapFS{"src/a.ts": file("let x = 0")}, "/project/src/a.ts")

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.WriteChange("/project/src/../src/./a.ts", "let x = 1")})

	rec, ok := s.File("/project/src/a.ts")
	require.True(t, ok)
	assert.Equal(t, "let x = 1", rec.Text)
	assert.Equal(t, []string{"/project/src/a.ts"}, s.ProgramFiles())
}

func TestSession_ApplyDelta_TombstonePreservesGraph(t *testing.T) {
	s, host, _ := newPullSession(t, fstest.MapFS{
		"a.ts": file(`import { b } from "./b";`),
		"b.ts": file("export const b = 1;"),
	}, "/project/a.ts", "/project/b.ts")
	host.RecordDependencies("/project/a.ts", []string{"/project/b.ts"})

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.RemoveChange("/project/b.ts")})

	rec, ok := s.File("/project/b.ts")
	require.True(t, ok)
	assert.True(t, rec.Removed)
	assert.Empty(t, rec.Text)
	assert.Equal(t, []string{"/project/a.ts"}, s.Dependents("/project/b.ts"))
	assert.Equal(t, []string{"/project/b.ts"}, s.Dependencies("/project/a.ts"))
	assert.Equal(t, []string{"/project/a.ts"}, s.ProgramFiles())
	assert.False(t, host.FileExists("/project/b.ts"))
}

func TestSession_ApplyDelta_TombstoneEdgesSurviveReresolution(t *testing.T) {
	s, host, _ := newPullSession(t, fstest.MapFS{
		"a.ts": file(`import { b } from "./b"; import { c } from "./c";`),
		"b.ts": file("export const b = 1;"),
		"c.ts": file("export const c = 1;"),
		"d.ts": file("export const d = 1;"),
	}, "/project/a.ts", "/project/b.ts", "/project/c.ts", "/project/d.ts")
	host.RecordDependencies("/project/a.ts", []string{"/project/b.ts", "/project/c.ts"})

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.RemoveChange("/project/b.ts")})
	host.RecordDependencies("/project/a.ts", []string{"/project/d.ts"})

	assert.Equal(t, []string{"/project/b.ts", "/project/d.ts"}, s.Dependencies("/project/a.ts"))
	assert.Equal(t, []string{"/project/a.ts"}, s.Dependents("/project/b.ts"))
	assert.Empty(t, s.Dependents("/project/c.ts"), "edges to live files follow the latest imports")
}

func TestSession_ApplyDelta_RemoveTwice(t *testing.T) {
	s, _, _ := newPullSession(t, fstest.MapFS{"a.ts": file("let a")}, "/project/a.ts")

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.RemoveChange("/project/a.ts")})
	version := s.Version()
	s.ApplyDelta(t.Context(), []domain.FileChange{domain.RemoveChange("/project/a.ts")})

	assert.Equal(t, version, s.Version())
}

func TestSession_ApplyDelta_RecreatesTombstone(t *testing.T) {
	s, _, _ := newPullSession(t, fstest.MapFS{"a.ts": file("let a")}, "/project/a.ts")

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.RemoveChange("/project/a.ts")})
	s.ApplyDelta(t.Context(), []domain.FileChange{domain.WriteChange("/project/a.ts", "let a")})

	rec, ok := s.File("/project/a.ts")
	require.True(t, ok)
	assert.False(t, rec.Removed)
	assert.Equal(t, "let a", rec.Text)
	assert.Equal(t, 2, rec.Version)
}

func TestSession_ApplyDelta_UnreadableFileBecomesTombstone(t *testing.T) {
	s, _, m := newPullSession(t, fstest.MapFS{"a.ts": file("let a")}, "/project/a.ts")
	// The file vanished from storage before the change was processed.
	delete(m.fs.FS, "a.ts")
	m.logger.EXPECT().Warn("could not read /project/a.ts, marking it removed")

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.TouchChange("/project/a.ts")})

	rec, ok := s.File("/project/a.ts")
	require.True(t, ok)
	assert.True(t, rec.Removed)
	assert.Equal(t, int64(1), s.Version())
}

func TestSession_ApplyDelta_TouchReadsStorage(t *testing.T) {
	s, _, m := newPullSession(t, fstest.MapFS{"a.ts": file("let a = 1")}, "/project/a.ts")
	m.fs.FS["a.ts"] = file("let a = 2")
	m.fs.FS["new.ts"] = file("export {}")

	s.ApplyDelta(t.Context(), []domain.FileChange{
		domain.TouchChange("/project/a.ts"),
		domain.TouchChange("/project/new.ts"),
	})

	rec, _ := s.File("/project/a.ts")
	assert.Equal(t, domain.FileRecord{Text: "let a = 2", Version: 1}, rec)
	rec, _ = s.File("/project/new.ts")
	assert.Equal(t, domain.FileRecord{Text: "export {}", Version: 1}, rec)
	assert.Equal(t, []string{"/project/a.ts", "/project/new.ts"}, s.ProgramFiles())
}

func TestSession_ApplyDelta_IgnoresUnknownNonScripts(t *testing.T) {
	s, _, _ := newPullSession(t, nil)

	s.ApplyDelta(t.Context(), []domain.FileChange{
		domain.WriteChange("/project/README.md", "# readme"),
		domain.RemoveChange("/project/unknown.ts"),
		domain.WriteChange("", "ignored"),
	})

	_, ok := s.File("/project/README.md")
	assert.False(t, ok)
	assert.Zero(t, s.Version())
}

func TestSession_ApplyDelta_UpdatesOtherFiles(t *testing.T) {
	s, host, _ := newPullSession(t, fstest.MapFS{
		"a.ts":          file(`import "./types/env";`),
		"types/env.txt": file("VERSION=1"),
	}, "/project/a.ts")

	// The toolchain reads a non-script file; it is cached but never compiled.
	text, ok := host.ReadFile("/project/types/env.txt")
	require.True(t, ok)
	assert.Equal(t, "VERSION=1", text)

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.WriteChange("/project/types/env.txt", "VERSION=2")})

	rec, ok := s.File("/project/types/env.txt")
	require.True(t, ok)
	assert.Equal(t, "VERSION=2", rec.Text)
	assert.Equal(t, []string{"/project/a.ts"}, s.ProgramFiles())
	assert.Equal(t, "1", host.ScriptVersion("/project/types/env.txt"))
}

func TestSession_ApplyDelta_ProjectVersionTracksEdits(t *testing.T) {
	s, host, _ := newPullSession(t, fstest.MapFS{"a.ts": file("let a")}, "/project/a.ts")
	assert.Equal(t, "0", host.ProjectVersion())

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.WriteChange("/project/a.ts", "let b")})

	assert.Equal(t, "1", host.ProjectVersion())
	assert.Equal(t, "1", host.ScriptVersion("/project/a.ts"))
	assert.False(t, s.Dirty())
}

func TestSession_ApplyDelta_WatchDrivenMarksDirty(t *testing.T) {
	manager, m := setupSessionTest(t, fstest.MapFS{"a.ts": file("let a")})
	m.expectConfig(domain.CompilerOptions{}, "/project/a.ts")
	m.expectWatchDriven(mocks.NewMockWatchProgram(m.ctrl), mocks.NewMockProgram(m.ctrl), nil)
	m.registrar.EXPECT().Register("test", gomock.Any())

	s, err := manager.Session(t.Context(), watchOptions())
	require.NoError(t, err)
	require.False(t, s.Dirty())

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.WriteChange("/project/a.ts", "let a")})
	assert.False(t, s.Dirty(), "identical content is not an edit")

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.WriteChange("/project/b.ts", "let b")})
	assert.True(t, s.Dirty())
	assert.Equal(t, []string{"/project/a.ts", "/project/b.ts"}, s.ProgramFiles())
}

func TestSession_ApplyDelta_SuffixRules(t *testing.T) {
	manager, m := setupSessionTest(t, fstest.MapFS{"App.vue": file("export default {}")})
	m.expectConfig(domain.CompilerOptions{})
	var host ports.ScriptHost
	m.expectPullDriven(mocks.NewMockLanguageService(m.ctrl), &host)
	m.registrar.EXPECT().Register("test", gomock.Any())

	opts := pullOptions()
	opts.AppendTsSuffixTo = []string{`\.vue$`}
	s, err := manager.Session(t.Context(), opts)
	require.NoError(t, err)

	s.ApplyDelta(t.Context(), []domain.FileChange{domain.TouchChange("/project/App.vue")})

	assert.Equal(t, []string{"/project/App.vue.ts"}, s.ProgramFiles())
	rec, ok := s.File("/project/App.vue")
	require.True(t, ok)
	assert.Equal(t, "export default {}", rec.Text)
	assert.True(t, host.FileExists("/project/App.vue.ts"))
}
