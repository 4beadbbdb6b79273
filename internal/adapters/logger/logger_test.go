package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsload/internal/adapters/logger"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info(`using esbuild v0.25.5 and /project/tsconfig.json`)

	goldie.New(t).Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("could not read /project/src/gone.ts, marking it removed")

	goldie.New(t).Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("open /project/tsconfig.json: permission denied"),
			goldenName: "error_simple",
		},
		{
			name: "sentinel with context",
			err: zerr.With(
				zerr.Wrap(domain.ErrBootstrapFileMissing, "failed to bootstrap session"),
				"path", "/project/missing.ts",
			),
			goldenName: "error_chain_metadata",
		},
		{
			name:       "metadata on a standard error",
			err:        zerr.With(os.ErrNotExist, "path", "/project/src/a.ts"),
			goldenName: "error_plain_metadata",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("session built")
	lg.Error(zerr.With(zerr.Wrap(domain.ErrFileNotInProgram, "emit"), "path", "/project/x.ts"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "session built", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "operation failed", failure["msg"])

	// zerr errors keep their structure: wrapper message, metadata and the nested cause.
	chain, ok := failure["error"].(map[string]any)
	require.True(t, ok, "error should be a JSON object, got %T", failure["error"])
	assert.Equal(t, "emit", chain["msg"])
	assert.Equal(t, "/project/x.ts", chain["path"])
	cause, ok := chain["cause"].(map[string]any)
	require.True(t, ok, "cause should be a JSON object, got %T", chain["cause"])
	assert.Equal(t, "file is not part of the compilation", cause["msg"])

	lg.SetJSON(false)
	buf.Reset()
	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetColors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	lg.SetColors(false)

	lg.Warn("plain")

	assert.Equal(t, "! plain\n", buf.String())
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, buf := newTestLogger(t)

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			lg.Info("emit")
			lg.SetJSON(false)
		})
	}
	wg.Wait()

	assert.Equal(t, 20, bytes.Count(buf.Bytes(), []byte("emit\n")))
}
