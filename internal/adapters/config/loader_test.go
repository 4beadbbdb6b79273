package config_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsload/internal/adapters/config"
	"go.trai.ch/tsload/internal/adapters/fs"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, files fstest.MapFS) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(fs.NewMapFSAdapter("/", files), logger), logger
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	loader, _ := newLoader(t, fstest.MapFS{
		"work/web/tsload.yaml": &fstest.MapFile{Data: []byte(`
version: "1"
instance: web
configFile: configs/tsconfig.app.json
context: src
transpileOnly: true
happyPackMode: true
experimentalWatchApi: true
onlyCompileBundledFiles: true
entryFileCannotBeJs: true
colors: false
appendTsSuffixTo: ['\.vue$']
appendTsxSuffixTo: ['\.mdx$']
`)},
		"work/web/src/pages/.keep": &fstest.MapFile{},
	})

	opts, err := loader.Load("/work/web/src/pages")
	require.NoError(t, err)

	assert.Equal(t, domain.LoaderOptions{
		Instance:                "web",
		ConfigFile:              "/work/web/configs/tsconfig.app.json",
		Context:                 "/work/web/src",
		TranspileOnly:           true,
		HappyPackMode:           true,
		ExperimentalWatchAPI:    true,
		OnlyCompileBundledFiles: true,
		EntryFileCannotBeJS:     true,
		Colors:                  false,
		AppendTsSuffixTo:        []string{`\.vue$`},
		AppendTsxSuffixTo:       []string{`\.mdx$`},
	}, opts)
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("no file", func(t *testing.T) {
		t.Parallel()

		loader, _ := newLoader(t, fstest.MapFS{})
		opts, err := loader.Load("/work/web")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultLoaderOptions(), opts)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		loader, _ := newLoader(t, fstest.MapFS{"work/tsload.yaml": &fstest.MapFile{}})
		opts, err := loader.Load("/work/web")
		require.NoError(t, err)

		want := domain.DefaultLoaderOptions()
		want.Context = "/work"
		assert.Equal(t, want, opts)
	})

	t.Run("config file name is searched for, not resolved", func(t *testing.T) {
		t.Parallel()

		loader, _ := newLoader(t, fstest.MapFS{
			"work/tsload.yaml": &fstest.MapFile{Data: []byte("configFile: tsconfig.build.json\n")},
		})
		opts, err := loader.Load("/work")
		require.NoError(t, err)
		assert.Equal(t, "tsconfig.build.json", opts.ConfigFile)
	})
}

func TestLoader_Load_VersionMismatchWarns(t *testing.T) {
	t.Parallel()

	loader, logger := newLoader(t, fstest.MapFS{
		"work/tsload.yaml": &fstest.MapFile{Data: []byte("version: \"2\"\n")},
	})
	logger.EXPECT().Warn(`/work/tsload.yaml declares version "2", expected "1"`)

	_, err := loader.Load("/work")
	require.NoError(t, err)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "invalid yaml", data: "instance: [unterminated\n", wantErr: domain.ErrLoaderConfigParseFailed},
		{name: "unknown field", data: "transpile_only: true\n", wantErr: domain.ErrLoaderConfigParseFailed},
		{name: "wrong type", data: "colors: sometimes\n", wantErr: domain.ErrLoaderConfigParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, _ := newLoader(t, fstest.MapFS{
				"work/tsload.yaml": &fstest.MapFile{Data: []byte(tt.data)},
			})

			_, err := loader.Load("/work")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr.Error())

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, "/work/tsload.yaml", zErr.Metadata()["path"])
		})
	}
}

func TestLoader_DiscoverRoot(t *testing.T) {
	t.Parallel()

	loader, _ := newLoader(t, fstest.MapFS{
		"repo/tsload.yaml":               &fstest.MapFile{},
		"repo/packages/ui/tsconfig.json": &fstest.MapFile{Data: []byte("{}")},
		"repo/packages/ui/src/a.ts":      &fstest.MapFile{},
		"repo/docs/readme.md":            &fstest.MapFile{},
		"elsewhere/a.ts":                 &fstest.MapFile{},
	})

	tests := []struct {
		cwd  string
		want string
	}{
		{cwd: "/repo/packages/ui/src", want: "/repo/packages/ui"},
		{cwd: "/repo/docs", want: "/repo"},
		{cwd: "/elsewhere", want: "/elsewhere"},
	}

	for _, tt := range tests {
		t.Run(tt.cwd, func(t *testing.T) {
			t.Parallel()

			root, err := loader.DiscoverRoot(tt.cwd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, root)
		})
	}
}
