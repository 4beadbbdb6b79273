// Package config provides the loader for tsload.yaml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the tsload.yaml schema version this loader understands.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader reading from fsys.
func NewLoader(fsys ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// Load returns the options of the nearest tsload.yaml at or above cwd.
// Defaults are returned when there is none.
func (l *Loader) Load(cwd string) (domain.LoaderOptions, error) {
	configPath, ok := l.findUp(cwd, domain.LoaderConfigFileName)
	if !ok {
		return domain.DefaultLoaderOptions(), nil
	}

	var file Loadfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.LoaderOptions{}, err
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", configPath, file.Version, SupportedVersion))
	}

	return toOptions(file, filepath.Dir(configPath)), nil
}

// DiscoverRoot walks up from cwd to the first directory holding tsload.yaml or tsconfig.json.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	cwd = domain.NormalizePath(cwd)
	if path, ok := l.findUp(cwd, domain.LoaderConfigFileName, domain.DefaultTSConfigName); ok {
		return filepath.Dir(path), nil
	}
	return cwd, nil
}

// findUp returns the first of names found in cwd or one of its parents.
func (l *Loader) findUp(cwd string, names ...string) (string, bool) {
	currentDir := domain.NormalizePath(cwd)
	for {
		for _, name := range names {
			candidate := filepath.Join(currentDir, name)
			if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Loadfile) error {
	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLoaderConfigReadFailed.Error()), "path", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrLoaderConfigParseFailed.Error()), "path", configPath)
	}
	return nil
}

// toOptions converts the file to loader options. Relative paths resolve against dir.
func toOptions(file Loadfile, dir string) domain.LoaderOptions {
	opts := domain.DefaultLoaderOptions()
	if file.Instance != "" {
		opts.Instance = file.Instance
	}
	if file.ConfigFile != "" {
		opts.ConfigFile = file.ConfigFile
		if strings.ContainsAny(file.ConfigFile, `/\`) {
			opts.ConfigFile = domain.ResolvePath(dir, file.ConfigFile)
		}
	}
	opts.Context = domain.ResolvePath(dir, file.Context)
	if file.Context == "" {
		opts.Context = dir
	}
	if file.Colors != nil {
		opts.Colors = *file.Colors
	}

	opts.TranspileOnly = file.TranspileOnly
	opts.HappyPackMode = file.HappyPackMode
	opts.ExperimentalWatchAPI = file.ExperimentalWatchAPI
	opts.OnlyCompileBundledFiles = file.OnlyCompileBundledFiles
	opts.EntryFileCannotBeJS = file.EntryFileCannotBeJS
	opts.AppendTsSuffixTo = file.AppendTsSuffixTo
	opts.AppendTsxSuffixTo = file.AppendTsxSuffixTo
	return opts
}
