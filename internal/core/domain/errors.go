package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the compiler configuration file cannot be located.
	ErrConfigNotFound = zerr.New("could not find tsconfig file")

	// ErrConfigReadFailed is returned when the compiler configuration file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read tsconfig file")

	// ErrConfigParseFailed is returned when the compiler configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("error while parsing tsconfig")

	// ErrBootstrapFileMissing is returned when a file listed by the configuration cannot be read during bootstrap.
	ErrBootstrapFileMissing = zerr.New("a file specified in tsconfig could not be found")

	// ErrFileNotInProgram is returned when output is requested for a file the session does not track.
	ErrFileNotInProgram = zerr.New("file is not part of the compilation")

	// ErrInvalidLoaderOption is returned when a loader option holds an unusable value.
	ErrInvalidLoaderOption = zerr.New("invalid loader option")

	// ErrLoaderConfigReadFailed is returned when the tsload.yaml file cannot be read.
	ErrLoaderConfigReadFailed = zerr.New("failed to read loader config file")

	// ErrLoaderConfigParseFailed is returned when the tsload.yaml file cannot be parsed.
	ErrLoaderConfigParseFailed = zerr.New("failed to parse loader config file")

	// ErrSessionBuildFailed is returned when a session build function reports success without a session.
	ErrSessionBuildFailed = zerr.New("session build produced no session")

	// ErrWatchProgramFailed is returned when the watch program cannot produce a program.
	ErrWatchProgramFailed = zerr.New("failed to refresh watch program")

	// ErrProgramCreateFailed is returned when the toolchain cannot construct a program.
	ErrProgramCreateFailed = zerr.New("failed to create program")

	// ErrEmitFailed is returned when the toolchain fails while emitting a file.
	ErrEmitFailed = zerr.New("failed to emit file")

	// ErrOutputWriteFailed is returned when an emitted file cannot be written to disk.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrCompilationFailed is returned when a compilation reported error diagnostics.
	ErrCompilationFailed = zerr.New("compilation reported errors")

	// ErrNoInputFiles is returned when there is nothing to emit.
	ErrNoInputFiles = zerr.New("no input files")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrFailedToGetRoot is returned when the working directory cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")
)
