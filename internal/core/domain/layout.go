package domain

const (
	// LoaderConfigFileName is the name of the loader configuration file.
	LoaderConfigFileName = "tsload.yaml"

	// DefaultTSConfigName is the configuration file searched for when none is given.
	DefaultTSConfigName = "tsconfig.json"

	// DefaultInstance is the session key used when none is given.
	DefaultInstance = "default"

	// NodeModulesDirName is skipped when expanding include patterns.
	NodeModulesDirName = "node_modules"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
