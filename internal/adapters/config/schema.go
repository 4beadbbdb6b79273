package config

// Loadfile represents the structure of the tsload.yaml configuration file.
type Loadfile struct {
	Version                 string   `yaml:"version"`
	Instance                string   `yaml:"instance"`
	ConfigFile              string   `yaml:"configFile"`
	Context                 string   `yaml:"context"`
	TranspileOnly           bool     `yaml:"transpileOnly"`
	HappyPackMode           bool     `yaml:"happyPackMode"`
	ExperimentalWatchAPI    bool     `yaml:"experimentalWatchApi"`
	OnlyCompileBundledFiles bool     `yaml:"onlyCompileBundledFiles"`
	EntryFileCannotBeJS     bool     `yaml:"entryFileCannotBeJs"`
	Colors                  *bool    `yaml:"colors"`
	AppendTsSuffixTo        []string `yaml:"appendTsSuffixTo"`
	AppendTsxSuffixTo       []string `yaml:"appendTsxSuffixTo"`
}
