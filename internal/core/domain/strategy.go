package domain

// Strategy is how a session keeps compiled state current.
type Strategy uint8

const (
	// StrategyPullDriven answers every emit with a language-service query against current file versions.
	StrategyPullDriven Strategy = iota
	// StrategyWatchDriven keeps a standing program refreshed by the toolchain's watch API.
	StrategyWatchDriven
	// StrategyTranspileOnly emits each file in isolation from a fresh program.
	StrategyTranspileOnly
)

// String returns the name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyPullDriven:
		return "pull-driven"
	case StrategyWatchDriven:
		return "watch-driven"
	case StrategyTranspileOnly:
		return "transpile-only"
	default:
		return "unknown"
	}
}
