package ports

import "go.trai.ch/tsload/internal/core/domain"

// DiagnosticsReporter is the host build tool's error and warning channel.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type DiagnosticsReporter interface {
	// Report publishes a batch of diagnostics.
	Report(report domain.DiagnosticReport)
}
