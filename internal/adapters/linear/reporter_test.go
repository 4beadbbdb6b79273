package linear_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsload/internal/adapters/linear"
	"go.trai.ch/tsload/internal/core/domain"
)

func TestReporter_Report(t *testing.T) {
	tests := []struct {
		name   string
		report domain.DiagnosticReport
	}{
		{
			name: "report_mixed",
			report: domain.DiagnosticReport{
				Instance:   "default",
				ConfigPath: "/project/tsconfig.json",
				Diagnostics: []domain.Diagnostic{
					{
						Category: domain.CategoryError,
						Code:     5053,
						Source:   "tsconfig",
						Message:  "Option 'sourceMap' cannot be specified with option 'inlineSourceMap'.",
					},
					{
						Category: domain.CategoryError,
						Code:     2307,
						File:     "/project/src/a.ts",
						Line:     7,
						Column:   22,
						Source:   "resolve",
						Message:  "Cannot find module './gone' or its corresponding type declarations.",
					},
					{
						Category: domain.CategoryWarning,
						File:     "/project/src/b.ts",
						Line:     1,
						Column:   1,
						Source:   "esbuild",
						Message:  "Comparison with -0 using the \"===\" operator will also match 0\nFloating-point equality is defined this way",
					},
				},
			},
		},
		{
			name: "report_without_config",
			report: domain.DiagnosticReport{
				Instance: "web",
				Diagnostics: []domain.Diagnostic{
					{Category: domain.CategoryError, Code: 5108, Message: "Option 'target=ES3' has been removed."},
					{Category: domain.CategoryError, File: "/elsewhere/x.ts", Line: 1, Column: 2, Message: "Unexpected token."},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			linear.NewReporter(&buf).Report(tt.report)

			goldie.New(t).Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestReporter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	linear.NewReporter(&buf).Report(domain.DiagnosticReport{Instance: "default"})
	assert.Empty(t, buf.String())
}

func TestReporter_Colors(t *testing.T) {
	report := domain.DiagnosticReport{
		Instance: "default",
		Colors:   true,
		Diagnostics: []domain.Diagnostic{
			{Category: domain.CategoryError, File: "/project/a.ts", Line: 1, Column: 1, Message: "Unexpected token."},
		},
	}

	t.Run("enabled", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		var buf bytes.Buffer
		linear.NewReporter(&buf).Report(report)
		assert.Contains(t, buf.String(), "\x1b[")
	})

	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		var buf bytes.Buffer
		linear.NewReporter(&buf).Report(report)
		assert.NotContains(t, buf.String(), "\x1b[")
	})
}

func TestReporter_ConcurrentReportsDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewReporter(&buf)

	report := func(instance string) domain.DiagnosticReport {
		return domain.DiagnosticReport{
			Instance: instance,
			Diagnostics: []domain.Diagnostic{
				{Category: domain.CategoryError, Message: "first"},
				{Category: domain.CategoryWarning, Message: "second"},
			},
		}
	}

	var wg sync.WaitGroup
	for _, instance := range []string{"a", "b", "c", "d"} {
		wg.Go(func() { r.Report(report(instance)) })
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 12)
	for i := 0; i < len(lines); i += 3 {
		prefix := lines[i][:3]
		assert.True(t, strings.HasPrefix(lines[i+1], prefix))
		assert.True(t, strings.HasPrefix(lines[i+2], prefix))
	}
}
