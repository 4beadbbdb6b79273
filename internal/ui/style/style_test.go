package style_test

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/ui/style"
)

func TestForCategory(t *testing.T) {
	tests := []struct {
		category domain.DiagnosticCategory
		want     style.Mark
	}{
		{domain.CategoryError, style.Error},
		{domain.CategoryWarning, style.Warning},
		{domain.CategoryMessage, style.Message},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, style.ForCategory(tt.category))
		})
	}
}

func TestMark_Prefix(t *testing.T) {
	assert.Equal(t, "✗ boom", style.Error.Prefix("boom"))
	assert.Equal(t, "watching", style.Plain.Prefix("watching"))
}

func TestMark_Terminal(t *testing.T) {
	assert.Equal(t, termenv.RGBColor("#F59E0B"), style.Warning.Terminal())
}
