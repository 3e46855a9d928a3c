package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVerbosity(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		wantInfo bool
	}{
		{"quiet hides info", false, false},
		{"verbose shows info", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.verbose)

			logger.Info().Msg("informational")
			logger.Warn().Msg("warning")

			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("informational")))
			assert.Contains(t, buf.String(), "warning")
		})
	}
}

func TestNewNoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := GetLogger(New(&buf, true), "sink")

	logger.Info().Str("path", "a.typ").Msg("up to date")

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.True(t, strings.HasPrefix(buf.String(), "INF"), "no timestamp before the level: %q", buf.String())
	assert.Contains(t, buf.String(), "component=sink")
	assert.Contains(t, buf.String(), "path=a.typ")
}
