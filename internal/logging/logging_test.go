package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_LevelsAndFallback(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "garbage"} {
		log := New(level)
		require.NotNil(t, log)
		log.Debugw("smoke line", "level", level)
	}
}

func TestNewDevelopment(t *testing.T) {
	log := NewDevelopment()
	require.NotNil(t, log)
	log.Debugw("console smoke line")
}
