package telemetry

import (
	"context"
	"testing"

	"github.com/abhisek/focusloop/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), DefaultConfig(), "test", logging.Discard())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitStdout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.SampleRatio = 1
	shutdown, err := Init(context.Background(), cfg, "test", logging.Discard())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, ratio(-1))
	assert.Equal(t, 1.0, ratio(4))
	assert.Equal(t, 0.25, ratio(0.25))
}
