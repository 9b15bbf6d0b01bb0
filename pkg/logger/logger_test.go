package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.sugar)
	assert.NotNil(t, logger.Zap())
}

func TestNamed(t *testing.T) {
	logger := New().Named("trip")
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.sugar)

	logger.Info("named logger %s", "works")
}

func TestNamed_LevelsShareOneLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)
	logger := (&Logger{base: base, sugar: base.Sugar()}).Named("usecase")

	logger.Info("created %s", "lombok-3d2n")
	logger.Warn("orphaned %s", "lombok-3d2n/b.png")
	logger.Error("failed %d", 3)

	entries := logs.All()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, "usecase", e.LoggerName)
	}
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "created lombok-3d2n", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "failed 3", entries[2].Message)
}

func TestLogger_Levels(t *testing.T) {
	logger := New()

	assert.NotPanics(t, func() {
		logger.Info("Test message: %s", "info")
		logger.Warn("Test warning: %s", "warning")
		logger.Error("Test error: %s", "error")
	})
}

func TestLogger_Formatting(t *testing.T) {
	logger := New()

	assert.NotPanics(t, func() {
		logger.Info("Post %s created with %d images", "lombok-3d2n", 3)
		logger.Error("Failed to upload %s: %v", "lombok-3d2n/a.jpg", "timeout")
		logger.Warn("Orphaned object %s", "bali/b.jpg")
	})
}
