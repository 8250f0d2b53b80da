package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesAtLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core))

	l.Debugf("hidden %d", 1)
	l.Infof("toggled %s", "like")
	l.Warnf("slow %s", "query")
	l.Errorf("failed: %v", assert.AnError)

	entries := logs.All()
	if assert.Len(t, entries, 3) {
		assert.Equal(t, "toggled like", entries[0].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	}
}

func TestNewZapLogger_FallsBackOnBadLevel(t *testing.T) {
	l := NewZapLogger("loud", "json")
	assert.NotNil(t, l.Zap())
}
