package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.WarnLevel,
		"loud":  zapcore.WarnLevel,
	}
	for level, want := range cases {
		log, err := New(Config{Level: level})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(want), "level %q", level)
		if want > zapcore.DebugLevel {
			assert.False(t, log.Core().Enabled(want-1), "level %q", level)
		}
	}
}

func TestNew_Encodings(t *testing.T) {
	for _, encoding := range []string{"json", "console", ""} {
		log, err := New(Config{Level: "info", Encoding: encoding})
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}
