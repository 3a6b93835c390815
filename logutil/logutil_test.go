package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestConfigLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "default", level: "", want: zapcore.InfoLevel},
		{name: "debug", level: "debug", want: zapcore.DebugLevel},
		{name: "warn", level: "warn", want: zapcore.WarnLevel},
		{name: "bogus", level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := Config{Level: tt.level}.level()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, level.Level())
		})
	}
}

func TestConfigEncoder(t *testing.T) {
	entry := zapcore.Entry{Level: zapcore.InfoLevel, Message: "console msg"}

	for _, format := range []string{"", "console", "json"} {
		enc, err := Config{Format: format}.encoder()
		require.NoError(t, err, format)
		buf, err := enc.EncodeEntry(entry, []zap.Field{zap.Int("frames", 1)})
		require.NoError(t, err)
		require.Contains(t, buf.String(), "console msg")
	}

	_, err := Config{Format: "panic"}.encoder()
	require.EqualError(t, err, "unsupported log format: panic")
}

func TestConfigSyncer(t *testing.T) {
	require.Equal(t, zapcore.Lock(os.Stderr), Config{}.syncer())

	path := filepath.Join(t.TempDir(), "vulkan.log")
	cfg := Config{Filename: path, MaxSize: 1, MaxBackups: 2, MaxDays: 3}
	require.Equal(t, zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,
		MaxAge:     3,
		MaxBackups: 2,
	}), cfg.syncer())
}

func TestNew(t *testing.T) {
	logger, err := New(Default())
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = New(Config{Format: "xml"})
	require.Error(t, err)
}
