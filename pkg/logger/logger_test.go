package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-bptree/pkg/settings"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		debugOn   bool
		wantError bool
	}{
		{"debug", true, false},
		{"info", false, false},
		{"error", false, false},
		{"loud", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(settings.Logger{LogLevel: tt.level})
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.debugOn, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bptree.log")

	log, err := New(settings.Logger{LogLevel: "info", FileLogName: path, MaxSize: 1})
	require.NoError(t, err)

	log.Info("tree ready")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"tree ready"`)
}

func TestRotator(t *testing.T) {
	r := rotator(settings.Logger{FileLogName: "x.log", MaxSize: 5, MaxAge: 2, MaxBackups: 1, Compress: true})

	assert.Equal(t, "x.log", r.Filename)
	assert.Equal(t, 5, r.MaxSize)
	assert.Equal(t, 2, r.MaxAge)
	assert.Equal(t, 1, r.MaxBackups)
	assert.True(t, r.Compress)
}
