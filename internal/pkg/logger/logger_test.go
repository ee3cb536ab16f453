package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig 測試默認配置
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "/var/log/prism-panel/panel.log", cfg.OutputPath)
	assert.Equal(t, 10, cfg.MaxSize)
	assert.True(t, cfg.Console)
}

// TestNew 測試自定義配置創建logger
func TestNew(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	cfg := Config{
		Level:      "debug",
		OutputPath: logPath,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     7,
	}

	log, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Info("test message")
	_ = log.Sync()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err, "日誌文件應該被創建")
	assert.Contains(t, string(data), "test message")
}

// TestNew_InvalidLevel 測試無效日誌級別
func TestNew_InvalidLevel(t *testing.T) {
	log, err := New(Config{Level: "invalid", Console: true})
	assert.Error(t, err)
	assert.Nil(t, log)
}

// TestNew_NoOutputs 無輸出時返回 Nop
func TestNew_NoOutputs(t *testing.T) {
	log, err := New(Config{Level: "info"})
	require.NoError(t, err)
	assert.NotPanics(t, func() { log.Info("dropped") })
}
