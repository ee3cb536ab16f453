package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestMaskSensitive_BasicPatterns 測試基本脫敏模式
func TestMaskSensitive_BasicPatterns(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
		absent   string
	}{
		{"UUID", "id 550e8400-e29b-41d4-a716-446655440000", "-UUID-", "550e8400"},
		{"Password", "password: mySecretPass123", "MASKED", "mySecretPass123"},
		{"Token", "token=abcdefgh12345678", "MASKED", "abcdefgh12345678"},
		{"Normal text", "mode: auto", "mode: auto", "MASKED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := MaskSensitive(tt.input)
			assert.Contains(t, out, tt.contains)
			assert.NotContains(t, out, tt.absent)
		})
	}
}

// TestMaskJSON 測試配置文本脫敏
func TestMaskJSON(t *testing.T) {
	t.Run("按鍵名替換", func(t *testing.T) {
		out := MaskJSON(`{"mode":"auto","api_key":"abc123","nested":{"password":"p@ss"}}`)
		assert.Contains(t, out, `"mode":"auto"`)
		assert.NotContains(t, out, "abc123")
		assert.NotContains(t, out, "p@ss")
	})

	t.Run("非法 JSON 退回正則", func(t *testing.T) {
		out := MaskJSON(`{password: hunter22`)
		assert.NotContains(t, out, "hunter22")
	})
}

// TestSafeLogger_Fields 測試敏感字段不落日誌
func TestSafeLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sl := NewSafeLogger(zap.New(core))

	sl.Infow("提交配置", "body", `password=hunter22`, "secret_token", "xyz", "size", 12)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.NotContains(t, fields["body"], "hunter22")
		assert.Equal(t, masked, fields["secret_token"])
		assert.EqualValues(t, 12, fields["size"])
	}
}
