package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWrapFunction 測試Wrap函數
func TestWrapFunction(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("Wrap保留原錯誤", func(t *testing.T) {
		wrapped := Wrap(baseErr, CodeTransport, "context")
		assert.True(t, errors.Is(wrapped, baseErr))
		assert.Contains(t, wrapped.Error(), "[TRANSPORT]")
	})

	t.Run("Wrap nil創建新錯誤", func(t *testing.T) {
		wrapped := Wrap(nil, CodeDecode, "context")
		assert.Error(t, wrapped)
		assert.Equal(t, "[DECODE] context", wrapped.Error())
	})
}

// TestWrapf 測試哨兵與原因同時保留
func TestWrapf(t *testing.T) {
	cause := errors.New("connection refused")

	err := Wrapf(ErrTransport, cause, CodeTransport, "GET %s", "/api/core/status")

	assert.True(t, Is(err, ErrTransport))
	assert.True(t, Is(err, cause))
	assert.False(t, Is(err, ErrDecode))
	assert.Contains(t, err.Error(), "GET /api/core/status")
	assert.Contains(t, err.Error(), "connection refused")

	t.Run("無原因", func(t *testing.T) {
		err := Wrapf(ErrHTTPStatus, nil, CodeStatus, "status %d", 502)
		assert.True(t, Is(err, ErrHTTPStatus))
		assert.Equal(t, "[HTTP_STATUS] status 502: unexpected http status", err.Error())
	})
}

// TestCodeOf 測試錯誤碼提取
func TestCodeOf(t *testing.T) {
	err := Wrapf(ErrDecode, nil, CodeDecode, "bad body")
	outer := Wrap(err, CodePrompt, "outer")

	assert.Equal(t, CodePrompt, CodeOf(outer))
	assert.Equal(t, CodeDecode, CodeOf(err))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
}

// TestErrorWrapping 測試多層包裝
func TestErrorWrapping(t *testing.T) {
	err1 := New("Level1", "base error")
	err2 := Wrap(err1, "Level2", "context 2")
	err3 := Wrap(err2, "Level3", "context 3")

	assert.True(t, errors.Is(err3, err1))
	assert.True(t, errors.Is(err3, err2))
}
