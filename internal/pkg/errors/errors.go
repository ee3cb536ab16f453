package errors

import (
	"errors"
	"fmt"
)

// 預定義錯誤類型
var (
	// 請求相關
	ErrTransport  = errors.New("transport failure")
	ErrHTTPStatus = errors.New("unexpected http status")
	ErrDecode     = errors.New("failed to decode response")

	// 交互相關
	ErrPromptFailed = errors.New("prompt failed")

	// 配置相關
	ErrSettingsInvalid     = errors.New("settings are invalid")
	ErrSettingsParseFailed = errors.New("failed to parse settings")
)

// 錯誤碼
const (
	CodeTransport = "TRANSPORT"
	CodeStatus    = "HTTP_STATUS"
	CodeDecode    = "DECODE"
	CodePrompt    = "PROMPT"
	CodeSettings  = "SETTINGS"
)

// Error 自定義錯誤類型
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New 創建新錯誤
func New(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap 包裝錯誤
func Wrap(err error, code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrapf 包裝錯誤並同時掛上哨兵錯誤，errors.Is 對兩者都成立
func Wrapf(sentinel, cause error, code, format string, args ...interface{}) error {
	var inner error = sentinel
	if cause != nil {
		inner = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     inner,
	}
}

// CodeOf 返回錯誤鏈中第一個自定義錯誤的錯誤碼
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is 轉發標準庫，便於調用方只引入本包
func Is(err, target error) bool {
	return errors.Is(err, target)
}
