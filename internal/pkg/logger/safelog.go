package logger

import (
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// 敏感鍵名關鍵詞
var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "key", "auth", "credential", "private",
}

var (
	uuidRegex     = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	apiKeyRegex   = regexp.MustCompile(`(?i)(api[_-]?key|access[_-]?key|secret[_-]?key|token|bearer)\s*[:=]\s*['"]?([a-zA-Z0-9+/=-]{8,})['"]?`)
	passwordRegex = regexp.MustCompile(`(?i)(password|pwd|pass)\s*[:=]\s*['"]?([^'"\s,}]{4,})['"]?`)
)

const masked = "***MASKED***"

// IsSensitiveKey 判斷鍵名是否屬於敏感字段
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(k, kw) {
			return true
		}
	}
	return false
}

// MaskSensitive 脫敏自由文本
func MaskSensitive(input string) string {
	input = uuidRegex.ReplaceAllString(input, "***-UUID-***")
	input = apiKeyRegex.ReplaceAllString(input, "${1}: "+masked)
	input = passwordRegex.ReplaceAllString(input, "${1}: "+masked)
	return input
}

// MaskJSON 脫敏用戶提交的 JSON 配置文本
// 能解析時按鍵名逐層替換；解析失敗則退回正則脫敏，原文不會進入日誌
func MaskJSON(raw string) string {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return MaskSensitive(raw)
	}
	out, err := json.Marshal(maskValue(v))
	if err != nil {
		return MaskSensitive(raw)
	}
	return string(out)
}

func maskValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if IsSensitiveKey(k) {
				val[k] = masked
				continue
			}
			val[k] = maskValue(inner)
		}
		return val
	case []interface{}:
		for i := range val {
			val[i] = maskValue(val[i])
		}
		return val
	case string:
		return MaskSensitive(val)
	default:
		return val
	}
}

// SafeLogger 安全日誌接口
type SafeLogger interface {
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

// SafeLoggerImpl 安全日誌實現
type SafeLoggerImpl struct {
	logger *zap.SugaredLogger
}

// NewSafeLogger 創建安全日誌
func NewSafeLogger(logger *zap.Logger) SafeLogger {
	return &SafeLoggerImpl{logger: logger.Sugar()}
}

func (sl *SafeLoggerImpl) Infow(msg string, keysAndValues ...interface{}) {
	sl.logger.Infow(MaskSensitive(msg), maskFields(keysAndValues)...)
}

func (sl *SafeLoggerImpl) Warnw(msg string, keysAndValues ...interface{}) {
	sl.logger.Warnw(MaskSensitive(msg), maskFields(keysAndValues)...)
}

func maskFields(fields []interface{}) []interface{} {
	safe := make([]interface{}, 0, len(fields))
	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			safe = append(safe, fields[i])
			break
		}
		key, _ := fields[i].(string)
		switch value := fields[i+1].(type) {
		case string:
			if IsSensitiveKey(key) {
				safe = append(safe, key, masked)
			} else {
				safe = append(safe, key, MaskSensitive(value))
			}
		default:
			if IsSensitiveKey(key) {
				safe = append(safe, key, masked)
			} else {
				safe = append(safe, key, value)
			}
		}
	}
	return safe
}
