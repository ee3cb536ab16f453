// Package status 定義後端狀態快照及其展示形式
package status

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Resources 資源佔用百分比 (保留原始數字字面量)
type Resources struct {
	CPU    json.Number `json:"cpu"`
	Memory json.Number `json:"memory"`
}

// Snapshot 狀態快照，每次輪詢重新獲取，不做緩存
type Snapshot struct {
	Status    string                 `json:"status"`
	Resources Resources              `json:"resources"`
	Config    map[string]interface{} `json:"config"`
}

// Decode 從響應體解碼快照
// 數字以 json.Number 保留，確保 42 渲染為 "42" 而非 "42.000000"
func Decode(r io.Reader) (*Snapshot, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Display 渲染到視圖的文本
type Display struct {
	Status string
	CPU    string
	Memory string
	Config []string
}

// Equal 比較兩次渲染結果
func (d Display) Equal(o Display) bool {
	if d.Status != o.Status || d.CPU != o.CPU || d.Memory != o.Memory || len(d.Config) != len(o.Config) {
		return false
	}
	for i := range d.Config {
		if d.Config[i] != o.Config[i] {
			return false
		}
	}
	return true
}

// Display 將快照轉換為展示文本
func (s *Snapshot) Display() Display {
	return Display{
		Status: s.Status,
		CPU:    Percent(s.Resources.CPU),
		Memory: Percent(s.Resources.Memory),
		Config: ConfigLines(s.Config),
	}
}

// Percent 百分比文本，例如 "42%"
func Percent(n json.Number) string {
	return FormatValue(n) + "%"
}

// ConfigLines 每個配置鍵一行 "key: value"，按鍵名排序
func ConfigLines(cfg map[string]interface{}) []string {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, FormatValue(cfg[k])))
	}
	return lines
}

// FormatValue 將 JSON 值格式化為展示文本
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case json.Number:
		if val == "" {
			return "undefined"
		}
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		// 數組與對象以緊湊 JSON 顯示
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(val); err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(bytes.TrimRight(buf.Bytes(), "\n"))
	}
}
