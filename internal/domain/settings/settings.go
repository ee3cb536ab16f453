package settings

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	perrors "github.com/Yat-Muk/prism-panel/internal/pkg/errors"
)

// DefaultPollInterval 默認輪詢間隔
const DefaultPollInterval = 5 * time.Second

// Repository 面板設置倉庫接口
type Repository interface {
	Load(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}

// Settings 面板設置
type Settings struct {
	Server ServerSettings `yaml:"server"`
	Poll   PollSettings   `yaml:"poll"`
	Log    LogSettings    `yaml:"log"`
}

// ServerSettings 後端 API 設置
type ServerSettings struct {
	BaseURL        string        `yaml:"base_url"`
	Endpoints      Endpoints     `yaml:"endpoints"`
	RequestTimeout time.Duration `yaml:"request_timeout"` // 0 表示不設超時
}

// Endpoints 各操作對應的路徑
type Endpoints struct {
	Status       string `yaml:"status"`
	Start        string `yaml:"start"`
	Stop         string `yaml:"stop"`
	UpdateConfig string `yaml:"update_config"`
}

// PollSettings 輪詢設置
type PollSettings struct {
	Interval time.Duration `yaml:"interval"`
	// DiscardStale 丟棄晚於新請求返回的舊響應；關閉時以最後返回者為準
	DiscardStale bool `yaml:"discard_stale"`
}

// LogSettings 日誌設置
type LogSettings struct {
	Level string `yaml:"level"`
}

// DefaultSettings 默認設置
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			BaseURL: "http://127.0.0.1:5000",
			Endpoints: Endpoints{
				Status:       "/api/core/status",
				Start:        "/api/core/start",
				Stop:         "/api/core/stop",
				UpdateConfig: "/api/core/update-config",
			},
		},
		Poll: PollSettings{
			Interval: DefaultPollInterval,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// ApplyDefaults 補齊缺省字段
func (s *Settings) ApplyDefaults() {
	def := DefaultSettings()
	if s.Server.BaseURL == "" {
		s.Server.BaseURL = def.Server.BaseURL
	}
	ep := &s.Server.Endpoints
	if ep.Status == "" {
		ep.Status = def.Server.Endpoints.Status
	}
	if ep.Start == "" {
		ep.Start = def.Server.Endpoints.Start
	}
	if ep.Stop == "" {
		ep.Stop = def.Server.Endpoints.Stop
	}
	if ep.UpdateConfig == "" {
		ep.UpdateConfig = def.Server.Endpoints.UpdateConfig
	}
	if s.Poll.Interval == 0 {
		s.Poll.Interval = def.Poll.Interval
	}
	if s.Log.Level == "" {
		s.Log.Level = def.Log.Level
	}
}

// Validate 校驗設置
func (s *Settings) Validate() error {
	u, err := url.Parse(s.Server.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return perrors.Wrapf(perrors.ErrSettingsInvalid, err, perrors.CodeSettings,
			"server.base_url 無效: %q", s.Server.BaseURL)
	}

	paths := map[string]string{
		"status":        s.Server.Endpoints.Status,
		"start":         s.Server.Endpoints.Start,
		"stop":          s.Server.Endpoints.Stop,
		"update_config": s.Server.Endpoints.UpdateConfig,
	}
	for name, p := range paths {
		if !strings.HasPrefix(p, "/") {
			return perrors.Wrapf(perrors.ErrSettingsInvalid, nil, perrors.CodeSettings,
				"server.endpoints.%s 必須以 / 開頭: %q", name, p)
		}
	}

	if s.Server.RequestTimeout < 0 {
		return perrors.Wrapf(perrors.ErrSettingsInvalid, nil, perrors.CodeSettings,
			"server.request_timeout 不能為負數")
	}
	if s.Poll.Interval <= 0 {
		return perrors.Wrapf(perrors.ErrSettingsInvalid, nil, perrors.CodeSettings,
			"poll.interval 必須大於 0")
	}

	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return perrors.Wrapf(perrors.ErrSettingsInvalid, nil, perrors.CodeSettings,
			"log.level 無效: %q", s.Log.Level)
	}
	return nil
}

// DeepCopy 深拷貝 (序列化回環)
func (s *Settings) DeepCopy() *Settings {
	if s == nil {
		return nil
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		panic(fmt.Errorf("DeepCopy 序列化失敗 (這是一個 Bug): %w", err))
	}

	var out Settings
	if err := yaml.Unmarshal(data, &out); err != nil {
		panic(fmt.Errorf("DeepCopy 反序列化失敗 (這是一個 Bug): %w", err))
	}
	return &out
}

// URL 拼接完整請求地址
func (s *ServerSettings) URL(path string) string {
	return strings.TrimRight(s.BaseURL, "/") + path
}
