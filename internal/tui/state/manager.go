package state

import (
	"time"

	"go.uber.org/zap"
)

// Config 初始化配置
type Config struct {
	Log       *zap.Logger
	ServerURL string
	Interval  time.Duration
	Version   string
	// Now 可替換的時間源，默認 time.Now
	Now func() time.Time
}

// Manager 狀態管理器 (State Container)
type Manager struct {
	log *zap.Logger

	ui    *UIState
	panel *PanelState

	serverURL string
	interval  time.Duration
	version   string
	now       func() time.Time
}

// NewManager 創建狀態管理器
func NewManager(cfg *Config) *Manager {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Manager{
		log:       log,
		ui:        NewUIState(),
		panel:     NewPanelState(),
		serverURL: cfg.ServerURL,
		interval:  cfg.Interval,
		version:   cfg.Version,
		now:       now,
	}
}

// Getters 訪問器

func (m *Manager) UI() *UIState            { return m.ui }
func (m *Manager) Panel() *PanelState      { return m.panel }
func (m *Manager) ServerURL() string       { return m.serverURL }
func (m *Manager) Interval() time.Duration { return m.interval }
func (m *Manager) Version() string         { return m.version }
func (m *Manager) Now() time.Time          { return m.now() }
