package handlers

import (
	"context"
	"errors"

	"github.com/Yat-Muk/prism-panel/internal/application"
	"github.com/Yat-Muk/prism-panel/internal/tui/state"
	"go.uber.org/zap"
)

// PanelActions 面板可觸發的遠程操作
type PanelActions interface {
	RefreshStatus(ctx context.Context) error
	Start(ctx context.Context) (application.CommandResult, error)
	Stop(ctx context.Context) (application.CommandResult, error)
	UpdateConfig(ctx context.Context) (application.CommandResult, error)
}

// Config 用於初始化 Handlers 的配置結構體
type Config struct {
	Log      *zap.Logger
	StateMgr *state.Manager
	Panel    PanelActions
	// Ctx 命令使用的上下文，程序退出時取消
	Ctx context.Context
}

var errPanelMissing = errors.New("面板服務未初始化")
