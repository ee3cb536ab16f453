package handlers

import (
	"context"

	"github.com/Yat-Muk/prism-panel/internal/application"
	"github.com/Yat-Muk/prism-panel/internal/pkg/appctx"
	"github.com/Yat-Muk/prism-panel/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// CommandBuilder 把面板操作包裝成 tea.Cmd，在後台協程中執行
type CommandBuilder struct {
	log   *zap.Logger
	panel PanelActions
	ctx   context.Context
}

// NewCommandBuilder 構造函數
func NewCommandBuilder(log *zap.Logger, panel PanelActions, ctx context.Context) *CommandBuilder {
	if log == nil {
		log = zap.NewNop()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &CommandBuilder{
		log:   log,
		panel: panel,
		ctx:   ctx,
	}
}

// RefreshCmd 手動刷新狀態
func (b *CommandBuilder) RefreshCmd() tea.Cmd {
	return func() tea.Msg {
		if b.panel == nil {
			return msg.RefreshResultMsg{Err: errPanelMissing}
		}
		ctx, _ := appctx.EnsureRequestID(b.ctx)
		return msg.RefreshResultMsg{Err: b.panel.RefreshStatus(ctx)}
	}
}

// StartCmd 發送啟動命令
func (b *CommandBuilder) StartCmd() tea.Cmd {
	return b.actionCmd(application.ActionStart, func(p PanelActions, ctx context.Context) (application.CommandResult, error) {
		return p.Start(ctx)
	})
}

// StopCmd 發送停止命令
func (b *CommandBuilder) StopCmd() tea.Cmd {
	return b.actionCmd(application.ActionStop, func(p PanelActions, ctx context.Context) (application.CommandResult, error) {
		return p.Stop(ctx)
	})
}

// UpdateConfigCmd 提示輸入並提交配置
// 輸入框由 PromptRequestMsg 打開，該命令在用戶提交或取消前保持阻塞
func (b *CommandBuilder) UpdateConfigCmd() tea.Cmd {
	return b.actionCmd(application.ActionUpdateConfig, func(p PanelActions, ctx context.Context) (application.CommandResult, error) {
		return p.UpdateConfig(ctx)
	})
}

func (b *CommandBuilder) actionCmd(action string, run func(PanelActions, context.Context) (application.CommandResult, error)) tea.Cmd {
	return func() tea.Msg {
		if b.panel == nil {
			return msg.ActionResultMsg{
				Result: application.CommandResult{Action: action},
				Err:    errPanelMissing,
			}
		}

		// 命令與隨後的刷新共用同一個請求 ID
		ctx, id := appctx.EnsureRequestID(b.ctx)
		b.log.Debug("執行面板命令", zap.String("action", action), zap.String("request_id", id))

		result, err := run(b.panel, ctx)
		if result.Action == "" {
			result.Action = action
		}
		return msg.ActionResultMsg{Result: result, Err: err}
	}
}
