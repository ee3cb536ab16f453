package model

import (
	"fmt"
	"time"

	"github.com/Yat-Muk/prism-panel/internal/application"
	"github.com/Yat-Muk/prism-panel/internal/tui/handlers"
	"github.com/Yat-Muk/prism-panel/internal/tui/msg"
	"github.com/Yat-Muk/prism-panel/internal/tui/state"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// TickMsg 每秒重繪一次，讓"上次更新"時間保持最新
// 數據刷新由 Poller 驅動，這裡不拉取狀態
type TickMsg time.Time

// Router 事件路由器
type Router struct {
	stateMgr   *state.Manager
	keyHandler *handlers.KeyHandler
	cmdBuilder *handlers.CommandBuilder
	log        *zap.Logger
}

// NewRouter 創建路由器
func NewRouter(cfg *handlers.Config) *Router {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	cmdBuilder := handlers.NewCommandBuilder(log, cfg.Panel, cfg.Ctx)
	keyHandler := handlers.NewKeyHandler(cfg.StateMgr, cmdBuilder)

	return &Router{
		stateMgr:   cfg.StateMgr,
		keyHandler: keyHandler,
		cmdBuilder: cmdBuilder,
		log:        log,
	}
}

// InitModel 用於 Model.Init 調用
func (r *Router) InitModel() tea.Cmd {
	return tea.Batch(
		r.stateMgr.UI().TextInput.Focus(),
		TickCmd(),
	)
}

// Update 適配 bubbletea 的 Update 簽名
func (r *Router) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := r.routeMessage(message); cmd != nil {
		return nil, cmd
	}
	return nil, nil
}

// View 適配 bubbletea 的 View 簽名
func (r *Router) View() string {
	return r.stateMgr.Render()
}

// routeMessage 內部路由邏輯
func (r *Router) routeMessage(message tea.Msg) tea.Cmd {
	m := r.stateMgr

	switch msgType := message.(type) {

	case tea.WindowSizeMsg:
		m.UI().UpdateSize(msgType.Width, msgType.Height)
		return nil

	case tea.KeyMsg:
		_, cmd := r.keyHandler.Handle(msgType, m)
		return cmd

	case TickMsg:
		return TickCmd()

	case msg.DisplayMsg:
		m.Panel().Apply(msgType.Display, m.Now())
		return nil

	case msg.PromptRequestMsg:
		m.Panel().OpenPrompt(msgType.Message, msgType.Reply)
		cmd := m.UI().SwitchView(state.ConfigEditorView)
		m.UI().SetStatus(state.StatusInfo, "請輸入 JSON 配置", "Ctrl+S 提交，Esc 取消", false)
		return cmd

	case msg.ActionResultMsg:
		m.Panel().EndAction()
		r.applyActionResult(msgType)
		return nil

	case msg.RefreshResultMsg:
		// 刷新失敗只寫日誌，界面保持上一次的狀態
		if msgType.Err != nil {
			m.UI().SetStatus(state.StatusReady, "", "", false)
			return nil
		}
		m.UI().SetStatus(state.StatusSuccess, "狀態已刷新", "", false)
		return nil

	default:
		// 標準處理：同時更新 Spinner 和輸入組件
		var cmd tea.Cmd
		m.UI().Spinner, cmd = m.UI().Spinner.Update(message)
		inputCmd := m.UI().UpdateInput(message)
		return tea.Batch(cmd, inputCmd)
	}
}

func (r *Router) applyActionResult(res msg.ActionResultMsg) {
	ui := r.stateMgr.UI()
	label := actionLabel(res.Result.Action)

	switch {
	case res.Err != nil:
		ui.SetStatus(state.StatusError, fmt.Sprintf("%s失敗：%v", label, res.Err), "", false)

	case !res.Result.Sent:
		ui.SetStatus(state.StatusWarn, "已取消配置更新", "", false)

	case res.Result.StatusCode >= 200 && res.Result.StatusCode < 300:
		ui.SetStatus(state.StatusSuccess, fmt.Sprintf("%s成功", label), fmt.Sprintf("HTTP %d", res.Result.StatusCode), false)

	default:
		ui.SetStatus(state.StatusWarn, fmt.Sprintf("⚠️ %s已完成，服務端返回 HTTP %d", label, res.Result.StatusCode), "", false)
	}
}

func actionLabel(action string) string {
	switch action {
	case application.ActionStart:
		return "啟動命令"
	case application.ActionStop:
		return "停止命令"
	case application.ActionUpdateConfig:
		return "配置更新"
	default:
		return action
	}
}

// TickCmd 定時器
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
