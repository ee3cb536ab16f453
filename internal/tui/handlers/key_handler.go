package handlers

import (
	"strings"

	"github.com/Yat-Muk/prism-panel/internal/tui/constants"
	"github.com/Yat-Muk/prism-panel/internal/tui/msg"
	"github.com/Yat-Muk/prism-panel/internal/tui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler 核心處理器：負責全局導航和請求分發
type KeyHandler struct {
	stateMgr   *state.Manager
	cmdBuilder *CommandBuilder
}

func NewKeyHandler(stateMgr *state.Manager, cmdBuilder *CommandBuilder) *KeyHandler {
	return &KeyHandler{
		stateMgr:   stateMgr,
		cmdBuilder: cmdBuilder,
	}
}

// Handle 處理全局按鍵
func (h *KeyHandler) Handle(key tea.KeyMsg, m *state.Manager) (*state.Manager, tea.Cmd) {
	if key.Type == tea.KeyCtrlC {
		// 釋放等待中的輸入請求，避免後台命令一直阻塞
		m.Panel().ResolvePrompt(msg.PromptReply{})
		return m, tea.Quit
	}

	if m.UI().CurrentView == state.ConfigEditorView {
		return h.handleEditorKey(key, m)
	}

	switch key.Type {
	case tea.KeyEnter:
		return h.handleInputSubmit(m)

	case tea.KeyEsc:
		return h.handleInputEscape(m)

	default:
		// 所有輸入交給組件，UpdateInput 會返回閃爍計時器的 Cmd
		return m, m.UI().UpdateInput(key)
	}
}

// ========================================
// 主菜單 (Enter 觸發)
// ========================================

func (h *KeyHandler) handleInputSubmit(m *state.Manager) (*state.Manager, tea.Cmd) {
	input := strings.TrimSpace(m.UI().GetInputBuffer())
	m.UI().ClearInput()

	if input == "" {
		return m, nil
	}
	return h.submitMainMenu(m, input)
}

func (h *KeyHandler) submitMainMenu(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	switch strings.ToLower(input) {
	case constants.KeyMain_Start:
		m.UI().SetStatus(state.StatusInfo, "正在發送啟動命令...", "", true)
		return m, h.beginAction(m, h.cmdBuilder.StartCmd())

	case constants.KeyMain_Stop:
		m.UI().SetStatus(state.StatusInfo, "正在發送停止命令...", "", true)
		return m, h.beginAction(m, h.cmdBuilder.StopCmd())

	case constants.KeyMain_UpdateConfig:
		if m.Panel().PromptPending() {
			return m, m.UI().SwitchView(state.ConfigEditorView)
		}
		m.UI().SetStatus(state.StatusInfo, "正在打開配置輸入...", "", true)
		return m, h.beginAction(m, h.cmdBuilder.UpdateConfigCmd())

	case constants.KeyMain_Refresh:
		m.UI().SetStatus(state.StatusInfo, "正在刷新狀態...", "", true)
		return m, h.cmdBuilder.RefreshCmd()

	case constants.KeyMain_Quit, "q":
		return m, tea.Quit

	default:
		m.UI().SetStatus(state.StatusWarn, "⚠️ 無效選項: "+input, "請輸入菜單中的序號", false)
		return m, nil
	}
}

// beginAction 記錄進行中的命令，首個命令啟動 Spinner
func (h *KeyHandler) beginAction(m *state.Manager, cmd tea.Cmd) tea.Cmd {
	wasBusy := m.Panel().Busy()
	m.Panel().BeginAction()
	if wasBusy {
		return cmd
	}
	return tea.Batch(cmd, m.UI().Spinner.Tick)
}

func (h *KeyHandler) handleInputEscape(m *state.Manager) (*state.Manager, tea.Cmd) {
	m.UI().SetStatus(state.StatusReady, "", "", false)
	m.UI().ClearInput()
	return m, m.UI().TextInput.Focus()
}

// ========================================
// 配置輸入頁
// ========================================

func (h *KeyHandler) handleEditorKey(key tea.KeyMsg, m *state.Manager) (*state.Manager, tea.Cmd) {
	switch key.String() {
	case constants.KeyEditor_Submit:
		value := m.UI().TextArea.Value()
		m.Panel().ResolvePrompt(msg.PromptReply{Value: value, OK: true})
		cmd := m.UI().SwitchView(state.MainMenuView)
		m.UI().SetStatus(state.StatusInfo, "正在提交配置...", "", true)
		return m, cmd

	case constants.KeyEditor_Cancel:
		m.Panel().ResolvePrompt(msg.PromptReply{})
		return m, m.UI().SwitchView(state.MainMenuView)

	default:
		return m, m.UI().UpdateInput(key)
	}
}
