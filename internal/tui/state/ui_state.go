package state

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	ttea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View 定義視圖枚舉
type View int

const (
	MainMenuView View = iota
	ConfigEditorView
)

// StatusType 狀態類型
type StatusType int

const (
	StatusReady StatusType = iota
	StatusSuccess
	StatusError
	StatusFatal
	StatusInfo
	StatusWarn
)

// StatusMsg 狀態欄消息
type StatusMsg struct {
	Type    StatusType
	Message string
	Detail  string
	Show    bool
}

// UIState UI 核心狀態
type UIState struct {
	CurrentView  View
	PreviousView View // 用於返回
	TextInput    textinput.Model
	TextArea     textarea.Model
	Spinner      spinner.Model
	Width        int
	Height       int
	Status       StatusMsg
}

// NewUIState 創建 UI 狀態
func NewUIState() *UIState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Width = 50
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = `{"key": "value"}`
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(50)
	ta.SetHeight(8)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &UIState{
		CurrentView: MainMenuView,
		TextInput:   ti,
		TextArea:    ta,
		Width:       80,
		Height:      24,
		Status:      StatusMsg{Type: StatusReady},
		Spinner:     s,
	}
}

// SwitchView 切換視圖
func (s *UIState) SwitchView(v View) ttea.Cmd {
	s.PreviousView = s.CurrentView // 記錄上一級，便於返回
	s.CurrentView = v
	s.TextInput.Reset()

	// 切換視圖時重置狀態欄（除非是錯誤狀態，保留給用戶看）
	if s.Status.Type != StatusError && s.Status.Type != StatusFatal {
		s.Status = StatusMsg{Type: StatusReady}
	}

	if v == ConfigEditorView {
		s.TextInput.Blur()
		s.TextArea.Reset()
		return s.TextArea.Focus()
	}
	s.TextArea.Blur()
	return s.TextInput.Focus()
}

// SetStatus 設置狀態欄消息
func (s *UIState) SetStatus(t StatusType, msg, detail string, show bool) {
	s.Status = StatusMsg{
		Type:    t,
		Message: msg,
		Detail:  detail,
		Show:    show,
	}
}

// UpdateInput 更新當前視圖的輸入組件
func (s *UIState) UpdateInput(msg ttea.Msg) ttea.Cmd {
	var cmd ttea.Cmd
	if s.CurrentView == ConfigEditorView {
		s.TextArea, cmd = s.TextArea.Update(msg)
		return cmd
	}
	s.TextInput, cmd = s.TextInput.Update(msg)
	return cmd
}

func (s *UIState) GetInputBuffer() string {
	return s.TextInput.Value()
}

func (s *UIState) ClearInput() {
	s.TextInput.Reset()
}

// UpdateSize 更新尺寸
func (s *UIState) UpdateSize(w, h int) {
	s.Width = w
	s.Height = h

	width := w - 4
	if width > 100 {
		width = 100
	}
	if width < 30 {
		width = 30
	}
	s.TextArea.SetWidth(width)
}
