package state

import (
	"fmt"

	"github.com/Yat-Muk/prism-panel/internal/tui/view"
)

// Render - 安全渲染視圖
func (m *Manager) Render() string {
	width := m.ui.Width
	if width == 0 {
		width = 80
	}

	// 獲取全局狀態消息
	statusMsg := m.ui.Status.Message
	if m.ui.Status.Detail != "" {
		statusMsg = fmt.Sprintf("%s\n%s", statusMsg, m.ui.Status.Detail)
	}

	switch m.ui.CurrentView {
	case ConfigEditorView:
		return view.RenderConfigEditor(m.panel.PromptMessage, m.ui.TextArea, statusMsg)

	default:
		var age string
		if m.panel.HasData {
			age = view.FormatAge(m.Now().Sub(m.panel.UpdatedAt))
		}
		return view.RenderMainView(view.MainViewData{
			Display:   m.panel.Display,
			HasData:   m.panel.HasData,
			Age:       age,
			ServerURL: m.serverURL,
			Interval:  m.interval,
			Version:   m.version,
			Busy:      m.panel.Busy(),
			Spinner:   m.ui.Spinner.View(),
			Width:     width,
		}, m.ui.TextInput, statusMsg)
	}
}
