package view

import (
	"github.com/Yat-Muk/prism-panel/internal/tui/style"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

// RenderConfigEditor 渲染配置輸入頁
func RenderConfigEditor(message string, ta textarea.Model, statusMsg string) string {
	prompt := lipgloss.NewStyle().
		Foreground(style.White).
		PaddingLeft(1).
		Render(message)

	editor := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Violet).
		Render(ta.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderSubpageHeader("更新配置"),
		"",
		prompt,
		"",
		editor,
		RenderStatusMessage(statusMsg),
		renderHints("Ctrl+S", "提交", "Esc", "取消"),
	)
}
