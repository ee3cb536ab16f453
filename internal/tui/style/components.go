package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(SkyBlue)

	ProgressBarEmptyStyle = lipgloss.NewStyle().
				Foreground(DarkGray)
)

// RenderProgressBar 渲染進度條，percent 超出 0-100 時截斷
func RenderProgressBar(percent float64, width int) string {
	if width < 2 {
		width = 20
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(float64(width) * percent / 100.0)
	empty := width - filled

	return ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		ProgressBarEmptyStyle.Render(strings.Repeat("░", empty))
}
