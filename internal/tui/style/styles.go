package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GetStatusColor 根據狀態返回顏色
func GetStatusColor(status string) lipgloss.Color {
	switch strings.ToLower(status) {
	case "running", "active", "enabled", "started":
		return FutureGreen
	case "stopped", "inactive", "disabled":
		return Red
	case "starting", "stopping", "restarting":
		return Yellow
	case "failed", "error":
		return Orange
	default:
		return DarkGray
	}
}

// StatusIcon 狀態圖標
func StatusIcon(status string) string {
	switch strings.ToLower(status) {
	case "running", "active", "enabled", "started":
		return "●"
	case "starting", "stopping", "restarting":
		return "◐"
	case "failed", "error":
		return "✗"
	default:
		return "○"
	}
}
