package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Yat-Muk/prism-panel/internal/domain/status"
	"github.com/Yat-Muk/prism-panel/internal/tui/constants"
	"github.com/Yat-Muk/prism-panel/internal/tui/style"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// MainViewData 主視圖所需數據
type MainViewData struct {
	Display   status.Display
	HasData   bool
	Age       string // 距上次成功刷新的時間
	ServerURL string
	Interval  time.Duration
	Version   string
	Busy      bool
	Spinner   string
	Width     int
}

const barWidth = 20

// RenderMainView 渲染主視圖
func RenderMainView(data MainViewData, ti textinput.Model, statusMsg string) string {
	width := data.Width
	if width < 60 {
		width = 60
	}

	sections := []string{
		renderHeader(data.Version, data.ServerURL),
		renderStatusPanel(data),
		renderConfigList(data.Display.Config, width),
		renderMainMenu(),
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(sections, "\n"),
		RenderStatusMessage(statusMsg),
		RenderInputFooter(ti),
	)
}

func renderHeader(version, serverURL string) string {
	labelStyle := lipgloss.NewStyle().Foreground(style.DarkGray)
	valueStyle := lipgloss.NewStyle().Foreground(style.Gray)

	versionText := version
	if versionText == "" {
		versionText = "dev"
	} else if !strings.HasPrefix(versionText, "v") {
		versionText = "v" + versionText
	}

	center := lipgloss.NewStyle().Width(49).AlignHorizontal(lipgloss.Center)

	info := center.Render(lipgloss.JoinHorizontal(
		lipgloss.Left,
		labelStyle.Render("面板版本: "),
		valueStyle.Render(versionText),
	))
	server := center.Render(lipgloss.JoinHorizontal(
		lipgloss.Left,
		labelStyle.Render("核心地址: "),
		valueStyle.Render(serverURL),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderLogo(),
		"",
		renderSubtitle(),
		"",
		info,
		server,
		renderSeparator("═"),
	)
}

func renderStatusPanel(data MainViewData) string {
	labelStyle := lipgloss.NewStyle().Foreground(style.DarkGray)
	valueStyle := lipgloss.NewStyle().Foreground(style.FutureGreen)
	mutedStyle := lipgloss.NewStyle().Foreground(style.DarkGray)

	var lines []string

	if !data.HasData {
		lines = append(lines,
			labelStyle.Render("運行狀態: ")+mutedStyle.Render("檢查中..."),
			labelStyle.Render("CPU 使用: ")+mutedStyle.Render("檢查中..."),
			labelStyle.Render("內存使用: ")+mutedStyle.Render("檢查中..."),
		)
	} else {
		d := data.Display
		statusStyle := lipgloss.NewStyle().Foreground(style.GetStatusColor(d.Status))
		lines = append(lines,
			labelStyle.Render("運行狀態: ")+statusStyle.Render(style.StatusIcon(d.Status)+" "+d.Status),
			labelStyle.Render("CPU 使用: ")+style.RenderProgressBar(parsePercent(d.CPU), barWidth)+" "+valueStyle.Render(d.CPU),
			labelStyle.Render("內存使用: ")+style.RenderProgressBar(parsePercent(d.Memory), barWidth)+" "+valueStyle.Render(d.Memory),
		)
	}

	refresh := labelStyle.Render("上次更新: ")
	if data.Age == "" {
		refresh += mutedStyle.Render("尚未獲取")
	} else {
		refresh += mutedStyle.Render(data.Age)
	}
	if data.Interval > 0 {
		refresh += mutedStyle.Render(fmt.Sprintf(" (每 %s 刷新)", data.Interval))
	}
	lines = append(lines, refresh)

	if data.Busy {
		lines = append(lines, data.Spinner+lipgloss.NewStyle().Foreground(style.Yellow).Render(" 命令執行中..."))
	}

	lines = append(lines, renderSeparator("─"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// parsePercent 從 "42%" 解析出數值，無法解析時返回 0
func parsePercent(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0
	}
	return v
}

// renderConfigList 以 "key: value" 對齊的方式渲染配置列表
func renderConfigList(lines []string, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(style.SkyBlue)
	keyStyle := lipgloss.NewStyle().Foreground(style.Gray)
	valueStyle := lipgloss.NewStyle().Foreground(style.White)

	rows := []string{titleStyle.Render(" 當前配置")}
	if len(lines) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(style.DarkGray).Render("   (空)"))
		rows = append(rows, renderSeparator("═"))
		return strings.Join(rows, "\n")
	}

	keys := make([]string, len(lines))
	values := make([]string, len(lines))
	keyWidth := 0
	for i, line := range lines {
		k, v, found := strings.Cut(line, ": ")
		if !found {
			k, v = line, ""
		}
		keys[i], values[i] = k, v
		if w := runewidth.StringWidth(k); w > keyWidth {
			keyWidth = w
		}
	}

	valueWidth := width - keyWidth - 8
	if valueWidth < 10 {
		valueWidth = 10
	}

	for i := range lines {
		rows = append(rows, fmt.Sprintf("   %s %s %s",
			keyStyle.Render(runewidth.FillRight(keys[i], keyWidth)),
			lipgloss.NewStyle().Foreground(style.DarkGray).Render(":"),
			valueStyle.Render(runewidth.Truncate(values[i], valueWidth, "…")),
		))
	}
	rows = append(rows, renderSeparator("═"))
	return strings.Join(rows, "\n")
}

func renderMainMenu() string {
	items := []MenuItem{
		{constants.KeyMain_Start, "啟動核心", "(向核心發送啟動命令)", style.FutureGreen},
		{constants.KeyMain_Stop, "停止核心", "(向核心發送停止命令)", style.Red},
		{constants.KeyMain_UpdateConfig, "更新配置", "(提交 JSON 配置)", style.White},

		{"", "", "", lipgloss.Color("")},

		{constants.KeyMain_Refresh, "立即刷新", "", style.White},
		{constants.KeyMain_Quit, "退出", "", style.White},
	}

	return renderMenuWithAlignment(items)
}
