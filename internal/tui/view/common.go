package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/Yat-Muk/prism-panel/internal/tui/style"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// MenuItem 菜單項結構
type MenuItem struct {
	Num       string         // 序號 (如 "1", "r")
	Text      string         // 選項名稱
	Desc      string         // 描述/提示 -> 自動渲染為灰色
	TextColor lipgloss.Color // Text 的顏色
}

// renderMenuWithAlignment 渲染自動對齊的菜單列表
// 只有帶括號描述的項目參與對齊，防止無括號長標題破壞佈局
func renderMenuWithAlignment(items []MenuItem) string {
	maxNumWidth := 0
	maxTextWidth := 0

	for _, item := range items {
		// 跳過分隔線
		if item.Num == "" && item.Text == "" {
			continue
		}
		if len(item.Num) > maxNumWidth {
			maxNumWidth = len(item.Num)
		}
		if hasBracket(item.Desc) {
			if w := runewidth.StringWidth(item.Text); w > maxTextWidth {
				maxTextWidth = w
			}
		}
	}

	// 統一的目標寬度 = 最長文本 + 2個空格間距
	targetWidth := 0
	if maxTextWidth > 0 {
		targetWidth = maxTextWidth + 2
	}

	numStyle := lipgloss.NewStyle().Foreground(style.Violet)
	dotStyle := lipgloss.NewStyle().Foreground(style.DarkGray)

	var rows []string
	for _, item := range items {
		if item.Num == "" && item.Text == "" {
			rows = append(rows, lipgloss.NewStyle().
				Foreground(style.Gray).
				Render(" "+strings.Repeat("┄", 48)))
			continue
		}

		textStyle := lipgloss.NewStyle().Foreground(item.TextColor)
		numStr := fmt.Sprintf("%*s", maxNumWidth, item.Num)

		padding := " "
		if hasBracket(item.Desc) && targetWidth > 0 {
			gap := targetWidth - runewidth.StringWidth(item.Text)
			if gap < 1 {
				gap = 1
			}
			padding = strings.Repeat(" ", gap)
		}

		rows = append(rows, fmt.Sprintf(" %s%s %s%s",
			numStyle.Render(numStr),
			dotStyle.Render("."),
			textStyle.Render(item.Text)+padding,
			colorizeDescription(item.Desc),
		))
	}

	rows = append(rows, renderSeparator("═"))
	return strings.Join(rows, "\n")
}

func hasBracket(s string) bool {
	return strings.Contains(s, "(") || strings.Contains(s, "（")
}

func renderSeparator(ch string) string {
	return lipgloss.NewStyle().
		Foreground(style.Gray).
		Render(strings.Repeat(ch, 50))
}

// colorizeDescription 默認著色邏輯：括號變灰，中括號變黃
func colorizeDescription(desc string) string {
	if desc == "" {
		return ""
	}

	yellowStyle := lipgloss.NewStyle().Foreground(style.Yellow)
	greyStyle := lipgloss.NewStyle().Foreground(style.DarkGray)

	var result strings.Builder
	runes := []rune(desc)
	n := len(runes)

	for i := 0; i < n; i++ {
		start := i
		switch runes[i] {
		case '[':
			for i < n && runes[i] != ']' {
				i++
			}
			if i < n {
				result.WriteString(yellowStyle.Render(string(runes[start : i+1])))
			} else {
				result.WriteString(greyStyle.Render(string(runes[start:])))
			}
		default:
			for i < n && runes[i] != '[' {
				i++
			}
			result.WriteString(greyStyle.Render(string(runes[start:i])))
			i--
		}
	}
	return result.String()
}

// RenderLogo 渲染 PRISM ASCII Logo
func RenderLogo() string {
	logoLines := []string{
		" ██████╗ ██████╗ ██╗███████╗███╗   ███╗",
		" ██╔══██╗██╔══██╗██║██╔════╝████╗ ████║",
		" ██████╔╝██████╔╝██║███████╗██╔████╔██║",
		" ██╔═══╝ ██╔══██╗██║╚════██║██║╚██╔╝██║",
		" ██║     ██║  ██║██║███████║██║ ╚═╝ ██║",
		" ╚═╝     ╚═╝  ╚═╝╚═╝╚══════╝╚═╝     ╚═╝",
	}

	var coloredLines []string
	for i, line := range logoLines {
		coloredLines = append(coloredLines, lipgloss.NewStyle().
			Foreground(style.LogoGradient[i%len(style.LogoGradient)]).
			Width(50).
			AlignHorizontal(lipgloss.Center).
			Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, coloredLines...)
}

func renderSubtitle() string {
	return lipgloss.NewStyle().
		Foreground(style.Violet).
		Width(50).
		AlignHorizontal(lipgloss.Center).
		Render(":: 遠程核心狀態面板 ::")
}

// renderSubpageHeader 渲染子頁面頭部
func renderSubpageHeader(subTitle string) string {
	subTitleLine := lipgloss.NewStyle().
		Foreground(style.SkyBlue).
		Render(fmt.Sprintf(" »»» %s «««", subTitle))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderLogo(),
		"",
		renderSubtitle(),
		"",
		subTitleLine,
		renderSeparator("═"),
	)
}

// RenderStatusMessage 渲染底部狀態欄
// 根據關鍵字（失敗, 成功, 取消）決定顏色
func RenderStatusMessage(msg string) string {
	if msg == "" {
		return ""
	}

	baseColor := style.Violet
	switch {
	case strings.Contains(msg, "⚠️") ||
		strings.Contains(msg, "取消") ||
		strings.Contains(msg, "警告"):
		baseColor = style.Yellow
	case strings.Contains(msg, "失敗") ||
		strings.Contains(msg, "錯誤") ||
		strings.Contains(msg, "無效") ||
		strings.Contains(msg, "✗"):
		baseColor = style.Red
	case strings.Contains(msg, "成功") ||
		strings.Contains(msg, "完成") ||
		strings.Contains(msg, "✓"):
		baseColor = style.FutureGreen
	}

	baseStyle := lipgloss.NewStyle().Foreground(baseColor)

	var renderedLines []string
	for _, line := range strings.Split(msg, "\n") {
		renderedLines = append(renderedLines, baseStyle.Render(line))
	}

	return lipgloss.NewStyle().
		Padding(1, 1).
		Width(52).
		Align(lipgloss.Left).
		Render(lipgloss.JoinVertical(lipgloss.Left, renderedLines...))
}

// RenderTextInput 只渲染輸入行
func RenderTextInput(ti textinput.Model) string {
	prompt := lipgloss.NewStyle().
		Foreground(style.Gray).
		Render(" ❯ 請輸入: ")

	return lipgloss.JoinHorizontal(lipgloss.Left, prompt, ti.View())
}

// renderHints 渲染按鍵提示，參數成對出現：按鍵, 說明
func renderHints(pairs ...string) string {
	keyStyle := lipgloss.NewStyle().Foreground(style.DarkGray)
	descStyle := lipgloss.NewStyle().Foreground(style.Gray)

	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			parts = append(parts, descStyle.Render(" • "))
		}
		parts = append(parts, keyStyle.Render(pairs[i]+" "), descStyle.Render(pairs[i+1]))
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(lipgloss.JoinHorizontal(lipgloss.Left, parts...))
}

// RenderInputFooter 渲染輸入行與按鍵提示
func RenderInputFooter(ti textinput.Model) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTextInput(ti),
		"",
		renderHints("Enter", "確認", "Esc", "清除", "Ctrl+C", "退出"),
	)
}

// FormatAge 將時間差格式化為 "N秒前" 形式
func FormatAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return formatDuration(d) + "前"
}

// formatDuration 格式化時長
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d秒", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%d分鐘", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % 60
		return fmt.Sprintf("%d小時%d分鐘", hours, minutes)
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	return fmt.Sprintf("%d天%d小時", days, hours)
}
