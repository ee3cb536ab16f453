package style

import "github.com/charmbracelet/lipgloss"

// 配色方案
var (
	FutureGreen = lipgloss.Color("#B2FF00") // 螢光綠 - 成功/運行中
	SkyBlue     = lipgloss.Color("#1AAEFC") // 天藍 - 主要強調
	Violet      = lipgloss.Color("#DDAAFF") // 紫羅蘭 - 次要強調
	Yellow      = lipgloss.Color("#FFDC65") // 明黃 - 警告
	Orange      = lipgloss.Color("#FC7B00") // 橙色 - 中等警告
	Red         = lipgloss.Color("#FF007F") // 紅色 - 錯誤/停止

	White    = lipgloss.Color("#F3F3F0") // 主要文字
	Gray     = lipgloss.Color("#C0C0C0") // 次要文字
	DarkGray = lipgloss.Color("#8A8783") // 弱化文字
)

// LogoGradient Logo 每行的漸變色
var LogoGradient = []lipgloss.Color{
	lipgloss.Color("#B477ED"),
	lipgloss.Color("#DDAAFF"),
	lipgloss.Color("#DEDEF8"),
	lipgloss.Color("#90CCFB"),
	lipgloss.Color("#1AAEFC"),
	lipgloss.Color("#0381ED"),
}
