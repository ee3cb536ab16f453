package msg

import (
	"github.com/Yat-Muk/prism-panel/internal/application"
	"github.com/Yat-Muk/prism-panel/internal/domain/status"
)

// DisplayMsg 新的狀態快照已可渲染
type DisplayMsg struct {
	Display status.Display
}

// PromptReply 配置輸入框的結果，OK 為 false 表示取消
type PromptReply struct {
	Value string
	OK    bool
}

// PromptRequestMsg 請求打開配置輸入框
// Reply 必須帶緩衝，UI 回覆時不會阻塞
type PromptRequestMsg struct {
	Message string
	Reply   chan<- PromptReply
}

// ActionResultMsg 命令執行結果消息
type ActionResultMsg struct {
	Result application.CommandResult
	Err    error
}

// RefreshResultMsg 手動刷新結果消息
type RefreshResultMsg struct {
	Err error
}
