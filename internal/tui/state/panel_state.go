package state

import (
	"time"

	"github.com/Yat-Muk/prism-panel/internal/domain/status"
	"github.com/Yat-Muk/prism-panel/internal/tui/msg"
)

// PanelState 面板數據狀態
type PanelState struct {
	Display   status.Display
	HasData   bool
	UpdatedAt time.Time

	// InFlight 進行中的命令數
	InFlight int

	// 等待用戶輸入的配置請求
	PromptMessage string
	promptReply   chan<- msg.PromptReply
}

func NewPanelState() *PanelState {
	return &PanelState{}
}

// Apply 整體替換當前展示內容
func (p *PanelState) Apply(d status.Display, at time.Time) {
	p.Display = d
	p.HasData = true
	p.UpdatedAt = at
}

// Busy 是否有命令在執行
func (p *PanelState) Busy() bool {
	return p.InFlight > 0
}

func (p *PanelState) BeginAction() {
	p.InFlight++
}

func (p *PanelState) EndAction() {
	if p.InFlight > 0 {
		p.InFlight--
	}
}

// OpenPrompt 記錄新的輸入請求；已有未回覆的請求時先將其取消
func (p *PanelState) OpenPrompt(message string, reply chan<- msg.PromptReply) {
	p.ResolvePrompt(msg.PromptReply{})
	p.PromptMessage = message
	p.promptReply = reply
}

// PromptPending 是否有等待回覆的輸入請求
func (p *PanelState) PromptPending() bool {
	return p.promptReply != nil
}

// ResolvePrompt 回覆並清除當前輸入請求
func (p *PanelState) ResolvePrompt(r msg.PromptReply) {
	if p.promptReply == nil {
		return
	}
	select {
	case p.promptReply <- r:
	default:
	}
	p.promptReply = nil
	p.PromptMessage = ""
}
