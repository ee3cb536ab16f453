// Package bridge 把應用層的 View/Prompter 接口接到運行中的 bubbletea 程序
package bridge

import (
	"context"
	"errors"
	"sync"

	"github.com/Yat-Muk/prism-panel/internal/domain/status"
	"github.com/Yat-Muk/prism-panel/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotAttached 程序尚未綁定
var ErrNotAttached = errors.New("tui program not attached")

// Sender *tea.Program 的子集
type Sender interface {
	Send(msg tea.Msg)
}

// Relay 延遲綁定的消息通道
// 程序需要 Model，Model 又依賴服務，所以先創建 Relay，程序創建後再 Attach
type Relay struct {
	mu     sync.RWMutex
	sender Sender
}

func NewRelay() *Relay {
	return &Relay{}
}

// Attach 綁定程序
func (r *Relay) Attach(s Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sender = s
}

// Send 投遞消息；未綁定時返回 ErrNotAttached
func (r *Relay) Send(m tea.Msg) error {
	r.mu.RLock()
	s := r.sender
	r.mu.RUnlock()

	if s == nil {
		return ErrNotAttached
	}
	s.Send(m)
	return nil
}

// ProgramView 通過消息把狀態交給事件循環渲染
type ProgramView struct {
	relay *Relay
}

func NewProgramView(relay *Relay) *ProgramView {
	return &ProgramView{relay: relay}
}

// Render 未綁定時丟棄
func (v *ProgramView) Render(d status.Display) {
	_ = v.relay.Send(msg.DisplayMsg{Display: d})
}

// ProgramPrompter 打開配置輸入頁並等待用戶提交或取消
type ProgramPrompter struct {
	relay *Relay
}

func NewProgramPrompter(relay *Relay) *ProgramPrompter {
	return &ProgramPrompter{relay: relay}
}

func (p *ProgramPrompter) Prompt(ctx context.Context, message string) (string, bool, error) {
	reply := make(chan msg.PromptReply, 1)
	if err := p.relay.Send(msg.PromptRequestMsg{Message: message, Reply: reply}); err != nil {
		return "", false, err
	}

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case r := <-reply:
		return r.Value, r.OK, nil
	}
}
