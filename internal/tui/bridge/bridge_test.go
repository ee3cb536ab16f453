package bridge

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Yat-Muk/prism-panel/internal/domain/status"
	"github.com/Yat-Muk/prism-panel/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender 把消息轉交給回調
type fakeSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
	on   func(tea.Msg)
}

func (f *fakeSender) Send(m tea.Msg) {
	f.mu.Lock()
	f.msgs = append(f.msgs, m)
	on := f.on
	f.mu.Unlock()
	if on != nil {
		on(m)
	}
}

func TestRelay_NotAttached(t *testing.T) {
	r := NewRelay()
	assert.ErrorIs(t, r.Send(msg.DisplayMsg{}), ErrNotAttached)

	// 未綁定時渲染被丟棄，不應 panic
	NewProgramView(r).Render(status.Display{Status: "running"})

	_, ok, err := NewProgramPrompter(r).Prompt(context.Background(), "Enter:")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotAttached)
}

func TestProgramView_Render(t *testing.T) {
	r := NewRelay()
	s := &fakeSender{}
	r.Attach(s)

	d := status.Display{Status: "running", CPU: "42%", Memory: "17%", Config: []string{"mode: auto"}}
	NewProgramView(r).Render(d)

	require.Len(t, s.msgs, 1)
	got, ok := s.msgs[0].(msg.DisplayMsg)
	require.True(t, ok)
	assert.True(t, d.Equal(got.Display))
}

func TestProgramPrompter_Reply(t *testing.T) {
	tests := []struct {
		name  string
		reply msg.PromptReply
	}{
		{"提交", msg.PromptReply{Value: `{"a":1}`, OK: true}},
		{"取消", msg.PromptReply{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRelay()
			var gotMessage string
			r.Attach(&fakeSender{on: func(m tea.Msg) {
				req := m.(msg.PromptRequestMsg)
				gotMessage = req.Message
				req.Reply <- tt.reply
			}})

			value, ok, err := NewProgramPrompter(r).Prompt(context.Background(), "Enter new configuration as JSON:")
			require.NoError(t, err)
			assert.Equal(t, tt.reply.Value, value)
			assert.Equal(t, tt.reply.OK, ok)
			assert.Equal(t, "Enter new configuration as JSON:", gotMessage)
		})
	}
}

func TestProgramPrompter_ContextCancel(t *testing.T) {
	r := NewRelay()
	r.Attach(&fakeSender{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, ok, err := NewProgramPrompter(r).Prompt(ctx, "Enter:")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
