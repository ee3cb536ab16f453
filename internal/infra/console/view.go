package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Yat-Muk/prism-panel/internal/domain/status"
)

// TextView 將狀態以純文本寫到 io.Writer
type TextView struct {
	mu  sync.Mutex
	out io.Writer
	err error
}

func NewTextView(out io.Writer) *TextView {
	return &TextView{out: out}
}

// Render 寫出一份完整的狀態
func (v *TextView) Render(d status.Display) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Status: %s\n", d.Status)
	fmt.Fprintf(&sb, "CPU:    %s\n", d.CPU)
	fmt.Fprintf(&sb, "Memory: %s\n", d.Memory)
	sb.WriteString("Config:\n")
	if len(d.Config) == 0 {
		sb.WriteString("  (empty)\n")
	}
	for _, line := range d.Config {
		fmt.Fprintf(&sb, "  - %s\n", line)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if _, err := io.WriteString(v.out, sb.String()); err != nil && v.err == nil {
		v.err = err
	}
}

// Err 返回第一次寫入失敗的錯誤
func (v *TextView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}
