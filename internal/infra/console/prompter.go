package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter 從輸入流讀取一行作為回答
// 讀到 EOF 且沒有任何內容時視為取消
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

type lineResult struct {
	line string
	err  error
}

// Prompt 輸出提示語並等待一行輸入
func (p *LinePrompter) Prompt(ctx context.Context, message string) (string, bool, error) {
	if p.out != nil {
		if _, err := fmt.Fprintf(p.out, "%s ", message); err != nil {
			return "", false, err
		}
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case r := <-ch:
		line := strings.TrimRight(r.line, "\r\n")
		if r.err != nil {
			if errors.Is(r.err, io.EOF) {
				if line == "" {
					return "", false, nil
				}
				return line, true, nil
			}
			return "", false, r.err
		}
		return line, true, nil
	}
}
