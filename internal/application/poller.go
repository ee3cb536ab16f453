package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// ErrPollerRunning 重複啟動
var ErrPollerRunning = errors.New("poller already running")

// Refresher 被輪詢的對象
type Refresher interface {
	RefreshStatus(ctx context.Context) error
}

// Poller 週期刷新：啟動時立即刷新一次，之後每個間隔刷新一次
// 每次刷新在獨立協程中進行，上一次未返回不會阻塞下一次
type Poller struct {
	refresher Refresher
	interval  time.Duration
	clock     clock.Clock
	log       *zap.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	inflight sync.WaitGroup
}

func NewPoller(refresher Refresher, interval time.Duration, clk clock.Clock, log *zap.Logger) *Poller {
	if clk == nil {
		clk = clock.New()
	}
	return &Poller{
		refresher: refresher,
		interval:  interval,
		clock:     clk,
		log:       log,
	}
}

// Start 啟動輪詢
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return ErrPollerRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	ticker := p.clock.Ticker(p.interval)
	done := make(chan struct{})

	p.cancel = cancel
	p.done = done

	p.log.Info("開始輪詢狀態", zap.Duration("interval", p.interval))

	go p.loop(ctx, ticker, done)
	return nil
}

// Stop 停止輪詢並等待所有進行中的刷新返回，可重複調用
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	p.inflight.Wait()

	p.log.Info("輪詢已停止")
}

// Running 是否在輪詢
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) loop(ctx context.Context, ticker *clock.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	p.fire(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fire(ctx)
		}
	}
}

func (p *Poller) fire(ctx context.Context) {
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		// 錯誤已由 Refresher 記錄
		_ = p.refresher.RefreshStatus(ctx)
	}()
}
