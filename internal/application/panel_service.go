package application

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Yat-Muk/prism-panel/internal/domain/status"
	perrors "github.com/Yat-Muk/prism-panel/internal/pkg/errors"
	"github.com/Yat-Muk/prism-panel/internal/pkg/logger"
)

// ConfigPromptMessage 更新配置時的提示語
const ConfigPromptMessage = "Enter new configuration as JSON:"

// 命令名稱
const (
	ActionStart        = "start"
	ActionStop         = "stop"
	ActionUpdateConfig = "update-config"
)

// CoreClient 後端 API
type CoreClient interface {
	Status(ctx context.Context) (*status.Snapshot, error)
	Start(ctx context.Context) (int, error)
	Stop(ctx context.Context) (int, error)
	UpdateConfig(ctx context.Context, rawJSON string) (int, error)
}

// View 展示綁定，由調用方注入
type View interface {
	Render(d status.Display)
}

// Prompter 向用戶索取一段文本；ok 為 false 表示用戶取消
type Prompter interface {
	Prompt(ctx context.Context, message string) (value string, ok bool, err error)
}

// CommandResult 命令執行結果
type CommandResult struct {
	Action     string
	Sent       bool // update-config 被取消時為 false
	StatusCode int
}

// PanelService 狀態面板控制器
type PanelService struct {
	client   CoreClient
	view     View
	prompter Prompter
	log      *zap.Logger
	safeLog  logger.SafeLogger

	discardStale bool
	issued       atomic.Uint64

	renderMu sync.Mutex
	rendered uint64
}

// PanelOption 控制器選項
type PanelOption func(*PanelService)

// WithDiscardStale 開啟後，早於已渲染請求發出的響應會被丟棄
func WithDiscardStale(enabled bool) PanelOption {
	return func(s *PanelService) { s.discardStale = enabled }
}

func NewPanelService(client CoreClient, view View, prompter Prompter, log *zap.Logger, opts ...PanelOption) *PanelService {
	s := &PanelService{
		client:   client,
		view:     view,
		prompter: prompter,
		log:      log,
		safeLog:  logger.NewSafeLogger(log),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RefreshStatus 拉取狀態並整體覆蓋視圖
// 失敗時只記錄日誌，視圖保持上一次的內容
func (s *PanelService) RefreshStatus(ctx context.Context) error {
	seq := s.issued.Add(1)

	snap, err := s.client.Status(ctx)
	if err != nil {
		s.log.Error("獲取狀態失敗", zap.Error(err), zap.Uint64("seq", seq))
		return err
	}
	d := snap.Display()

	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	if s.discardStale && seq < s.rendered {
		s.log.Debug("丟棄過期響應", zap.Uint64("seq", seq), zap.Uint64("rendered", s.rendered))
		return nil
	}
	s.rendered = seq
	s.view.Render(d)
	return nil
}

// Start 發送啟動命令，完成後刷新一次
func (s *PanelService) Start(ctx context.Context) (CommandResult, error) {
	return s.command(ctx, ActionStart, s.client.Start)
}

// Stop 發送停止命令，完成後刷新一次
func (s *PanelService) Stop(ctx context.Context) (CommandResult, error) {
	return s.command(ctx, ActionStop, s.client.Stop)
}

// UpdateConfig 提示用戶輸入 JSON 配置並原樣提交
// 取消或輸入為空時不發送任何請求
func (s *PanelService) UpdateConfig(ctx context.Context) (CommandResult, error) {
	result := CommandResult{Action: ActionUpdateConfig}

	value, ok, err := s.prompter.Prompt(ctx, ConfigPromptMessage)
	if err != nil {
		err = perrors.Wrapf(perrors.ErrPromptFailed, err, perrors.CodePrompt, "讀取配置輸入失敗")
		s.log.Error("讀取配置輸入失敗", zap.Error(err))
		return result, err
	}
	if !ok || value == "" {
		s.log.Debug("用戶取消配置更新")
		return result, nil
	}

	s.safeLog.Infow("提交新配置", "body", logger.MaskJSON(value), "bytes", len(value))

	return s.command(ctx, ActionUpdateConfig, func(ctx context.Context) (int, error) {
		return s.client.UpdateConfig(ctx, value)
	})
}

func (s *PanelService) command(ctx context.Context, action string, send func(context.Context) (int, error)) (CommandResult, error) {
	result := CommandResult{Action: action}

	code, err := send(ctx)
	if err != nil {
		s.log.Error("命令發送失敗", zap.String("action", action), zap.Error(err))
		return result, err
	}
	result.Sent = true
	result.StatusCode = code

	s.log.Info("命令已完成", zap.String("action", action), zap.Int("status", code))

	// 刷新失敗已在 RefreshStatus 內記錄，不影響命令結果
	_ = s.RefreshStatus(ctx)
	return result, nil
}
