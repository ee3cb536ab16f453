package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Yat-Muk/prism-panel/internal/application"
	domainSettings "github.com/Yat-Muk/prism-panel/internal/domain/settings"
	"github.com/Yat-Muk/prism-panel/internal/infra/console"
	"github.com/Yat-Muk/prism-panel/internal/infra/coreapi"
	infraSettings "github.com/Yat-Muk/prism-panel/internal/infra/settings"
	"github.com/Yat-Muk/prism-panel/internal/pkg/appctx"
	"github.com/Yat-Muk/prism-panel/internal/pkg/logger"
	"go.uber.org/zap"
)

// Overrides 命令行參數對設置的覆蓋
type Overrides struct {
	ServerURL string
	Interval  time.Duration
	Debug     bool
}

func (o Overrides) apply(s *domainSettings.Settings) {
	if o.ServerURL != "" {
		s.Server.BaseURL = o.ServerURL
	}
	if o.Interval > 0 {
		s.Poll.Interval = o.Interval
	}
	if o.Debug {
		s.Log.Level = "debug"
	}
}

// loadSettings 加載設置文件並應用命令行覆蓋
// 設置文件不存在時寫入一份默認設置，方便用戶修改
func loadSettings(ctx context.Context, paths *appctx.Paths, o Overrides) (*domainSettings.Settings, error) {
	repo := infraSettings.NewFileRepository(paths.Settings, zap.NewNop())

	_, statErr := os.Stat(paths.Settings)
	s, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if os.IsNotExist(statErr) {
		if err := repo.Save(ctx, s); err != nil {
			return nil, fmt.Errorf("寫入默認設置失敗: %w", err)
		}
	}

	o.apply(s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func newLogger(paths *appctx.Paths, level string, console bool) (*zap.Logger, error) {
	cfg := logger.DefaultConfig()
	cfg.OutputPath = filepath.Join(paths.LogDir, "panel.log")
	cfg.Level = level
	cfg.Console = console
	return logger.New(cfg)
}

type AppDependencies struct {
	Log      *zap.Logger
	Paths    *appctx.Paths
	Settings *domainSettings.Settings
	Client   *coreapi.Client
}

func initializeDependencies(log *zap.Logger, paths *appctx.Paths, s *domainSettings.Settings) *AppDependencies {
	return &AppDependencies{
		Log:      log,
		Paths:    paths,
		Settings: s,
		Client:   coreapi.NewClient(s.Server, log),
	}
}

// NewPanelService 按設置組裝面板控制器
func (d *AppDependencies) NewPanelService(view application.View, prompter application.Prompter) *application.PanelService {
	return application.NewPanelService(d.Client, view, prompter, d.Log,
		application.WithDiscardStale(d.Settings.Poll.DiscardStale),
	)
}

// runCommand 單次模式：執行一個操作，將結果以文本形式輸出
func runCommand(ctx context.Context, deps *AppDependencies, name string, in io.Reader, out io.Writer) error {
	view := console.NewTextView(out)
	panel := deps.NewPanelService(view, console.NewLinePrompter(in, out))

	var (
		result application.CommandResult
		err    error
	)

	switch name {
	case "status":
		if err := panel.RefreshStatus(ctx); err != nil {
			return err
		}
		return view.Err()
	case application.ActionStart:
		result, err = panel.Start(ctx)
	case application.ActionStop:
		result, err = panel.Stop(ctx)
	case application.ActionUpdateConfig:
		result, err = panel.UpdateConfig(ctx)
	default:
		return fmt.Errorf("未知命令 %q (可選: status|start|stop|update-config)", name)
	}
	if err != nil {
		return err
	}

	if !result.Sent {
		fmt.Fprintln(out, "已取消，未發送任何請求")
		return nil
	}
	fmt.Fprintf(out, "%s: HTTP %d\n", result.Action, result.StatusCode)
	return view.Err()
}
