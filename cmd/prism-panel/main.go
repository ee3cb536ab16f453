package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/Yat-Muk/prism-panel/internal/application"
	"github.com/Yat-Muk/prism-panel/internal/pkg/appctx"
	"github.com/Yat-Muk/prism-panel/internal/pkg/version"
	"github.com/Yat-Muk/prism-panel/internal/tui/bridge"
	"github.com/Yat-Muk/prism-panel/internal/tui/handlers"
	"github.com/Yat-Muk/prism-panel/internal/tui/model"
	"github.com/Yat-Muk/prism-panel/internal/tui/state"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	// 1. 命令行參數解析
	var (
		workDir   = flag.String("dir", "", "指定工作目錄 (默認: /etc/prism-panel 或 ~/.prism-panel)")
		server    = flag.String("server", "", "核心 API 地址，覆蓋設置文件 (如 http://127.0.0.1:5000)")
		interval  = flag.Duration("interval", 0, "狀態輪詢間隔，覆蓋設置文件 (如 5s)")
		command   = flag.String("cmd", "", "執行單個操作後退出: status|start|stop|update-config")
		showVer   = flag.Bool("version", false, "顯示版本信息")
		debugFlag = flag.Bool("debug", false, "開啟調試模式")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// 2. 環境初始化
	paths, err := appctx.NewPaths(*workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "致命錯誤: 無法初始化路徑: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadSettings(ctx, paths, Overrides{
		ServerURL: *server,
		Interval:  *interval,
		Debug:     *debugFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "致命錯誤: 設置無效: %v\n", err)
		os.Exit(1)
	}

	oneShot := *command != ""
	if !oneShot {
		redirectStdErr(filepath.Join(paths.LogDir, "stderr.log"))
	}

	// TUI 模式下控制台輸出會破壞界面
	log, err := newLogger(paths, cfg.Log.Level, oneShot && *debugFlag)
	if err != nil {
		panic(fmt.Sprintf("日誌初始化失敗: %v", err))
	}
	defer log.Sync()

	log.Info("Prism Panel 正在啟動",
		zap.String("version", version.Version),
		zap.String("commit", version.GitCommit),
		zap.String("server", cfg.Server.BaseURL),
		zap.String("cmd", *command),
	)

	// 3. 依賴注入
	deps := initializeDependencies(log, paths, cfg)

	// 4. 模式分發
	if oneShot {
		if err := runCommand(ctx, deps, *command, os.Stdin, os.Stdout); err != nil {
			log.Error("命令執行失敗", zap.String("cmd", *command), zap.Error(err))
			fmt.Fprintf(os.Stderr, "錯誤: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runTUI(ctx, deps)
}

func runTUI(parent context.Context, deps *AppDependencies) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// 程序創建前服務已需要 View/Prompter，通過 Relay 延遲綁定
	relay := bridge.NewRelay()
	panel := deps.NewPanelService(bridge.NewProgramView(relay), bridge.NewProgramPrompter(relay))

	stateMgr := state.NewManager(&state.Config{
		Log:       deps.Log,
		ServerURL: deps.Settings.Server.BaseURL,
		Interval:  deps.Settings.Poll.Interval,
		Version:   version.Version,
	})

	router := model.NewRouter(&handlers.Config{
		Log:      deps.Log,
		StateMgr: stateMgr,
		Panel:    panel,
		Ctx:      ctx,
	})

	p := tea.NewProgram(
		model.NewModel(router),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	relay.Attach(p)

	poller := application.NewPoller(panel, deps.Settings.Poll.Interval, nil, deps.Log)
	if err := poller.Start(ctx); err != nil {
		deps.Log.Error("輪詢啟動失敗", zap.Error(err))
	}
	defer poller.Stop()

	// 崩潰保護
	defer func() {
		if r := recover(); r != nil {
			p.ReleaseTerminal()
			fmt.Printf("\n\n❌ 程序崩潰: %v\n", r)
			deps.Log.Error("Panic", zap.Any("error", r), zap.String("stack", string(debug.Stack())))
			os.Exit(1)
		}
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Printf("程序運行錯誤: %v\n", err)
		os.Exit(1)
	}
	cancel()
	fmt.Println("👋 Bye!")
}

func redirectStdErr(filename string) {
	_ = os.MkdirAll(filepath.Dir(filename), 0755)
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		os.Stderr = f
	}
}
