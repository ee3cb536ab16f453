package appctx

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths 定義面板所需的關鍵路徑
type Paths struct {
	BaseDir  string
	LogDir   string
	DataDir  string
	Settings string // panel.yaml
}

func NewPaths(baseDir string) (*Paths, error) {
	if baseDir == "" {
		if isProduction() {
			baseDir = "/etc/prism-panel"
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("無法獲取用戶主目錄: %w", err)
			}
			baseDir = filepath.Join(home, ".prism-panel")
		}
	}

	absPath, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("無法解析絕對路徑: %w", err)
	}

	// 日誌目錄邏輯
	logDir := filepath.Join(absPath, "logs")
	if isProduction() {
		logDir = "/var/log/prism-panel"
	}

	paths := &Paths{
		BaseDir:  absPath,
		LogDir:   logDir,
		DataDir:  filepath.Join(absPath, "data"),
		Settings: filepath.Join(absPath, "panel.yaml"),
	}

	for _, dir := range []string{paths.BaseDir, paths.DataDir, paths.LogDir} {
		perm := os.FileMode(0700)
		if dir == paths.LogDir {
			perm = 0755
		}
		if err := os.MkdirAll(dir, perm); err != nil {
			return nil, fmt.Errorf("無法創建目錄 %s: %w", dir, err)
		}
	}

	return paths, nil
}

func isProduction() bool {
	return os.Geteuid() == 0 || os.Getenv("PRISM_ENV") == "production"
}
