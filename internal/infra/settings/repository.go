package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	domainSettings "github.com/Yat-Muk/prism-panel/internal/domain/settings"
	perrors "github.com/Yat-Muk/prism-panel/internal/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileRepository 基於 YAML 文件的設置倉庫
type FileRepository struct {
	filePath    string
	mu          sync.RWMutex
	fileMu      sync.Mutex // 用於文件 I/O 的互斥鎖
	logger      *zap.Logger
	cached      *domainSettings.Settings
	lastModTime time.Time
}

func NewFileRepository(path string, logger *zap.Logger) *FileRepository {
	return &FileRepository{
		filePath: path,
		logger:   logger,
	}
}

// Load 加載設置（按修改時間緩存）
func (r *FileRepository) Load(ctx context.Context) (*domainSettings.Settings, error) {
	r.mu.RLock()
	stat, err := os.Stat(r.filePath)

	// 文件不存在 -> 默認設置
	if os.IsNotExist(err) {
		r.mu.RUnlock()
		r.logger.Info("設置文件不存在，使用默認設置", zap.String("path", r.filePath))
		return domainSettings.DefaultSettings(), nil
	}
	if err != nil {
		r.mu.RUnlock()
		return nil, fmt.Errorf("檢查設置文件狀態失敗: %w", err)
	}

	// 緩存命中，必須返回深拷貝
	if r.cached != nil && !stat.ModTime().After(r.lastModTime) {
		s := r.cached.DeepCopy()
		r.mu.RUnlock()
		r.logger.Debug("設置未變更，使用內存緩存")
		return s, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// 雙重檢查：切換鎖的空檔期內可能已被其他協程加載
	stat, err = os.Stat(r.filePath)
	if os.IsNotExist(err) {
		return domainSettings.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("檢查設置文件狀態失敗: %w", err)
	}
	if r.cached != nil && !stat.ModTime().After(r.lastModTime) {
		return r.cached.DeepCopy(), nil
	}

	r.fileMu.Lock()
	content, err := os.ReadFile(r.filePath)
	r.fileMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("讀取設置文件失敗: %w", err)
	}

	s := &domainSettings.Settings{}
	if err := yaml.Unmarshal(content, s); err != nil {
		return nil, perrors.Wrapf(perrors.ErrSettingsParseFailed, err, perrors.CodeSettings,
			"解析設置文件失敗: %s", r.filePath)
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	r.cached = s.DeepCopy()
	r.lastModTime = stat.ModTime()

	r.logger.Info("設置文件已從磁盤加載",
		zap.String("path", r.filePath),
		zap.Time("mod_time", r.lastModTime),
	)

	return s, nil
}

// Save 保存設置（原子寫入）
func (r *FileRepository) Save(ctx context.Context, s *domainSettings.Settings) error {
	if s == nil {
		return fmt.Errorf("設置對象為空")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.fileMu.Lock()
	defer r.fileMu.Unlock()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("序列化設置失敗: %w", err)
	}

	// 臨時文件 -> 寫入 -> Sync -> 關閉 -> Rename
	dir := filepath.Dir(r.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("創建設置目錄失敗: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "panel.*.yaml.tmp")
	if err != nil {
		return fmt.Errorf("創建臨時文件失敗: %w", err)
	}
	tmpName := tmpFile.Name()

	writeSuccess := false
	defer func() {
		if !writeSuccess {
			tmpFile.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("寫入數據失敗: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("同步磁盤失敗: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("關閉臨時文件失敗: %w", err)
	}
	if err := os.Rename(tmpName, r.filePath); err != nil {
		return fmt.Errorf("替換設置文件失敗: %w", err)
	}
	if err := os.Chmod(r.filePath, 0600); err != nil {
		r.logger.Warn("設置文件權限失敗", zap.Error(err))
	}

	writeSuccess = true

	r.mu.Lock()
	r.cached = s.DeepCopy()
	if stat, err := os.Stat(r.filePath); err == nil {
		r.lastModTime = stat.ModTime()
	}
	r.mu.Unlock()

	return nil
}
