// Package coreapi 封裝後端 /api/core/* 接口的 HTTP 訪問
package coreapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Yat-Muk/prism-panel/internal/domain/settings"
	"github.com/Yat-Muk/prism-panel/internal/domain/status"
	"github.com/Yat-Muk/prism-panel/internal/pkg/appctx"
	perrors "github.com/Yat-Muk/prism-panel/internal/pkg/errors"
	"github.com/Yat-Muk/prism-panel/internal/pkg/version"
	"go.uber.org/zap"
)

// RequestIDHeader 每個出站請求攜帶的請求 ID 頭
const RequestIDHeader = "X-Request-ID"

// Client 後端 API 客戶端
type Client struct {
	http      *http.Client
	server    settings.ServerSettings
	log       *zap.Logger
	userAgent string
}

// Option 客戶端選項
type Option func(*Client)

// WithHTTPClient 替換底層 http.Client (測試用)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient 創建客戶端；RequestTimeout 為 0 時不設超時
func NewClient(server settings.ServerSettings, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: server.RequestTimeout},
		server:    server,
		log:       log.Named("coreapi"),
		userAgent: version.UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Status 獲取當前狀態快照
func (c *Client) Status(ctx context.Context) (*status.Snapshot, error) {
	path := c.server.Endpoints.Status

	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, perrors.Wrapf(perrors.ErrHTTPStatus, nil, perrors.CodeStatus,
			"GET %s 返回 %d", path, resp.StatusCode)
	}

	snap, err := status.Decode(resp.Body)
	if err != nil {
		return nil, perrors.Wrapf(perrors.ErrDecode, err, perrors.CodeDecode,
			"解析 %s 響應失敗", path)
	}
	return snap, nil
}

// Start 請求後端啟動受管服務，返回 HTTP 狀態碼
func (c *Client) Start(ctx context.Context) (int, error) {
	return c.command(ctx, c.server.Endpoints.Start, "", nil)
}

// Stop 請求後端停止受管服務，返回 HTTP 狀態碼
func (c *Client) Stop(ctx context.Context) (int, error) {
	return c.command(ctx, c.server.Endpoints.Stop, "", nil)
}

// UpdateConfig 原樣提交 JSON 文本，不做本地校驗
func (c *Client) UpdateConfig(ctx context.Context, rawJSON string) (int, error) {
	return c.command(ctx, c.server.Endpoints.UpdateConfig, "application/json", strings.NewReader(rawJSON))
}

// command 發送 POST 命令，響應體被丟棄；非 2xx 只記錄不視為錯誤
func (c *Client) command(ctx context.Context, path, contentType string, body io.Reader) (int, error) {
	resp, err := c.do(ctx, http.MethodPost, path, contentType, body)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("命令返回非成功狀態碼",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
	}
	return resp.StatusCode, nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	ctx, reqID := appctx.EnsureRequestID(ctx)

	req, err := http.NewRequestWithContext(ctx, method, c.server.URL(path), body)
	if err != nil {
		return nil, perrors.Wrapf(perrors.ErrTransport, err, perrors.CodeTransport,
			"構建請求 %s %s 失敗", method, path)
	}
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		return nil, perrors.Wrapf(perrors.ErrTransport, err, perrors.CodeTransport,
			"%s %s", method, path)
	}

	c.log.Debug("請求完成",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
		zap.String("request_id", reqID),
	)
	return resp, nil
}
