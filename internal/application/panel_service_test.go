package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Yat-Muk/prism-panel/internal/domain/status"
	perrors "github.com/Yat-Muk/prism-panel/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const exampleBody = `{"status":"running","resources":{"cpu":42,"memory":17},"config":{"mode":"auto"}}`

// MockClient 模擬後端 API
type MockClient struct {
	mu sync.Mutex

	statusBody string
	statusErr  error
	cmdCode    int
	cmdErr     error

	statusCalls int
	starts      int
	stops       int
	updates     []string

	// statusHook 返回前調用，用於控制返回順序
	statusHook func(call int)
}

func newMockClient() *MockClient {
	return &MockClient{statusBody: exampleBody, cmdCode: 200}
}

func (m *MockClient) Status(ctx context.Context) (*status.Snapshot, error) {
	m.mu.Lock()
	m.statusCalls++
	call := m.statusCalls
	hook := m.statusHook
	m.mu.Unlock()

	if hook != nil {
		hook(call)
	}

	m.mu.Lock()
	body, err := m.statusBody, m.statusErr
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return status.Decode(strings.NewReader(body))
}

func (m *MockClient) Start(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts++
	return m.cmdCode, m.cmdErr
}

func (m *MockClient) Stop(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
	return m.cmdCode, m.cmdErr
}

func (m *MockClient) UpdateConfig(ctx context.Context, raw string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, raw)
	return m.cmdCode, m.cmdErr
}

func (m *MockClient) StatusCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusCalls
}

// MockView 記錄渲染結果
type MockView struct {
	mu      sync.Mutex
	current status.Display
	renders int
}

func (v *MockView) Render(d status.Display) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = d
	v.renders++
}

func (v *MockView) Current() (status.Display, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current, v.renders
}

// MockPrompter 返回預設輸入
type MockPrompter struct {
	value   string
	ok      bool
	err     error
	message string
}

func (p *MockPrompter) Prompt(ctx context.Context, message string) (string, bool, error) {
	p.message = message
	return p.value, p.ok, p.err
}

func newService(client *MockClient, prompter *MockPrompter, opts ...PanelOption) (*PanelService, *MockView) {
	view := &MockView{}
	if prompter == nil {
		prompter = &MockPrompter{}
	}
	return NewPanelService(client, view, prompter, zap.NewNop(), opts...), view
}

func TestRefreshStatus_RendersSnapshot(t *testing.T) {
	svc, view := newService(newMockClient(), nil)

	require.NoError(t, svc.RefreshStatus(context.Background()))

	d, renders := view.Current()
	assert.Equal(t, 1, renders)
	assert.Equal(t, "running", d.Status)
	assert.Equal(t, "42%", d.CPU)
	assert.Equal(t, "17%", d.Memory)
	assert.Equal(t, []string{"mode: auto"}, d.Config)
}

func TestRefreshStatus_Idempotent(t *testing.T) {
	svc, view := newService(newMockClient(), nil)
	ctx := context.Background()

	require.NoError(t, svc.RefreshStatus(ctx))
	first, _ := view.Current()
	require.NoError(t, svc.RefreshStatus(ctx))
	second, _ := view.Current()

	assert.True(t, first.Equal(second))
	assert.Len(t, second.Config, 1, "列表應整體替換而非追加")
}

func TestRefreshStatus_ReplacesConfigList(t *testing.T) {
	client := newMockClient()
	svc, view := newService(client, nil)
	ctx := context.Background()

	client.statusBody = `{"status":"running","resources":{"cpu":1,"memory":1},"config":{"a":1,"b":2,"c":3}}`
	require.NoError(t, svc.RefreshStatus(ctx))

	client.statusBody = `{"status":"running","resources":{"cpu":1,"memory":1},"config":{"z":"last"}}`
	require.NoError(t, svc.RefreshStatus(ctx))

	d, _ := view.Current()
	assert.Equal(t, []string{"z: last"}, d.Config)
}

func TestRefreshStatus_FailureKeepsPreviousDisplay(t *testing.T) {
	client := newMockClient()
	svc, view := newService(client, nil)
	ctx := context.Background()

	require.NoError(t, svc.RefreshStatus(ctx))
	before, _ := view.Current()

	client.statusErr = perrors.Wrapf(perrors.ErrTransport, errors.New("refused"), perrors.CodeTransport, "GET")
	err := svc.RefreshStatus(ctx)
	assert.True(t, perrors.Is(err, perrors.ErrTransport))

	client.statusErr = nil
	client.statusBody = "not json"
	assert.Error(t, svc.RefreshStatus(ctx))

	after, renders := view.Current()
	assert.Equal(t, 1, renders)
	assert.True(t, before.Equal(after))
}

func TestStartStop_TriggerExactlyOneRefresh(t *testing.T) {
	tests := []struct {
		name string
		run  func(*PanelService) (CommandResult, error)
		code int
	}{
		{"start", func(s *PanelService) (CommandResult, error) { return s.Start(context.Background()) }, 200},
		{"stop", func(s *PanelService) (CommandResult, error) { return s.Stop(context.Background()) }, 200},
		{"start 500", func(s *PanelService) (CommandResult, error) { return s.Start(context.Background()) }, 500},
		{"stop 404", func(s *PanelService) (CommandResult, error) { return s.Stop(context.Background()) }, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockClient()
			client.cmdCode = tt.code
			svc, view := newService(client, nil)

			result, err := tt.run(svc)
			require.NoError(t, err)
			assert.True(t, result.Sent)
			assert.Equal(t, tt.code, result.StatusCode)
			assert.Equal(t, 1, client.StatusCalls())

			_, renders := view.Current()
			assert.Equal(t, 1, renders)
		})
	}

	t.Run("計數", func(t *testing.T) {
		client := newMockClient()
		svc, _ := newService(client, nil)
		_, _ = svc.Start(context.Background())
		_, _ = svc.Stop(context.Background())
		assert.Equal(t, 1, client.starts)
		assert.Equal(t, 1, client.stops)
		assert.Equal(t, 2, client.StatusCalls())
	})
}

func TestStart_TransportFailureSkipsRefresh(t *testing.T) {
	client := newMockClient()
	client.cmdErr = perrors.Wrapf(perrors.ErrTransport, errors.New("refused"), perrors.CodeTransport, "POST")
	svc, _ := newService(client, nil)

	result, err := svc.Start(context.Background())
	assert.True(t, perrors.Is(err, perrors.ErrTransport))
	assert.False(t, result.Sent)
	assert.Equal(t, 0, client.StatusCalls())
}

func TestUpdateConfig_SendsVerbatim(t *testing.T) {
	client := newMockClient()
	prompter := &MockPrompter{value: `{"mode":"manual"}`, ok: true}
	svc, _ := newService(client, prompter)

	result, err := svc.UpdateConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ConfigPromptMessage, prompter.message)
	assert.True(t, result.Sent)
	assert.Equal(t, []string{`{"mode":"manual"}`}, client.updates)
	assert.Equal(t, 1, client.StatusCalls())
}

func TestUpdateConfig_NoLocalValidation(t *testing.T) {
	client := newMockClient()
	svc, _ := newService(client, &MockPrompter{value: "not json at all", ok: true})

	_, err := svc.UpdateConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"not json at all"}, client.updates)
}

func TestUpdateConfig_CancelOrEmptySendsNothing(t *testing.T) {
	tests := []struct {
		name     string
		prompter *MockPrompter
	}{
		{"取消", &MockPrompter{value: "", ok: false}},
		{"空輸入", &MockPrompter{value: "", ok: true}},
		{"取消但有殘留文本", &MockPrompter{value: `{"a":1}`, ok: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockClient()
			svc, _ := newService(client, tt.prompter)

			result, err := svc.UpdateConfig(context.Background())
			require.NoError(t, err)
			assert.False(t, result.Sent)
			assert.Empty(t, client.updates)
			assert.Equal(t, 0, client.StatusCalls())
		})
	}
}

func TestUpdateConfig_PromptError(t *testing.T) {
	client := newMockClient()
	svc, _ := newService(client, &MockPrompter{err: context.Canceled})

	_, err := svc.UpdateConfig(context.Background())
	assert.True(t, perrors.Is(err, perrors.ErrPromptFailed))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, client.updates)
}

// 兩個重疊的刷新：先發出的請求後返回
func overlappingRefresh(t *testing.T, opts ...PanelOption) status.Display {
	t.Helper()

	client := newMockClient()
	firstIssued := make(chan struct{})
	secondDone := make(chan struct{})

	client.statusHook = func(call int) {
		if call == 1 {
			close(firstIssued)
			<-secondDone
			client.mu.Lock()
			client.statusBody = `{"status":"old","resources":{"cpu":1,"memory":1},"config":{}}`
			client.mu.Unlock()
		}
	}
	svc, view := newService(client, nil, opts...)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.RefreshStatus(context.Background())
	}()

	<-firstIssued
	client.mu.Lock()
	client.statusBody = `{"status":"new","resources":{"cpu":2,"memory":2},"config":{}}`
	client.mu.Unlock()
	require.NoError(t, svc.RefreshStatus(context.Background()))
	close(secondDone)
	wg.Wait()

	d, _ := view.Current()
	return d
}

func TestRefreshStatus_LastResolvedWins(t *testing.T) {
	d := overlappingRefresh(t)
	assert.Equal(t, "old", d.Status, "默認以最後返回的響應為準")
}

func TestRefreshStatus_DiscardStale(t *testing.T) {
	d := overlappingRefresh(t, WithDiscardStale(true))
	assert.Equal(t, "new", d.Status)
}
