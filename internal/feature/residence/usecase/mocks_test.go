package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"climaseguro_backend/internal/feature/residence/domain/entity"
	"climaseguro_backend/internal/feature/residence/usecase"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("api error")

// mockClient はClientインターフェースのモック実装です。
type mockClient struct {
	ListModelsFunc func(ctx context.Context) ([]entity.ModelInfo, error)
	OpenModelFunc  func(ctx context.Context, name string) (usecase.ModelHandle, error)
	OpenedNames    []string
	ListCalls      int
}

func (m *mockClient) ListModels(ctx context.Context) ([]entity.ModelInfo, error) {
	m.ListCalls++
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return nil, errors.New("ListModelsFunc is not implemented")
}

func (m *mockClient) OpenModel(ctx context.Context, name string) (usecase.ModelHandle, error) {
	m.OpenedNames = append(m.OpenedNames, name)
	if m.OpenModelFunc != nil {
		return m.OpenModelFunc(ctx, name)
	}
	return nil, errors.New("OpenModelFunc is not implemented")
}

// mockModel はModelHandleインターフェースのモック実装です。
type mockModel struct {
	GenerateFunc  func(ctx context.Context, prompt string, image entity.ImagePayload) (string, error)
	GenerateCalls int
	Images        []entity.ImagePayload
}

func (m *mockModel) Generate(ctx context.Context, prompt string, image entity.ImagePayload) (string, error) {
	m.GenerateCalls++
	m.Images = append(m.Images, image)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, image)
	}
	return "", errors.New("GenerateFunc is not implemented")
}

// factoryFor は常に同じクライアントを返すClientFactoryを生成します。
func factoryFor(client usecase.Client) (usecase.ClientFactory, *int) {
	calls := 0
	return func(ctx context.Context, apiKey string) (usecase.Client, error) {
		calls++
		return client, nil
	}, &calls
}

// recordingHandler は出力されたログレコードを記録するslog.Handlerです。
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.records))
	for _, r := range h.records {
		out = append(out, r.Message)
	}
	return out
}

func newRecordingLogger() (*slog.Logger, *recordingHandler) {
	h := &recordingHandler{}
	return slog.New(h), h
}
