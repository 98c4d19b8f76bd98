// Package gemini はGoogle Gemini APIを使用したモデル一覧取得・画像分析クライアントを提供します。
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"climaseguro_backend/internal/feature/residence/domain/entity"
	"climaseguro_backend/internal/feature/residence/usecase"
	infrahttp "climaseguro_backend/internal/platform/http"
)

// Client はGoogle Gemini APIをusecase.Clientとして公開します。
type Client struct {
	client *genai.Client
}

// Clientがusecase.Clientを実装していることをコンパイル時に検証します。
var _ usecase.Client = (*Client)(nil)

// NewClient はAPIキーを使用してClientの新しいインスタンスを生成します。
func NewClient(ctx context.Context, apiKey string, cfg Config) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: infrahttp.NewHTTPClient(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: client}, nil
}

// NewClientFactory は呼び出しごとに新しいClientを生成するusecase.ClientFactoryを返します。
func NewClientFactory(cfg Config) usecase.ClientFactory {
	return func(ctx context.Context, apiKey string) (usecase.Client, error) {
		c, err := NewClient(ctx, apiKey, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// ListModels は利用可能なモデルをすべて取得します（ページングはSDKが処理します）。
func (c *Client) ListModels(ctx context.Context) ([]entity.ModelInfo, error) {
	var out []entity.ModelInfo
	for m, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("gemini list models failed: %w", err)
		}
		out = append(out, entity.ModelInfo{Name: m.Name, Actions: m.SupportedActions})
	}
	return out, nil
}

// OpenModel はモデルの存在を確認し、そのモデルへのハンドルを返します。
func (c *Client) OpenModel(ctx context.Context, name string) (usecase.ModelHandle, error) {
	if name == "" {
		return nil, errors.New("model name is empty")
	}
	if _, err := c.client.Models.Get(ctx, name, nil); err != nil {
		return nil, fmt.Errorf("gemini get model %q failed: %w", name, err)
	}
	return &model{client: c.client, name: name}, nil
}

// model は特定のGeminiモデルへのハンドルです。
type model struct {
	client *genai.Client
	name   string
}

// Generate はプロンプトと画像を送信し、応答テキストを返します。
func (m *model) Generate(ctx context.Context, prompt string, image entity.ImagePayload) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image.Data, image.MIMEType),
		}, genai.RoleUser),
	}
	resp, err := m.client.Models.GenerateContent(ctx, m.name, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
