package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"climaseguro_backend/internal/feature/residence/domain/entity"
)

// DefaultCounterModel は住宅数カウントに使う既定のモデルです。候補探索は行いません。
const DefaultCounterModel = "gemini-1.5-flash"

// Counter は1枚の画像に写っている住宅数を数えます。
type Counter struct {
	apiKey  string
	model   string
	factory ClientFactory
	logger  *slog.Logger
}

// NewCounter はCounterの新しいインスタンスを生成します。
func NewCounter(settings Settings, factory ClientFactory, logger *slog.Logger) *Counter {
	if logger == nil {
		logger = slog.Default()
	}
	model := settings.CounterModel
	if model == "" {
		model = DefaultCounterModel
	}
	return &Counter{apiKey: settings.APIKey, model: model, factory: factory, logger: logger}
}

// CountResidences は画像の住宅数・説明・信頼度を返します。エラーを返すことはありません。
func (c *Counter) CountResidences(ctx context.Context, image []byte, coords entity.Coordinates) (result entity.Analysis) {
	if c.apiKey == "" {
		count := OfflineResidenceCount(coords)
		c.logger.Info("gemini api key not configured; returning offline estimate", "coordinates", coords.String(), "residences", count)
		return entity.Analysis{
			ResidenceCount: count,
			Description:    offlineCountDescription(count),
			Confidence:     ConfidenceHeuristic,
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			c.logger.Error("gemini residence analysis failed", "coordinates", coords.String(), "error", err)
			result = failedAnalysis(err)
		}
	}()

	analysis, err := c.count(ctx, image)
	if err != nil {
		c.logger.Error("gemini residence analysis failed", "coordinates", coords.String(), "error", err)
		return failedAnalysis(err)
	}
	c.logger.Info("gemini analyzed coordinates", "coordinates", coords.String(), "residences", analysis.ResidenceCount)
	return analysis
}

func (c *Counter) count(ctx context.Context, image []byte) (entity.Analysis, error) {
	if c.factory == nil {
		return entity.Analysis{}, errors.New("gemini client factory is not configured")
	}
	client, err := c.factory(ctx, c.apiKey)
	if err != nil {
		return entity.Analysis{}, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model, err := client.OpenModel(ctx, c.model)
	if err != nil {
		return entity.Analysis{}, fmt.Errorf("model %s: %w", c.model, err)
	}
	text, err := model.Generate(ctx, CountPrompt, entity.ImagePayload{MIMEType: entity.MIMETypePNG, Data: image})
	if err != nil {
		return entity.Analysis{}, err
	}

	count, rule := MatchResidenceCount(text)
	c.logger.Debug("extracted residence count", "count", count, "rule", rule)

	description := stripTotalLines(text)
	if description == "" {
		description = UnavailableDescription
	}
	return entity.Analysis{
		ResidenceCount: count,
		Description:    description,
		Confidence:     ConfidenceFor(count),
	}, nil
}

// stripTotalLines は "TOTAL:" で始まる行を取り除き、残りを結合して前後の空白を除去します。
func stripTotalLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, totalMarker) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func failedAnalysis(err error) entity.Analysis {
	return entity.Analysis{
		ResidenceCount: 0,
		Description:    countErrorDescription(err),
		Confidence:     ConfidenceFailed,
	}
}
