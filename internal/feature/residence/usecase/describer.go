package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"climaseguro_backend/internal/feature/residence/domain/entity"
)

// batchOutcome は一括説明の最終結果の種類です。
type batchOutcome int

const (
	// outcomeDescribed はいずれかのモデルで一括処理が完了したことを表します（画像単位のエラーを含む場合があります）。
	outcomeDescribed batchOutcome = iota
	// outcomeExhausted はどの候補モデルも開けなかったことを表します。
	outcomeExhausted
	// outcomeFailed はクライアント生成など、一括処理全体が失敗したことを表します。
	outcomeFailed
)

var errNoCandidateOpened = errors.New("no candidate model could be opened")

// Settings はresidenceフィーチャーのユースケース設定です。
type Settings struct {
	APIKey       string // 空の場合はオフラインモード
	CounterModel string // 住宅数カウントに使う固定モデル
}

// Describer は画像ファイルの一括説明を行います。
type Describer struct {
	apiKey  string
	factory ClientFactory
	logger  *slog.Logger
}

// NewDescriber はDescriberの新しいインスタンスを生成します。loggerがnilの場合はslog.Default()を使います。
func NewDescriber(settings Settings, factory ClientFactory, logger *slog.Logger) *Describer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Describer{apiKey: settings.APIKey, factory: factory, logger: logger}
}

// DescribeImages は各画像の説明を入力と同じ順序・同じ件数で返します。
// エラーを返すことはなく、失敗はすべてプレースホルダー文字列に置き換えられます。
func (d *Describer) DescribeImages(ctx context.Context, paths []string) (out []string) {
	if d.apiKey == "" {
		d.logger.Info("gemini api key not configured; returning offline descriptions", "images", len(paths))
		return eachPath(paths, offlineDescription)
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("gemini integration failed", "error", fmt.Errorf("panic: %v", r))
			out = eachPath(paths, integrationErrorDescription)
		}
	}()

	descriptions, outcome, err := d.describe(ctx, paths)
	switch outcome {
	case outcomeDescribed:
		return descriptions
	case outcomeExhausted:
		d.logger.Error("no gemini model worked; returning fallback descriptions", "error", err)
		return eachPath(paths, fallbackDescription)
	default:
		d.logger.Error("gemini integration failed", "error", err)
		return eachPath(paths, integrationErrorDescription)
	}
}

// describe は候補モデルを順に開き、最初に開けたモデルですべての画像を処理します。
func (d *Describer) describe(ctx context.Context, paths []string) ([]string, batchOutcome, error) {
	if d.factory == nil {
		return nil, outcomeFailed, errors.New("gemini client factory is not configured")
	}
	client, err := d.factory(ctx, d.apiKey)
	if err != nil {
		return nil, outcomeFailed, fmt.Errorf("failed to create gemini client: %w", err)
	}

	candidates, source := resolveCandidates(ctx, client, d.logger)
	d.logger.Debug("resolved gemini candidates", "source", source.String(), "candidates", candidates)

	lastErr := errNoCandidateOpened
	for _, name := range candidates {
		model, err := client.OpenModel(ctx, name)
		if err != nil {
			d.logger.Warn("gemini model unavailable", "model", name, "error", err)
			lastErr = fmt.Errorf("model %s: %w", name, err)
			continue
		}
		return d.describeWith(ctx, model, name, paths), outcomeDescribed, nil
	}
	return nil, outcomeExhausted, lastErr
}

// describeWith は同じモデルで全画像を順番に処理します。画像単位の失敗で中断しません。
func (d *Describer) describeWith(ctx context.Context, model ModelHandle, name string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		text, err := describeOne(ctx, model, path)
		if err != nil {
			d.logger.Error("failed to describe image", "path", path, "model", name, "error", err)
			out = append(out, imageErrorDescription(path))
			continue
		}
		out = append(out, text)
	}
	return out
}

// describeOne は1枚の画像を説明します。画像単位のpanicはその画像のエラーとして返します。
func describeOne(ctx context.Context, model ModelHandle, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("panic: %v", r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	text, err = model.Generate(ctx, DescribePrompt, entity.ImagePayload{MIMEType: entity.MIMETypeJPEG, Data: data})
	if err != nil {
		return "", err
	}
	if text == "" {
		return UnavailableDescription, nil
	}
	return text, nil
}
