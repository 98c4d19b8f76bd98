// Package usecase はresidenceフィーチャーのビジネスロジック（モデル選択・画像説明・住宅数カウント）を実装します。
package usecase

import (
	"context"

	"climaseguro_backend/internal/feature/residence/domain/entity"
)

// Client は生成AIベンダーAPIのうち、このフィーチャーが必要とする操作だけを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Client interface {
	// ListModels は利用可能なモデルの一覧を返します。
	ListModels(ctx context.Context) ([]entity.ModelInfo, error)
	// OpenModel は指定されたモデル名のハンドルを生成します。
	OpenModel(ctx context.Context, name string) (ModelHandle, error)
}

// ModelHandle はプロンプトと画像からテキストを生成する、特定モデルへのハンドルです。
type ModelHandle interface {
	Generate(ctx context.Context, prompt string, image entity.ImagePayload) (string, error)
}

// ClientFactory はAPIキーからClientを生成します。呼び出しごとに新しいClientを生成します。
type ClientFactory func(ctx context.Context, apiKey string) (Client, error)
