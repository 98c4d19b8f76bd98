package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"climaseguro_backend/internal/feature/residence/domain/entity"
)

// ActionGenerateContent はコンテンツ生成に対応したモデルが持つアクション名です。
const ActionGenerateContent = "generateContent"

// FallbackModels はモデル一覧が取得できない、または空の場合に使う候補です。
var FallbackModels = []string{"models/gemini-2.5-flash", "models/gemini-2.5-pro"}

// candidateSource は候補リストがどこから来たかを表します。
type candidateSource int

const (
	sourceDiscovered candidateSource = iota
	sourceFallbackEmpty
	sourceFallbackListError
)

func (s candidateSource) String() string {
	switch s {
	case sourceDiscovered:
		return "discovered"
	case sourceFallbackEmpty:
		return "fallback-empty"
	case sourceFallbackListError:
		return "fallback-list-error"
	default:
		return "unknown"
	}
}

// SupportsGenerateContent はモデルがコンテンツ生成に対応しているかを返します。
func SupportsGenerateContent(m entity.ModelInfo) bool {
	return slices.Contains(m.Actions, ActionGenerateContent)
}

// ScoreModel はモデル名から優先度スコアを計算します。
// "1.5" で+2、"flash" で+2、"pro" で+1（加算）。
func ScoreModel(name string) int {
	n := strings.ToLower(name)
	score := 0
	if strings.Contains(n, "1.5") {
		score += 2
	}
	if strings.Contains(n, "flash") {
		score += 2
	}
	if strings.Contains(n, "pro") {
		score += 1
	}
	return score
}

// RankCandidates はコンテンツ生成対応のモデルだけを残し、スコアの高い順に並べたモデル名を返します。
// 同点の場合は一覧の順序を保ちます。
func RankCandidates(models []entity.ModelInfo) []string {
	names := make([]string, 0, len(models))
	for _, m := range models {
		if SupportsGenerateContent(m) {
			names = append(names, m.Name)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return ScoreModel(names[i]) > ScoreModel(names[j])
	})
	return names
}

// resolveCandidates は試すべきモデル名を決めます。結果が空になることはありません。
func resolveCandidates(ctx context.Context, client Client, logger *slog.Logger) ([]string, candidateSource) {
	models, err := client.ListModels(ctx)
	if err != nil {
		logger.Warn("failed to list gemini models; using fallback candidates", "error", err, "candidates", FallbackModels)
		return slices.Clone(FallbackModels), sourceFallbackListError
	}
	names := RankCandidates(models)
	if len(names) == 0 {
		logger.Warn("no gemini model supports content generation; using fallback candidates", "listed", len(models), "candidates", FallbackModels)
		return slices.Clone(FallbackModels), sourceFallbackEmpty
	}
	return names, sourceDiscovered
}
