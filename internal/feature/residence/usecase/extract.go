package usecase

import (
	"regexp"
	"strconv"
)

const (
	// RuleFirstNumber はどのパターンにも一致せず、最初の妥当な数値を採用したことを表します。
	RuleFirstNumber = "first-number"

	// maxFallbackCount 未満の数値だけが汎用スキャンで採用されます。
	maxFallbackCount = 1000
)

// countPatterns は住宅数の抽出に使うパターンです。上から順に試し、最初に一致したものを採用します。
// 後ろのパターンほど緩いので、順序を変えてはいけません。
var countPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)TOTAL:\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s+residência`),
	regexp.MustCompile(`(?i)(\d+)\s+casa`),
	regexp.MustCompile(`(?i)(\d+)\s+moradia`),
	regexp.MustCompile(`(?i)(\d+)\s+imóve`),
	regexp.MustCompile(`(?i)(\d+)\s+unidade`),
	regexp.MustCompile(`(?i)aproximadamente\s+(\d+)`),
	regexp.MustCompile(`(?i)cerca de\s+(\d+)`),
	regexp.MustCompile(`(?i)em torno de\s+(\d+)`),
	regexp.MustCompile(`(?i)total.*?(\d+)`),
	regexp.MustCompile(`(?i)identificad.*?(\d+)`),
}

var anyNumber = regexp.MustCompile(`\b(\d+)\b`)

// ExtractResidenceCount はモデルの応答テキストから住宅数を抽出します。
// 見つからない場合は0を返します。
func ExtractResidenceCount(text string) int {
	count, _ := MatchResidenceCount(text)
	return count
}

// MatchResidenceCount はExtractResidenceCountと同じ抽出を行い、一致したルールも返します。
// ルールはパターン文字列、RuleFirstNumber、または何も見つからなかった場合は空文字です。
func MatchResidenceCount(text string) (int, string) {
	for _, p := range countPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// intに収まらない数字列は一致しなかったものとして扱う
			continue
		}
		return n, p.String()
	}

	for _, m := range anyNumber.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n >= 1 && n < maxFallbackCount {
			return n, RuleFirstNumber
		}
	}
	return 0, ""
}

// ConfidenceFor は抽出できた住宅数から信頼度を決めます。
// 0より大きい数はモデルが形式に従った証拠とみなします。
func ConfidenceFor(count int) float64 {
	if count > 0 {
		return ConfidenceExtracted
	}
	return ConfidenceHeuristic
}
