package usecase

import (
	"fmt"
	"path/filepath"
)

// 信頼度の値です。較正された確率ではありません。
const (
	ConfidenceFailed    = 0.0
	ConfidenceHeuristic = 0.5
	ConfidenceExtracted = 0.85
)

const (
	// DescribePrompt は一括画像説明で各画像と一緒に送るプロンプトです。
	DescribePrompt = "Analise a imagem com foco em: número de moradias visíveis, tipologia, " +
		"estado aparente, indícios de risco (encosta/drenagem), e referências geográficas. " +
		"Responda tecnicamente e objetivamente."

	// CountPrompt は住宅数カウントで送るプロンプトです。1行目に "TOTAL: X residências" を要求します。
	CountPrompt = `Analise esta imagem de satélite e conte EXATAMENTE quantas residências/moradias estão visíveis.

INSTRUÇÕES IMPORTANTES:
- Conte APENAS estruturas que sejam claramente residências
- Seja preciso: conte cada casa/prédio individual
- Ignore estruturas comerciais, industriais ou agrícolas
- Se houver prédios, estime o número de unidades residenciais

FORMATO DA RESPOSTA:
Linha 1: "TOTAL: X residências"
Linha 2-N: Descrição breve da área (tipo de construções, densidade, estado aparente, riscos visíveis)

Exemplo:
TOTAL: 23 residências
Área residencial de média densidade com casas predominantemente térreas. Construções em bom estado, algumas próximas a encostas. Vegetação esparsa ao redor.
`

	// UnavailableDescription はモデルが空のテキストを返した場合の説明です。
	UnavailableDescription = "Análise não disponível"

	totalMarker = "TOTAL:"
)

func offlineDescription(path string) string {
	return fmt.Sprintf("[MODO OFFLINE] Análise automática: arquivo '%s'. "+
		"Estimativa: aproximadamente 3-5 residências visíveis na área. "+
		"Para análise precisa, configure GEMINI_API_KEY.", filepath.Base(path))
}

func imageErrorDescription(path string) string {
	return fmt.Sprintf("Erro ao processar imagem: %s", filepath.Base(path))
}

func fallbackDescription(path string) string {
	return fmt.Sprintf("[FALLBACK] Descrição automática (sem IA ativa) – arquivo '%s'.", filepath.Base(path))
}

func integrationErrorDescription(path string) string {
	return fmt.Sprintf("[ERRO] Não foi possível analisar '%s'. Verifique GEMINI_API_KEY.", filepath.Base(path))
}

func offlineCountDescription(count int) string {
	return fmt.Sprintf("[MODO OFFLINE] Estimativa automática: %d residências na área. "+
		"Configure GEMINI_API_KEY para análise real.", count)
}

func countErrorDescription(err error) string {
	return fmt.Sprintf("Erro ao analisar imagem: %s", err.Error())
}

// eachPath はパスごとに同じ形式のプレースホルダーを生成します。
func eachPath(paths []string, format func(string) string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, format(p))
	}
	return out
}
