package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"climaseguro_backend/internal/feature/residence/usecase"
)

func TestExtractResidenceCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "total marker", text: "TOTAL: 23 residências\nÁrea residencial de média densidade.", want: 23},
		{name: "total marker wins over later counts", text: "TOTAL: 23 residências\nHá 7 casas na encosta e 12 moradias.", want: 23},
		{name: "total marker is case insensitive", text: "total:5 residências", want: 5},
		{name: "residence keyword", text: "Foram vistas 12 residências próximas ao rio.", want: 12},
		{name: "residence singular", text: "Apenas 1 residência visível.", want: 1},
		{name: "residence uppercase", text: "8 RESIDÊNCIAS", want: 8},
		{name: "cerca de with residences", text: "Há cerca de 40 residências na área.", want: 40},
		{name: "cerca de alone", text: "Observa-se cerca de 40 construções.", want: 40},
		{name: "casa before generic scan", text: "Há 7 casas e o prédio tem 12 andares", want: 7},
		{name: "moradia", text: "Contei 9 moradias.", want: 9},
		{name: "imovel", text: "São 4 imóveis.", want: 4},
		{name: "unidade", text: "Estimam-se 30 unidades habitacionais.", want: 30},
		{name: "aproximadamente", text: "Aproximadamente 15 construções.", want: 15},
		{name: "em torno de", text: "Em torno de 60 edificações.", want: 60},
		{name: "total anywhere in line", text: "O total observado foi de 33.", want: 33},
		{name: "identificad", text: "Foram identificadas na encosta 19.", want: 19},
		{name: "generic first number", text: "Imagem com 3 ruas e 2 praças.", want: 3},
		{name: "generic skips zero", text: "0 pontos críticos, 5 edificações", want: 5},
		{name: "generic excludes large numbers", text: "Encontramos 1500 árvores", want: 0},
		{name: "generic takes first small after large", text: "Encontramos 1500 árvores e 20 postes", want: 20},
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: "   \n\t ", want: 0},
		{name: "no numbers", text: "Área sem construções visíveis.", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, usecase.ExtractResidenceCount(tt.text))
		})
	}
}

func TestMatchResidenceCount_ReportsRule(t *testing.T) {
	t.Parallel()

	count, rule := usecase.MatchResidenceCount("TOTAL: 23 residências")
	assert.Equal(t, 23, count)
	assert.Equal(t, `(?i)TOTAL:\s*(\d+)`, rule)

	count, rule = usecase.MatchResidenceCount("Há 7 casas")
	assert.Equal(t, 7, count)
	assert.Equal(t, `(?i)(\d+)\s+casa`, rule)

	count, rule = usecase.MatchResidenceCount("ruas: 3")
	assert.Equal(t, 3, count)
	assert.Equal(t, usecase.RuleFirstNumber, rule)

	count, rule = usecase.MatchResidenceCount("nada")
	assert.Equal(t, 0, count)
	assert.Empty(t, rule)
}

func TestMatchResidenceCount_OverflowFallsThrough(t *testing.T) {
	t.Parallel()

	// intに収まらない数字列は次のパターンへ進む
	count := usecase.ExtractResidenceCount("TOTAL: 99999999999999999999999 e 4 casas")
	assert.Equal(t, 4, count)
}

func TestExtractResidenceCount_ASCIIWordBoundaries(t *testing.T) {
	t.Parallel()

	// \b と \d はASCIIのみを対象とする
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "ordinal sign is not a word character", text: "Lote nº12 na encosta", want: 12},
		{name: "non-ascii digits are not numbers", text: "٣ casas visíveis", want: 0},
		{name: "fullwidth digits are not numbers", text: "１２ residências", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			count, rule := usecase.MatchResidenceCount(tt.text)
			assert.Equal(t, tt.want, count)
			if tt.want > 0 {
				assert.Equal(t, usecase.RuleFirstNumber, rule)
			}
		})
	}
}

func TestConfidenceFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, usecase.ConfidenceExtracted, usecase.ConfidenceFor(3))
	assert.Equal(t, usecase.ConfidenceHeuristic, usecase.ConfidenceFor(0))
}
