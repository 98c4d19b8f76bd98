package usecase

import (
	"hash/fnv"
	"math/rand/v2"

	"climaseguro_backend/internal/feature/residence/domain/entity"
)

// オフライン時の推定住宅数の範囲（両端を含む）です。
const (
	OfflineMinCount = 15
	OfflineMaxCount = 50
)

// OfflineResidenceCount は座標の文字列表現をシードにした疑似乱数の住宅数を返します。
// 同じ座標からは常に同じ値が返ります。
func OfflineResidenceCount(coords entity.Coordinates) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(coords.String()))
	seed := h.Sum64()
	r := rand.New(rand.NewPCG(seed, seed>>1))
	return OfflineMinCount + r.IntN(OfflineMaxCount-OfflineMinCount+1)
}
