// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AIModeGemini  = "gemini"
	AIModeOffline = "offline"
)

// HealthResponse は /healthz のレスポンスです。
type HealthResponse struct {
	Status string `json:"status"`
	AI     string `json:"ai"` // Gemini連携が有効かどうか
}

// NewHealth は /healthz エンドポイントのハンドラーを返します。
// aiLiveがfalseの場合、AI分析はオフラインの推定値で応答していることを示します。
func NewHealth(aiLive bool) gin.HandlerFunc {
	mode := AIModeOffline
	if aiLive {
		mode = AIModeGemini
	}
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, HealthResponse{Status: "ok", AI: mode})
		}
	}
}
