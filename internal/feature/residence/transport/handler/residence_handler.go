// Package handler はresidenceフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"climaseguro_backend/internal/api"
	"climaseguro_backend/internal/feature/residence/domain/entity"
	"climaseguro_backend/internal/feature/residence/usecase"
)

// ResidenceCounter は画像から住宅数を数えるユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ResidenceCounter interface {
	CountResidences(ctx context.Context, image []byte, coords entity.Coordinates) entity.Analysis
}

// ZoneAnalyzer はゾーン座標の衛星画像を分析するユースケースインターフェースです。
type ZoneAnalyzer interface {
	AnalyzeZone(ctx context.Context, zoneID int, lat, lon float64) (*entity.ZoneAnalysis, error)
}

// ResidenceHandler は住宅数分析のHTTPリクエストを処理します。
type ResidenceHandler struct {
	counter ResidenceCounter
	zones   ZoneAnalyzer
}

// NewResidenceHandler はResidenceHandlerの新しいインスタンスを生成します。
func NewResidenceHandler(counter ResidenceCounter, zones ZoneAnalyzer) *ResidenceHandler {
	return &ResidenceHandler{counter: counter, zones: zones}
}

// AnalyzeResidence はBase64画像の住宅数を分析します。
//
// エンドポイント: POST /api/gemini/analyze-residence
// ボディ: {"image_base64": "...", "zone_id": 1, "coordinates": {...}}
func (h *ResidenceHandler) AnalyzeResidence(c *gin.Context) {
	var req api.AnalyzeResidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image_base64 is required"})
		return
	}

	image, err := decodeImage(req.ImageBase64)
	if err != nil {
		slog.Warn("invalid base64 image", "zone_id", req.ZoneID, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image_base64 is not valid base64"})
		return
	}

	analysis := h.counter.CountResidences(c.Request.Context(), image, entity.Coordinates(req.Coordinates))
	c.JSON(http.StatusOK, toAnalysisResponse(analysis))
}

// AnalyzeZone はゾーン中心座標の衛星画像を取得して住宅数を分析します。
//
// エンドポイント: POST /api/gemini/analyze-zone
// ボディ: {"zone_id": 1, "lat": -23.55, "lon": -46.63}
func (h *ResidenceHandler) AnalyzeZone(c *gin.Context) {
	var req api.AnalyzeZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "lat and lon are required"})
		return
	}

	result, err := h.zones.AnalyzeZone(c.Request.Context(), req.ZoneID, *req.Lat, *req.Lon)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("zone analysis failed", "zone_id", req.ZoneID, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to capture satellite image"})
		return
	}

	c.JSON(http.StatusOK, api.AnalyzeZoneResponse{
		ZoneID:           result.ZoneID,
		Lat:              result.Lat,
		Lon:              result.Lon,
		AnalysisResponse: toAnalysisResponse(result.Analysis),
	})
}

// decodeImage は "data:image/png;base64," のようなプレフィックスを許容してBase64をデコードします。
func decodeImage(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("decoded image is empty")
	}
	return data, nil
}

func toAnalysisResponse(a entity.Analysis) api.AnalysisResponse {
	return api.AnalysisResponse{
		ResidenceCount: a.ResidenceCount,
		Description:    a.Description,
		Confidence:     a.Confidence,
	}
}
