// Package handler はpreventionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"climaseguro_backend/internal/api"
	"climaseguro_backend/internal/feature/prevention/domain/entity"
	"climaseguro_backend/internal/feature/prevention/usecase"
)

// PreventionUsecase は予防プロセスのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PreventionUsecase interface {
	CreateProcess(ctx context.Context, zoneID int, contextJSON string) (*entity.Process, error)
	UploadPhotos(ctx context.Context, processID uint, photos []usecase.UploadedPhoto) (*entity.PhotoBatch, error)
}

// PreventionHandler は予防プロセスのHTTPリクエストを処理します。
type PreventionHandler struct {
	uc PreventionUsecase
}

// NewPreventionHandler はPreventionHandlerの新しいインスタンスを生成します。
func NewPreventionHandler(uc PreventionUsecase) *PreventionHandler {
	return &PreventionHandler{uc: uc}
}

// CreateProcess は予防プロセスを作成します。
//
// エンドポイント: POST /processos/prevencao
// フォーム: zone_id（必須）、context（任意のJSON）
func (h *PreventionHandler) CreateProcess(c *gin.Context) {
	var req api.CreateProcessRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid form"})
		return
	}
	zoneID, err := strconv.Atoi(req.ZoneID)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrZoneIDRequired.Error()})
		return
	}

	p, err := h.uc.CreateProcess(c.Request.Context(), zoneID, req.Context)
	if err != nil {
		if errors.Is(err, usecase.ErrZoneIDRequired) || errors.Is(err, usecase.ErrInvalidContext) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to create prevention process", "zone_id", zoneID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create process"})
		return
	}

	c.JSON(http.StatusCreated, api.CreateProcessResponse{ProcessID: p.ID})
}

// UploadPhotos は写真をアップロードし、住宅数を分析します。
//
// エンドポイント: POST /processos/prevencao/:id/fotos
// Content-Type: multipart/form-data
// フィールド: files（複数可、1枚あたり最大10MB）
func (h *PreventionHandler) UploadPhotos(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid process id"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "files are required"})
		return
	}

	photos := make([]usecase.UploadedPhoto, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		if fh.Size > usecase.MaxPhotoSize {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrPhotoTooLarge.Error() + ": " + fh.Filename})
			return
		}
		data, err := readFile(fh)
		if err != nil {
			slog.Error("failed to read uploaded photo", "file", fh.Filename, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read photo"})
			return
		}
		photos = append(photos, usecase.UploadedPhoto{Name: fh.Filename, Data: data})
	}

	batch, err := h.uc.UploadPhotos(c.Request.Context(), uint(id), photos)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProcessNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrNoPhotos), errors.Is(err, usecase.ErrPhotoTooLarge):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("failed to upload photos", "process_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to process photos"})
		}
		return
	}

	out := api.UploadPhotosResponse{
		Photos:          make([]api.PhotoResponse, 0, len(batch.Photos)),
		TotalResidences: batch.TotalResidences,
		Confidence:      batch.Confidence,
	}
	for _, p := range batch.Photos {
		out.Photos = append(out.Photos, api.PhotoResponse{
			ID:             p.ID,
			FilePath:       p.FilePath,
			Description:    p.Description,
			ResidenceCount: p.ResidenceCount,
			Confidence:     p.Confidence,
		})
	}
	c.JSON(http.StatusOK, out)
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded photo", "error", err)
		}
	}()
	return io.ReadAll(f)
}
