package usecase

import (
	"context"
	"fmt"

	"climaseguro_backend/internal/feature/residence/domain/entity"
)

// ImageSource は座標周辺の衛星画像を取得するリポジトリインターフェースです。
type ImageSource interface {
	Capture(ctx context.Context, lat, lon float64) ([]byte, error)
}

// ResidenceCounter は画像から住宅数を数えるインターフェースです。*Counterが実装します。
type ResidenceCounter interface {
	CountResidences(ctx context.Context, image []byte, coords entity.Coordinates) entity.Analysis
}

// ZoneUsecase はリスクゾーンの衛星画像を取得して住宅数を分析します。
type ZoneUsecase struct {
	source  ImageSource
	counter ResidenceCounter
}

// NewZoneUsecase はZoneUsecaseの新しいインスタンスを生成します。
func NewZoneUsecase(source ImageSource, counter ResidenceCounter) *ZoneUsecase {
	return &ZoneUsecase{source: source, counter: counter}
}

// AnalyzeZone は指定座標の画像を取得し、住宅数を分析します。
// 画像の取得に失敗した場合のみエラーを返します。
func (u *ZoneUsecase) AnalyzeZone(ctx context.Context, zoneID int, lat, lon float64) (*entity.ZoneAnalysis, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidCoordinates, lat, lon)
	}
	image, err := u.source.Capture(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("failed to capture satellite image for zone %d: %w", zoneID, err)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("satellite image for zone %d is empty", zoneID)
	}
	analysis := u.counter.CountResidences(ctx, image, entity.Coordinates{"lat": lat, "lon": lon})
	return &entity.ZoneAnalysis{ZoneID: zoneID, Lat: lat, Lon: lon, Analysis: analysis}, nil
}
