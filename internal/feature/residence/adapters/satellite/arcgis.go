package satellite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"climaseguro_backend/internal/feature/residence/usecase"
	"climaseguro_backend/internal/shared/ratelimiter"
)

const (
	// BBoxDelta は中心座標から境界ボックスの各辺までの距離（度）です。
	BBoxDelta = 0.002
	// ImageSize はエクスポートする画像の一辺のピクセル数です。
	ImageSize = 640
)

// ArcGISSource はArcGIS MapServerのexport APIから画像を取得するImageSource実装です。
type ArcGISSource struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ArcGISSourceがImageSourceを実装していることをコンパイル時に検証します。
var _ usecase.ImageSource = (*ArcGISSource)(nil)

// NewArcGISSource はArcGISSourceの新しいインスタンスを生成します。
func NewArcGISSource(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *ArcGISSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &ArcGISSource{cfg: cfg, client: client, limiter: limiter}
}

// Capture は指定座標を中心としたPNG画像を取得します。
func (s *ArcGISSource) Capture(ctx context.Context, lat, lon float64) ([]byte, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("arcgis rate limit wait: %w", err)
		}
	}

	u := fmt.Sprintf("%s/export?%s", strings.TrimRight(s.cfg.BaseURL, "/"), exportQuery(lat, lon).Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arcgis request failed: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("arcgis http %d", res.StatusCode)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read arcgis image: %w", err)
	}
	slog.Debug("captured satellite image", "lat", lat, "lon", lon, "bytes", len(data))
	return data, nil
}

// exportQuery はexport APIのクエリパラメータを組み立てます。
func exportQuery(lat, lon float64) url.Values {
	size := strconv.Itoa(ImageSize)
	q := url.Values{}
	q.Set("bbox", strings.Join([]string{
		formatCoord(lon - BBoxDelta),
		formatCoord(lat - BBoxDelta),
		formatCoord(lon + BBoxDelta),
		formatCoord(lat + BBoxDelta),
	}, ","))
	q.Set("size", size+","+size)
	q.Set("format", "png")
	q.Set("f", "image")
	q.Set("bboxSR", "4326")
	q.Set("imageSR", "3857")
	return q
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
