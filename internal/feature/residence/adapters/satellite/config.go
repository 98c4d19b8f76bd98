// Package satellite はArcGIS World Imageryから座標周辺の衛星画像を取得します。
package satellite

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// DefaultBaseURL はArcGIS World Imagery MapServerのURLです。
const DefaultBaseURL = "https://services.arcgisonline.com/arcgis/rest/services/World_Imagery/MapServer"

// Config はArcGISクライアントの設定です。
type Config struct {
	BaseURL   string        `env:"ARCGIS_BASE_URL" envDefault:"https://services.arcgisonline.com/arcgis/rest/services/World_Imagery/MapServer"`
	Timeout   time.Duration `env:"ARCGIS_TIMEOUT" envDefault:"15s"`
	RateLimit int           `env:"ARCGIS_RATE_LIMIT" envDefault:"30"` // 1分あたりのリクエスト上限（0で無制限）
}

// LoadConfig は環境変数からArcGIS設定を読み込みます。
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse arcgis config: %w", err)
	}
	return cfg, nil
}
