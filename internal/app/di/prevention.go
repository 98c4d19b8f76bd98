package di

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"gorm.io/gorm"

	preventionadapters "climaseguro_backend/internal/feature/prevention/adapters"
	preventionhandler "climaseguro_backend/internal/feature/prevention/transport/handler"
	preventionusecase "climaseguro_backend/internal/feature/prevention/usecase"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port      string `env:"PORT" envDefault:"8000"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`
}

// LoadServerConfig reads ServerConfig from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("failed to parse server config: %w", err)
	}
	return cfg, nil
}

// NewPreventionHandler wires the prevention usecase to GORM and the local upload directory.
func NewPreventionHandler(db *gorm.DB, uploadDir string, describer preventionusecase.PhotoDescriber) *preventionhandler.PreventionHandler {
	repo := preventionadapters.NewProcessRepository(db)
	store := preventionadapters.NewLocalPhotoStore(uploadDir)
	uc := preventionusecase.NewPreventionUsecase(repo, store, describer)
	return preventionhandler.NewPreventionHandler(uc)
}
