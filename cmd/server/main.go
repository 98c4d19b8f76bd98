package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"climaseguro_backend/internal/app/di"
	"climaseguro_backend/internal/app/router"
	residencehandler "climaseguro_backend/internal/feature/residence/transport/handler"
	infradb "climaseguro_backend/internal/platform/db"
	platformhandler "climaseguro_backend/internal/platform/http/handler"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	serverCfg, err := di.LoadServerConfig()
	if err != nil {
		log.Fatal(err)
	}

	// db
	dbCfg, err := infradb.LoadConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	db, err := infradb.OpenDB(dbCfg)
	if err != nil {
		log.Fatal(err)
	}

	// Usecase
	residence, err := di.NewResidenceServices(logger)
	if err != nil {
		log.Fatal(err)
	}
	if !residence.AILive {
		log.Println("[WARN] GEMINI_API_KEY is not set. Serving offline residence estimates.")
	}

	// Handler
	residenceH := residencehandler.NewResidenceHandler(residence.Counter, residence.Zones)
	preventionH := di.NewPreventionHandler(db, serverCfg.UploadDir, residence.Describer)

	// ルータ生成
	r := router.NewRouter(platformhandler.NewHealth(residence.AILive), residenceH, preventionH)

	if err := r.Run(":" + serverCfg.Port); err != nil {
		log.Fatal(err)
	}
}
