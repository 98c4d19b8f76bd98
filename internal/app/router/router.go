package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	preventionhandler "climaseguro_backend/internal/feature/prevention/transport/handler"
	residencehandler "climaseguro_backend/internal/feature/residence/transport/handler"
)

func NewRouter(health gin.HandlerFunc, residence *residencehandler.ResidenceHandler,
	prevention *preventionhandler.PreventionHandler) *gin.Engine {
	r := gin.Default()

	// フロントエンドは別オリジンから配信される
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	// Gemini分析
	ai := r.Group("/api/gemini")
	{
		ai.POST("/analyze-residence", residence.AnalyzeResidence)
		ai.POST("/analyze-zone", residence.AnalyzeZone)
	}

	// 予防プロセス
	p := r.Group("/processos/prevencao")
	{
		p.POST("", prevention.CreateProcess)
		p.POST("/:id/fotos", prevention.UploadPhotos)
	}

	return r
}
