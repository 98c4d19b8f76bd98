// Package api はHTTPリクエスト/レスポンスのDTOを定義します。
package api

// ErrorResponse はエラー時のレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalyzeResidenceRequest は POST /api/gemini/analyze-residence のリクエストボディです。
type AnalyzeResidenceRequest struct {
	ImageBase64 string         `json:"image_base64" binding:"required"`
	ZoneID      int            `json:"zone_id"`
	Coordinates map[string]any `json:"coordinates"`
}

// AnalysisResponse は住宅数分析の結果です。
type AnalysisResponse struct {
	ResidenceCount int     `json:"residence_count"`
	Description    string  `json:"description"`
	Confidence     float64 `json:"confidence"`
}

// AnalyzeZoneRequest は POST /api/gemini/analyze-zone のリクエストボディです。
// lat/lon は0を有効値として扱うためポインタで受け取ります。
type AnalyzeZoneRequest struct {
	ZoneID int      `json:"zone_id"`
	Lat    *float64 `json:"lat" binding:"required"`
	Lon    *float64 `json:"lon" binding:"required"`
}

// AnalyzeZoneResponse はゾーン分析の結果です。
type AnalyzeZoneResponse struct {
	ZoneID int     `json:"zone_id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	AnalysisResponse
}

// CreateProcessRequest は POST /processos/prevencao のフォームです。
type CreateProcessRequest struct {
	ZoneID  string `form:"zone_id"`
	Context string `form:"context"`
}

// CreateProcessResponse は作成された予防プロセスのIDです。
type CreateProcessResponse struct {
	ProcessID uint `json:"processId"`
}

// PhotoResponse は保存された写真1枚の分析結果です。
type PhotoResponse struct {
	ID             uint    `json:"id"`
	FilePath       string  `json:"filePath"`
	Description    string  `json:"description"`
	ResidenceCount int     `json:"residenceCount"`
	Confidence     float64 `json:"confidence"`
}

// UploadPhotosResponse は POST /processos/prevencao/:id/fotos のレスポンスです。
type UploadPhotosResponse struct {
	Photos          []PhotoResponse `json:"photos"`
	TotalResidences int             `json:"totalResidences"`
	Confidence      float64         `json:"confidence"`
}

