// Package entity はpreventionフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Process はリスクゾーンに対する予防プロセスです。
type Process struct {
	ID        uint
	ZoneID    int
	Context   string // 任意のJSON（空の場合あり）
	CreatedAt time.Time
}

// Photo はプロセスに添付された写真とその分析結果です。
type Photo struct {
	ID             uint
	ProcessID      uint
	FilePath       string
	Description    string
	ResidenceCount int
	Confidence     float64
	CreatedAt      time.Time
}

// PhotoBatch は一度にアップロードされた写真の集計結果です。
type PhotoBatch struct {
	Photos          []Photo
	TotalResidences int
	Confidence      float64 // 写真ごとの信頼度の平均（写真がない場合は0）
}
