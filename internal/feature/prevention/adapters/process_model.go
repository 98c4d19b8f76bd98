package adapters

import (
	"time"

	"climaseguro_backend/internal/feature/prevention/domain/entity"
)

// ProcessModel is the GORM model for the prevention_processes table.
type ProcessModel struct {
	ID        uint   `gorm:"primaryKey"`
	ZoneID    int    `gorm:"index;not null"`
	Context   string `gorm:"type:text"`
	CreatedAt time.Time
	Photos    []PhotoModel `gorm:"foreignKey:ProcessID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (ProcessModel) TableName() string {
	return "prevention_processes"
}

// PhotoModel is the GORM model for the prevention_photos table.
type PhotoModel struct {
	ID             uint   `gorm:"primaryKey"`
	ProcessID      uint   `gorm:"index;not null"`
	FilePath       string `gorm:"size:512;not null"`
	Description    string `gorm:"type:text"`
	ResidenceCount int    `gorm:"not null;default:0"`
	Confidence     float64
	CreatedAt      time.Time
}

// TableName returns the table name for GORM.
func (PhotoModel) TableName() string {
	return "prevention_photos"
}

// Models returns every model the prevention feature migrates.
func Models() []any {
	return []any{&ProcessModel{}, &PhotoModel{}}
}

func (m *ProcessModel) toEntity() *entity.Process {
	return &entity.Process{
		ID:        m.ID,
		ZoneID:    m.ZoneID,
		Context:   m.Context,
		CreatedAt: m.CreatedAt,
	}
}

func photoModelFromEntity(p entity.Photo) PhotoModel {
	return PhotoModel{
		ProcessID:      p.ProcessID,
		FilePath:       p.FilePath,
		Description:    p.Description,
		ResidenceCount: p.ResidenceCount,
		Confidence:     p.Confidence,
	}
}

func (m *PhotoModel) toEntity() entity.Photo {
	return entity.Photo{
		ID:             m.ID,
		ProcessID:      m.ProcessID,
		FilePath:       m.FilePath,
		Description:    m.Description,
		ResidenceCount: m.ResidenceCount,
		Confidence:     m.Confidence,
		CreatedAt:      m.CreatedAt,
	}
}
