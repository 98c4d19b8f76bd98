package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"climaseguro_backend/internal/feature/prevention/domain/entity"
	"climaseguro_backend/internal/feature/prevention/usecase"
)

// GormProcessRepository はGORMで予防プロセスと写真を永続化するProcessRepository実装です。
type GormProcessRepository struct {
	db *gorm.DB
}

var _ usecase.ProcessRepository = (*GormProcessRepository)(nil)

// NewProcessRepository は予防プロセスのGORMリポジトリを生成します。
func NewProcessRepository(db *gorm.DB) *GormProcessRepository {
	return &GormProcessRepository{db: db}
}

func (r *GormProcessRepository) CreateProcess(ctx context.Context, p *entity.Process) error {
	m := ProcessModel{ZoneID: p.ZoneID, Context: p.Context}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	return nil
}

func (r *GormProcessRepository) FindProcess(ctx context.Context, id uint) (*entity.Process, error) {
	var m ProcessModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecase.ErrProcessNotFound
	}
	if err != nil {
		return nil, err
	}
	return m.toEntity(), nil
}

// CreatePhotos は写真をまとめて1トランザクションで保存し、採番済みの写真を返します。
func (r *GormProcessRepository) CreatePhotos(ctx context.Context, photos []entity.Photo) ([]entity.Photo, error) {
	if len(photos) == 0 {
		return []entity.Photo{}, nil
	}
	ms := make([]PhotoModel, 0, len(photos))
	for _, p := range photos {
		ms = append(ms, photoModelFromEntity(p))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&ms).Error
	})
	if err != nil {
		return nil, err
	}

	out := make([]entity.Photo, 0, len(ms))
	for i := range ms {
		out = append(out, ms[i].toEntity())
	}
	return out, nil
}
