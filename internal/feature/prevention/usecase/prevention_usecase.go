// Package usecase は予防プロセスと写真分析のビジネスロジックを提供します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"climaseguro_backend/internal/feature/prevention/domain/entity"
	residence "climaseguro_backend/internal/feature/residence/usecase"
)

// MaxPhotoSize は写真1枚あたりの最大サイズ（バイト）です。
const MaxPhotoSize = 10 << 20

// ProcessRepository は予防プロセスと写真を永続化するリポジトリインターフェースです。
type ProcessRepository interface {
	CreateProcess(ctx context.Context, p *entity.Process) error
	// FindProcess は存在しない場合ErrProcessNotFoundを返します。
	FindProcess(ctx context.Context, id uint) (*entity.Process, error)
	CreatePhotos(ctx context.Context, photos []entity.Photo) ([]entity.Photo, error)
}

// PhotoDescriber は画像ファイルの説明を入力と同じ順序で返します。
type PhotoDescriber interface {
	DescribeImages(ctx context.Context, paths []string) []string
}

// PhotoStorage はアップロードされた写真を保存し、保存先パスを返します。
type PhotoStorage interface {
	Save(ctx context.Context, processID uint, index int, name string, data []byte) (string, error)
}

// UploadedPhoto はアップロードされた写真1枚です。
type UploadedPhoto struct {
	Name string
	Data []byte
}

// PreventionUsecase は予防プロセスの作成と写真分析を行います。
type PreventionUsecase struct {
	repo      ProcessRepository
	storage   PhotoStorage
	describer PhotoDescriber
}

// NewPreventionUsecase はPreventionUsecaseの新しいインスタンスを生成します。
func NewPreventionUsecase(repo ProcessRepository, storage PhotoStorage, describer PhotoDescriber) *PreventionUsecase {
	return &PreventionUsecase{repo: repo, storage: storage, describer: describer}
}

// CreateProcess はゾーンに対する予防プロセスを作成します。
func (u *PreventionUsecase) CreateProcess(ctx context.Context, zoneID int, contextJSON string) (*entity.Process, error) {
	if zoneID <= 0 {
		return nil, ErrZoneIDRequired
	}
	contextJSON = strings.TrimSpace(contextJSON)
	if contextJSON != "" && !json.Valid([]byte(contextJSON)) {
		return nil, ErrInvalidContext
	}

	p := &entity.Process{ZoneID: zoneID, Context: contextJSON}
	if err := u.repo.CreateProcess(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create prevention process: %w", err)
	}
	slog.Info("prevention process created", "process_id", p.ID, "zone_id", zoneID)
	return p, nil
}

// UploadPhotos は写真を保存して一括で説明を生成し、住宅数を集計します。
func (u *PreventionUsecase) UploadPhotos(ctx context.Context, processID uint, photos []UploadedPhoto) (*entity.PhotoBatch, error) {
	if len(photos) == 0 {
		return nil, ErrNoPhotos
	}
	for _, p := range photos {
		if len(p.Data) > MaxPhotoSize {
			return nil, fmt.Errorf("%w: %s", ErrPhotoTooLarge, p.Name)
		}
	}

	if _, err := u.repo.FindProcess(ctx, processID); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(photos))
	for i, p := range photos {
		path, err := u.storage.Save(ctx, processID, i, p.Name, p.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to save photo %q: %w", p.Name, err)
		}
		paths = append(paths, path)
	}

	descriptions := u.describer.DescribeImages(ctx, paths)

	records := make([]entity.Photo, 0, len(paths))
	for i, path := range paths {
		desc := ""
		if i < len(descriptions) {
			desc = descriptions[i]
		}
		count := residence.ExtractResidenceCount(desc)
		records = append(records, entity.Photo{
			ProcessID:      processID,
			FilePath:       path,
			Description:    desc,
			ResidenceCount: count,
			Confidence:     residence.ConfidenceFor(count),
		})
	}

	saved, err := u.repo.CreatePhotos(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to store photos: %w", err)
	}

	batch := summarize(saved)
	slog.Info("prevention photos analyzed", "process_id", processID, "photos", len(saved), "residences", batch.TotalResidences)
	return batch, nil
}

// summarize は住宅数の合計と信頼度の平均を計算します。
func summarize(photos []entity.Photo) *entity.PhotoBatch {
	batch := &entity.PhotoBatch{Photos: photos}
	if len(photos) == 0 {
		return batch
	}
	var sum float64
	for _, p := range photos {
		batch.TotalResidences += p.ResidenceCount
		sum += p.Confidence
	}
	batch.Confidence = sum / float64(len(photos))
	return batch
}
