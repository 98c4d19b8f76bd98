package adapters

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"climaseguro_backend/internal/feature/prevention/usecase"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// LocalPhotoStore はアップロード写真をローカルディスクに保存します。
type LocalPhotoStore struct {
	dir string
}

var _ usecase.PhotoStorage = (*LocalPhotoStore)(nil)

// NewLocalPhotoStore はdir配下に写真を保存するLocalPhotoStoreを生成します。
func NewLocalPhotoStore(dir string) *LocalPhotoStore {
	return &LocalPhotoStore{dir: dir}
}

// Save は <dir>/<processID>/<index>_<random>_<name> に写真を書き込み、そのパスを返します。
// ランダム部分により、同じプロセスへの再アップロードが既存のファイルを上書きすることはありません。
func (s *LocalPhotoStore) Save(ctx context.Context, processID uint, index int, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := filepath.Join(s.dir, strconv.FormatUint(uint64(processID), 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	f, err := os.CreateTemp(dir, fmt.Sprintf("%d_*_%s", index, SanitizeFileName(name)))
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	return f.Name(), nil
}

// SanitizeFileName はパス要素を取り除き、安全でない文字を "_" に置き換えます。
func SanitizeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	base = unsafeFileChars.ReplaceAllString(base, "_")
	switch base {
	case "", ".", "..", "_", "/":
		return "photo"
	}
	return base
}
