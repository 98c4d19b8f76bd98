package usecase

import "errors"

var (
	// ErrProcessNotFound は指定IDの予防プロセスが存在しない場合に返されます。
	ErrProcessNotFound = errors.New("prevention process not found")
	// ErrZoneIDRequired はzone_idが正の整数でない場合に返されます。
	ErrZoneIDRequired = errors.New("zone_id must be a positive integer")
	// ErrInvalidContext はcontextが有効なJSONでない場合に返されます。
	ErrInvalidContext = errors.New("context must be valid JSON")
	// ErrNoPhotos は写真が1枚も渡されなかった場合に返されます。
	ErrNoPhotos = errors.New("at least one photo is required")
	// ErrPhotoTooLarge は写真がMaxPhotoSizeを超えた場合に返されます。
	ErrPhotoTooLarge = errors.New("photo exceeds maximum size")
)
