package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type MediaFileResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	URL         string `json:"url"`
	CreatedAt   string `json:"createdAt"`
}

type MediaService interface {
	ListMedia(ctx context.Context) ([]MediaFileResponse, error)
	UploadMedia(ctx context.Context, header *multipart.FileHeader, uploadedBy string) ([]MediaFileResponse, error)
	DeleteMedia(ctx context.Context, id string) ([]MediaFileResponse, bool, error)
}

type mediaService struct {
	db  *gorm.DB
	dir string
}

func NewMediaService(db *gorm.DB, dir string) MediaService {
	return &mediaService{db: db, dir: dir}
}

func (s *mediaService) ListMedia(ctx context.Context) ([]MediaFileResponse, error) {
	var rows []model.MediaFile
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch media files: %w", err)
	}
	res := make([]MediaFileResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, toMediaResponse(r))
	}
	return res, nil
}

// UploadMedia stores the file under the media dir keyed by a fresh uuid,
// keeping the original name only for display.
func (s *mediaService) UploadMedia(ctx context.Context, header *multipart.FileHeader, uploadedBy string) ([]MediaFileResponse, error) {
	if header.Size > maxUploadBytes {
		return nil, validationf("file exceeds the %d MiB upload limit", maxUploadBytes>>20)
	}
	name := filepath.Base(header.Filename)
	if name == "" || name == "." || strings.ContainsAny(name, "/\\") {
		return nil, validationf("invalid file name")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare media dir: %w", err)
	}

	id := uuid.New()
	storagePath := filepath.Join(s.dir, id.String()+filepath.Ext(name))

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(storagePath)
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	row := model.MediaFile{
		ID:          id,
		FileName:    name,
		StoragePath: storagePath,
		ContentType: header.Header.Get("Content-Type"),
		SizeBytes:   written,
	}
	if parsed, err := uuid.Parse(uploadedBy); err == nil {
		row.UploadedBy = &parsed
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		_ = os.Remove(storagePath)
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	return s.ListMedia(ctx)
}

func (s *mediaService) DeleteMedia(ctx context.Context, id string) ([]MediaFileResponse, bool, error) {
	rowID, err := uuid.Parse(id)
	if err != nil {
		return nil, false, validationf("invalid media id")
	}

	var row model.MediaFile
	err = s.db.WithContext(ctx).First(&row, "id = ?", rowID).Error
	if err == nil {
		if err := s.db.WithContext(ctx).Delete(&row).Error; err != nil {
			return nil, false, fmt.Errorf("failed to delete media record: %w", err)
		}
		// File removal is best-effort; the record is authoritative.
		_ = os.Remove(row.StoragePath)
		list, lerr := s.ListMedia(ctx)
		return list, true, lerr
	}

	list, lerr := s.ListMedia(ctx)
	return list, false, lerr
}

func toMediaResponse(r model.MediaFile) MediaFileResponse {
	return MediaFileResponse{
		ID:          r.ID.String(),
		FileName:    r.FileName,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
		URL:         "/media/" + filepath.Base(r.StoragePath),
		CreatedAt:   formatTime(r.CreatedAt),
	}
}
