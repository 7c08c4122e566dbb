package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	pkglogger "github.com/familyalbum/album-backend/pkg/logger"
	"github.com/familyalbum/album-backend/pkg/storage"
)

// ObjectStore is the binary store behind uploads (S3 or local disk)
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (*storage.UploadResult, error)
	PublicURL(key string) string
}

// FileInput is a file received from a client
type FileInput struct {
	Body        io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// PhotoUploadInput is the metadata that accompanies a photo upload
type PhotoUploadInput struct {
	Title       string
	Description *string
	Location    *string
	TakenDate   *time.Time
	CategoryID  *string
	Tags        []string
	MemberIDs   []string
}

// UploadService stores a binary first, then writes the record that references it
type UploadService interface {
	UploadPhoto(ctx context.Context, file FileInput, in PhotoUploadInput) (*domain.FamilyPhoto, error)
	UploadAvatar(ctx context.Context, memberID string, file FileInput) (*domain.FamilyMember, error)
}

type uploadService struct {
	store    ObjectStore
	photos   PhotoService
	members  MemberService
	maxBytes int64
	now      func() time.Time
}

// NewUploadService creates a new UploadService. maxBytes <= 0 disables the size check.
func NewUploadService(store ObjectStore, photos PhotoService, members MemberService, maxBytes int64) UploadService {
	return &uploadService{
		store:    store,
		photos:   photos,
		members:  members,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

func (s *uploadService) check(kind string, file FileInput) error {
	if file.Body == nil {
		uploadsTotal.WithLabelValues(kind, outcomeRejected).Inc()
		return fmt.Errorf("no file: %w", common.ErrInvalidInput)
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		uploadsTotal.WithLabelValues(kind, outcomeRejected).Inc()
		return common.ErrFileTooLarge
	}
	// MIME 타입만 본다. 확장자는 키 생성에만 쓰임
	if !strings.HasPrefix(file.ContentType, "image/") {
		uploadsTotal.WithLabelValues(kind, outcomeRejected).Inc()
		return common.ErrUnsupportedType
	}
	return nil
}

// knownMembers keeps the ids that resolve to an existing member, in input order
func (s *uploadService) knownMembers(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	res := s.members.MembersByIDs(ctx, ids)
	if !res.OK() {
		return nil, fmt.Errorf("resolve tagged members: %w", res.Err)
	}
	found := make(map[string]bool, len(res.Data))
	for _, m := range res.Data {
		found[m.ID] = true
	}
	known := make([]string, 0, len(ids))
	for _, id := range ids {
		if found[id] {
			known = append(known, id)
		}
	}
	return known, nil
}

// put runs phase 1 and returns the public URL of the stored object
func (s *uploadService) put(ctx context.Context, kind, key string, file FileInput) (string, error) {
	res, err := s.store.Upload(ctx, key, file.Body, file.ContentType, file.Size)
	if err != nil {
		uploadsTotal.WithLabelValues(kind, outcomeStorageFailed).Inc()
		pkglogger.GetLogger().Error().Err(err).Str("kind", kind).Str("key", key).Msg("object upload failed")
		return "", fmt.Errorf("%w: %v", common.ErrStorageUpload, err)
	}
	if res.URL != "" {
		return res.URL, nil
	}
	return s.store.PublicURL(res.Key), nil
}

// UploadPhoto stores the image, then inserts the photo and its member links.
// The insert is never attempted when storage fails.
func (s *uploadService) UploadPhoto(ctx context.Context, file FileInput, in PhotoUploadInput) (*domain.FamilyPhoto, error) {
	if strings.TrimSpace(in.Title) == "" {
		uploadsTotal.WithLabelValues("photo", outcomeRejected).Inc()
		return nil, fmt.Errorf("title is required: %w", common.ErrInvalidInput)
	}
	if err := s.check("photo", file); err != nil {
		return nil, err
	}
	memberIDs, err := s.knownMembers(ctx, in.MemberIDs)
	if err != nil {
		uploadsTotal.WithLabelValues("photo", outcomeMetaFailed).Inc()
		return nil, err
	}

	key := storage.GenerateKey("photos", file.Filename, storage.FileExt(file.Filename, file.ContentType), s.now())
	url, err := s.put(ctx, "photo", key, file)
	if err != nil {
		return nil, err
	}

	photo := &domain.FamilyPhoto{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ImageURL:    url,
		Location:    in.Location,
		TakenDate:   in.TakenDate,
		CategoryID:  in.CategoryID,
		Tags:        nonNil(in.Tags),
	}
	saved, err := s.photos.CreatePhoto(ctx, photo, memberIDs)
	if err != nil {
		uploadsTotal.WithLabelValues("photo", outcomeMetaFailed).Inc()
		return nil, fmt.Errorf("%w: %v", common.ErrMetadataWrite, err)
	}

	uploadsTotal.WithLabelValues("photo", outcomeOK).Inc()
	return saved, nil
}

// UploadAvatar stores a profile picture, then points the member's avatar_url at it
func (s *uploadService) UploadAvatar(ctx context.Context, memberID string, file FileInput) (*domain.FamilyMember, error) {
	if err := s.check("avatar", file); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/profile_%s_%d_%s%s", memberID, s.now().UnixMilli(),
		storage.UniqueSuffix(), storage.FileExt(file.Filename, file.ContentType))
	url, err := s.put(ctx, "avatar", key, file)
	if err != nil {
		return nil, err
	}

	member, err := s.members.UpdateMember(ctx, memberID, domain.MemberUpdate{AvatarURL: &url})
	if err != nil {
		uploadsTotal.WithLabelValues("avatar", outcomeMetaFailed).Inc()
		if isNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrMetadataWrite, err)
	}

	uploadsTotal.WithLabelValues("avatar", outcomeOK).Inc()
	return member, nil
}
