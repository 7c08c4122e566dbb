package form

import (
	"context"
	"strings"
	"time"

	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/service"
)

// PhotoUploader is the write behind the photo upload form
type PhotoUploader interface {
	UploadPhoto(ctx context.Context, file service.FileInput, in service.PhotoUploadInput) (*domain.FamilyPhoto, error)
}

// PhotoUploadForm collects a photo and its metadata
type PhotoUploadForm struct {
	Title       string
	Description string
	CategoryID  string
	TakenDate   *time.Time
	Location    string
	People      PeopleSet
	MemberIDs   []string

	// OnUploaded runs after a successful upload
	OnUploaded func(*domain.FamilyPhoto)

	file fileField
	inFlight
	open bool
}

// NewPhotoUploadForm returns an open, empty form
func NewPhotoUploadForm() *PhotoUploadForm {
	return &PhotoUploadForm{open: true}
}

// SelectFile picks the file to upload; only images are accepted
func (f *PhotoUploadForm) SelectFile(file *File) error {
	return f.file.selectFile(file)
}

// Preview returns the preview of the selected file, or nil
func (f *PhotoUploadForm) Preview() *Preview {
	_, p := f.file.current()
	return p
}

// IsOpen reports whether the form is showing
func (f *PhotoUploadForm) IsOpen() bool { return f.open }

// Close hides the form and releases the preview; input is kept
func (f *PhotoUploadForm) Close() {
	f.open = false
	f.file.clear()
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (f *PhotoUploadForm) reset() {
	f.Title, f.Description, f.CategoryID, f.Location = "", "", "", ""
	f.TakenDate = nil
	f.People.Reset()
	f.MemberIDs = nil
}

// Submit uploads the selected file. Without a file the uploader is not called.
// On success the form resets and closes; on failure it stays open with its input.
func (f *PhotoUploadForm) Submit(ctx context.Context, uploader PhotoUploader, sink notify.Sink) (*domain.FamilyPhoto, error) {
	file, _ := f.file.current()
	if file == nil {
		if sink != nil {
			sink.Notify(notify.Failure("notice.error", "photo.no_file"))
		}
		return nil, ErrNoFileSelected
	}

	var photo *domain.FamilyPhoto
	err := run(ctx, &f.inFlight, sink, outcome{
		successKey:   "photo.upload_success",
		failureTitle: "photo.upload_title",
		failureKey:   "photo.upload_failed",
	}, func(ctx context.Context) error {
		var err error
		photo, err = uploader.UploadPhoto(ctx, file.input(), service.PhotoUploadInput{
			Title:       f.Title,
			Description: optional(f.Description),
			Location:    optional(f.Location),
			TakenDate:   f.TakenDate,
			CategoryID:  optional(f.CategoryID),
			Tags:        f.People.Names(),
			MemberIDs:   f.MemberIDs,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if f.OnUploaded != nil {
		f.OnUploaded(photo)
	}
	f.reset()
	f.Close()
	return photo, nil
}
